package validator

import (
	"fmt"

	"github.com/openmgmt/yangtools/unres"
)

// Mode selects which operation's validation rules apply.
type Mode int

const (
	// ModeDefault validates a complete data tree.
	ModeDefault Mode = iota
	// ModeConfig validates a configuration datastore; state data is
	// rejected.
	ModeConfig
	// ModeEdit validates an edit request: possibly incomplete data, no
	// state data, no expression deferral.
	ModeEdit
	// ModeGet validates a get reply; duplicate checks and deferral are
	// skipped.
	ModeGet
	// ModeGetConfig validates a get-config reply; like ModeGet but state
	// data is additionally rejected.
	ModeGetConfig
	// ModeRPC validates an RPC invocation body.
	ModeRPC
	// ModeRPCReply validates an RPC reply body.
	ModeRPCReply
	// ModeNotification validates a notification body.
	ModeNotification
	// ModeNotifFilter validates a notification filter; structural checks
	// and deferral are skipped.
	ModeNotifFilter
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeConfig:
		return "config"
	case ModeEdit:
		return "edit"
	case ModeGet:
		return "get"
	case ModeGetConfig:
		return "get-config"
	case ModeRPC:
		return "rpc"
	case ModeRPCReply:
		return "rpc-reply"
	case ModeNotification:
		return "notification"
	case ModeNotifFilter:
		return "notification-filter"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// IsValid reports whether the mode is one of the defined constants.
func (m Mode) IsValid() bool {
	return m >= ModeDefault && m <= ModeNotifFilter
}

// forbidsStateData reports whether config-false data is rejected.
func (m Mode) forbidsStateData() bool {
	return m == ModeConfig || m == ModeEdit || m == ModeGetConfig
}

// skipsDeferral reports whether expression constraints (union, leafref,
// instance-identifier, when, must) stay unqueued in this mode.
func (m Mode) skipsDeferral() bool {
	return m == ModeEdit || m == ModeGet || m == ModeGetConfig || m == ModeNotifFilter
}

// opMode reports whether the mode validates an RPC, reply, or
// notification body.
func (m Mode) opMode() bool {
	return m == ModeRPC || m == ModeRPCReply || m == ModeNotification
}

// replyMode reports whether the mode validates a get or get-config reply,
// which relaxes key ordering and skips sibling-duplicate detection.
func (m Mode) replyMode() bool {
	return m == ModeGet || m == ModeGetConfig
}

// Option is a function that configures a Validator.
type Option func(*config) error

// config holds configuration for a validation run.
type config struct {
	mode          Mode
	trusted       bool
	checkObsolete bool
	queue         *unres.Queue
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		mode: ModeDefault,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithMode selects the validation mode.
// Default: ModeDefault
func WithMode(m Mode) Option {
	return func(cfg *config) error {
		if !m.IsValid() {
			return fmt.Errorf("invalid validation mode %d", int(m))
		}
		cfg.mode = m
		return nil
	}
}

// WithTrusted marks the data as coming from a trusted source: structural
// checks are skipped and their pending flags just cleared.
// Default: false
func WithTrusted(trusted bool) Option {
	return func(cfg *config) error {
		cfg.trusted = trusted
		return nil
	}
}

// WithObsoleteCheck enables the obsolete-status policy: instantiating an
// obsolete definition, or referencing an obsolete identity, is an error.
// Default: false
func WithObsoleteCheck(check bool) Option {
	return func(cfg *config) error {
		cfg.checkObsolete = check
		return nil
	}
}

// WithQueue supplies the deferred-work queue that expression constraints
// are pushed onto. Without a queue nothing is deferred, which only makes
// sense for modes that skip deferral anyway.
func WithQueue(q *unres.Queue) Option {
	return func(cfg *config) error {
		cfg.queue = q
		return nil
	}
}

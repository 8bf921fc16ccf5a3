package yangerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrStructural indicates a structural constraint violation.
	ErrStructural = errors.New("structural error")

	// ErrKeyOrder indicates a missing or misordered list key.
	ErrKeyOrder = errors.New("missing or misordered key")

	// ErrTooManyInstances indicates a second instance of a singleton node.
	ErrTooManyInstances = errors.New("too many instances")

	// ErrDuplicateInstance indicates duplicate list or leaf-list instances.
	ErrDuplicateInstance = errors.New("duplicate instance")

	// ErrNonUnique indicates a violated unique statement.
	ErrNonUnique = errors.New("non-unique instances")

	// ErrMultipleCases indicates data from two cases of one choice.
	ErrMultipleCases = errors.New("multiple cases instantiated")

	// ErrPolicy indicates a policy constraint violation.
	ErrPolicy = errors.New("policy error")

	// ErrDisabledFeature indicates data for an if-feature-disabled node.
	ErrDisabledFeature = errors.New("node disabled by feature")

	// ErrDisabledValue indicates a value whose enum member, bit, or
	// identity is disabled by an if-feature condition.
	ErrDisabledValue = errors.New("value disabled by feature")

	// ErrStatusInConfig indicates state data in a config-only context.
	ErrStatusInConfig = errors.New("state data in config context")

	// ErrObsolete indicates use of an obsolete definition.
	ErrObsolete = errors.New("obsolete definition in use")

	// ErrOutOfOrder indicates misordered RPC input or output children.
	ErrOutOfOrder = errors.New("node out of schema order")

	// ErrExtension indicates an extension callback rejected the data.
	ErrExtension = errors.New("extension rejected data")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// StructuralCode identifies which structural constraint was violated.
type StructuralCode int

const (
	// CodeKeyOrder is a missing or misordered list key.
	CodeKeyOrder StructuralCode = iota
	// CodeTooManyInstances is a duplicated singleton.
	CodeTooManyInstances
	// CodeDuplicateInstance is a duplicated list or leaf-list instance.
	CodeDuplicateInstance
	// CodeNonUnique is a violated unique statement.
	CodeNonUnique
	// CodeMultipleCases is data from two cases of one choice.
	CodeMultipleCases
)

func (c StructuralCode) String() string {
	switch c {
	case CodeKeyOrder:
		return "key order"
	case CodeTooManyInstances:
		return "too many instances"
	case CodeDuplicateInstance:
		return "duplicate instance"
	case CodeNonUnique:
		return "non-unique instances"
	case CodeMultipleCases:
		return "multiple cases"
	default:
		return "structural"
	}
}

// StructuralError represents a structural constraint violation: key
// presence/order, singleton cardinality, duplicate detection, declared
// unique sets, or choice/case exclusivity.
type StructuralError struct {
	// Code identifies the violated constraint.
	Code StructuralCode
	// Path is the instance path of the offending data node
	Path string
	// SchemaName is the name of the violated schema node
	SchemaName string
	// Related is the instance path of a second involved node: the other
	// half of a duplicate or non-unique pair, or the conflicting case
	// member (optional)
	Related string
	// Constraint reproduces the violated constraint, such as the rebuilt
	// unique statement argument or the expected key name (optional)
	Constraint string
	// Missing is true for CodeKeyOrder when the expected key is absent
	// entirely rather than present out of position
	Missing bool
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *StructuralError) Error() string {
	msg := e.Code.String()
	if e.Code == CodeKeyOrder {
		if e.Missing {
			msg = "missing key"
		} else {
			msg = "misordered key"
		}
	}
	if e.SchemaName != "" {
		msg += " " + fmt.Sprintf("%q", e.SchemaName)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Constraint != "" {
		msg += fmt.Sprintf(" (constraint %q)", e.Constraint)
	}
	if e.Related != "" {
		msg += ", also at " + e.Related
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
// Matches ErrStructural, and the per-code sentinel appropriate to Code.
func (e *StructuralError) Is(target error) bool {
	if target == ErrStructural {
		return true
	}
	switch e.Code {
	case CodeKeyOrder:
		return target == ErrKeyOrder
	case CodeTooManyInstances:
		return target == ErrTooManyInstances
	case CodeDuplicateInstance:
		return target == ErrDuplicateInstance
	case CodeNonUnique:
		return target == ErrNonUnique
	case CodeMultipleCases:
		return target == ErrMultipleCases
	}
	return false
}

// PolicyCode identifies which policy constraint was violated.
type PolicyCode int

const (
	// CodeDisabledFeature is data for an if-feature-disabled node.
	CodeDisabledFeature PolicyCode = iota
	// CodeDisabledValue is a value with a feature-disabled member.
	CodeDisabledValue
	// CodeStatusInConfig is state data in a config-only context.
	CodeStatusInConfig
	// CodeObsolete is use of an obsolete definition.
	CodeObsolete
	// CodeOutOfOrder is misordered RPC input or output children.
	CodeOutOfOrder
)

func (c PolicyCode) String() string {
	switch c {
	case CodeDisabledFeature:
		return "disabled by feature"
	case CodeDisabledValue:
		return "value disabled by feature"
	case CodeStatusInConfig:
		return "state data in config context"
	case CodeObsolete:
		return "obsolete usage"
	case CodeOutOfOrder:
		return "out of schema order"
	default:
		return "policy"
	}
}

// PolicyError represents a policy violation: feature gating, config-vs-
// state placement, obsolete-status policy, or RPC body ordering.
type PolicyError struct {
	// Code identifies the violated policy.
	Code PolicyCode
	// Path is the instance path of the offending data node
	Path string
	// SchemaName is the name of the schema node involved
	SchemaName string
	// Feature is the gating feature name for the feature codes (optional)
	Feature string
	// Value is the offending value for CodeDisabledValue (optional)
	Value string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *PolicyError) Error() string {
	msg := e.Code.String()
	if e.SchemaName != "" {
		msg += fmt.Sprintf(": %q", e.SchemaName)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" value %q", e.Value)
	}
	if e.Feature != "" {
		msg += fmt.Sprintf(" (feature %q)", e.Feature)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PolicyError) Is(target error) bool {
	if target == ErrPolicy {
		return true
	}
	switch e.Code {
	case CodeDisabledFeature:
		return target == ErrDisabledFeature
	case CodeDisabledValue:
		return target == ErrDisabledValue
	case CodeStatusInConfig:
		return target == ErrStatusInConfig
	case CodeObsolete:
		return target == ErrObsolete
	case CodeOutOfOrder:
		return target == ErrOutOfOrder
	}
	return false
}

// ExtensionError represents rejection of a data node by a schema
// extension's data validation callback.
type ExtensionError struct {
	// Extension is the extension name
	Extension string
	// Path is the instance path of the rejected data node
	Path string
	// Cause is the error returned by the callback, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ExtensionError) Error() string {
	msg := "extension rejected data"
	if e.Extension != "" {
		msg += fmt.Sprintf(": %q", e.Extension)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ExtensionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ExtensionError) Is(target error) bool {
	return target == ErrExtension
}

// ResourceLimitError represents a resource exhaustion condition. Unlike
// the other categories it means the validator could not complete, not that
// the data is invalid.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "sibling_table", "tree_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

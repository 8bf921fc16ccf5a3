package validator

import (
	"errors"
	"time"

	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/internal/issues"
	"github.com/openmgmt/yangtools/internal/severity"
	"github.com/openmgmt/yangtools/schema"
	"github.com/openmgmt/yangtools/yangerrors"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a constraint violation that makes the data invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a condition worth addressing, such as deprecated usage
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
	// SeverityCritical indicates the validator could not complete
	SeverityCritical = severity.SeverityCritical
)

// defaultErrorCapacity is the initial capacity for error slices
const defaultErrorCapacity = 10

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of validating a data tree.
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Errors contains all validation errors
	Errors []ValidationError
	// Warnings contains all validation warnings
	Warnings []ValidationError
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// NodeCount is the number of data nodes visited
	NodeCount int
	// Deferred is the number of work items pushed onto the resolution
	// queue during this pass
	Deferred int
	// ValidateTime is the time taken for the tree walk
	ValidateTime time.Duration
}

// Validator validates instance data against its compiled schema. A
// Validator is cheap to construct and not safe for concurrent use; create
// one per goroutine.
type Validator struct {
	cfg *config
}

// New creates a Validator from the given options.
func New(opts ...Option) (*Validator, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Validator{cfg: cfg}, nil
}

// Mode returns the configured validation mode.
func (v *Validator) Mode() Mode { return v.cfg.mode }

// structuralSkipped reports whether mandatory-phase structural checks are
// skipped entirely in the current configuration.
func (v *Validator) structuralSkipped() bool {
	return v.cfg.trusted || v.cfg.mode == ModeNotifFilter
}

// ValidateTree validates the whole subtree rooted at root: for every node
// in document order it runs the context pass and then the content pass,
// accumulating violations rather than stopping at the first. Sibling and
// descendant validation continues past a failed node, matching what a
// caller reporting all problems at once wants.
func ValidateTree(root *data.Node, opts ...Option) (*ValidationResult, error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return v.ValidateTree(root)
}

// ValidateTree runs the per-node passes over the subtree rooted at root.
func (v *Validator) ValidateTree(root *data.Node) (*ValidationResult, error) {
	start := time.Now()
	result := &ValidationResult{
		Errors:   make([]ValidationError, 0, defaultErrorCapacity),
		Warnings: make([]ValidationError, 0, defaultErrorCapacity),
	}
	queued := 0
	if v.cfg.queue != nil {
		queued = v.cfg.queue.Len()
	}

	data.Walk(root, func(n *data.Node) data.Action {
		result.NodeCount++
		if n.Schema == nil {
			// Synthetic roots carry no schema and are not validated.
			return data.Continue
		}
		if err := v.ValidateContext(n); err != nil {
			result.addError(n, err)
			return data.SkipChildren
		}
		v.noteDeprecated(n, result)
		if err := v.ValidateContent(n); err != nil {
			result.addError(n, err)
		}
		return data.Continue
	})

	if v.cfg.queue != nil {
		result.Deferred = v.cfg.queue.Len() - queued
	}
	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0
	result.ValidateTime = time.Since(start)
	return result, nil
}

// noteDeprecated surfaces deprecated-definition usage as a warning when
// obsolete checking is on. Obsolete usage is an error and comes out of the
// content pass.
func (v *Validator) noteDeprecated(n *data.Node, result *ValidationResult) {
	if !v.cfg.checkObsolete || n.Schema.Status != schema.StatusDeprecated {
		return
	}
	result.Warnings = append(result.Warnings, ValidationError{
		Path:       n.Path(),
		Message:    "deprecated definition instantiated",
		Severity:   SeverityWarning,
		Node:       n.Schema.Name,
		SchemaPath: n.Schema.Path(),
	})
}

// addError converts a typed validation error into an issue.
func (r *ValidationResult) addError(n *data.Node, err error) {
	issue := ValidationError{
		Path:     n.Path(),
		Message:  err.Error(),
		Severity: SeverityError,
	}
	if n.Schema != nil {
		issue.Node = n.Schema.Name
		issue.SchemaPath = n.Schema.Path()
	}

	var serr *yangerrors.StructuralError
	var rerr *yangerrors.ResourceLimitError
	switch {
	case errors.As(err, &serr):
		if serr.Path != "" {
			issue.Path = serr.Path
		}
		issue.Constraint = serr.Constraint
		issue.Related = serr.Related
	case errors.As(err, &rerr):
		issue.Severity = SeverityCritical
	}
	r.Errors = append(r.Errors, issue)
}

// Package severity provides severity level constants for issues reported
// by the validator package and the CLI.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of a reported issue.
type Severity int

const (
	// SeverityError indicates a constraint violation that makes the
	// instance data invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a condition that does not invalidate the
	// data but should be addressed, such as use of a deprecated node.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing
	// choices. These are non-actionable notices useful for debugging.
	SeverityInfo

	// SeverityCritical indicates the validator itself could not complete,
	// such as a resource limit being hit while building a lookup table.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

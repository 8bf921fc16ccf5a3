// Package issues provides a unified issue type for problems found while
// validating instance data.
package issues

import (
	"fmt"

	"github.com/openmgmt/yangtools/internal/severity"
)

// Issue represents a single problem found during validation.
type Issue struct {
	// Path is the instance path of the offending data node
	// (e.g., "/mod:server/listen[name='a']")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// SchemaPath is the schema path of the violated definition (optional)
	SchemaPath string
	// Node is the schema node name the issue relates to (optional)
	Node string
	// Value is the problematic value (optional)
	Value any
	// Constraint reproduces the violated constraint expression, such as a
	// rebuilt unique argument (optional)
	Constraint string
	// Related is the instance path of a second involved node, such as the
	// other half of a duplicate pair (optional)
	Related string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Constraint != "" {
		result += fmt.Sprintf("\n    Constraint: %s", i.Constraint)
	}
	if i.Related != "" {
		result += fmt.Sprintf("\n    Related: %s", i.Related)
	}
	if i.SchemaPath != "" {
		result += fmt.Sprintf("\n    Schema: %s", i.SchemaPath)
	}
	return result
}

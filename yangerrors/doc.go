// Package yangerrors provides structured error types for yangtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of validation failures and react accordingly.
//
// # Error Categories
//
//   - StructuralError: key order, cardinality, duplicate, unique, and
//     choice/case violations
//   - PolicyError: feature gating, config-vs-state placement, obsolete
//     status, and input/output ordering violations
//   - ExtensionError: a schema extension's data validation callback rejected
//     the value
//   - ResourceLimitError: the validator itself could not complete, such as a
//     lookup table exceeding its size limit
//
// # Usage with errors.Is
//
//	err := v.ValidateContent(node)
//	if errors.Is(err, yangerrors.ErrNonUnique) {
//	    var serr *yangerrors.StructuralError
//	    errors.As(err, &serr)
//	    fmt.Println(serr.Constraint, serr.Related)
//	}
package yangerrors

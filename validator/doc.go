// Package validator checks instance data trees against their compiled
// schema.
//
// The validator decides whether a tree satisfies structural and semantic
// constraints: key presence and order, singleton cardinality, list and
// leaf-list duplicate detection, declared unique sets, choice/case
// exclusivity, feature-gated value validity, obsolete-status policy, and
// extension-defined data constraints. Constraints that need the whole tree
// (must and when expressions, leafref, instance-identifier, and pointer
// union resolution) are not evaluated here; they are pushed onto an
// [unres.Queue] for a later resolution pass.
//
// # Per-node API
//
// A tree builder calls [Validator.ValidateContext] and then
// [Validator.ValidateContent] on each node as it is attached. Both return
// a typed error from the yangerrors package on the first violation. The
// node's validity flags record which checks remain; each component clears
// the flag it owns exactly once per attempt.
//
// # Tree API
//
// [ValidateTree] walks a whole tree depth-first, runs both per-node passes,
// and accumulates every violation into a [ValidationResult] instead of
// stopping at the first, which is what the CLI and most callers want.
//
// # Modes
//
// Validation behavior varies with the operation being performed, expressed
// as a [Mode] plus the trusted and obsolete-check options. Edit, get,
// get-config, and notification-filter modes skip deferral of expression
// constraints; trusted mode skips structural checks while still clearing
// flags.
package validator

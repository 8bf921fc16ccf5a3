// Package data implements the mutable instance tree that the validator
// operates on.
//
// A tree is built by attaching [Node] values under a parent with
// [Node.Append]; each node references the compiled schema node it
// instantiates. Children are single-owner: a node owns its ordered child
// slice, and parent/sibling access goes back through that slice, so
// unlinking a node with [Node.Unlink] can never leave a dangling sibling
// reference.
//
// Every node carries a [FlagSet] recording which validation checks are
// still outstanding. The tree builder arms flags when it attaches a node;
// the validator clears them as checks complete. A node with an empty flag
// set is structurally validated (expression-level constraints may still be
// queued for the whole-tree resolution pass).
package data

// Package schema holds the compiled, read-only schema model that instance
// data is validated against.
//
// A compiled model is a graph of [Node] values rooted at a [Module]. The
// validator package only reads this model; building it (from YANG or YIN
// source) is the concern of a schema front end, and the parser package in
// this repository provides a structured-document loader for tests and the
// CLI.
//
// # Node graph
//
// Every modeling construct is a [Node] with a [Kind]: containers, lists,
// leafs, leaf-lists, choices, cases, uses, anydata, RPCs, actions,
// notifications, and RPC input/output blocks. Children are kept in declared
// order, which is significant for list keys and for RPC input/output
// ordering. Lists additionally carry their key sequence and any declared
// unique sets.
//
// # Types
//
// Leaf and leaf-list nodes reference a [Type]. Types form a derivation
// chain through Base (typedefs), and unions list their member types.
// Enumeration members, bit positions, and identities may each be gated by
// if-feature conditions, so their enablement is consulted at validation
// time rather than compile time.
//
// # Features and extensions
//
// Features toggle at runtime via [Feature.Enable] and [Feature.Disable];
// everything gated on a feature re-evaluates on each validation call.
// Extension instances attached to nodes or types may carry a data
// validation callback, invoked by the validator's extension hook.
package schema

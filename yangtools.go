// Package yangtools provides tools for validating YANG-modeled instance
// data against a compiled schema.
//
// The library consists of the following packages:
//
//   - schema: the compiled schema model the validator consumes
//   - data: the instance data tree, validity flags, and tree walker
//   - validator: per-node and whole-tree validation of instance data
//   - unres: the deferred-work queue for expression constraints
//   - yangerrors: the typed error taxonomy shared by all packages
//   - parser: loaders for schema-model and instance documents (YAML)
//   - generator: Go constant generation from a compiled schema
//
// # Quick Start
//
// Validate an instance document against a schema model:
//
//	import (
//	    "github.com/openmgmt/yangtools/parser"
//	    "github.com/openmgmt/yangtools/validator"
//	)
//
//	mod, err := parser.ParseSchema(parser.WithFilePath("model.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	root, err := parser.ParseData(mod, parser.WithFilePath("config.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := validator.ValidateTree(root)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Valid {
//	    fmt.Printf("found %d errors\n", result.ErrorCount)
//	}
//
// Validation distinguishes two per-node passes. The context pass checks
// conditions that depend only on the node and its schema: feature gating,
// state data admission for the configured mode, and deferral of expression
// constraints. The content pass checks conditions that depend on the
// node's children and siblings: key presence and order, cardinality,
// duplicate instances, declared unique sets, and the obsolete-status
// policy. Each content check is gated by a pending flag on the data node
// and cleared once it passes, so revalidating an already checked tree is
// cheap.
//
// Expression constraints (must, when, leafref targets, union branch and
// instance-identifier resolution) are not evaluated inline. They are
// pushed onto an unres.Queue during validation and handed back to the
// caller, who drains the queue with a resolver once the whole tree is in
// place.
//
// # Command-Line Interface
//
// The yangtools command wraps the library:
//
//	# Validate an instance document
//	yangtools validate -schema model.yaml config.yaml
//
//	# Summarize a schema model
//	yangtools parse model.yaml
//
//	# Generate Go constants for features and identities
//	yangtools generate -package ids -o ./ids model.yaml
//
//	# Run the MCP server over stdio
//	yangtools mcp
//
// Install the CLI:
//
//	go install github.com/openmgmt/yangtools/cmd/yangtools@latest
package yangtools

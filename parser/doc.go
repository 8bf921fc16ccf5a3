// Package parser loads compiled schema models and instance documents from
// YAML into the schema and data trees the validator consumes.
//
// Two entry points cover the two document kinds:
//
//   - ParseSchema reads a schema-model document: the module header, its
//     features and identities, and the data node tree with kinds, keys,
//     unique sets, types, and statuses.
//   - ParseData reads an instance document against a previously loaded
//     module and builds the data tree, resolving enumeration members,
//     bits, and identity references as it goes.
//
// Both take functional options for the input source:
//
//	mod, err := parser.ParseSchema(parser.WithFilePath("model.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	root, err := parser.ParseData(mod, parser.WithBytes(doc))
//
// The schema-model document is a structured description of an already
// compiled schema. Parsing YANG or YIN source text is out of scope for
// this package.
package parser

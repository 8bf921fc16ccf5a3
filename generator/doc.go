// Package generator emits Go source code from a compiled schema model:
// one constant per feature and per identity of a module, so application
// code can reference them without string literals.
//
// Example:
//
//	g := generator.New()
//	g.PackageName = "ids"
//	result, err := g.Generate(mod)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = result.WriteFiles("internal/ids")
//
// Generated output is passed through goimports-equivalent processing, so
// it is immediately compilable.
package generator

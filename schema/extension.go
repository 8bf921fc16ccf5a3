package schema

// ExtensionDef is one extension definition. A definition opts into data
// validation by providing a ValidateData callback; definitions without a
// callback are inert metadata as far as this module is concerned.
type ExtensionDef struct {
	// Name is the extension name, prefixed with its defining module when
	// printed.
	Name string
	// Module is the defining module.
	Module *Module
	// ValidateData, when non-nil, is invoked for every data node whose
	// schema (or type chain) carries an instance of this extension. The
	// value argument is the *data.Node under validation, passed untyped
	// to keep the schema model independent of the data tree package.
	ValidateData func(inst *ExtensionInstance, value any) error
}

// ExtensionInstance is one use of an extension, attached to a schema node,
// a type, a type restriction, an enum member, or a bit.
type ExtensionInstance struct {
	// Def is the extension definition.
	Def *ExtensionDef
	// Argument is the instance's argument string, if any.
	Argument string
}

// Validating reports whether the instance's definition carries a data
// validation callback.
func (e *ExtensionInstance) Validating() bool {
	return e.Def != nil && e.Def.ValidateData != nil
}

package schema

// YANGVersion is the yang-version statement of a module.
type YANGVersion int

const (
	// Version1 is YANG 1.0 (RFC 6020).
	Version1 YANGVersion = iota
	// Version1_1 is YANG 1.1 (RFC 7950).
	Version1_1
)

// String returns the yang-version argument.
func (v YANGVersion) String() string {
	if v == Version1_1 {
		return "1.1"
	}
	return "1"
}

// Module is one compiled module: the root of a schema node graph plus the
// module-scoped feature and identity tables.
type Module struct {
	// Name is the module name.
	Name string
	// Namespace is the module namespace URI.
	Namespace string
	// Prefix is the module's own prefix.
	Prefix string
	// Version is the declared yang-version.
	Version YANGVersion
	// Data holds the module's top-level data nodes in declared order.
	Data []*Node
	// Features indexes the module's feature definitions by name.
	Features map[string]*Feature
	// Identities indexes the module's identity definitions by name.
	Identities map[string]*Identity
}

// Feature returns the named feature or nil.
func (m *Module) Feature(name string) *Feature {
	return m.Features[name]
}

// Identity returns the named identity or nil.
func (m *Module) Identity(name string) *Identity {
	return m.Identities[name]
}

// Feature is one feature definition. Its state is toggled at runtime and
// consulted on every validation pass.
type Feature struct {
	// Name is the feature name.
	Name string
	// Module is the defining module.
	Module *Module

	enabled bool
}

// Enable turns the feature on.
func (f *Feature) Enable() { f.enabled = true }

// Disable turns the feature off.
func (f *Feature) Disable() { f.enabled = false }

// State reports whether the feature is currently enabled.
func (f *Feature) State() bool { return f.enabled }

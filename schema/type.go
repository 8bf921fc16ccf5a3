package schema

// TypeKind is the base built-in type of a leaf or leaf-list type.
type TypeKind int

const (
	// TypeString is the string built-in type.
	TypeString TypeKind = iota
	// TypeBool is the boolean built-in type.
	TypeBool
	// TypeInt covers the signed integer built-ins.
	TypeInt
	// TypeUint covers the unsigned integer built-ins.
	TypeUint
	// TypeDecimal64 is the decimal64 built-in type.
	TypeDecimal64
	// TypeBinary is the binary built-in type.
	TypeBinary
	// TypeEmpty is the empty built-in type.
	TypeEmpty
	// TypeEnum is an enumeration.
	TypeEnum
	// TypeBits is a bits type.
	TypeBits
	// TypeIdentityref is an identity reference.
	TypeIdentityref
	// TypeLeafref is a leafref; its value resolves to another node.
	TypeLeafref
	// TypeInstanceID is an instance-identifier.
	TypeInstanceID
	// TypeUnion is a union of member types.
	TypeUnion
)

// String returns the YANG name for the type kind.
func (k TypeKind) String() string {
	switch k {
	case TypeString:
		return "string"
	case TypeBool:
		return "boolean"
	case TypeInt:
		return "int64"
	case TypeUint:
		return "uint64"
	case TypeDecimal64:
		return "decimal64"
	case TypeBinary:
		return "binary"
	case TypeEmpty:
		return "empty"
	case TypeEnum:
		return "enumeration"
	case TypeBits:
		return "bits"
	case TypeIdentityref:
		return "identityref"
	case TypeLeafref:
		return "leafref"
	case TypeInstanceID:
		return "instance-identifier"
	case TypeUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Restriction is one length, pattern, or range restriction on a type.
type Restriction struct {
	// Arg is the restriction argument as written in the schema.
	Arg string
	// Extensions holds extension instances attached to the restriction.
	Extensions []*ExtensionInstance
}

// EnumValue is one member of an enumeration type.
type EnumValue struct {
	// Name is the enum member name.
	Name string
	// Value is the assigned enum value.
	Value int32
	// Status of the member.
	Status Status
	// Features gates the member's validity.
	Features []*Feature
	// Extensions attached to the member.
	Extensions []*ExtensionInstance
}

// Enabled reports whether every if-feature condition on the member holds.
func (e *EnumValue) Enabled() bool {
	for _, f := range e.Features {
		if !f.State() {
			return false
		}
	}
	return true
}

// BitValue is one position of a bits type.
type BitValue struct {
	// Name is the bit name.
	Name string
	// Position is the assigned bit position.
	Position uint32
	// Status of the bit.
	Status Status
	// Features gates the bit's validity.
	Features []*Feature
	// Extensions attached to the bit.
	Extensions []*ExtensionInstance
}

// Enabled reports whether every if-feature condition on the bit holds.
func (b *BitValue) Enabled() bool {
	for _, f := range b.Features {
		if !f.State() {
			return false
		}
	}
	return true
}

// Type describes a leaf or leaf-list type, including its derivation chain.
type Type struct {
	// Name is the type name; built-in name or typedef name.
	Name string
	// Kind is the resolved base built-in kind.
	Kind TypeKind
	// Base is the typedef this type derives from, nil for a direct use of
	// a built-in.
	Base *Type
	// Enums holds enumeration members for TypeEnum.
	Enums []*EnumValue
	// Bits holds bit positions for TypeBits.
	Bits []*BitValue
	// IdentityBase is the required base identity for TypeIdentityref.
	IdentityBase *Identity
	// LeafrefPath is the path argument for TypeLeafref.
	LeafrefPath string
	// Members holds union member types for TypeUnion.
	Members []*Type
	// Lengths, Patterns, and Ranges hold the type's restrictions.
	Lengths  []*Restriction
	Patterns []*Restriction
	Ranges   []*Restriction
	// Extensions attached to the type itself.
	Extensions []*ExtensionInstance
}

// HasPointerMember reports whether a union type (or any nested union
// member) includes a leafref or instance-identifier branch, which forces
// union resolution to be deferred to the whole-tree pass.
func (t *Type) HasPointerMember() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case TypeLeafref, TypeInstanceID:
		return true
	case TypeUnion:
		for _, m := range t.Members {
			if m.HasPointerMember() {
				return true
			}
		}
	}
	return false
}

// HasDataExtension reports whether the type or any ancestor in its
// derivation chain carries an extension with a data validation callback,
// on the type itself or on any of its restrictions or members.
func (t *Type) HasDataExtension() bool {
	for cur := t; cur != nil; cur = cur.Base {
		if cur.ownDataExtension() {
			return true
		}
	}
	return false
}

func (t *Type) ownDataExtension() bool {
	if hasValidating(t.Extensions) {
		return true
	}
	for _, r := range t.Lengths {
		if hasValidating(r.Extensions) {
			return true
		}
	}
	for _, r := range t.Patterns {
		if hasValidating(r.Extensions) {
			return true
		}
	}
	for _, r := range t.Ranges {
		if hasValidating(r.Extensions) {
			return true
		}
	}
	for _, e := range t.Enums {
		if hasValidating(e.Extensions) {
			return true
		}
	}
	for _, b := range t.Bits {
		if hasValidating(b.Extensions) {
			return true
		}
	}
	for _, m := range t.Members {
		if m.HasDataExtension() {
			return true
		}
	}
	return false
}

func hasValidating(exts []*ExtensionInstance) bool {
	for _, e := range exts {
		if e.Def != nil && e.Def.ValidateData != nil {
			return true
		}
	}
	return false
}

// Identity is one identity definition; identities derive from zero or one
// base identity.
type Identity struct {
	// Name is the identity name.
	Name string
	// Module is the defining module.
	Module *Module
	// Base is the parent identity, nil for a root identity.
	Base *Identity
	// Status of the identity.
	Status Status
	// Features gates the identity's validity.
	Features []*Feature
}

// Enabled reports whether every if-feature condition on the identity holds.
func (i *Identity) Enabled() bool {
	for _, f := range i.Features {
		if !f.State() {
			return false
		}
	}
	return true
}

// DerivedFrom reports whether i is base or transitively derives from base.
func (i *Identity) DerivedFrom(base *Identity) bool {
	for cur := i; cur != nil; cur = cur.Base {
		if cur == base {
			return true
		}
	}
	return false
}

package schema

import "slices"

// Kind identifies which modeling construct a schema node describes.
type Kind int

const (
	// KindContainer is a YANG container statement.
	KindContainer Kind = iota
	// KindList is a YANG list statement.
	KindList
	// KindLeaf is a YANG leaf statement.
	KindLeaf
	// KindLeafList is a YANG leaf-list statement.
	KindLeafList
	// KindChoice is a YANG choice statement.
	KindChoice
	// KindCase is a YANG case statement (explicit or implicit).
	KindCase
	// KindUses is a grouping expansion point; transparent for case resolution.
	KindUses
	// KindAnydata covers anydata and anyxml statements.
	KindAnydata
	// KindRPC is a top-level rpc statement.
	KindRPC
	// KindAction is an action statement nested in data.
	KindAction
	// KindNotification is a notification statement.
	KindNotification
	// KindInput is the input block of an rpc or action.
	KindInput
	// KindOutput is the output block of an rpc or action.
	KindOutput
)

// String returns the YANG keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindList:
		return "list"
	case KindLeaf:
		return "leaf"
	case KindLeafList:
		return "leaf-list"
	case KindChoice:
		return "choice"
	case KindCase:
		return "case"
	case KindUses:
		return "uses"
	case KindAnydata:
		return "anydata"
	case KindRPC:
		return "rpc"
	case KindAction:
		return "action"
	case KindNotification:
		return "notification"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Status is the YANG status of a definition.
type Status int

const (
	// StatusCurrent is the default status.
	StatusCurrent Status = iota
	// StatusDeprecated marks a definition as deprecated but still usable.
	StatusDeprecated
	// StatusObsolete marks a definition that must not be used.
	StatusObsolete
)

// String returns the YANG argument for the status.
func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	default:
		return "unknown"
	}
}

// TriState is a config statement value that may be true, false, or inherited.
type TriState int

const (
	// TSUnset means the config value is inherited from the parent.
	TSUnset TriState = iota
	// TSTrue is config true.
	TSTrue
	// TSFalse is config false.
	TSFalse
)

// Node is one compiled schema definition. Nodes are immutable once the
// model is built and are shared by every data tree instantiating them.
type Node struct {
	// Name is the node identifier within its module.
	Name string
	// Module is the defining module.
	Module *Module
	// Kind is the modeling construct this node describes.
	Kind Kind
	// Parent is the enclosing schema node, nil at module top level.
	Parent *Node
	// Children holds child definitions in declared order.
	Children []*Node
	// Config is the config statement value; effective value is resolved
	// through ancestors when unset.
	Config TriState
	// Status is current, deprecated, or obsolete.
	Status Status
	// Mandatory is the mandatory true statement on leafs, choices, and anydata.
	Mandatory bool
	// MinElements and MaxElements bound list and leaf-list cardinality.
	// MaxElements zero means unbounded.
	MinElements uint32
	MaxElements uint32
	// Keys holds the list's key leafs in declared key order. Empty for a
	// keyless (state) list.
	Keys []*Node
	// Uniques holds declared unique statements; each entry is one unique
	// set of descendant-relative schema node paths.
	Uniques [][]string
	// Features holds the if-feature conditions gating this node.
	Features []*Feature
	// Extensions holds extension instances attached to this node.
	Extensions []*ExtensionInstance
	// Type is the leaf or leaf-list type, nil for other kinds.
	Type *Type
	// Default is the leaf's default value. HasDefault distinguishes a
	// declared empty default from no default at all.
	Default    string
	HasDefault bool
	// HasWhen indicates a when condition that needs whole-tree evaluation.
	HasWhen bool
	// HasMust indicates one or more must conditions on this node.
	HasMust bool
}

// IsEnabled reports whether every if-feature condition on the node holds.
// Feature state is dynamic, so this is re-evaluated on every call.
func (n *Node) IsEnabled() bool {
	for _, f := range n.Features {
		if !f.State() {
			return false
		}
	}
	return true
}

// EffectiveConfig resolves the config value through the ancestor chain.
// Top-level data defaults to config true.
func (n *Node) EffectiveConfig() bool {
	for s := n; s != nil; s = s.Parent {
		switch s.Config {
		case TSTrue:
			return true
		case TSFalse:
			return false
		}
	}
	return true
}

// IsKey reports whether the node is a key leaf of its parent list.
func (n *Node) IsKey() bool {
	if n.Parent == nil || n.Parent.Kind != KindList {
		return false
	}
	return slices.Contains(n.Parent.Keys, n)
}

// ChildIndex returns the declared position of child among n's children,
// or -1 when child is not a direct child.
func (n *Node) ChildIndex(child *Node) int {
	return slices.Index(n.Children, child)
}

// DataParent returns the nearest ancestor that is instantiated in data,
// skipping choice, case, and uses nodes.
func (n *Node) DataParent() *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		switch p.Kind {
		case KindChoice, KindCase, KindUses:
			continue
		default:
			return p
		}
	}
	return nil
}

// CaseAncestor returns the nearest non-uses ancestor, which is the node
// consulted when resolving choice and case membership. Returns nil at the
// top of the tree.
func (n *Node) CaseAncestor() *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind != KindUses {
			return p
		}
	}
	return nil
}

// FindDescendant resolves a descendant-relative schema path (one name per
// step, as used by unique statements), descending through choice, case,
// and uses nodes transparently.
func (n *Node) FindDescendant(path []string) *Node {
	cur := n
	for _, step := range path {
		cur = cur.findDataChild(step)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func (n *Node) findDataChild(name string) *Node {
	for _, c := range n.Children {
		switch c.Kind {
		case KindChoice, KindCase, KindUses:
			if found := c.findDataChild(name); found != nil {
				return found
			}
		default:
			if c.Name == name {
				return c
			}
		}
	}
	return nil
}

// HasDataExtension reports whether the node, or its type chain for leaf
// kinds, carries at least one extension with a data validation callback.
func (n *Node) HasDataExtension() bool {
	for _, e := range n.Extensions {
		if e.Def != nil && e.Def.ValidateData != nil {
			return true
		}
	}
	if n.Type != nil {
		return n.Type.HasDataExtension()
	}
	return false
}

// Path returns the absolute schema path of the node, such as
// "/mod:container/list/leaf".
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	var segs []string
	for s := n; s != nil; s = s.Parent {
		segs = append(segs, s.Name)
	}
	slices.Reverse(segs)
	out := ""
	for i, s := range segs {
		if i == 0 && n.Module != nil {
			out += "/" + n.Module.Name + ":" + s
			continue
		}
		out += "/" + s
	}
	return out
}

package data

import (
	"slices"
	"strings"

	"github.com/openmgmt/yangtools/schema"
)

// Node is one instance of a schema node in a data tree.
//
// The Value field holds the canonical string representation for leaf and
// leaf-list kinds; the resolved variant fields (Enum, Bits, Identity,
// UnionBranch) are populated by the tree builder when the type calls for
// them and are what feature gating inspects.
type Node struct {
	// Schema is the compiled schema node this instance conforms to.
	Schema *schema.Node
	// Parent is the enclosing data node, nil for a root.
	Parent *Node

	children []*Node

	// Value is the canonical string value for leaf and leaf-list kinds.
	Value string
	// Enum is the resolved enumeration member for enumeration-typed values.
	Enum *schema.EnumValue
	// Bits holds the resolved set bits for bits-typed values.
	Bits []*schema.BitValue
	// Identity is the resolved identity for identityref-typed values.
	Identity *schema.Identity
	// UnionBranch is the matched member type for union-typed values, nil
	// until union resolution has run.
	UnionBranch *schema.Type

	// Flags records which validation checks are still outstanding.
	Flags FlagSet
}

// New creates a detached node for the given schema node with every check
// pending.
func New(sn *schema.Node) *Node {
	return &Node{Schema: sn, Flags: AllPending}
}

// NewLeaf creates a detached leaf or leaf-list node carrying a canonical
// string value.
func NewLeaf(sn *schema.Node, value string) *Node {
	n := New(sn)
	n.Value = value
	return n
}

// Children returns the node's children in document order. The returned
// slice is the node's own storage; callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// Append attaches child at the end of n's child list. The child must be
// detached.
func (n *Node) Append(child *Node) {
	child.Parent = n
	n.children = append(n.children, child)
}

// Insert attaches child at position i of n's child list.
func (n *Node) Insert(i int, child *Node) {
	child.Parent = n
	n.children = slices.Insert(n.children, i, child)
}

// Unlink removes n from its parent's child list. Detached subtrees are
// simply dropped; the garbage collector reclaims them.
func (n *Node) Unlink() {
	p := n.Parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.Parent = nil
}

// Index returns n's position among its parent's children, or -1 for a
// detached or root node.
func (n *Node) Index() int {
	if n.Parent == nil {
		return -1
	}
	return slices.Index(n.Parent.children, n)
}

// PrevSibling returns the preceding sibling or nil.
func (n *Node) PrevSibling() *Node {
	i := n.Index()
	if i <= 0 {
		return nil
	}
	return n.Parent.children[i-1]
}

// NextSibling returns the following sibling or nil.
func (n *Node) NextSibling() *Node {
	i := n.Index()
	if i < 0 || i+1 >= len(n.Parent.children) {
		return nil
	}
	return n.Parent.children[i+1]
}

// Siblings returns the full sibling list n belongs to, including n itself.
// For a root node it returns a one-element slice.
func (n *Node) Siblings() []*Node {
	if n.Parent == nil {
		return []*Node{n}
	}
	return n.Parent.children
}

// ChildBySchema returns the first child instantiating sn, or nil.
func (n *Node) ChildBySchema(sn *schema.Node) *Node {
	for _, c := range n.children {
		if c.Schema == sn {
			return c
		}
	}
	return nil
}

// FindDescendant resolves a descendant-relative path of schema names
// against the instance tree, taking the first matching instance at each
// step.
func (n *Node) FindDescendant(path []string) *Node {
	cur := n
	for _, step := range path {
		var next *Node
		for _, c := range cur.children {
			if c.Schema != nil && c.Schema.Name == step {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Path returns the node's instance path, with list instances qualified by
// their key predicates and leaf-list instances by their value, such as
// "/mod:srv/instance[name='a']/port".
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	var chain []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	slices.Reverse(chain)

	var b strings.Builder
	for i, cur := range chain {
		b.WriteByte('/')
		if i == 0 && cur.Schema != nil && cur.Schema.Module != nil {
			b.WriteString(cur.Schema.Module.Name)
			b.WriteByte(':')
		}
		if cur.Schema == nil {
			b.WriteString("?")
			continue
		}
		b.WriteString(cur.Schema.Name)
		switch cur.Schema.Kind {
		case schema.KindList:
			for _, key := range cur.Schema.Keys {
				if kn := cur.ChildBySchema(key); kn != nil {
					b.WriteByte('[')
					b.WriteString(key.Name)
					b.WriteString("='")
					b.WriteString(kn.Value)
					b.WriteString("']")
				}
			}
		case schema.KindLeafList:
			b.WriteString("[.='")
			b.WriteString(cur.Value)
			b.WriteString("']")
		}
	}
	return b.String()
}

// String returns a short description for diagnostics.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.Path()
}

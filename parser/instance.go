package parser

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/schema"
)

// ParseData loads an instance document and builds its data tree against
// mod. The returned root is a synthetic node without a schema holding the
// document's top-level instances; children appear in document order with
// every validity flag pending.
//
// Enumeration members, bits, and identity references are resolved while
// loading. Union branch selection is left to the expression resolver.
func ParseData(mod *schema.Module, opts ...Option) (*data.Node, error) {
	if mod == nil {
		return nil, fmt.Errorf("parser: module cannot be nil")
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	raw, err := cfg.readInput()
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parser: %s: invalid instance document: %w", cfg.source(), err)
	}

	root := &data.Node{}
	if len(doc.Content) == 0 {
		// An empty document yields an empty tree.
		return root, nil
	}
	b := &instanceBuilder{mod: mod, source: cfg.source()}
	if err := b.buildChildren(root, mod.Data, doc.Content[0]); err != nil {
		return nil, err
	}
	cfg.log().Debug("loaded instance document", "module", mod.Name, "nodes", countNodes(root))
	return root, nil
}

type instanceBuilder struct {
	mod    *schema.Module
	source string
}

func (b *instanceBuilder) errf(n *yaml.Node, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("parser: %s:%d:%d: %s", b.source, n.Line, n.Column, msg)
}

// buildChildren attaches one data node per mapping entry, in document
// order, resolving entry names against the schema children transparently
// through choice, case, and uses.
func (b *instanceBuilder) buildChildren(parent *data.Node, schemas []*schema.Node, mapping *yaml.Node) error {
	if mapping.Kind != yaml.MappingNode {
		return b.errf(mapping, "expected a mapping")
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valNode := mapping.Content[i], mapping.Content[i+1]
		name := stripPrefix(keyNode.Value)
		sn := resolveChildSchema(schemas, name)
		if sn == nil {
			return b.errf(keyNode, "unknown node %q", keyNode.Value)
		}
		if err := b.buildNode(parent, sn, valNode); err != nil {
			return err
		}
	}
	return nil
}

func (b *instanceBuilder) buildNode(parent *data.Node, sn *schema.Node, val *yaml.Node) error {
	switch sn.Kind {
	case schema.KindContainer:
		n := data.New(sn)
		parent.Append(n)
		return b.buildChildren(n, sn.Children, val)
	case schema.KindList:
		if val.Kind != yaml.SequenceNode {
			return b.errf(val, "list %q requires a sequence", sn.Name)
		}
		for _, entry := range val.Content {
			n := data.New(sn)
			parent.Append(n)
			if err := b.buildChildren(n, sn.Children, entry); err != nil {
				return err
			}
		}
		return nil
	case schema.KindLeaf:
		return b.buildLeaf(parent, sn, val)
	case schema.KindLeafList:
		if val.Kind != yaml.SequenceNode {
			return b.errf(val, "leaf-list %q requires a sequence", sn.Name)
		}
		for _, entry := range val.Content {
			if err := b.buildLeaf(parent, sn, entry); err != nil {
				return err
			}
		}
		return nil
	case schema.KindAnydata:
		// Anydata content is opaque to the validator; the subtree is
		// accepted without schema matching.
		parent.Append(data.New(sn))
		return nil
	default:
		return b.errf(val, "cannot instantiate %s node %q in an instance document", sn.Kind, sn.Name)
	}
}

func (b *instanceBuilder) buildLeaf(parent *data.Node, sn *schema.Node, val *yaml.Node) error {
	if val.Kind != yaml.ScalarNode {
		return b.errf(val, "%s %q requires a scalar value", sn.Kind, sn.Name)
	}
	n := data.NewLeaf(sn, val.Value)
	if err := b.resolveValue(n, sn.Type, val); err != nil {
		return err
	}
	parent.Append(n)
	return nil
}

// resolveValue binds the typed members a string value designates: the
// enumeration member, the set bits, or the referenced identity.
func (b *instanceBuilder) resolveValue(n *data.Node, t *schema.Type, val *yaml.Node) error {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case schema.TypeEnum:
		e := findEnum(t, n.Value)
		if e == nil {
			return b.errf(val, "%q is not a member of enumeration %q", n.Value, t.Name)
		}
		n.Enum = e
	case schema.TypeBits:
		for _, name := range strings.Fields(n.Value) {
			bit := findBit(t, name)
			if bit == nil {
				return b.errf(val, "%q is not a bit of %q", name, t.Name)
			}
			n.Bits = append(n.Bits, bit)
		}
	case schema.TypeIdentityref:
		id := b.mod.Identity(stripPrefix(n.Value))
		if id == nil {
			return b.errf(val, "unknown identity %q", n.Value)
		}
		if t.IdentityBase != nil && !id.DerivedFrom(t.IdentityBase) {
			return b.errf(val, "identity %q is not derived from %q", n.Value, t.IdentityBase.Name)
		}
		n.Identity = id
	}
	// Union branch selection is deferred to the resolver.
	return nil
}

// findEnum searches the type and its derivation chain for a member.
func findEnum(t *schema.Type, name string) *schema.EnumValue {
	for cur := t; cur != nil; cur = cur.Base {
		for _, e := range cur.Enums {
			if e.Name == name {
				return e
			}
		}
	}
	return nil
}

func findBit(t *schema.Type, name string) *schema.BitValue {
	for cur := t; cur != nil; cur = cur.Base {
		for _, b := range cur.Bits {
			if b.Name == name {
				return b
			}
		}
	}
	return nil
}

// resolveChildSchema finds the named instantiable schema node, descending
// transparently through choice, case, and uses.
func resolveChildSchema(schemas []*schema.Node, name string) *schema.Node {
	for _, sn := range schemas {
		switch sn.Kind {
		case schema.KindChoice, schema.KindCase, schema.KindUses:
			if found := resolveChildSchema(sn.Children, name); found != nil {
				return found
			}
		default:
			if sn.Name == name {
				return sn
			}
		}
	}
	return nil
}

// stripPrefix drops a leading module prefix from a qualified name.
func stripPrefix(name string) string {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func countNodes(root *data.Node) int {
	count := 0
	data.Walk(root, func(*data.Node) data.Action {
		count++
		return data.Continue
	})
	return count
}

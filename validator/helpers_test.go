package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/schema"
)

// testModule builds an empty YANG 1.1 module for schema construction.
func testModule() *schema.Module {
	return &schema.Module{
		Name:       "mod",
		Namespace:  "urn:test:mod",
		Prefix:     "mod",
		Version:    schema.Version1_1,
		Features:   make(map[string]*schema.Feature),
		Identities: make(map[string]*schema.Identity),
	}
}

// snode adds a schema node under parent (or at module top level when
// parent is nil).
func snode(mod *schema.Module, parent *schema.Node, name string, kind schema.Kind) *schema.Node {
	n := &schema.Node{Name: name, Module: mod, Kind: kind, Parent: parent}
	if parent != nil {
		parent.Children = append(parent.Children, n)
	} else {
		mod.Data = append(mod.Data, n)
	}
	return n
}

// feature defines and enables a feature in mod.
func feature(mod *schema.Module, name string) *schema.Feature {
	f := &schema.Feature{Name: name, Module: mod}
	f.Enable()
	mod.Features[name] = f
	return f
}

// attach creates a data node for sn under parent with all checks pending.
func attach(parent *data.Node, sn *schema.Node) *data.Node {
	n := data.New(sn)
	parent.Append(n)
	return n
}

// attachLeaf creates a leaf or leaf-list data node with a value.
func attachLeaf(parent *data.Node, sn *schema.Node, value string) *data.Node {
	n := data.NewLeaf(sn, value)
	parent.Append(n)
	return n
}

// mustValidator builds a Validator, failing the test on option errors.
func mustValidator(t *testing.T, opts ...Option) *Validator {
	t.Helper()
	v, err := New(opts...)
	require.NoError(t, err)
	return v
}

// listWithKeys builds a container holding a list with the given key leafs
// declared in order.
func listWithKeys(mod *schema.Module, keys ...string) (cont, list *schema.Node) {
	cont = snode(mod, nil, "cont", schema.KindContainer)
	list = snode(mod, cont, "l", schema.KindList)
	for _, k := range keys {
		key := snode(mod, list, k, schema.KindLeaf)
		key.Type = &schema.Type{Name: "string", Kind: schema.TypeString}
		list.Keys = append(list.Keys, key)
	}
	return cont, list
}

// listInstance attaches a list instance with key values in declared order.
func listInstance(parent *data.Node, list *schema.Node, keyVals ...string) *data.Node {
	inst := attach(parent, list)
	for i, val := range keyVals {
		attachLeaf(inst, list.Keys[i], val)
	}
	return inst
}

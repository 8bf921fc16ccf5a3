package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmgmt/yangtools/schema"
)

// buildSchema returns a small interfaces model: container interfaces
// holding list interface keyed by name, with an mtu leaf and a
// search-domain leaf-list.
func buildSchema() (*schema.Module, *schema.Node, *schema.Node) {
	mod := &schema.Module{Name: "net", Prefix: "net", Version: schema.Version1_1}
	top := &schema.Node{Name: "interfaces", Module: mod, Kind: schema.KindContainer}
	mod.Data = []*schema.Node{top}

	list := &schema.Node{Name: "interface", Module: mod, Kind: schema.KindList, Parent: top}
	name := &schema.Node{Name: "name", Module: mod, Kind: schema.KindLeaf, Parent: list}
	mtu := &schema.Node{Name: "mtu", Module: mod, Kind: schema.KindLeaf, Parent: list}
	list.Children = []*schema.Node{name, mtu}
	list.Keys = []*schema.Node{name}

	domains := &schema.Node{Name: "search-domain", Module: mod, Kind: schema.KindLeafList, Parent: top}
	top.Children = []*schema.Node{list, domains}
	return mod, top, list
}

func TestNewStartsAllPending(t *testing.T) {
	_, top, _ := buildSchema()
	n := New(top)

	assert.Equal(t, AllPending, n.Flags)
	assert.Nil(t, n.Parent)
	assert.Empty(t, n.Children())
}

func TestNewLeafCarriesValue(t *testing.T) {
	_, top, _ := buildSchema()
	domains := top.Children[1]
	n := NewLeaf(domains, "example.net")

	assert.Equal(t, "example.net", n.Value)
	assert.Equal(t, AllPending, n.Flags)
}

func TestAppendInsertUnlink(t *testing.T) {
	_, top, list := buildSchema()
	root := New(top)
	a := New(list)
	c := New(list)
	root.Append(a)
	root.Append(c)

	b := New(list)
	root.Insert(1, b)

	require.Equal(t, []*Node{a, b, c}, root.Children())
	assert.Equal(t, root, b.Parent)
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, a, b.PrevSibling())
	assert.Equal(t, c, b.NextSibling())
	assert.Nil(t, a.PrevSibling())
	assert.Nil(t, c.NextSibling())

	b.Unlink()
	assert.Equal(t, []*Node{a, c}, root.Children())
	assert.Nil(t, b.Parent)
	assert.Equal(t, -1, b.Index())

	// Unlinking a detached node is a no-op.
	b.Unlink()
	assert.Nil(t, b.Parent)
}

func TestSiblings(t *testing.T) {
	_, top, list := buildSchema()
	root := New(top)
	a := New(list)
	b := New(list)
	root.Append(a)
	root.Append(b)

	assert.Equal(t, []*Node{a, b}, a.Siblings())
	assert.Equal(t, []*Node{root}, root.Siblings(), "a root is its own sibling list")
}

func TestChildBySchema(t *testing.T) {
	_, top, list := buildSchema()
	nameSchema := list.Children[0]
	mtuSchema := list.Children[1]

	inst := New(list)
	inst.Append(NewLeaf(nameSchema, "eth0"))

	require.NotNil(t, inst.ChildBySchema(nameSchema))
	assert.Equal(t, "eth0", inst.ChildBySchema(nameSchema).Value)
	assert.Nil(t, inst.ChildBySchema(mtuSchema))
	_ = top
}

func TestFindDescendant(t *testing.T) {
	_, top, list := buildSchema()
	nameSchema := list.Children[0]

	root := New(top)
	inst := New(list)
	inst.Append(NewLeaf(nameSchema, "eth0"))
	root.Append(inst)

	got := root.FindDescendant([]string{"interface", "name"})
	require.NotNil(t, got)
	assert.Equal(t, "eth0", got.Value)
	assert.Nil(t, root.FindDescendant([]string{"interface", "mtu"}))
	assert.Equal(t, root, root.FindDescendant(nil))
}

func TestPath(t *testing.T) {
	_, top, list := buildSchema()
	nameSchema := list.Children[0]
	mtuSchema := list.Children[1]
	domainsSchema := top.Children[1]

	root := New(top)
	inst := New(list)
	inst.Append(NewLeaf(nameSchema, "eth0"))
	mtu := NewLeaf(mtuSchema, "1500")
	inst.Append(mtu)
	root.Append(inst)
	dom := NewLeaf(domainsSchema, "example.net")
	root.Append(dom)

	assert.Equal(t, "/net:interfaces/interface[name='eth0']/mtu", mtu.Path())
	assert.Equal(t, "/net:interfaces/search-domain[.='example.net']", dom.Path())
	assert.Equal(t, "", (*Node)(nil).Path())
	assert.Equal(t, "<nil>", (*Node)(nil).String())
	assert.Equal(t, mtu.Path(), mtu.String())
}

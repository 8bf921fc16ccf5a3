package validator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/schema"
	"github.com/openmgmt/yangtools/yangerrors"
)

func leafListSchema(mod *schema.Module, config schema.TriState) (cont, ll *schema.Node) {
	cont = snode(mod, nil, "cont", schema.KindContainer)
	ll = snode(mod, cont, "ll", schema.KindLeafList)
	ll.Config = config
	ll.Type = &schema.Type{Name: "string", Kind: schema.TypeString}
	return cont, ll
}

func TestLeafListDuplicateSmallSet(t *testing.T) {
	mod := testModule()
	cont, ll := leafListSchema(mod, schema.TSTrue)

	root := data.New(cont)
	attachLeaf(root, ll, "a")
	attachLeaf(root, ll, "b")
	third := attachLeaf(root, ll, "a")

	v := mustValidator(t)
	err := v.ValidateContent(third)
	require.Error(t, err)
	assert.ErrorIs(t, err, yangerrors.ErrDuplicateInstance)

	var serr *yangerrors.StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "ll", serr.SchemaName)
	assert.Contains(t, serr.Path, "[.='a']")
}

func TestLeafListStateDuplicatesAllowedIn11(t *testing.T) {
	mod := testModule() // version 1.1
	cont, ll := leafListSchema(mod, schema.TSFalse)

	root := data.New(cont)
	attachLeaf(root, ll, "a")
	attachLeaf(root, ll, "b")
	n := attachLeaf(root, ll, "a")

	v := mustValidator(t)
	assert.NoError(t, v.ValidateContent(n))

	// Every sibling's dup flag is cleared even when the comparison is
	// skipped.
	for _, sib := range root.Children() {
		assert.False(t, sib.Flags.Has(data.FlagDup))
	}
}

func TestLeafListStateDuplicatesRejectedIn10(t *testing.T) {
	mod := testModule()
	mod.Version = schema.Version1
	cont, ll := leafListSchema(mod, schema.TSFalse)

	root := data.New(cont)
	attachLeaf(root, ll, "a")
	n := attachLeaf(root, ll, "a")

	v := mustValidator(t)
	assert.ErrorIs(t, v.ValidateContent(n), yangerrors.ErrDuplicateInstance)
}

func TestListDuplicatePairwisePath(t *testing.T) {
	mod := testModule()
	cont, list := listWithKeys(mod, "k")

	root := data.New(cont)
	listInstance(root, list, "17")
	inst := listInstance(root, list, "17")

	v := mustValidator(t)
	assert.ErrorIs(t, v.ValidateContent(inst), yangerrors.ErrDuplicateInstance)
}

func TestListDuplicateHashedPath(t *testing.T) {
	const n = 50
	mod := testModule()
	cont, list := listWithKeys(mod, "k")

	root := data.New(cont)
	var last *data.Node
	for i := 1; i <= n; i++ {
		last = listInstance(root, list, fmt.Sprintf("%d", i))
	}

	v := mustValidator(t)
	require.NoError(t, v.ValidateContent(last), "distinct keys 1..%d must validate", n)

	// Re-arm and inject a duplicate of key 17.
	dup := listInstance(root, list, "17")
	err := v.ValidateContent(dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, yangerrors.ErrDuplicateInstance)

	var serr *yangerrors.StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Path, "[k='17']")
	assert.Contains(t, serr.Related, "[k='17']")
}

func TestListMultiKeyDuplicate(t *testing.T) {
	mod := testModule()
	cont, list := listWithKeys(mod, "k1", "k2")

	root := data.New(cont)
	listInstance(root, list, "a", "b")
	listInstance(root, list, "a", "c")
	inst := listInstance(root, list, "a", "b")

	v := mustValidator(t)
	assert.ErrorIs(t, v.ValidateContent(inst), yangerrors.ErrDuplicateInstance)
}

func TestKeylessListExempt(t *testing.T) {
	mod := testModule()
	cont := snode(mod, nil, "cont", schema.KindContainer)
	list := snode(mod, cont, "state-list", schema.KindList)
	list.Config = schema.TSFalse

	root := data.New(cont)
	attach(root, list)
	inst := attach(root, list)

	v := mustValidator(t)
	assert.NoError(t, v.ValidateContent(inst))
	assert.False(t, inst.Flags.Has(data.FlagDup))
}

func TestDuplicateCheckRunsOncePerSiblingSet(t *testing.T) {
	mod := testModule()
	cont, ll := leafListSchema(mod, schema.TSTrue)

	root := data.New(cont)
	a := attachLeaf(root, ll, "a")
	b := attachLeaf(root, ll, "b")

	v := mustValidator(t)
	require.NoError(t, v.ValidateContent(a))
	assert.False(t, b.Flags.Has(data.FlagDup), "one attempt clears the whole set")

	// Second call sees no pending flag and does not re-run the check.
	require.NoError(t, v.ValidateContent(b))
}

func TestDuplicateSkippedUnderTrusted(t *testing.T) {
	mod := testModule()
	cont, ll := leafListSchema(mod, schema.TSTrue)

	root := data.New(cont)
	attachLeaf(root, ll, "a")
	n := attachLeaf(root, ll, "a")

	v := mustValidator(t, WithTrusted(true))
	assert.NoError(t, v.ValidateContent(n))
	assert.False(t, n.Flags.Has(data.FlagDup))
}

package validator

import (
	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/internal/dupset"
	"github.com/openmgmt/yangtools/schema"
	"github.com/openmgmt/yangtools/yangerrors"
)

// checkDuplicates detects duplicate instances among the siblings of n that
// share its list or leaf-list schema node. Every visited sibling's dup
// flag is cleared unconditionally: the check, once attempted, is not
// retried for the set.
func (v *Validator) checkDuplicates(n *data.Node) error {
	sn := n.Schema
	insts := instancesOf(sn, n.Siblings())
	for _, inst := range insts {
		inst.Flags.Clear(data.FlagDup)
	}

	switch sn.Kind {
	case schema.KindLeafList:
		// YANG 1.1 permits duplicate values in state leaf-lists.
		if !sn.EffectiveConfig() && sn.Module != nil && sn.Module.Version >= schema.Version1_1 {
			return nil
		}
	case schema.KindList:
		// A keyless list has no instance identity to compare.
		if len(sn.Keys) == 0 {
			return nil
		}
	}

	key := func(i int) (string, bool) {
		inst := insts[i]
		if sn.Kind == schema.KindLeafList {
			return dupset.Key(inst.Value), true
		}
		parts := make([]string, 0, len(sn.Keys))
		for _, k := range sn.Keys {
			kn := inst.ChildBySchema(k)
			if kn == nil {
				// Key presence is the key checker's concern; an instance
				// without it cannot be compared.
				return "", false
			}
			parts = append(parts, kn.Value)
		}
		return dupset.Key(parts...), true
	}

	first, second, found, err := dupset.Find(len(insts), key)
	if err != nil {
		return &yangerrors.ResourceLimitError{
			ResourceType: "sibling_table",
			Actual:       int64(len(insts)),
			Message:      "cannot build duplicate-detection table for " + sn.Name,
		}
	}
	if found {
		return &yangerrors.StructuralError{
			Code:       yangerrors.CodeDuplicateInstance,
			Path:       insts[second].Path(),
			SchemaName: sn.Name,
			Related:    insts[first].Path(),
		}
	}
	return nil
}

// instancesOf filters siblings down to the instances of sn, preserving
// document order.
func instancesOf(sn *schema.Node, siblings []*data.Node) []*data.Node {
	var insts []*data.Node
	for _, sib := range siblings {
		if sib.Schema == sn {
			insts = append(insts, sib)
		}
	}
	return insts
}

// anyDupPending reports whether any instance of sn among siblings still
// awaits its duplicate check.
func anyDupPending(sn *schema.Node, siblings []*data.Node) bool {
	for _, sib := range siblings {
		if sib.Schema == sn && sib.Flags.Has(data.FlagDup) {
			return true
		}
	}
	return false
}

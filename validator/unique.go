package validator

import (
	"strings"

	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/internal/dupset"
	"github.com/openmgmt/yangtools/schema"
	"github.com/openmgmt/yangtools/yangerrors"
)

// checkUnique verifies every unique statement declared on n's list schema
// across the sibling instances. The unique flag is cleared on every
// instance once the check has been attempted, successful or not; under
// trusted configuration the flags are cleared without checking.
func (v *Validator) checkUnique(n *data.Node) error {
	sn := n.Schema
	insts := instancesOf(sn, n.Siblings())
	for _, inst := range insts {
		inst.Flags.Clear(data.FlagUnique)
	}
	if v.cfg.trusted || len(sn.Uniques) == 0 {
		return nil
	}

	for _, uniq := range sn.Uniques {
		paths := make([][]string, len(uniq))
		for i, p := range uniq {
			paths[i] = strings.Split(p, "/")
		}

		// The equality rule is bound to this unique set: instances match
		// only when every designated leaf resolves to an equal canonical
		// value on both sides. An instance missing a value with no schema
		// default is inconclusive and excluded from the comparison.
		key := func(i int) (string, bool) {
			inst := insts[i]
			parts := make([]string, 0, len(paths))
			for _, steps := range paths {
				val, ok := resolveUniqueLeaf(inst, steps, sn)
				if !ok {
					return "", false
				}
				parts = append(parts, val)
			}
			return dupset.Key(parts...), true
		}

		first, second, found, err := dupset.Find(len(insts), key)
		if err != nil {
			return &yangerrors.ResourceLimitError{
				ResourceType: "sibling_table",
				Actual:       int64(len(insts)),
				Message:      "cannot build unique-check table for " + sn.Name,
			}
		}
		if found {
			return &yangerrors.StructuralError{
				Code:       yangerrors.CodeNonUnique,
				Path:       insts[second].Path(),
				SchemaName: sn.Name,
				Related:    insts[first].Path(),
				Constraint: uniqueExpression(uniq),
			}
		}
	}
	return nil
}

// resolveUniqueLeaf resolves one designated leaf of a unique set against a
// list instance: the value from the instance's descendant tree, falling
// back to the leaf's schema-declared default.
func resolveUniqueLeaf(inst *data.Node, steps []string, list *schema.Node) (string, bool) {
	if dn := inst.FindDescendant(steps); dn != nil {
		return dn.Value, true
	}
	if dsn := list.FindDescendant(steps); dsn != nil && dsn.HasDefault {
		return dsn.Default, true
	}
	return "", false
}

// uniqueExpression reproduces the unique statement's argument: each leaf's
// data-relative path, joined with single spaces.
func uniqueExpression(uniq []string) string {
	return strings.Join(uniq, " ")
}

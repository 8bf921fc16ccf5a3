package validator

import (
	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/schema"
	"github.com/openmgmt/yangtools/yangerrors"
)

// CaseMode selects how a conflicting case sibling is handled.
type CaseMode int

const (
	// CaseReport fails on the first conflicting sibling without touching
	// the tree.
	CaseReport CaseMode = iota
	// CaseAutodelete unlinks conflicting siblings, failing only when the
	// node that would be removed is the one under validation.
	CaseAutodelete
)

// String returns the case mode name.
func (m CaseMode) String() string {
	switch m {
	case CaseReport:
		return "report"
	case CaseAutodelete:
		return "autodelete"
	default:
		return "unknown"
	}
}

// EnforceCaseExclusivity ensures no sibling of node belongs to a different
// case of the same choice, walking outward through nested choices.
//
// The node may be given as data (node non-nil) or, when no data node
// exists yet, as a bare schema node via sn. first is the first sibling of
// the parent's child list; underValidation, in autodelete mode, is the
// node whose removal must be reported instead of performed.
func (v *Validator) EnforceCaseExclusivity(node *data.Node, sn *schema.Node, first *data.Node, mode CaseMode, underValidation *data.Node) error {
	if sn == nil {
		if node == nil {
			return nil
		}
		sn = node.Schema
	}
	if first == nil {
		return nil
	}

	// Autodelete unlinks siblings mid-scan, so iterate over a snapshot of
	// the child list, the way data.Walk does.
	sibs := first.Siblings()
	snap := make([]*data.Node, len(sibs))
	copy(snap, sibs)
	parent := first.Parent

	// The original scan restarts one level up when the governing choice
	// itself sits inside another case; expressed here as an explicit loop.
	for anc := sn.CaseAncestor(); anc != nil; anc = anc.CaseAncestor() {
		choice := anc
		if choice.Kind == schema.KindCase {
			choice = choice.CaseAncestor()
		}
		if choice == nil || choice.Kind != schema.KindChoice {
			return nil
		}

		ours := caseMember(sn, choice)
		for _, sib := range snap {
			if sib == node || sib.Parent != parent || sib.Schema == nil {
				continue
			}
			member := caseMember(sib.Schema, choice)
			if member == nil || member == ours {
				continue
			}
			if mode == CaseAutodelete {
				if sib == underValidation {
					return caseConflictError(node, sn, sib, choice)
				}
				sib.Unlink()
				continue
			}
			return caseConflictError(node, sn, sib, choice)
		}

		anc = choice
	}
	return nil
}

// caseMember returns the ancestor-or-self of sn sitting directly under
// choice: an explicit case node, or a bare child forming an implicit case.
// Returns nil when sn does not live under choice.
func caseMember(sn, choice *schema.Node) *schema.Node {
	cur := sn
	for cur != nil {
		anc := cur.CaseAncestor()
		if anc == choice {
			return cur
		}
		if anc == nil || (anc.Kind != schema.KindChoice && anc.Kind != schema.KindCase) {
			return nil
		}
		cur = anc
	}
	return nil
}

func caseConflictError(node *data.Node, sn *schema.Node, conflict *data.Node, choice *schema.Node) error {
	path := conflict.Path()
	related := ""
	if node != nil {
		path = node.Path()
		related = conflict.Path()
	}
	return &yangerrors.StructuralError{
		Code:       yangerrors.CodeMultipleCases,
		Path:       path,
		SchemaName: choice.Name,
		Related:    related,
		Message:    "data for both " + memberName(sn, choice) + " and " + memberName(conflict.Schema, choice),
	}
}

func memberName(sn, choice *schema.Node) string {
	if m := caseMember(sn, choice); m != nil {
		return "case " + m.Name
	}
	return "case " + sn.Name
}

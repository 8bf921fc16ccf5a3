package validator

import (
	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/schema"
	"github.com/openmgmt/yangtools/unres"
	"github.com/openmgmt/yangtools/yangerrors"
)

// ValidateContent performs the per-node checks that depend on the node's
// children, siblings, and validity flags, clearing each flag as its check
// completes and deferring must conditions to the resolution queue. The
// first failure aborts this node's validation; flags already cleared stay
// cleared.
func (v *Validator) ValidateContent(n *data.Node) error {
	sn := n.Schema

	if n.Flags.Has(data.FlagMandatory) {
		if v.structuralSkipped() {
			n.Flags.Clear(data.FlagMandatory)
		} else {
			if err := v.checkMandatory(n); err != nil {
				return err
			}
			n.Flags.Clear(data.FlagMandatory)
		}
	}

	if sn.Kind == schema.KindList || sn.Kind == schema.KindLeafList {
		if anyDupPending(sn, n.Siblings()) {
			if v.cfg.trusted || v.cfg.mode.replyMode() {
				for _, inst := range instancesOf(sn, n.Siblings()) {
					inst.Flags.Clear(data.FlagDup)
				}
			} else if err := v.checkDuplicates(n); err != nil {
				return err
			}
		}
	} else if n.Flags.Has(data.FlagDup) {
		n.Flags.Clear(data.FlagDup)
	}

	if n.Flags.Has(data.FlagUnique) {
		if sn.Kind == schema.KindList {
			if err := v.checkUnique(n); err != nil {
				return err
			}
		} else {
			n.Flags.Clear(data.FlagUnique)
		}
	}

	// Feature state is dynamic, so resolved enum members, bits, and
	// identities are re-gated on every call regardless of flags.
	if err := checkValueFeatures(n); err != nil {
		return err
	}

	v.deferMust(n)
	return nil
}

// checkMandatory is the flag-gated structural phase: key order, singleton
// cardinality, obsolete policy, and the extension hook, in that order.
func (v *Validator) checkMandatory(n *data.Node) error {
	sn := n.Schema

	if sn.Kind == schema.KindList && !v.cfg.mode.replyMode() {
		if err := checkKeyOrder(n); err != nil {
			return err
		}
	}

	switch sn.Kind {
	case schema.KindContainer, schema.KindLeaf, schema.KindAnydata:
		for _, sib := range n.Siblings() {
			if sib != n && sib.Schema == sn {
				return &yangerrors.StructuralError{
					Code:       yangerrors.CodeTooManyInstances,
					Path:       sib.Path(),
					SchemaName: sn.Name,
					Related:    n.Path(),
				}
			}
		}
	}

	if v.cfg.checkObsolete {
		if err := checkObsolete(n); err != nil {
			return err
		}
	}

	if sn.HasDataExtension() {
		if err := v.runExtensions(n); err != nil {
			return err
		}
	}
	return nil
}

// checkObsolete enforces the obsolete-status policy: the node's schema and
// every non-instantiable ancestor up to the data parent must not be
// obsolete, and an identity-typed value must not reference an obsolete
// identity from a non-obsolete context.
func checkObsolete(n *data.Node) error {
	sn := n.Schema
	for s := sn; s != nil; s = s.Parent {
		// Instantiable ancestors were checked when they were validated.
		if s != sn && s.Kind != schema.KindChoice && s.Kind != schema.KindCase && s.Kind != schema.KindUses {
			break
		}
		if s.Status == schema.StatusObsolete {
			return &yangerrors.PolicyError{
				Code:       yangerrors.CodeObsolete,
				Path:       n.Path(),
				SchemaName: s.Name,
			}
		}
	}

	if n.Identity != nil && n.Identity.Status == schema.StatusObsolete && sn.Status != schema.StatusObsolete {
		return &yangerrors.PolicyError{
			Code:       yangerrors.CodeObsolete,
			Path:       n.Path(),
			SchemaName: sn.Name,
			Value:      n.Identity.Name,
			Message:    "references obsolete identity",
		}
	}
	return nil
}

// checkValueFeatures re-checks if-feature gating of the value's resolved
// members: the enumeration member, every populated bit, and the referenced
// identity.
func checkValueFeatures(n *data.Node) error {
	sn := n.Schema
	if sn.Kind != schema.KindLeaf && sn.Kind != schema.KindLeafList {
		return nil
	}

	if n.Enum != nil && !n.Enum.Enabled() {
		return &yangerrors.PolicyError{
			Code:       yangerrors.CodeDisabledValue,
			Path:       n.Path(),
			SchemaName: sn.Name,
			Value:      n.Enum.Name,
			Feature:    disabledFeature(n.Enum.Features),
		}
	}
	for _, bit := range n.Bits {
		if !bit.Enabled() {
			return &yangerrors.PolicyError{
				Code:       yangerrors.CodeDisabledValue,
				Path:       n.Path(),
				SchemaName: sn.Name,
				Value:      bit.Name,
				Feature:    disabledFeature(bit.Features),
			}
		}
	}
	if n.Identity != nil && !n.Identity.Enabled() {
		return &yangerrors.PolicyError{
			Code:       yangerrors.CodeDisabledValue,
			Path:       n.Path(),
			SchemaName: sn.Name,
			Value:      n.Identity.Name,
			Feature:    disabledFeature(n.Identity.Features),
		}
	}
	return nil
}

// deferMust queues the node's must conditions, and those of an enclosing
// RPC input or output block, for the whole-tree pass.
func (v *Validator) deferMust(n *data.Node) {
	if v.cfg.queue == nil || v.cfg.trusted || v.cfg.mode.skipsDeferral() {
		return
	}
	if n.Schema.HasMust {
		v.cfg.queue.Enqueue(n, unres.KindMust)
	}
	for s := n.Schema.Parent; s != nil; s = s.Parent {
		if (s.Kind == schema.KindInput || s.Kind == schema.KindOutput) && s.HasMust {
			v.cfg.queue.Enqueue(n, unres.KindMustInOut)
			break
		}
	}
}

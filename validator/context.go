package validator

import (
	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/schema"
	"github.com/openmgmt/yangtools/unres"
	"github.com/openmgmt/yangtools/yangerrors"
)

// ValidateContext performs the per-node contextual checks that are
// independent of siblings: feature enablement, expression-constraint
// deferral, config-vs-state placement, and RPC body ordering. It mutates
// nothing beyond the node's leafref flag and the deferred-work queue.
func (v *Validator) ValidateContext(n *data.Node) error {
	sn := n.Schema

	if !sn.IsEnabled() {
		return &yangerrors.PolicyError{
			Code:       yangerrors.CodeDisabledFeature,
			Path:       n.Path(),
			SchemaName: sn.Name,
			Feature:    disabledFeature(sn.Features),
		}
	}

	v.deferExpressions(n)

	if v.cfg.mode.forbidsStateData() && !sn.EffectiveConfig() {
		return &yangerrors.PolicyError{
			Code:       yangerrors.CodeStatusInConfig,
			Path:       n.Path(),
			SchemaName: sn.Name,
			Message:    "config false data not allowed in " + v.cfg.mode.String() + " mode",
		}
	}

	if err := v.checkOperationOrder(n); err != nil {
		return err
	}
	return nil
}

// deferExpressions queues the node's expression-dependent constraints for
// the whole-tree pass. Modes that only look at tree shape skip deferral,
// as does a node outside any RPC/notification subtree while an operation
// mode is active.
func (v *Validator) deferExpressions(n *data.Node) {
	if v.cfg.queue == nil || v.cfg.mode.skipsDeferral() {
		return
	}
	if v.cfg.mode.opMode() && !inOperationSubtree(n.Schema) {
		return
	}

	sn := n.Schema
	if t := sn.Type; t != nil && (sn.Kind == schema.KindLeaf || sn.Kind == schema.KindLeafList) {
		switch t.Kind {
		case schema.TypeUnion:
			if t.HasPointerMember() {
				v.cfg.queue.Enqueue(n, unres.KindUnionBranch)
			}
		case schema.TypeLeafref:
			n.Flags.Set(data.FlagLeafref)
			v.cfg.queue.Enqueue(n, unres.KindLeafref)
		case schema.TypeInstanceID:
			v.cfg.queue.Enqueue(n, unres.KindInstanceID)
		}
	}
	if sn.HasWhen {
		v.cfg.queue.Enqueue(n, unres.KindWhen)
	}
}

// checkOperationOrder enforces schema-declared child order for RPC and
// RPC-reply bodies: a node still awaiting its mandatory check must not
// appear after a sibling declared later in the schema.
func (v *Validator) checkOperationOrder(n *data.Node) error {
	if v.cfg.mode != ModeRPC && v.cfg.mode != ModeRPCReply {
		return nil
	}
	if v.cfg.trusted || !n.Flags.Has(data.FlagMandatory) {
		return nil
	}
	prev := n.PrevSibling()
	if prev == nil || prev.Schema == nil {
		return nil
	}

	parent := n.Schema.DataParent()
	if parent == nil || prev.Schema.DataParent() != parent {
		return nil
	}
	if declaredOrder(parent, prev.Schema) > declaredOrder(parent, n.Schema) {
		return &yangerrors.PolicyError{
			Code:       yangerrors.CodeOutOfOrder,
			Path:       n.Path(),
			SchemaName: n.Schema.Name,
			Message:    "must precede " + prev.Schema.Name + " in " + v.cfg.mode.String() + " body",
		}
	}
	return nil
}

// inOperationSubtree reports whether sn sits inside an RPC, action, or
// notification definition.
func inOperationSubtree(sn *schema.Node) bool {
	for s := sn; s != nil; s = s.Parent {
		switch s.Kind {
		case schema.KindRPC, schema.KindAction, schema.KindNotification,
			schema.KindInput, schema.KindOutput:
			return true
		}
	}
	return false
}

// declaredOrder returns the position of sn in parent's declared child
// order, expanding choice, case, and uses nodes in place. Returns -1 when
// sn is not found under parent.
func declaredOrder(parent, sn *schema.Node) int {
	pos := 0
	found := -1
	var walk func(p *schema.Node) bool
	walk = func(p *schema.Node) bool {
		for _, c := range p.Children {
			switch c.Kind {
			case schema.KindChoice, schema.KindCase, schema.KindUses:
				if walk(c) {
					return true
				}
			default:
				if c == sn {
					found = pos
					return true
				}
				pos++
			}
		}
		return false
	}
	walk(parent)
	return found
}

// disabledFeature names the first disabled feature in a gate list.
func disabledFeature(features []*schema.Feature) string {
	for _, f := range features {
		if !f.State() {
			return f.Name
		}
	}
	return ""
}

package validator

import (
	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/schema"
	"github.com/openmgmt/yangtools/yangerrors"
)

// runExtensions invokes every schema-extension data-validation callback
// that applies to n: the extensions on the schema node itself and, for
// leaf kinds, the per-kind extension sets along the value's resolved type
// and its full derivation chain. Beyond the pass/fail signal the hook does
// not interpret extension semantics.
func (v *Validator) runExtensions(n *data.Node) error {
	sn := n.Schema
	if !sn.HasDataExtension() {
		return nil
	}
	if err := invokeExtensions(sn.Extensions, n); err != nil {
		return err
	}
	if sn.Type != nil && (sn.Kind == schema.KindLeaf || sn.Kind == schema.KindLeafList) {
		return v.runTypeExtensions(sn.Type, n)
	}
	return nil
}

// runTypeExtensions walks t and its typedef chain. Climbing stops as soon
// as an ancestor type carries no data-validating extension anywhere below
// it, since nothing further up can apply.
func (v *Validator) runTypeExtensions(t *schema.Type, n *data.Node) error {
	for cur := t; cur != nil && cur.HasDataExtension(); cur = cur.Base {
		if err := v.runTypeKindExtensions(cur, n); err != nil {
			return err
		}
		if err := invokeExtensions(cur.Extensions, n); err != nil {
			return err
		}
	}
	return nil
}

// runTypeKindExtensions invokes the per-kind extension sets of one type in
// the chain: the resolved enumeration member, string restrictions, numeric
// and decimal64 ranges, each populated bit, or the matching union branch.
func (v *Validator) runTypeKindExtensions(t *schema.Type, n *data.Node) error {
	switch t.Kind {
	case schema.TypeEnum:
		if n.Enum != nil {
			if err := invokeExtensions(n.Enum.Extensions, n); err != nil {
				return err
			}
		}
	case schema.TypeBits:
		for _, bit := range n.Bits {
			if err := invokeExtensions(bit.Extensions, n); err != nil {
				return err
			}
		}
	case schema.TypeString:
		for _, r := range t.Lengths {
			if err := invokeExtensions(r.Extensions, n); err != nil {
				return err
			}
		}
		for _, r := range t.Patterns {
			if err := invokeExtensions(r.Extensions, n); err != nil {
				return err
			}
		}
	case schema.TypeInt, schema.TypeUint, schema.TypeDecimal64:
		for _, r := range t.Ranges {
			if err := invokeExtensions(r.Extensions, n); err != nil {
				return err
			}
		}
	case schema.TypeUnion:
		// Only the matched branch applies to the value.
		if n.UnionBranch != nil {
			return v.runTypeExtensions(n.UnionBranch, n)
		}
	}
	return nil
}

func invokeExtensions(exts []*schema.ExtensionInstance, n *data.Node) error {
	for _, inst := range exts {
		if !inst.Validating() {
			continue
		}
		if err := inst.Def.ValidateData(inst, n); err != nil {
			return &yangerrors.ExtensionError{
				Extension: extensionName(inst),
				Path:      n.Path(),
				Cause:     err,
			}
		}
	}
	return nil
}

func extensionName(inst *schema.ExtensionInstance) string {
	if inst.Def == nil {
		return ""
	}
	if inst.Def.Module != nil {
		return inst.Def.Module.Name + ":" + inst.Def.Name
	}
	return inst.Def.Name
}

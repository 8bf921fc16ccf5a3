package validator

import (
	"github.com/openmgmt/yangtools/data"
	"github.com/openmgmt/yangtools/yangerrors"
)

// checkKeyOrder verifies that a list instance's key leafs are present,
// typed correctly, and appear first in schema-declared key order. On a
// positional mismatch the remaining children are scanned so the diagnostic
// can distinguish a missing key from a misordered one.
func checkKeyOrder(n *data.Node) error {
	sn := n.Schema
	kids := n.Children()
	for i, key := range sn.Keys {
		if i < len(kids) && kids[i].Schema == key {
			continue
		}
		missing := true
		for _, c := range kids {
			if c.Schema == key {
				missing = false
				break
			}
		}
		return &yangerrors.StructuralError{
			Code:       yangerrors.CodeKeyOrder,
			Path:       n.Path(),
			SchemaName: key.Name,
			Missing:    missing,
			Constraint: key.Name,
		}
	}
	return nil
}

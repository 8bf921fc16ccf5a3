package data

// Action controls traversal after visiting a node.
type Action int

const (
	// Continue visits the node's children and then its siblings.
	Continue Action = iota
	// SkipChildren skips the node's children but continues with siblings.
	SkipChildren
	// Stop ends the walk immediately.
	Stop
)

// Visitor is called for each node during a walk.
type Visitor func(n *Node) Action

// Walk traverses the subtree rooted at n depth-first in document order.
// It reports whether the walk ran to completion (was not stopped).
func Walk(n *Node, visit Visitor) bool {
	switch visit(n) {
	case Stop:
		return false
	case SkipChildren:
		return true
	}
	// Children may be unlinked mid-walk (case autodelete), so iterate over
	// a snapshot.
	kids := make([]*Node, len(n.children))
	copy(kids, n.children)
	for _, c := range kids {
		if c.Parent != n {
			continue
		}
		if !Walk(c, visit) {
			return false
		}
	}
	return true
}

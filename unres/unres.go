// Package unres holds the deferred-resolution queue connecting the
// structural validator to a whole-tree resolution pass.
//
// Constraints that cannot be checked node-locally (must and when
// expressions, leafref and instance-identifier targets, union branches
// with pointer-like members) are enqueued here as tagged work items while
// the tree is assembled, and consumed exactly once by an external resolver
// after the full tree exists. The resolver is responsible for clearing the
// corresponding validity flag on the node once an item is resolved.
package unres

import "github.com/openmgmt/yangtools/data"

// Kind tags what a deferred work item is waiting on.
type Kind int

const (
	// KindUnionBranch is resolution of a union-typed value whose member
	// set includes leafref or instance-identifier branches.
	KindUnionBranch Kind = iota
	// KindLeafref is leafref target resolution.
	KindLeafref
	// KindInstanceID is instance-identifier target resolution.
	KindInstanceID
	// KindWhen is a when-condition evaluation.
	KindWhen
	// KindMust is a must-condition evaluation on the node itself.
	KindMust
	// KindMustInOut is a must-condition evaluation on the enclosing RPC
	// input or output block.
	KindMustInOut
	// KindUniqueRecheck is a re-check of declared unique sets after a
	// tree mutation.
	KindUniqueRecheck
)

// String returns the work item kind name.
func (k Kind) String() string {
	switch k {
	case KindUnionBranch:
		return "union-branch"
	case KindLeafref:
		return "leafref"
	case KindInstanceID:
		return "instance-id"
	case KindWhen:
		return "when"
	case KindMust:
		return "must"
	case KindMustInOut:
		return "must-inout"
	case KindUniqueRecheck:
		return "unique-recheck"
	default:
		return "unknown"
	}
}

// Item is one deferred constraint: a node and what it is waiting on.
type Item struct {
	Node *data.Node
	Kind Kind
}

// Resolver consumes work items. Implementations live outside this module;
// they evaluate the expression or resolve the target and clear the node's
// validity flag on success.
type Resolver interface {
	Resolve(item Item) error
}

// Queue is a FIFO of deferred work items. The validator is the producer;
// a resolver drains it once the tree is complete. Not safe for concurrent
// use, matching the single-threaded validation model.
type Queue struct {
	items []Item
}

// Enqueue appends a work item.
func (q *Queue) Enqueue(n *data.Node, k Kind) {
	q.items = append(q.items, Item{Node: n, Kind: k})
}

// Len reports the number of pending items.
func (q *Queue) Len() int { return len(q.items) }

// Items returns the pending items in insertion order. The returned slice
// is the queue's own storage; callers must not mutate it.
func (q *Queue) Items() []Item { return q.items }

// Drain consumes every item in insertion order through r, stopping at the
// first resolution failure. Consumed items are removed from the queue even
// on failure; each item is attempted exactly once.
func (q *Queue) Drain(r Resolver) error {
	for len(q.items) > 0 {
		item := q.items[0]
		q.items = q.items[1:]
		if err := r.Resolve(item); err != nil {
			return err
		}
	}
	return nil
}

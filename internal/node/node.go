// Package node defines the search tree vertex type shared by the open
// queue, the partition index, and the tree itself (spec.md §3, §9).
package node

import (
	"math"

	"github.com/sayotte/glcplan/internal/state"
)

// Node is one vertex of the search tree: the terminal state of the arc
// leading into it, its accumulated cost and merit, the control that
// produced it, and its place in the tree.
//
// Parent is a strong reference; spec.md §9 observes that no cycle is
// possible because children are only linked in after the parent already
// exists (AddChild never runs on an unrooted node), so Go's ordinary
// garbage collector reclaims an abandoned subtree once nothing else holds a
// Node in it — no weak pointer is needed for the idiomatic Go rendition.
type Node struct {
	X        state.Vector
	T        float64
	Cost     float64
	Merit    float64
	UIdx     int
	Depth    int
	Parent   *Node
	Children []*Node
}

// New returns a fresh, unparented node with nChildren empty child slots.
func New(nChildren int) *Node {
	return &Node{
		UIdx:     -1,
		Children: make([]*Node, nChildren),
	}
}

// InfiniteCostNode returns the sentinel used to bootstrap a domain's label
// slot (spec.md §3): its cost compares greater than any real node's cost.
func InfiniteCostNode() *Node {
	return &Node{
		Cost:  math.Inf(1),
		Merit: math.Inf(1),
		UIdx:  -1,
	}
}

// IsSentinel reports whether n is the infinite-cost bootstrap node.
func (n *Node) IsSentinel() bool {
	return math.IsInf(n.Cost, 1)
}

// AddChild links child as parent's successor via the control index recorded
// on child (spec.md §4.2). It is the only operation that mutates
// parent.Children.
func AddChild(parent, child *Node, dt float64) {
	child.Parent = parent
	child.Depth = parent.Depth + 1
	child.T = parent.T + dt
	parent.Children[child.UIdx] = child
}

// Package domain implements the spatial partition cell ("bucket") and the
// per-cell candidate queue the GLC label-correcting discretization relies on
// (spec.md §3, §4.4).
package domain

import (
	"container/heap"

	"github.com/sayotte/glcplan/internal/node"
	"github.com/sayotte/glcplan/internal/state"
)

// candidateItem wraps a candidate node with the heap index candidateQueue
// needs to satisfy container/heap.Interface — the same shape as the
// teacher's planner/priorityqueue.go Neighbor.
type candidateItem struct {
	n     *node.Node
	seq   int64 // insertion sequence, for the stable cost tie-break of spec.md §4.4
	index int
}

// candidateQueue is a min-heap over candidateItem ordered by ascending cost,
// ties broken by insertion order.
type candidateQueue []*candidateItem

func (q candidateQueue) Len() int { return len(q) }

func (q candidateQueue) Less(i, j int) bool {
	if q[i].n.Cost != q[j].n.Cost {
		return q[i].n.Cost < q[j].n.Cost
	}
	return q[i].seq < q[j].seq
}

func (q candidateQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *candidateQueue) Push(x interface{}) {
	item := x.(*candidateItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *candidateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// Domain is one cell of the spatial partition (spec.md §3).
type Domain struct {
	Coordinate state.Coordinate
	Label      *node.Node
	candidates candidateQueue
	nextSeq    int64
	children   int // count of admitted children, for the GC condition
}

// New returns a domain for coordinate, with its label bootstrapped to the
// infinite-cost sentinel.
func New(coordinate state.Coordinate) *Domain {
	return &Domain{
		Coordinate: coordinate,
		Label:      node.InfiniteCostNode(),
	}
}

// PushCandidate files n into the domain's candidate queue awaiting collision
// resolution (spec.md §4.3 step 5).
func (d *Domain) PushCandidate(n *node.Node) {
	heap.Push(&d.candidates, &candidateItem{n: n, seq: d.nextSeq})
	d.nextSeq++
}

// PeekCandidate returns the cheapest not-yet-resolved candidate, or nil if
// none remain.
func (d *Domain) PeekCandidate() *node.Node {
	if len(d.candidates) == 0 {
		return nil
	}
	return d.candidates[0].n
}

// PopCandidate removes and discards the cheapest candidate (spec.md §4.4
// step 3, "Pop c; continue").
func (d *Domain) PopCandidate() {
	if len(d.candidates) == 0 {
		return
	}
	heap.Pop(&d.candidates)
}

// NoteAdmitted records that one more child was admitted into the tree via
// this domain.
func (d *Domain) NoteAdmitted() {
	d.children++
}

// Empty reports whether d has no admitted children, its label is still the
// sentinel, and its candidate queue has drained — the GC condition of
// spec.md §4.4's final paragraph.
func (d *Domain) Empty() bool {
	return d.children == 0 && d.Label.IsSentinel() && len(d.candidates) == 0
}

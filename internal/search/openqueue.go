package search

import (
	"container/heap"

	"github.com/sayotte/glcplan/internal/node"
)

// openItem wraps a node with the heap bookkeeping openQueue needs, in the
// same shape as the teacher's planner/priorityqueue.go Neighbor.
type openItem struct {
	n     *node.Node
	seq   int64
	index int
}

// openQueue is the global best-first priority queue of spec.md §3/§4.5:
// ordered by ascending merit, ties broken by ascending cost, then by
// insertion sequence.
type openQueue []*openItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].n.Merit != q[j].n.Merit {
		return q[i].n.Merit < q[j].n.Merit
	}
	if q[i].n.Cost != q[j].n.Cost {
		return q[i].n.Cost < q[j].n.Cost
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openQueue) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// openQueueHandle is the planner-facing wrapper that owns the insertion
// sequence counter and hides container/heap's interface{} plumbing.
type openQueueHandle struct {
	q       openQueue
	nextSeq int64
}

func newOpenQueue() *openQueueHandle {
	return &openQueueHandle{}
}

func (h *openQueueHandle) push(n *node.Node) {
	heap.Push(&h.q, &openItem{n: n, seq: h.nextSeq})
	h.nextSeq++
}

func (h *openQueueHandle) popMin() *node.Node {
	item := heap.Pop(&h.q).(*openItem)
	return item.n
}

func (h *openQueueHandle) empty() bool {
	return len(h.q) == 0
}

package traversal

import (
	"container/heap"
	"errors"
)

// ErrEmptyMask indicates that the requested source voxel is not a member of
// the mask — the traversal has nowhere to start from.
var ErrEmptyMask = errors.New("traversal: source voxel is not in mask")

// item is one entry in the best-first priority queue: a candidate voxel,
// its tentative cumulative cost, and an insertion sequence number used to
// break ties deterministically (lowest seq wins among equal costs).
type item struct {
	index int
	cost  float64
	seq   uint64
}

// queue is a min-heap of *item ordered by (cost, seq) ascending. It follows
// the lazy decrease-key pattern used by dijkstra.nodePQ: a voxel may be
// pushed multiple times as shorter costs are discovered; stale entries are
// ignored on pop once the voxel has already been finalized.
type queue []*item

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}

	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x interface{}) { *q = append(*q, x.(*item)) }

func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}

// newQueue returns an empty, heap-initialized queue with the given initial
// capacity hint.
func newQueue(capHint int) *queue {
	q := make(queue, 0, capHint)
	heap.Init(&q)

	return &q
}

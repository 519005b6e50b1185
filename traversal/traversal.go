package traversal

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/voxelskel/teasar/voxel"
)

// weightFunc computes the edge cost of stepping from voxel u into voxel v
// (both flat indices). It is evaluated once per relaxed edge.
type weightFunc func(u, v int) float64

// EuclideanDistanceField computes the Distance-from-Any-voxel Field (DAF):
// for every in-mask voxel reachable from source under 26-connectivity, the
// shortest anisotropic-Euclidean path length through the mask. Unreachable
// in-mask voxels (and, by convention, out-of-mask voxels) carry +Inf.
//
// Preconditions: mask.At(source) must be true; otherwise ErrEmptyMask.
// Complexity: O(N log N), N = voxels reachable from source.
func EuclideanDistanceField(mask *voxel.Mask, source int, aniso voxel.Anisotropy) (*voxel.Field, error) {
	if !mask.AtIndex(source) {
		return nil, ErrEmptyMask
	}

	shape := mask.Shape
	weight := func(u, v int) float64 {
		ux, uy, uz := shape.Coord(u)
		vx, vy, vz := shape.Coord(v)
		dx := float64(aniso.X) * float64(vx-ux)
		dy := float64(aniso.Y) * float64(vy-uy)
		dz := float64(aniso.Z) * float64(vz-uz)

		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}

	dist, _, err := run(mask, source, weight)
	if err != nil {
		return nil, err
	}

	daf, err := voxel.NewField(shape)
	if err != nil {
		return nil, err
	}
	for i, d := range dist {
		if d < 0 {
			daf.Data[i] = float32(math.Inf(1))
		} else {
			daf.Data[i] = float32(d)
		}
	}

	return daf, nil
}

// PredecessorField runs a best-first expansion from source using edge weight
// field[v] — the cost of entering voxel v — and returns the predecessor
// (Parents) array: parents[source] = source (self-loop sentinel); an
// unreached in-mask voxel carries voxel.Unvisited.
//
// field must be aligned to mask.Shape and is treated as read-only.
// Preconditions: mask.At(source) must be true; otherwise ErrEmptyMask.
// Complexity: O(N log N), N = voxels reachable from source.
func PredecessorField(field *voxel.Field, mask *voxel.Mask, source int) (*voxel.ParentField, error) {
	if !mask.AtIndex(source) {
		return nil, ErrEmptyMask
	}
	if field.Shape != mask.Shape {
		return nil, fmt.Errorf("traversal: %w", voxel.ErrShapeMismatch)
	}

	weight := func(_ int, v int) float64 {
		return float64(field.Data[v])
	}

	_, prev, err := run(mask, source, weight)
	if err != nil {
		return nil, err
	}

	pf := &voxel.ParentField{Shape: mask.Shape, Data: prev}

	return pf, nil
}

// run is the shared best-first walker. It returns dist (flat-indexed
// cumulative cost, -1 for unreached voxels) and prev (flat-indexed
// predecessor, voxel.Unvisited for unreached voxels, source for itself).
//
// Grounded on dijkstra.Dijkstra's runner/process/relax split: an upfront
// allocation of dist/visited/prev, a heap initialized with the source at
// cost 0, and a pop-relax loop using the lazy decrease-key pattern (stale
// heap entries are dropped on pop once their voxel is finalized).
func run(mask *voxel.Mask, source int, weight weightFunc) ([]float64, []int32, error) {
	shape := mask.Shape
	n := shape.Len()

	dist := make([]float64, n)
	prev := make([]int32, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = -1 // sentinel for "+Inf / not yet reached"
		prev[i] = voxel.Unvisited
	}
	dist[source] = 0
	prev[source] = int32(source) // self-loop sentinel at the root

	q := newQueue(n)
	var seq uint64
	heap.Push(q, &item{index: source, cost: 0, seq: seq})
	seq++

	offsets := voxel.Offset26

	for q.Len() > 0 {
		popped := heap.Pop(q).(*item)
		u := popped.index

		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true

		ux, uy, uz := shape.Coord(u)
		for _, d := range offsets {
			vx, vy, vz := ux+d[0], uy+d[1], uz+d[2]
			if !shape.InBounds(vx, vy, vz) {
				continue
			}
			v := shape.Index(vx, vy, vz)
			if !mask.AtIndex(v) || visited[v] {
				continue
			}

			w := weight(u, v)
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 1) {
				continue // do not relax across a non-finite or negative edge
			}

			cand := dist[u] + w
			if dist[v] >= 0 && cand >= dist[v] {
				continue // not strictly better; avoid pushing duplicate work
			}

			dist[v] = cand
			prev[v] = int32(u)
			heap.Push(q, &item{index: v, cost: cand, seq: seq})
			seq++
		}
	}

	return dist, prev, nil
}

// Package traversal implements a single-source best-first (Dijkstra-style)
// expansion over a 26-connected voxel grid, restricted to in-mask voxels.
//
// Two exported entry points cover the two weighting modes named in the
// specification's traversal engine component:
//
//   - EuclideanDistanceField: edge weight from u to v is the anisotropic
//     Euclidean distance ‖anisotropy ⊙ (v−u)‖₂. Used to compute the
//     Distance-from-Root field (DAF).
//   - PredecessorField: edge weight from u to v is an arbitrary caller-supplied
//     per-voxel cost field[v] (the cost of entering v). Used to compute the
//     Parents predecessor array from the PDRF field.
//
// Both share one internal best-first walker (run) parameterized by a weight
// function, so the heap-management code — grounded on dijkstra.Dijkstra's
// runner/process/relax split — is written once.
//
// Complexity:
//
//   - Time:  O(N log N) where N = number of in-mask voxels reachable from the
//     source, since each of the up to 26 neighbors may push a heap entry and
//     each push/pop costs O(log N).
//   - Space: O(Len) for the distance, predecessor and visited arrays, which
//     span the whole grid, plus O(N) worst case for heap entries under the
//     lazy decrease-key strategy.
//
// Determinism:
//
//   - Ties (equal cumulative cost) are broken on insertion order via a
//     monotonically increasing sequence counter, so repeated runs over
//     identical input produce byte-identical output.
package traversal

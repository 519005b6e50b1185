// Package voxel defines the dense 3D array primitives shared by every stage of
// the teasar pipeline: Shape (grid dimensions), Anisotropy (physical voxel
// spacing), Mask (boolean membership), and Field (float32 scalar field).
//
// Storage order:
//
//   - All arrays are flat slices in a fixed order: X varies fastest, then Y,
//     then Z. Index(x,y,z) = (z*Height+y)*Width+x. This mirrors matrix.Dense's
//     row-major flat storage (one dimension higher), chosen for the same
//     reason: cache-friendly iteration and O(1) random access without a
//     pointer-chasing []]][]T.
//
// Ownership and mutation:
//
//   - Mask is mutated in place by the path-extraction rolling invalidation
//     pass (spec section 5); callers that need to retain the original mask
//     must Clone it first.
//   - Field is read-only once built (DBF) or is freed after a single
//     consumer (DAF), per the pipeline's memory model.
//
// This package intentionally has no dependency on any other teasar
// subpackage: it is the leaf of the module's internal dependency graph.
package voxel

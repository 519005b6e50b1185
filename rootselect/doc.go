// Package rootselect chooses the voxel from which the skeleton traversal
// departs (spec section 4.2).
//
// Two modes:
//
//   - Soma mode (dbf_max > soma_detection_threshold): the object is treated
//     as a large, roughly spherical region (a neuronal cell body or blood
//     vessel). The caller's FillHoles and EDT collaborators are re-run first
//     so that interior cavities do not distort the maximum, then the root is
//     placed at argmax(DBF).
//   - Non-soma mode: an arbitrary in-mask voxel is picked deterministically
//     (the lexicographically smallest flat index, via voxel.Mask.FirstIndex),
//     a Euclidean DAF is computed from it, and the root is the voxel that
//     maximizes that DAF — an extremal tip of the object.
//
// Grounded on original_source/igneous/.../skeletonization.py: the soma-mode
// branch (ndimage.binary_fill_holes + edt.edt + np.argmax(DBF)) and find_root
// (any_voxel -> euclidean_distance_field -> find_target). The "any in-mask
// voxel" deterministic pick mirrors gridgraph's deterministic lexicographic
// scan for seeding 0-1 BFS.
package rootselect

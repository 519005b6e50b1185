// Package teasar skeletonizes a 3D voxel mask into a centerline tree.
//
// Given a binary occupancy Mask and a Distance-to-Boundary Field (the
// distance from each in-mask voxel to the nearest background voxel), it
// repeatedly finds the farthest-reaching, boundary-penalized path through
// the object and invalidates a tube around it, until the whole object has
// been covered. The result is a small tree — vertices, undirected edges,
// and a radius estimate per vertex — suitable for rendering, analysis, or
// further simplification.
//
// The pipeline, end to end:
//
//	rootselect  -> pick a traversal root (plain tip, or soma center for
//	               objects whose max radius exceeds a detection threshold)
//	traversal   -> Euclidean distance field from the root (DAF)
//	pdrf        -> penalize DAF near the object's boundary using DBF
//	traversal   -> predecessor field over the penalized cost (PDRF)
//	pathextract -> repeatedly extract the farthest path and invalidate
//	               around it, until nothing finite-cost remains
//	skeltree    -> union the extracted paths into one deduplicated tree
//
// Call Skeletonize with a Mask, a DBF, and any Options; pass no options to
// get the documented defaults (scale 10, const 10, isotropic spacing,
// pdrf_scale 5000, pdrf_exponent 16, no soma detection unless the object is
// large enough to trigger it).
//
// Under the hood, everything is organized under six subpackages:
//
//	voxel/       — dense flat-array grid storage and 26-connectivity helpers
//	traversal/   — best-first (Dijkstra-style) distance and predecessor fields
//	pdrf/        — the penalized distance-from-root field builder
//	rootselect/  — plain-tip vs. soma root selection
//	pathextract/ — the extract/invalidate loop
//	skeltree/    — path union into a single tree
package teasar

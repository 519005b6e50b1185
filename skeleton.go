package teasar

// Skeleton is the output of Skeletonize: a small undirected tree embedded
// in the input grid's physical coordinate space.
type Skeleton struct {
	// Vertices holds one (x, y, z) grid coordinate per vertex, in voxel
	// units (not yet scaled by Anisotropy).
	Vertices [][3]float32

	// Edges holds one undirected pair of vertex indices (into Vertices) per
	// tree edge.
	Edges [][2]uint32

	// Radii holds one Distance-to-Boundary Field sample per vertex, aligned
	// index-for-index with Vertices.
	Radii []float32
}

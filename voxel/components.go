package voxel

// ConnectedComponents labels every in-mask voxel with the id of its
// 26-connected component, via BFS flood-fill from each unvisited in-mask
// voxel in flat-index order (lowest index first, for determinism).
//
// labels has one entry per voxel: -1 for voxels outside the mask, otherwise
// a component id in [0, count). Adapted from gridgraph.GridGraph's 2D
// 4/8-connectivity ConnectedComponents, generalized to 3D 26-connectivity
// using Offset26 in place of NeighborOffsets.
//
// Complexity: O(Len) time and memory.
func ConnectedComponents(mask *Mask) (labels []int, count int) {
	shape := mask.Shape
	labels = make([]int, shape.Len())
	for i := range labels {
		labels[i] = -1
	}

	for start, inMask := range mask.Data {
		if !inMask || labels[start] != -1 {
			continue
		}

		id := count
		queue := []int{start}
		labels[start] = id

		for qi := 0; qi < len(queue); qi++ {
			idx := queue[qi]
			x, y, z := shape.Coord(idx)

			for _, d := range Offset26 {
				nx, ny, nz := x+d[0], y+d[1], z+d[2]
				if !shape.InBounds(nx, ny, nz) {
					continue
				}
				nIdx := shape.Index(nx, ny, nz)
				if !mask.Data[nIdx] || labels[nIdx] != -1 {
					continue
				}
				labels[nIdx] = id
				queue = append(queue, nIdx)
			}
		}

		count++
	}

	return labels, count
}

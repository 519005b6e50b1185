package skeltree

import "github.com/voxelskel/teasar/voxel"

// Assemble unions a set of root-anchored paths into a single deduplicated
// tree, returning grid-coordinate vertices (voxel units, not scaled by
// anisotropy), undirected edges (as dense vertex
// ids), and per-vertex radii sourced from dbf (spec section 4.5).
//
// root is the flat index of the algorithm's traversal root (spec section
// 4.2); every path in paths is expected to terminate there (pathextract's
// reconstructPath convention). root need not be the first element of the
// first path — it is the actual starting point of the DFS that discovers
// and orders the final edge list, which is what lets branch arms extracted
// by different calls to pathextract.Extract attach to a shared trunk
// regardless of which path happened to be extracted first.
//
// Complexity: O(sum of path lengths) to build the adjacency map, O(V) for
// the iterative DFS (V = number of distinct voxels across all paths).
func Assemble(paths [][]int, root int, shape voxel.Shape, dbf *voxel.Field) (vertices [][3]float32, edges [][2]uint32, radii []float32) {
	if len(paths) == 0 {
		return [][3]float32{}, [][2]uint32{}, []float32{}
	}

	adjacency := make(map[int][]int)
	ids := make(map[int]int)
	var order []int

	addVertex := func(v int) int {
		if id, ok := ids[v]; ok {
			return id
		}
		id := len(order)
		ids[v] = id
		order = append(order, v)

		return id
	}

	addEdge := func(a, b int) {
		addVertex(a)
		addVertex(b)
		if !containsInt(adjacency[a], b) {
			adjacency[a] = append(adjacency[a], b)
		}
		if !containsInt(adjacency[b], a) {
			adjacency[b] = append(adjacency[b], a)
		}
	}

	for _, path := range paths {
		if len(path) == 1 {
			addVertex(path[0])

			continue
		}
		for i := 0; i+1 < len(path); i++ {
			addEdge(path[i], path[i+1])
		}
	}
	addVertex(root) // guarantee the root is registered even if every path is length 0

	// Iterative (explicit work-stack) DFS from root: somas routinely produce
	// tens of thousands of vertices, and a recursive walk would blow the
	// default goroutine stack, per spec section 4.5 / section 9.
	visited := make(map[int]bool, len(order))
	var treeEdges [][2]uint32
	stack := []int{root}
	visited[root] = true
	for len(stack) > 0 {
		n := len(stack)
		v := stack[n-1]
		stack = stack[:n-1]

		for _, nb := range adjacency[v] {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			treeEdges = append(treeEdges, [2]uint32{uint32(ids[v]), uint32(ids[nb])})
			stack = append(stack, nb)
		}
	}

	vertices = make([][3]float32, len(order))
	radii = make([]float32, len(order))
	for id, v := range order {
		x, y, z := shape.Coord(v)
		vertices[id] = [3]float32{float32(x), float32(y), float32(z)}
		radii[id] = dbf.AtIndex(v)
	}
	if treeEdges == nil {
		treeEdges = [][2]uint32{}
	}

	return vertices, treeEdges, radii
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}

package voxel

// Offset26 lists the 26 neighbor displacements of full 3D connectivity: every
// combination of {-1,0,+1}^3 except (0,0,0). Order is fixed (lexicographic on
// (dz,dy,dx)) so that traversal tie-breaks are reproducible across runs,
// mirroring gridgraph's precomputed neighborOffsets for Conn4/Conn8.
var Offset26 = buildOffset26()

func buildOffset26() [][3]int {
	offsets := make([][3]int, 0, 26)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offsets = append(offsets, [3]int{dx, dy, dz})
			}
		}
	}

	return offsets
}

// Unvisited is the sentinel parent-index value for a voxel never reached by a
// traversal: no predecessor is known.
const Unvisited int32 = -1

// ParentField is a dense predecessor index grid: ParentField.Data[v] holds the
// flat index of v's predecessor under some traversal, or Unvisited if v was
// never reached. The traversal source is its own predecessor (self-loop
// sentinel), per spec section 3's Parents invariant.
type ParentField struct {
	Shape Shape
	Data  []int32
}

// NewParentField allocates a ParentField of the given shape with every entry
// set to Unvisited.
// Complexity: O(Len) time and memory.
func NewParentField(shape Shape) (*ParentField, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	data := make([]int32, shape.Len())
	for i := range data {
		data[i] = Unvisited
	}

	return &ParentField{Shape: shape, Data: data}, nil
}

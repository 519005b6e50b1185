package voxel

// Mask is a dense boolean membership grid: Mask.Data[Shape.Index(x,y,z)] is
// true iff voxel (x,y,z) belongs to the labeled object.
//
// Mask is mutated in place by the path-extraction rolling invalidation pass;
// Clone before passing a Mask to a second independent Skeletonize call.
type Mask struct {
	Shape Shape
	Data  []bool
}

// NewMask allocates an all-false Mask of the given shape.
// Complexity: O(Len) time and memory.
func NewMask(shape Shape) (*Mask, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}

	return &Mask{Shape: shape, Data: make([]bool, shape.Len())}, nil
}

// At reports the membership of (x,y,z). Out-of-bounds coordinates read false.
// Complexity: O(1).
func (m *Mask) At(x, y, z int) bool {
	if !m.Shape.InBounds(x, y, z) {
		return false
	}

	return m.Data[m.Shape.Index(x, y, z)]
}

// AtIndex reports the membership of the voxel at flat index idx.
// Complexity: O(1).
func (m *Mask) AtIndex(idx int) bool {
	return m.Data[idx]
}

// Set assigns the membership of (x,y,z). Out-of-bounds coordinates are a no-op.
// Complexity: O(1).
func (m *Mask) Set(x, y, z int, v bool) {
	if !m.Shape.InBounds(x, y, z) {
		return
	}
	m.Data[m.Shape.Index(x, y, z)] = v
}

// SetIndex assigns the membership of the voxel at flat index idx.
// Complexity: O(1).
func (m *Mask) SetIndex(idx int, v bool) {
	m.Data[idx] = v
}

// Count returns the number of in-mask voxels (popcount).
// Complexity: O(Len).
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Data {
		if v {
			n++
		}
	}

	return n
}

// Clone returns a deep copy, so the rolling-invalidation pass can mutate the
// copy without disturbing the caller's original mask.
// Complexity: O(Len).
func (m *Mask) Clone() *Mask {
	data := make([]bool, len(m.Data))
	copy(data, m.Data)

	return &Mask{Shape: m.Shape, Data: data}
}

// FirstIndex returns the flat index of the lexicographically smallest
// in-mask voxel under (z,y,x) ordering — i.e. the first true entry in Data,
// since Data is laid out X-fastest, then Y, then Z. Returns (0, false) if the
// mask is empty.
//
// This is the deterministic "any in-mask voxel" selection used by the
// non-soma root-selection two-pass procedure (spec section 4.2).
// Complexity: O(Len) worst case.
func (m *Mask) FirstIndex() (int, bool) {
	for i, v := range m.Data {
		if v {
			return i, true
		}
	}

	return 0, false
}

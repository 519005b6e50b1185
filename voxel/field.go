package voxel

import "math"

// Field is a dense float32 scalar grid aligned 1:1 with a Mask of the same
// Shape (DBF, DAF, or PDRF depending on the pipeline stage).
type Field struct {
	Shape Shape
	Data  []float32
}

// NewField allocates a zero-valued Field of the given shape.
// Complexity: O(Len) time and memory.
func NewField(shape Shape) (*Field, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}

	return &Field{Shape: shape, Data: make([]float32, shape.Len())}, nil
}

// At reads the value at (x,y,z). Out-of-bounds coordinates read 0.
// Complexity: O(1).
func (f *Field) At(x, y, z int) float32 {
	if !f.Shape.InBounds(x, y, z) {
		return 0
	}

	return f.Data[f.Shape.Index(x, y, z)]
}

// AtIndex reads the value at flat index idx.
// Complexity: O(1).
func (f *Field) AtIndex(idx int) float32 {
	return f.Data[idx]
}

// Set writes the value at (x,y,z). Out-of-bounds coordinates are a no-op.
// Complexity: O(1).
func (f *Field) Set(x, y, z int, v float32) {
	if !f.Shape.InBounds(x, y, z) {
		return
	}
	f.Data[f.Shape.Index(x, y, z)] = v
}

// SetIndex writes the value at flat index idx.
// Complexity: O(1).
func (f *Field) SetIndex(idx int, v float32) {
	f.Data[idx] = v
}

// Max returns the largest non-NaN value in the field (+Inf included, if
// present), and whether any voxel was considered (false for a zero-length
// field or one holding only NaN). NaN values are skipped so
// that a single poisoned voxel does not silently propagate into dbf_max.
// Complexity: O(Len).
func (f *Field) Max() (float32, bool) {
	found := false
	var max float32
	for _, v := range f.Data {
		if math.IsNaN(float64(v)) {
			continue
		}
		if !found || v > max {
			max = v
			found = true
		}
	}

	return max, found
}

// HasNaN reports whether any voxel in the field is NaN.
// Complexity: O(Len).
func (f *Field) HasNaN() bool {
	for _, v := range f.Data {
		if math.IsNaN(float64(v)) {
			return true
		}
	}

	return false
}

package traversal_test

import (
	"math"
	"testing"

	"github.com/voxelskel/teasar/traversal"
	"github.com/voxelskel/teasar/voxel"
)

func rodMask(t *testing.T, length int) (*voxel.Mask, voxel.Shape) {
	t.Helper()
	shape := voxel.Shape{X: length, Y: 1, Z: 1}
	m, err := voxel.NewMask(shape)
	if err != nil {
		t.Fatalf("NewMask: %v", err)
	}
	for x := 0; x < length; x++ {
		m.Set(x, 0, 0, true)
	}

	return m, shape
}

func TestEuclideanDistanceField_Rod(t *testing.T) {
	m, shape := rodMask(t, 5)
	daf, err := traversal.EuclideanDistanceField(m, shape.Index(0, 0, 0), voxel.DefaultAnisotropy())
	if err != nil {
		t.Fatalf("EuclideanDistanceField: %v", err)
	}
	for x := 0; x < 5; x++ {
		got := daf.At(x, 0, 0)
		want := float32(x)
		if math.Abs(float64(got-want)) > 1e-5 {
			t.Errorf("DAF(%d,0,0) = %v; want %v", x, got, want)
		}
	}
}

func TestEuclideanDistanceField_EmptyMaskSource(t *testing.T) {
	shape := voxel.Shape{X: 2, Y: 2, Z: 2}
	m, _ := voxel.NewMask(shape)
	_, err := traversal.EuclideanDistanceField(m, shape.Index(0, 0, 0), voxel.DefaultAnisotropy())
	if err != traversal.ErrEmptyMask {
		t.Fatalf("expected ErrEmptyMask, got %v", err)
	}
}

func TestEuclideanDistanceField_Unreachable(t *testing.T) {
	shape := voxel.Shape{X: 3, Y: 1, Z: 1}
	m, err := voxel.NewMask(shape)
	if err != nil {
		t.Fatalf("NewMask: %v", err)
	}
	m.Set(0, 0, 0, true)
	m.Set(2, 0, 0, true) // disjoint from (0,0,0): middle voxel is not in mask
	daf, err := traversal.EuclideanDistanceField(m, shape.Index(0, 0, 0), voxel.DefaultAnisotropy())
	if err != nil {
		t.Fatalf("EuclideanDistanceField: %v", err)
	}
	if !math.IsInf(float64(daf.At(2, 0, 0)), 1) {
		t.Errorf("expected +Inf for unreachable voxel, got %v", daf.At(2, 0, 0))
	}
}

func TestEuclideanDistanceField_Anisotropy(t *testing.T) {
	shape := voxel.Shape{X: 2, Y: 1, Z: 1}
	m, _ := voxel.NewMask(shape)
	m.Set(0, 0, 0, true)
	m.Set(1, 0, 0, true)
	aniso := voxel.Anisotropy{X: 4, Y: 1, Z: 1}
	daf, err := traversal.EuclideanDistanceField(m, shape.Index(0, 0, 0), aniso)
	if err != nil {
		t.Fatalf("EuclideanDistanceField: %v", err)
	}
	if got := daf.At(1, 0, 0); math.Abs(float64(got)-4) > 1e-5 {
		t.Errorf("DAF(1,0,0) = %v; want 4", got)
	}
}

func TestPredecessorField_ChainsToRoot(t *testing.T) {
	m, shape := rodMask(t, 4)
	field, _ := voxel.NewField(shape)
	for i := range field.Data {
		field.Data[i] = 1 // uniform entry cost
	}
	root := shape.Index(0, 0, 0)
	parents, err := traversal.PredecessorField(field, m, root)
	if err != nil {
		t.Fatalf("PredecessorField: %v", err)
	}
	if parents.Data[root] != int32(root) {
		t.Fatalf("parents[root] = %d; want self-loop %d", parents.Data[root], root)
	}
	// Walk from the far tip back to root; must terminate without cycling.
	cur := shape.Index(3, 0, 0)
	steps := 0
	for cur != root {
		next := parents.Data[cur]
		if next == voxel.Unvisited {
			t.Fatalf("voxel %d has no predecessor", cur)
		}
		cur = int(next)
		steps++
		if steps > shape.Len() {
			t.Fatalf("predecessor chase did not terminate (cycle?)")
		}
	}
}

func TestPredecessorField_ShapeMismatch(t *testing.T) {
	m, _ := voxel.NewMask(voxel.Shape{X: 2, Y: 2, Z: 2})
	m.SetIndex(0, true)
	field, _ := voxel.NewField(voxel.Shape{X: 3, Y: 2, Z: 2})
	_, err := traversal.PredecessorField(field, m, 0)
	if err == nil {
		t.Fatalf("expected an error for mismatched shapes")
	}
}

func TestEuclideanDistanceField_Determinism(t *testing.T) {
	m, shape := rodMask(t, 6)
	source := shape.Index(0, 0, 0)
	a, err := traversal.EuclideanDistanceField(m, source, voxel.DefaultAnisotropy())
	if err != nil {
		t.Fatalf("EuclideanDistanceField: %v", err)
	}
	b, err := traversal.EuclideanDistanceField(m, source, voxel.DefaultAnisotropy())
	if err != nil {
		t.Fatalf("EuclideanDistanceField: %v", err)
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("non-deterministic DAF at index %d: %v vs %v", i, a.Data[i], b.Data[i])
		}
	}
}

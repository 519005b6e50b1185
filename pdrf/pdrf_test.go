package pdrf_test

import (
	"math"
	"testing"

	"github.com/voxelskel/teasar/pdrf"
	"github.com/voxelskel/teasar/voxel"
)

func TestBuild_MatchesFormula(t *testing.T) {
	shape := voxel.Shape{X: 3, Y: 1, Z: 1}
	dbf, _ := voxel.NewField(shape)
	daf, _ := voxel.NewField(shape)
	dbf.Data = []float32{1, 2, 4}
	daf.Data = []float32{0, 10, 20}
	dbfMax := float32(4)

	opts := pdrf.Options{Scale: 5000, Exponent: 16}
	got, err := pdrf.Build(dbf, daf, dbfMax, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	m := 1 / math.Pow(float64(dbfMax), 1.01)
	for i, d := range dbf.Data {
		want := float64(daf.Data[i]) + float64(opts.Scale)*math.Pow(1-float64(d)*m, float64(opts.Exponent))
		if diff := math.Abs(float64(got.Data[i]) - want); diff > 1e-2 {
			t.Errorf("PDRF[%d] = %v; want %v (diff %v)", i, got.Data[i], want, diff)
		}
	}
}

func TestBuild_PowerOfTwoMatchesGeneralPow(t *testing.T) {
	shape := voxel.Shape{X: 5, Y: 1, Z: 1}
	dbf, _ := voxel.NewField(shape)
	daf, _ := voxel.NewField(shape)
	dbf.Data = []float32{0, 1, 2, 3, 4}
	daf.Data = []float32{1, 1, 1, 1, 1}

	viaSquaring, err := pdrf.Build(dbf, daf, 4, pdrf.Options{Scale: 5000, Exponent: 16})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	viaPow, err := pdrf.Build(dbf, daf, 4, pdrf.Options{Scale: 5000, Exponent: 17})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Exponent 16 takes the repeated-squaring path; exponent 17 and exponent
	// 1<<16 (a power of two, but not below 2^16) take the general math.Pow
	// path. Each result is checked against the formula evaluated with
	// math.Pow at the same exponent.
	viaLargePowerOfTwo, err := pdrf.Build(dbf, daf, 4, pdrf.Options{Scale: 5000, Exponent: 1 << 16})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(viaSquaring.Data) != len(dbf.Data) {
		t.Fatalf("unexpected output length")
	}
	m := 1 / math.Pow(4, 1.01)
	for _, c := range []struct {
		exponent uint32
		got      *voxel.Field
	}{{16, viaSquaring}, {17, viaPow}, {1 << 16, viaLargePowerOfTwo}} {
		for i, d := range dbf.Data {
			want := float64(daf.Data[i]) + 5000*math.Pow(1-float64(d)*m, float64(c.exponent))
			if diff := math.Abs(float64(c.got.Data[i]) - want); diff > 1e-2 {
				t.Errorf("exponent %d: PDRF[%d] = %v; want %v (diff %v)", c.exponent, i, c.got.Data[i], want, diff)
			}
		}
	}
}

func TestBuild_ShapeMismatch(t *testing.T) {
	dbf, _ := voxel.NewField(voxel.Shape{X: 2, Y: 1, Z: 1})
	daf, _ := voxel.NewField(voxel.Shape{X: 3, Y: 1, Z: 1})
	_, err := pdrf.Build(dbf, daf, 1, pdrf.DefaultOptions())
	if err != pdrf.ErrShapeMismatch {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestBuild_NonPositiveMax(t *testing.T) {
	shape := voxel.Shape{X: 1, Y: 1, Z: 1}
	dbf, _ := voxel.NewField(shape)
	daf, _ := voxel.NewField(shape)
	_, err := pdrf.Build(dbf, daf, 0, pdrf.DefaultOptions())
	if err != pdrf.ErrNonPositiveMax {
		t.Fatalf("expected ErrNonPositiveMax, got %v", err)
	}
}

func TestBuild_MonotoneDecreasingInDBF(t *testing.T) {
	shape := voxel.Shape{X: 4, Y: 1, Z: 1}
	dbf, _ := voxel.NewField(shape)
	daf, _ := voxel.NewField(shape) // all zero: isolate the penalty term
	dbf.Data = []float32{0, 1, 2, 4}

	out, err := pdrf.Build(dbf, daf, 4, pdrf.DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 1; i < len(out.Data); i++ {
		if out.Data[i] > out.Data[i-1] {
			t.Errorf("PDRF not monotone-decreasing in DBF at index %d: %v > %v", i, out.Data[i], out.Data[i-1])
		}
	}
}

package pdrf

import (
	"errors"
	"math"
	"math/bits"

	"github.com/voxelskel/teasar/voxel"
)

// ErrShapeMismatch indicates dbf and daf are not aligned to the same shape.
var ErrShapeMismatch = errors.New("pdrf: dbf and daf shapes differ")

// ErrNonPositiveMax indicates dbf_max is not a finite, strictly positive
// value, which would make M (and therefore the penalty term) undefined.
var ErrNonPositiveMax = errors.New("pdrf: dbf_max must be finite and positive")

// Options configures the penalty term of the PDRF formula.
type Options struct {
	// Scale is the multiplier in front of the boundary-proximity penalty
	// (pdrf_scale in the spec). Default 5000.
	Scale float32

	// Exponent is the convexity exponent applied to (1 - DBF*M)
	// (pdrf_exponent in the spec). Default 16. Must be > 0.
	Exponent uint32
}

// DefaultOptions returns the spec's defaults: Scale=5000, Exponent=16.
func DefaultOptions() Options {
	return Options{Scale: 5000, Exponent: 16}
}

// Build computes PDRF[v] = DAF[v] + Scale*(1 - DBF[v]*M)^Exponent for every
// voxel, where M = 1 / dbfMax^1.01. dbf and daf must share the same shape.
//
// Voxels outside the mask or unreached by the DAF traversal carry +Inf in
// daf by convention; PDRF there is also +Inf, and such voxels are never
// selected as extraction targets (see pathextract).
//
// Complexity: O(Len) time; O(Len) memory for the returned field.
func Build(dbf, daf *voxel.Field, dbfMax float32, opts Options) (*voxel.Field, error) {
	if dbf.Shape != daf.Shape {
		return nil, ErrShapeMismatch
	}
	if dbfMax <= 0 || math.IsNaN(float64(dbfMax)) || math.IsInf(float64(dbfMax), 0) {
		return nil, ErrNonPositiveMax
	}
	if opts.Exponent == 0 {
		opts = DefaultOptions()
	}

	m := float32(1 / math.Pow(float64(dbfMax), 1.01))

	out, err := voxel.NewField(dbf.Shape)
	if err != nil {
		return nil, err
	}

	usePow := !isSmallPowerOfTwo(opts.Exponent)
	squarings := 0
	if !usePow {
		squarings = bits.TrailingZeros32(opts.Exponent)
	}

	for i := range out.Data {
		base := 1 - dbf.Data[i]*m
		var penalty float32
		if usePow {
			penalty = float32(math.Pow(float64(base), float64(opts.Exponent)))
		} else {
			penalty = base
			for s := 0; s < squarings; s++ {
				penalty *= penalty
			}
		}
		out.Data[i] = daf.Data[i] + opts.Scale*penalty
	}

	return out, nil
}

// isSmallPowerOfTwo reports whether n is a power of two strictly less than
// 2^16, the fast-path condition used by the original source's compute_pdrf.
func isSmallPowerOfTwo(n uint32) bool {
	return n != 0 && n&(n-1) == 0 && n < (1<<16)
}

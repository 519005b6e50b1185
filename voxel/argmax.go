package voxel

import "math"

// ArgMaxMasked returns the flat index of the in-mask voxel with the largest
// finite field value, breaking ties by the smallest flat index (first
// encountered in storage order), so repeated calls over identical input are
// deterministic. NaN and +/-Inf values are never selected — this is what
// keeps a voxel in a root-unreachable component (whose DAF/PDRF carries
// +Inf by convention) from ever being chosen as a root or an extraction
// target, which is how disconnected-mask inputs terminate (see
// pathextract's package doc). Returns (0, false) if no in-mask voxel holds a
// finite value.
//
// Used both by rootselect (argmax(DBF) in soma mode, argmax(DAF) in non-soma
// mode) and by pathextract (argmax(PDRF) target selection).
// Complexity: O(Len).
func ArgMaxMasked(field *Field, mask *Mask) (int, bool) {
	found := false
	var best float32
	var bestIdx int
	for i, v := range field.Data {
		if !mask.Data[i] {
			continue
		}
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			continue
		}
		if !found || v > best {
			best = v
			bestIdx = i
			found = true
		}
	}

	return bestIdx, found
}

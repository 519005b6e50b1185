package rootselect

import (
	"github.com/voxelskel/teasar/traversal"
	"github.com/voxelskel/teasar/voxel"
)

// Mode records which branch of root selection produced a Result.
type Mode int

const (
	// NonSoma is the default two-pass "any voxel -> DAF -> argmax" selection.
	NonSoma Mode = iota
	// Soma is the large-radius special case: root at argmax(DBF).
	Soma
)

// EDTFunc recomputes the Distance-to-Boundary Field of a (possibly
// hole-filled) mask. It is an external collaborator (spec section 6); the
// engine never implements its own EDT.
type EDTFunc func(mask *voxel.Mask, aniso voxel.Anisotropy) (*voxel.Field, error)

// FillHolesFunc performs topological hole-filling on a binary mask. It is an
// external collaborator (spec section 6), invoked only in soma mode.
type FillHolesFunc func(mask *voxel.Mask) (*voxel.Mask, error)

// Result holds the outcome of root selection, including any soma-mode
// reinitialization of the mask and DBF (spec section 4.2: "the caller also
// re-runs hole-filling and EDT before this selection").
type Result struct {
	// Found is false iff the input mask was empty; callers must then return
	// an empty skeleton without error (spec section 7, EmptyMask).
	Found bool

	// Index is the flat voxel index of the chosen root. Valid only if Found.
	Index int

	// Mode records which branch selected Index.
	Mode Mode

	// Mask is the mask to use for the rest of the pipeline: unchanged in
	// non-soma mode, or the hole-filled mask in soma mode.
	Mask *voxel.Mask

	// DBF is the Distance-to-Boundary Field to use for the rest of the
	// pipeline: unchanged in non-soma mode, or recomputed over the
	// hole-filled mask in soma mode.
	DBF *voxel.Field

	// DBFMax is max(DBF) after any soma-mode recomputation.
	DBFMax float32

	// SomaRadius is the soma-mode invalidation radius
	// (dbf_max*soma_invalidation_scale + soma_invalidation_const), or 0 in
	// non-soma mode.
	SomaRadius float32
}

// Select implements spec section 4.2 in full: soma detection, the
// hole-fill/EDT re-run, and the two selection branches.
//
// aniso is the grid's physical voxel spacing, needed both for EDT
// recomputation and for the Euclidean DAF pass in non-soma mode.
// somaDetectionThreshold, somaInvalidationScale and somaInvalidationConst are
// the corresponding teasar.Options fields, threaded through unchanged.
//
// Complexity: O(N log N) in non-soma mode (one Euclidean traversal over the
// reachable component); O(Len) plus the cost of edt/fillHoles in soma mode.
func Select(
	mask *voxel.Mask,
	dbf *voxel.Field,
	aniso voxel.Anisotropy,
	somaDetectionThreshold float32,
	somaInvalidationScale float32,
	somaInvalidationConst float32,
	edt EDTFunc,
	fillHoles FillHolesFunc,
) (Result, error) {
	dbfMax, any := dbf.Max()
	if !any || mask.Count() == 0 {
		return Result{Found: false}, nil
	}

	if dbfMax > somaDetectionThreshold {
		return selectSoma(mask, aniso, somaInvalidationScale, somaInvalidationConst, edt, fillHoles)
	}

	return selectNonSoma(mask, dbf, dbfMax, aniso)
}

// selectSoma re-runs hole-filling and EDT over the filled mask, then places
// the root at argmax(DBF) (spec section 4.2, soma branch).
func selectSoma(
	mask *voxel.Mask,
	aniso voxel.Anisotropy,
	somaInvalidationScale float32,
	somaInvalidationConst float32,
	edt EDTFunc,
	fillHoles FillHolesFunc,
) (Result, error) {
	filled, err := fillHoles(mask)
	if err != nil {
		return Result{}, err
	}
	dbf, err := edt(filled, aniso)
	if err != nil {
		return Result{}, err
	}
	dbfMax, any := dbf.Max()
	if !any || filled.Count() == 0 {
		return Result{Found: false}, nil
	}

	root, ok := voxel.ArgMaxMasked(dbf, filled)
	if !ok {
		return Result{Found: false}, nil
	}

	return Result{
		Found:      true,
		Index:      root,
		Mode:       Soma,
		Mask:       filled,
		DBF:        dbf,
		DBFMax:     dbfMax,
		SomaRadius: dbfMax*somaInvalidationScale + somaInvalidationConst,
	}, nil
}

// selectNonSoma implements the two-pass procedure: pick any in-mask voxel
// deterministically, compute its Euclidean DAF, and return the voxel that
// maximizes that DAF (spec section 4.2, non-soma branch; original source's
// find_root).
func selectNonSoma(mask *voxel.Mask, dbf *voxel.Field, dbfMax float32, aniso voxel.Anisotropy) (Result, error) {
	anyVoxel, ok := mask.FirstIndex()
	if !ok {
		return Result{Found: false}, nil
	}

	daf, err := traversal.EuclideanDistanceField(mask, anyVoxel, aniso)
	if err != nil {
		return Result{}, err
	}

	root, ok := voxel.ArgMaxMasked(daf, mask)
	if !ok {
		return Result{Found: false}, nil
	}

	return Result{
		Found:  true,
		Index:  root,
		Mode:   NonSoma,
		Mask:   mask,
		DBF:    dbf,
		DBFMax: dbfMax,
	}, nil
}

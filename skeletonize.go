package teasar

import (
	"github.com/voxelskel/teasar/pathextract"
	"github.com/voxelskel/teasar/pdrf"
	"github.com/voxelskel/teasar/rootselect"
	"github.com/voxelskel/teasar/skeltree"
	"github.com/voxelskel/teasar/traversal"
	"github.com/voxelskel/teasar/voxel"
)

// Skeletonize converts mask and its Distance-to-Boundary Field into a
// centerline tree, following the pipeline documented in doc.go.
//
// An empty mask is not an error: Skeletonize returns an empty *Skeleton with
// a nil error. All other validation — shape match, option ranges, and DBF
// finiteness — happens before any traversal begins.
func Skeletonize(mask *voxel.Mask, dbf *voxel.Field, opts ...Option) (*Skeleton, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if mask.Shape != dbf.Shape {
		return nil, ErrShapeMismatch
	}
	if err := validateOptions(options); err != nil {
		return nil, err
	}

	if mask.Count() == 0 {
		return &Skeleton{}, nil
	}

	dbfMax, any := dbf.Max()
	if !any || dbfMax <= 0 || dbf.HasNaN() {
		return nil, ErrNonFinite
	}
	if dbfMax > options.SomaDetectionThreshold && (options.EDT == nil || options.FillHoles == nil) {
		return nil, ErrInvalidOption
	}

	root, err := rootselect.Select(
		mask, dbf, options.Anisotropy,
		options.SomaDetectionThreshold,
		options.SomaInvalidationScale, options.SomaInvalidationConst,
		options.EDT, options.FillHoles,
	)
	if err != nil {
		return nil, err
	}
	if !root.Found {
		return &Skeleton{}, nil
	}

	daf, err := traversal.EuclideanDistanceField(root.Mask, root.Index, options.Anisotropy)
	if err != nil {
		return nil, err
	}

	pdrfField, err := pdrf.Build(root.DBF, daf, root.DBFMax, options.pdrfOptions())
	daf = nil // freed before path extraction, per the pipeline's memory model
	if err != nil {
		return nil, err
	}

	parents, err := traversal.PredecessorField(pdrfField, root.Mask, root.Index)
	if err != nil {
		return nil, err
	}

	somaMode := root.Mode == rootselect.Soma
	workingMask := root.Mask.Clone()
	if somaMode {
		pathextract.InvalidateBall(workingMask, root.Index, root.SomaRadius, options.Anisotropy)
	}

	paths, err := pathextract.Extract(workingMask, root.DBF, pdrfField, parents, pathextract.Options{
		Scale:          options.Scale,
		Const:          options.Const,
		Anisotropy:     options.Anisotropy,
		SomaMode:       somaMode,
		Root:           root.Index,
		SomaRadius:     root.SomaRadius,
		PathDownsample: options.PathDownsample,
	})
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		// Soma ball invalidation cleared the whole object before any path
		// was extracted: the skeleton is the root alone.
		paths = [][]int{{root.Index}}
	}

	vertices, edges, radii := skeltree.Assemble(paths, root.Index, root.Mask.Shape, root.DBF)

	return &Skeleton{Vertices: vertices, Edges: edges, Radii: radii}, nil
}

// validateOptions checks the ranges spec.md section 7 calls InvalidOption:
// PathDownsample < 1, PDRFExponent == 0, or any negative physical-unit
// option.
func validateOptions(o Options) error {
	switch {
	case o.PathDownsample < 1:
		return ErrInvalidOption
	case o.PDRFExponent == 0:
		return ErrInvalidOption
	case o.Scale < 0, o.Const < 0:
		return ErrInvalidOption
	case o.SomaDetectionThreshold < 0:
		return ErrInvalidOption
	case o.PDRFScale < 0:
		return ErrInvalidOption
	case o.SomaInvalidationScale < 0, o.SomaInvalidationConst < 0:
		return ErrInvalidOption
	case o.Anisotropy.X <= 0 || o.Anisotropy.Y <= 0 || o.Anisotropy.Z <= 0:
		return ErrInvalidOption
	}

	return nil
}

package teasar

import (
	"github.com/voxelskel/teasar/pdrf"
	"github.com/voxelskel/teasar/rootselect"
	"github.com/voxelskel/teasar/voxel"
)

// Options configures Skeletonize. Build one with DefaultOptions and zero or
// more Option functions, or pass Option values directly to Skeletonize.
type Options struct {
	// Scale and Const set the rolling-cube invalidation radius:
	// max(DBF[v]*Scale, Const) / anisotropy_axis.
	Scale float32
	Const float32

	// Anisotropy is the grid's physical voxel spacing.
	Anisotropy voxel.Anisotropy

	// SomaDetectionThreshold: objects whose max(DBF) exceeds this switch to
	// soma-mode root selection.
	SomaDetectionThreshold float32

	// PDRFScale and PDRFExponent parameterize the boundary penalty term
	// (pdrf.Options).
	PDRFScale    float32
	PDRFExponent uint32

	// SomaInvalidationScale and SomaInvalidationConst set the soma
	// suppression/ball-invalidation radius: dbf_max*Scale + Const.
	SomaInvalidationScale float32
	SomaInvalidationConst float32

	// PathDownsample is the stride applied to each extracted path (>= 1).
	PathDownsample uint32

	// EDT recomputes a Distance-to-Boundary Field over a (possibly
	// hole-filled) mask; used only in soma mode. Required if the caller
	// wants soma-mode objects to be handled — see WithEDT.
	EDT rootselect.EDTFunc

	// FillHoles performs topological hole-filling; used only in soma mode.
	// Required if the caller wants soma-mode objects to be handled — see
	// WithFillHoles.
	FillHoles rootselect.FillHolesFunc
}

// Option mutates an Options in place, following the functional-options
// pattern used throughout this module's dependencies.
type Option func(*Options)

// DefaultOptions returns the spec-documented defaults. EDT and FillHoles are
// left nil: callers whose objects might trigger soma mode must supply both
// via WithEDT/WithFillHoles, or Skeletonize returns ErrInvalidOption.
func DefaultOptions() Options {
	return Options{
		Scale:                  10,
		Const:                  10,
		Anisotropy:             voxel.DefaultAnisotropy(),
		SomaDetectionThreshold: 5000,
		PDRFScale:              5000,
		PDRFExponent:           16,
		SomaInvalidationScale:  0.5,
		SomaInvalidationConst:  0,
		PathDownsample:         1,
	}
}

// WithScale sets the rolling-cube invalidation multiplier.
func WithScale(scale float32) Option {
	return func(o *Options) { o.Scale = scale }
}

// WithConst sets the rolling-cube invalidation floor, in physical units.
func WithConst(c float32) Option {
	return func(o *Options) { o.Const = c }
}

// WithAnisotropy sets the grid's physical voxel spacing.
func WithAnisotropy(aniso voxel.Anisotropy) Option {
	return func(o *Options) { o.Anisotropy = aniso }
}

// WithSomaDetectionThreshold sets the max(DBF) threshold above which root
// selection switches to soma mode.
func WithSomaDetectionThreshold(threshold float32) Option {
	return func(o *Options) { o.SomaDetectionThreshold = threshold }
}

// WithPDRFScale sets the boundary-penalty scale term.
func WithPDRFScale(scale float32) Option {
	return func(o *Options) { o.PDRFScale = scale }
}

// WithPDRFExponent sets the boundary-penalty exponent. Must be nonzero;
// checked by Skeletonize, not here (spec.md section 7: option validation
// happens as a batch, not per-option).
func WithPDRFExponent(exponent uint32) Option {
	return func(o *Options) { o.PDRFExponent = exponent }
}

// WithSomaInvalidationScale sets the soma radius multiplier.
func WithSomaInvalidationScale(scale float32) Option {
	return func(o *Options) { o.SomaInvalidationScale = scale }
}

// WithSomaInvalidationConst sets the soma radius floor, in physical units.
func WithSomaInvalidationConst(c float32) Option {
	return func(o *Options) { o.SomaInvalidationConst = c }
}

// WithPathDownsample sets the per-path stride. Must be >= 1; checked by
// Skeletonize.
func WithPathDownsample(stride uint32) Option {
	return func(o *Options) { o.PathDownsample = stride }
}

// WithEDT supplies the Euclidean distance transform collaborator used to
// recompute DBF in soma mode.
func WithEDT(edt rootselect.EDTFunc) Option {
	return func(o *Options) { o.EDT = edt }
}

// WithFillHoles supplies the topological hole-filling collaborator used in
// soma mode before DBF is recomputed.
func WithFillHoles(fillHoles rootselect.FillHolesFunc) Option {
	return func(o *Options) { o.FillHoles = fillHoles }
}

// pdrfOptions projects the subset of Options that pdrf.Build needs.
func (o Options) pdrfOptions() pdrf.Options {
	return pdrf.Options{Scale: o.PDRFScale, Exponent: o.PDRFExponent}
}

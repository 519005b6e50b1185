package teasar

import "errors"

var (
	// ErrShapeMismatch is returned when mask and dbf do not share a Shape.
	ErrShapeMismatch = errors.New("teasar: mask and dbf shapes differ")

	// ErrInvalidOption is returned when an Option resolves to an out-of-range
	// value: PathDownsample < 1, PDRFExponent == 0, or any negative
	// physical-unit option.
	ErrInvalidOption = errors.New("teasar: invalid option value")

	// ErrNonFinite is returned when dbf's maximum is non-positive or dbf
	// contains a NaN, for a non-empty mask.
	ErrNonFinite = errors.New("teasar: dbf contains a non-finite or non-positive maximum")
)

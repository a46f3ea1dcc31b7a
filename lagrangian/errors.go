package lagrangian

import "errors"

var (
	// ErrDimensionMismatch indicates a multiplier or reduced-cost vector whose
	// length does not match the incidence it is used with.
	ErrDimensionMismatch = errors.New("lagrangian: dimension mismatch")

	// ErrBadConfig indicates an ascent configuration outside its domain.
	ErrBadConfig = errors.New("lagrangian: invalid configuration")
)

package greedy

import "errors"

// ErrDimensionMismatch indicates multipliers or masks whose length does not
// match the incidence.
var ErrDimensionMismatch = errors.New("greedy: dimension mismatch")

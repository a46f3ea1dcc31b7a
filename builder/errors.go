// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w ("RandomSparse: rows=0 < min=1: ...").
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooSmall indicates that a size parameter (rows, cols, parts, span) is
// below the minimum the constructor accepts.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrInvalidDensity indicates that a density/probability lies outside (0,1].
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be supplied).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownFixture indicates that Fixture was asked for a name it does not know.
var ErrUnknownFixture = errors.New("builder: unknown fixture")

// ErrConstructFailed indicates that a constructor could not append its columns
// to the instance, or that the final Prepare rejected the result.
var ErrConstructFailed = errors.New("builder: construction failed")

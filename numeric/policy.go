// Package numeric - the single place where approximate comparisons live.
//
// Every bound/cost comparison in the solver goes through a Policy value:
//   - Closes:     "does this lower bound certify that incumbent?" (relative ratio).
//   - Less:       strict improvement of a cost, immune to summation noise.
//   - Stagnated:  absolute AND relative improvement below the exit thresholds.
//
// Design principles:
//   - Deterministic, side-effect free, no allocations.
//   - The zero Policy is not useful; start from DefaultPolicy().
//   - Costs are stabilized with Round1e9 before they leave the solver.
package numeric

import "math"

// Defaults of the CFT parameter set.
const (
	// DefaultEpsilon is the relative acceptance ratio used by Closes:
	// a lower bound lb certifies an incumbent ub when lb >= Epsilon*ub.
	DefaultEpsilon = 0.999

	// DefaultAbsExit is the minimum absolute improvement that still counts as progress.
	DefaultAbsExit = 1.0

	// DefaultRelExit is the minimum relative improvement that still counts as progress.
	DefaultRelExit = 0.001

	// Noise is the relative tolerance that absorbs floating point summation error
	// in strict comparisons (Less). It is not configurable.
	Noise = 1e-9
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Policy bundles the tolerances of one solve call.
type Policy struct {
	// Epsilon in (0, 1]: relative acceptance ratio for gap closing.
	Epsilon float64
	// AbsExit ≥ 0: absolute improvement threshold for stagnation.
	AbsExit float64
	// RelExit ≥ 0: relative improvement threshold for stagnation.
	RelExit float64
}

// DefaultPolicy returns the default tolerances (0.999, 1.0, 0.001).
func DefaultPolicy() Policy {
	return Policy{
		Epsilon: DefaultEpsilon,
		AbsExit: DefaultAbsExit,
		RelExit: DefaultRelExit,
	}
}

// Valid reports whether every field lies in its domain.
func (p Policy) Valid() bool {
	if math.IsNaN(p.Epsilon) || p.Epsilon <= 0 || p.Epsilon > 1 {
		return false
	}
	if math.IsNaN(p.AbsExit) || p.AbsExit < 0 || math.IsInf(p.AbsExit, 0) {
		return false
	}
	if math.IsNaN(p.RelExit) || p.RelExit < 0 || math.IsInf(p.RelExit, 0) {
		return false
	}

	return true
}

// Closes reports whether lb certifies ub: lb >= Epsilon*ub.
// For ub ≤ 0 (all-zero-cost covers) the ratio degenerates, so lb ≥ ub−Noise is used.
// An infinite ub (no incumbent yet) is never closed.
//
// Complexity: O(1).
func (p Policy) Closes(lb, ub float64) bool {
	if math.IsInf(ub, 1) || math.IsNaN(lb) || math.IsNaN(ub) {
		return false
	}
	if ub <= 0 {
		return lb >= ub-Noise
	}

	return lb >= p.Epsilon*ub
}

// Less reports whether a is strictly lower than b beyond summation noise.
// Ties (|a−b| within Noise relative to max(1,|b|)) are not improvements.
//
// Complexity: O(1).
func (p Policy) Less(a, b float64) bool {
	if math.IsInf(b, 1) {
		return !math.IsInf(a, 1)
	}
	scale := math.Max(1, math.Abs(b))

	return a < b-Noise*scale
}

// Stagnated reports whether an improvement measured against reference is
// below BOTH the absolute and the relative threshold.
// An infinite improvement (first measurement) never stagnates.
//
// Complexity: O(1).
func (p Policy) Stagnated(improvement, reference float64) bool {
	if math.IsInf(improvement, 1) || math.IsNaN(improvement) {
		return false
	}
	var rel float64
	switch {
	case reference != 0:
		rel = improvement / math.Abs(reference)
	case improvement > 0:
		rel = math.Inf(1)
	default:
		rel = 0
	}

	return improvement < p.AbsExit && rel < p.RelExit
}

// Round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps reported costs stable across platforms without affecting decisions.
//
// Complexity: O(1).
func Round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

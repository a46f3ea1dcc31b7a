package fixing

import (
	"math"

	"github.com/katalvlaran/setcover/numeric"
)

// Schedule drives the refinement fixing fraction.
//
// The fraction starts at Min. After every round it is multiplied by Alpha,
// unless the incumbent improved beyond the stagnation thresholds of the
// policy, in which case it falls back to Min.
type Schedule struct {
	min   float64
	alpha float64
	pol   numeric.Policy
	frac  float64
	prev  float64
}

// NewSchedule returns a schedule starting at minFixing.
func NewSchedule(minFixing, alpha float64, pol numeric.Policy) *Schedule {
	return &Schedule{
		min:   minFixing,
		alpha: alpha,
		pol:   pol,
		frac:  minFixing,
		prev:  math.Inf(1),
	}
}

// Next records the incumbent cost after a round and returns the fraction for
// the next one.
func (s *Schedule) Next(incumbent float64) float64 {
	improvement := s.prev - incumbent
	switch {
	case math.IsInf(s.prev, 1):
		s.frac = s.min
	case improvement > 0 && !s.pol.Stagnated(improvement, s.prev):
		s.frac = s.min
	default:
		s.frac *= s.alpha
	}
	s.prev = incumbent

	return s.frac
}

// Fraction returns the current fraction.
func (s *Schedule) Fraction() float64 { return s.frac }

// Exhausted reports whether the fraction reached 1: everything would be fixed.
func (s *Schedule) Exhausted() bool { return s.frac >= 1 }

package instance

import (
	"math"
	"slices"
)

// Solution is a selection of column indices with its total cost.
//
// The zero-selection state is explicit: EmptySolution has no columns and an
// infinite cost, so "no solution yet" never looks like a zero-cost cover.
// LowerBound is the Lagrangian bound the solution was derived with, or −Inf.
type Solution struct {
	Columns    []int
	Cost       float64
	LowerBound float64
}

// EmptySolution returns the "no solution yet" value.
func EmptySolution() Solution {
	return Solution{Cost: math.Inf(1), LowerBound: math.Inf(-1)}
}

// IsEmpty reports whether s is the "no solution yet" value.
func (s Solution) IsEmpty() bool {
	return len(s.Columns) == 0 && math.IsInf(s.Cost, 1)
}

// Clone returns a deep copy.
func (s Solution) Clone() Solution {
	s.Columns = slices.Clone(s.Columns)
	return s
}

// Contains reports whether column j is selected.
func (s Solution) Contains(j int) bool {
	return slices.Contains(s.Columns, j)
}

// Evaluate builds a Solution over a Prepared instance from a column list.
// The list is copied, sorted and deduplicated; Cost is recomputed from the
// instance so stale costs in caller data are never trusted.
//
// Errors: ErrNotPrepared, ErrColumnOutOfRange.
func (in *Instance) Evaluate(cols []int) (Solution, error) {
	sp, err := in.Sparse()
	if err != nil {
		return EmptySolution(), err
	}
	sel := slices.Clone(cols)
	slices.Sort(sel)
	sel = slices.Compact(sel)
	cost, err := sp.CostOf(sel)
	if err != nil {
		return EmptySolution(), err
	}

	return Solution{Columns: sel, Cost: cost, LowerBound: math.Inf(-1)}, nil
}

// Feasible verifies s against the Prepared instance: every column exists and
// the union of their elements is the whole universe.
//
// Errors: ErrNotPrepared, ErrColumnOutOfRange, ErrUncovered.
func (in *Instance) Feasible(s Solution) error {
	sp, err := in.Sparse()
	if err != nil {
		return err
	}

	return sp.Check(s.Columns)
}

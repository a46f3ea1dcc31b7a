package cft

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/setcover/instance"
)

// Phase is the state of the solve state machine.
type Phase uint8

const (
	PhaseInit Phase = iota
	PhaseDualAscent
	PhasePrimalConstruct
	PhaseRefine
	PhaseDone
)

// String renders the phase for logs.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseDualAscent:
		return "dual-ascent"
	case PhasePrimalConstruct:
		return "primal-construct"
	case PhaseRefine:
		return "refine"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Status tells which termination condition moved the solve to PhaseDone.
type Status uint8

const (
	// StatusGapClosed: Beta·LB certifies the incumbent.
	StatusGapClosed Status = iota
	// StatusFixingExhausted: the fixing fraction reached 1.
	StatusFixingExhausted
	// StatusNoFreeRows: the selected fixing covered every row.
	StatusNoFreeRows
	// StatusMaxRounds: the round cap was hit.
	StatusMaxRounds
	// StatusTimeLimit: the wall-clock budget expired.
	StatusTimeLimit
	// StatusCanceled: the context was cancelled.
	StatusCanceled
)

// String renders the status for logs.
func (s Status) String() string {
	switch s {
	case StatusGapClosed:
		return "gap-closed"
	case StatusFixingExhausted:
		return "fixing-exhausted"
	case StatusNoFreeRows:
		return "no-free-rows"
	case StatusMaxRounds:
		return "max-rounds"
	case StatusTimeLimit:
		return "time-limit"
	case StatusCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Result is the outcome of Solve. It is owned by the caller.
type Result struct {
	// Solution is the best cover found; Columns ascending, LowerBound set.
	Solution instance.Solution
	// LowerBound is the best Lagrangian bound of the full instance,
	// clamped to the solution cost.
	LowerBound float64
	// Multipliers attain LowerBound (one per element).
	Multipliers []float64
	// Rounds is the number of refinement rounds run.
	Rounds int
	// Status is the termination condition.
	Status Status
	// Elapsed is the wall-clock time of the solve.
	Elapsed time.Duration
}

// Columns returns a copy of the selected column indices, ascending.
func (r Result) Columns() []int { return slices.Clone(r.Solution.Columns) }

// Cost returns the total cost of the selected columns.
func (r Result) Cost() float64 { return r.Solution.Cost }

// Gap returns (cost − LowerBound)/cost, or 0 for a zero-cost cover.
func (r Result) Gap() float64 {
	if r.Solution.Cost <= 0 {
		return 0
	}

	return (r.Solution.Cost - r.LowerBound) / r.Solution.Cost
}

// RoundStats describes one finished refinement round.
type RoundStats struct {
	Round        int
	Fraction     float64       // fixing fraction the round ran with
	FixedColumns int           // columns forced in by refinement
	FreeRows     int           // rows left open by them
	RoundBound   float64       // bound of the restricted problem plus fixed cost
	LowerBound   float64       // best bound of the full instance
	Incumbent    float64       // best cover cost after the round
	Improved     bool          // the round produced a new incumbent
	Elapsed      time.Duration // since Solve started
}

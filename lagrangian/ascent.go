// Package lagrangian - projected subgradient ascent on the Lagrangian dual.
//
// Ascend maximises L(u) = Σu_i + Σ_j min(0, c_j − Σ_{i∈j} u_i) over u ≥ 0:
//
//   - The step is Held–Karp: t = f·(Cutoff − L(u))/||g||², g_i = 1 − cov_i,
//     where cov counts the non-redundant negative columns over row i.
//   - f is halved after PlateauWindow consecutive non-improving iterations.
//   - Every ExitPeriod iterations the exit manager stops the ascent when the
//     best bound improved less than BOTH the absolute and relative thresholds.
//
// Core engines (see core.go) ascend on the core and price the full incidence
// on a growing schedule. Only full pricings feed Ascent.LowerBound; a core
// bound that closes the cutoff is verified by an immediate full pricing.
//
// Contracts:
//   - u0 has one entry per row and is never modified.
//   - Deadline and cancellation are stop reasons, not errors.
//
// Complexity:
//   - One iteration: O(nnz + k log k) on the working incidence.
//   - One full pricing: O(nnz) of the full incidence.
//
// Determinism: no RNG; ties in the relaxed selection break by column index.
package lagrangian

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/setcover/numeric"
)

const (
	// DefaultStepFactor is the initial step factor f of the Held–Karp step.
	DefaultStepFactor = 0.1

	// DefaultPlateauWindow is the number of consecutive non-improving
	// iterations after which f is halved.
	DefaultPlateauWindow = 250

	// DefaultExitPeriod is the number of iterations between two stagnation checks.
	DefaultExitPeriod = 300

	// minAscentIter floors the implied iteration budget 10·rows on tiny instances.
	minAscentIter = 500

	// deadlineMask checks the wall clock every 16 iterations.
	deadlineMask = 15
)

// Stop tells why an ascent ended.
type Stop uint8

const (
	// StopMaxIter means the iteration budget was exhausted.
	StopMaxIter Stop = iota
	// StopClosed means the best bound certifies the cutoff.
	StopClosed
	// StopOptimal means the subgradient vanished: the relaxed selection is a cover.
	StopOptimal
	// StopStagnated means the bound improved less than both exit thresholds over a period.
	StopStagnated
	// StopNoStep means the step size collapsed to zero.
	StopNoStep
	// StopDeadline means the wall-clock budget expired.
	StopDeadline
	// StopCanceled means the context was cancelled.
	StopCanceled
)

// String renders the stop reason for logs.
func (s Stop) String() string {
	switch s {
	case StopMaxIter:
		return "max-iter"
	case StopClosed:
		return "closed"
	case StopOptimal:
		return "optimal"
	case StopStagnated:
		return "stagnated"
	case StopNoStep:
		return "no-step"
	case StopDeadline:
		return "deadline"
	case StopCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("stop(%d)", uint8(s))
	}
}

// Interrupted reports whether the ascent was cut short by time or cancellation.
func (s Stop) Interrupted() bool { return s == StopDeadline || s == StopCanceled }

// Config controls one subgradient ascent.
type Config struct {
	// Cutoff is the incumbent cost the step aims at. +Inf selects the
	// diminishing schedule t = f / (1 + iter).
	Cutoff float64
	// StepFactor f > 0.
	StepFactor float64
	// PlateauWindow ≥ 1: non-improving iterations before halving f.
	PlateauWindow int
	// ExitPeriod ≥ 1: iterations between stagnation checks.
	ExitPeriod int
	// MaxIter ≥ 0; 0 means max(10·rows, 500).
	MaxIter int
	// Policy decides gap closing and stagnation.
	Policy numeric.Policy
	// Deadline is an absolute wall-clock limit; zero disables it.
	Deadline time.Time
	// Progress, when non-nil, observes every iteration.
	Progress func(iter int, lb, best, factor float64)
}

// DefaultConfig returns the CFT defaults with no cutoff and no deadline.
func DefaultConfig() Config {
	return Config{
		Cutoff:        math.Inf(1),
		StepFactor:    DefaultStepFactor,
		PlateauWindow: DefaultPlateauWindow,
		ExitPeriod:    DefaultExitPeriod,
		Policy:        numeric.DefaultPolicy(),
	}
}

// Validate reports ErrBadConfig for out-of-domain fields.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Cutoff):
		return fmt.Errorf("cutoff is NaN: %w", ErrBadConfig)
	case !(c.StepFactor > 0) || math.IsInf(c.StepFactor, 0):
		return fmt.Errorf("step factor %g: %w", c.StepFactor, ErrBadConfig)
	case c.PlateauWindow < 1:
		return fmt.Errorf("plateau window %d: %w", c.PlateauWindow, ErrBadConfig)
	case c.ExitPeriod < 1:
		return fmt.Errorf("exit period %d: %w", c.ExitPeriod, ErrBadConfig)
	case c.MaxIter < 0:
		return fmt.Errorf("max iter %d: %w", c.MaxIter, ErrBadConfig)
	case !c.Policy.Valid():
		return fmt.Errorf("policy %+v: %w", c.Policy, ErrBadConfig)
	}

	return nil
}

// Ascent is the outcome of Engine.Ascend.
type Ascent struct {
	// LowerBound is the best L(u) of the full incidence (−Inf if none was priced).
	LowerBound float64
	// Multipliers attain LowerBound (the start point if nothing was priced).
	Multipliers []float64
	// StepFactor is the factor at exit, to be carried into the next ascent.
	StepFactor float64
	// Iterations actually evaluated.
	Iterations int
	// Pricings counts full-incidence pricings of a core engine.
	Pricings int
	// Stop is the exit reason.
	Stop Stop
}

// Ascend runs projected subgradient ascent from u0 (not modified).
//
// Each iteration prices u, records the best bound, stops once the best bound
// closes cfg.Cutoff, and otherwise steps along the subgradient with
// t = f·(Cutoff − L(u))/||g||².
//
// Errors: ErrBadConfig, ErrDimensionMismatch. Deadline and cancellation are
// not errors; they are reported through Ascent.Stop with the best bound so far.
//
// Complexity: O(MaxIter · (nnz + k log k)).
func (e *Engine) Ascend(ctx context.Context, u0 []float64, cfg Config) (Ascent, error) {
	if err := cfg.Validate(); err != nil {
		return Ascent{}, err
	}
	nrows := e.Sparse().NumRows()
	if len(u0) != nrows {
		return Ascent{}, fmt.Errorf("ascend: %d multipliers for %d rows: %w", len(u0), nrows, ErrDimensionMismatch)
	}

	maxIter := cfg.MaxIter
	if maxIter == 0 {
		maxIter = max(10*nrows, minAscentIter)
	}
	haveCutoff := !math.IsInf(cfg.Cutoff, 1)
	cored := e.Cored()

	var tick uint64
	useDeadline := !cfg.Deadline.IsZero()
	checkDeadline := func() bool {
		tick++
		if !useDeadline || (tick&deadlineMask) != 1 {
			return false
		}
		return !time.Now().Before(cfg.Deadline)
	}

	var (
		u        = slices.Clone(u0)
		out      = Ascent{LowerBound: math.Inf(-1), Multipliers: slices.Clone(u0), Stop: StopMaxIter}
		factor   = cfg.StepFactor
		plat     = plateau{window: cfg.PlateauWindow, best: math.Inf(-1)}
		exit     = exitManager{period: cfg.ExitPeriod, next: cfg.ExitPeriod, prev: math.Inf(-1)}
		pricing  = newPricingSchedule(nrows)
		workBest = math.Inf(-1) // best working bound since the last full pricing
		workMult = slices.Clone(u0)
		seenBest = math.Inf(-1) // best working bound overall, for the exit manager
		iter     int
		lb       float64
		norm2    float64
		step     float64
		err      error
	)

	// reprice prices the full incidence at at and restarts the working best.
	reprice := func(at []float64) (float64, bool, error) {
		full, err := e.Reprice(ctx, at)
		if err != nil {
			return 0, false, err
		}
		out.Pricings++
		if full > out.LowerBound {
			out.LowerBound = full
			copy(out.Multipliers, at)
		}
		workBest = math.Inf(-1)

		return full, cfg.Policy.Closes(out.LowerBound, cfg.Cutoff), nil
	}

	for iter = 0; iter < maxIter; iter++ {
		if ctx.Err() != nil {
			out.Stop = StopCanceled
			break
		}
		if checkDeadline() {
			out.Stop = StopDeadline
			break
		}

		lb, err = e.Evaluate(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				out.Stop = StopCanceled
				break
			}
			return Ascent{}, err
		}
		out.Iterations++
		seenBest = math.Max(seenBest, lb)
		if lb > workBest {
			workBest = lb
			copy(workMult, u)
			if !cored {
				out.LowerBound = lb
				copy(out.Multipliers, u)
			}
		}
		if cfg.Progress != nil {
			cfg.Progress(iter, lb, workBest, factor)
		}

		if !cored && cfg.Policy.Closes(workBest, cfg.Cutoff) {
			out.Stop = StopClosed
			break
		}
		if cored && cfg.Policy.Closes(lb, cfg.Cutoff) {
			// A core bound certifies nothing until the full incidence agrees.
			_, closed, err := reprice(u)
			if err != nil {
				if ctx.Err() != nil {
					out.Stop = StopCanceled
					break
				}
				return Ascent{}, err
			}
			if closed {
				out.Stop = StopClosed
				break
			}
		}
		norm2 = e.Direction(u)
		if norm2 == 0 {
			out.Stop = StopOptimal
			break
		}
		if exit.stagnated(iter, seenBest, cfg.Policy) {
			out.Stop = StopStagnated
			break
		}
		if plat.observe(lb) {
			factor /= 2
		}

		if haveCutoff {
			step = factor * math.Max(cfg.Cutoff-lb, 0) / norm2
		} else {
			step = factor / (1.0 + float64(iter))
		}
		if step == 0 || math.IsNaN(step) {
			out.Stop = StopNoStep
			break
		}
		e.Move(u, step)

		if cored && pricing.due(iter) && iter < maxIter-1 {
			coreBest := workBest
			full, closed, err := reprice(u)
			if err != nil {
				if ctx.Err() != nil {
					out.Stop = StopCanceled
					break
				}
				return Ascent{}, err
			}
			pricing.update(coreBest, full, cfg.Cutoff)
			if closed {
				out.Stop = StopClosed
				break
			}
		}
	}

	// The best core point since the last pricing still owes a full pricing.
	if cored && out.Stop != StopCanceled && out.Stop != StopClosed && workBest > out.LowerBound {
		if _, _, err = reprice(workMult); err != nil && ctx.Err() == nil {
			return Ascent{}, err
		}
	}
	out.StepFactor = factor

	return out, nil
}

// plateau halves the step factor after window consecutive non-improving bounds.
type plateau struct {
	window int
	since  int
	best   float64
}

func (p *plateau) observe(lb float64) bool {
	if lb > p.best {
		p.best = lb
		p.since = 0
		return false
	}
	p.since++
	if p.since >= p.window {
		p.since = 0
		return true
	}

	return false
}

// exitManager compares the best bound with the one a period earlier.
type exitManager struct {
	period int
	next   int
	prev   float64
}

func (m *exitManager) stagnated(iter int, best float64, pol numeric.Policy) bool {
	if iter != m.next {
		return false
	}
	m.next += m.period
	improvement := best - m.prev
	m.prev = best

	return pol.Stagnated(improvement, best)
}

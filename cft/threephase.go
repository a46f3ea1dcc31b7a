// Package cft - three-phase loop of one refinement round.
//
// threePhase works on a restriction of the instance (the columns fixed by
// refinement already paid for) and repeats, until no row is left open:
//
//  1. Subgradient: ascent from the greedy multipliers, aimed at the best of
//     the local greedy cover and the incumbent minus the fixed cost.
//  2. Heuristic: HeurIters subgradient steps aimed at the incumbent, with a
//     greedy cover built at every point. Each improving cover is offered.
//  3. Inner fixing: the non-overlapping clearly profitable columns plus
//     max(rows/200, 1) greedy picks are forced in, the multipliers are
//     projected onto the rows left open and perturbed by a factor in [0.9, 1.1].
//
// Pricing:
//   - A restriction with more than (CoreRowFactor+CoreRowCover)·rows columns
//     is priced through a core (see lagrangian.TentativeCore). Phases 1-3
//     then run on the core; the ascent reprices the restriction periodically.
//   - Bounds reported back to the solver always come from full pricing.
//
// Contracts:
//   - Every cover found is lifted to base column indices before it is offered.
//   - Only round 0 (nothing fixed) yields a bound of the whole instance.
//
// Determinism: the perturbation draws from the round's own RNG stream.
package cft

import (
	"context"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/setcover/fixing"
	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/lagrangian"
)

// phaseOutcome is what one refinement round reports back to run.
type phaseOutcome struct {
	lb          float64   // first ascent bound; a full-instance bound only in round 0
	mult        []float64 // multipliers attaining lb (round 0 only)
	roundBound  float64   // first ascent bound plus the refinement fixed cost
	interrupted bool
}

// threePhase runs the three-phase loop on sub until no row is left open or
// the bound closes the incumbent of the current restriction.
func (s *solver) threePhase(ctx context.Context, sub *fixing.Subproblem, round int) phaseOutcome {
	var (
		out = phaseOutcome{lb: math.Inf(-1), roundBound: math.Inf(-1)}
		rng = roundRNG(s.opts.Seed, round)
		cur = sub
		u   []float64
	)

	for iter := 0; cur.FreeRows() > 0; iter++ {
		if _, stop := s.interrupted(ctx); stop {
			out.interrupted = true
			return out
		}
		sp := cur.Sparse
		eng := s.engine(sp)
		if u == nil {
			u = lagrangian.GreedyMultipliers(sp)
		}

		s.phase = PhasePrimalConstruct
		cols, cost, err := s.greedy.Cover(eng.Sparse(), u, nil)
		if err != nil {
			s.trace.debug("construction failed", zap.Error(err))
			return out
		}
		s.offer(cur.Lift(eng.Lift(cols)))
		cutoff := math.Min(cost, s.best.Cost-cur.FixedCost)

		s.phase = PhaseDualAscent
		asc, err := eng.Ascend(ctx, u, lagrangian.Config{
			Cutoff:        cutoff,
			StepFactor:    s.opts.StepFactor,
			PlateauWindow: s.opts.HeurIters,
			ExitPeriod:    lagrangian.DefaultExitPeriod,
			Policy:        s.pol,
			Deadline:      s.deadline,
			Progress:      s.trace.ascentProgress(),
		})
		if err != nil {
			s.trace.debug("ascent failed", zap.Error(err))
			return out
		}
		s.trace.ascentDone(asc, cutoff)
		if iter == 0 {
			out.roundBound = asc.LowerBound + cur.FixedCost
			if round == 0 {
				out.lb, out.mult = asc.LowerBound, slices.Clone(asc.Multipliers)
			}
		}
		if asc.Stop.Interrupted() {
			out.interrupted = true
			return out
		}
		if s.pol.Closes(asc.LowerBound, cutoff) {
			return out
		}

		s.phase = PhasePrimalConstruct
		hlb, uh, stopped := s.heuristic(ctx, cur, eng, asc.Multipliers, asc.StepFactor)
		if stopped {
			out.interrupted = true
			return out
		}
		if s.pol.Closes(hlb, s.best.Cost-cur.FixedCost) {
			return out
		}

		inner, ok := s.fixInner(ctx, sp, eng, uh)
		if !ok {
			return out
		}
		s.trace.debug("inner fixing",
			zap.Int("round", round),
			zap.Int("iter", iter),
			zap.Int("fixed", len(inner.Fixed)),
			zap.Int("free_rows", inner.FreeRows()),
			zap.Bool("core", eng.Cored()))
		u = inner.Project(uh)
		lagrangian.Perturb(u, rng)
		cur = cur.Nest(inner)
	}

	return out
}

// engine returns a core engine for wide incidences and a plain one otherwise.
func (s *solver) engine(sp *instance.Sparse) *lagrangian.Engine {
	if !lagrangian.UseCore(sp) {
		return lagrangian.NewEngine(sp, s.opts.Workers)
	}
	core, err := lagrangian.TentativeCore(sp, lagrangian.CoreRowCover)
	if err != nil {
		s.trace.debug("core selection failed", zap.Error(err))
		return lagrangian.NewEngine(sp, s.opts.Workers)
	}

	return lagrangian.NewCoreEngine(sp, core, s.opts.Workers)
}

// heuristic walks HeurIters subgradient steps from u0 aimed at the incumbent,
// building a greedy cover at every point with the columns that the current
// bound prices out forbidden. It returns the best bound seen, the multipliers
// of the last improving cover (u0 if none) and whether it was interrupted.
func (s *solver) heuristic(ctx context.Context, cur *fixing.Subproblem, eng *lagrangian.Engine, u0 []float64, factor float64) (float64, []float64, bool) {
	var (
		sp     = eng.Sparse()
		u      = slices.Clone(u0)
		uBest  = slices.Clone(u0)
		bestLB = math.Inf(-1)
	)
	for it := 0; it < s.opts.HeurIters; it++ {
		if it&15 == 0 {
			if _, stop := s.interrupted(ctx); stop {
				return bestLB, uBest, true
			}
		}
		lb, err := eng.Evaluate(ctx, u)
		if err != nil {
			return bestLB, uBest, true
		}
		bestLB = math.Max(bestLB, lb)
		target := s.best.Cost - cur.FixedCost
		if s.pol.Closes(bestLB, target) {
			break
		}

		norm2 := eng.Direction(u)
		mask, _ := fixing.FixOut(sp, eng.ReducedCosts(), lb, target, s.pol)
		if cols, _, err := s.greedy.Cover(sp, u, mask); err == nil && s.offer(cur.Lift(eng.Lift(cols))) {
			copy(uBest, u)
			target = s.best.Cost - cur.FixedCost
		}
		if norm2 == 0 {
			break
		}
		t := factor * math.Max(target-lb, 0) / norm2
		if t == 0 {
			break
		}
		eng.Move(u, t)
	}

	return bestLB, uBest, false
}

// fixInner forces the non-overlapping clearly profitable columns plus
// max(rows/200, 1) greedy picks, chosen on eng's working incidence, and
// returns the restriction of sp to the rows they leave open.
func (s *solver) fixInner(ctx context.Context, sp *instance.Sparse, eng *lagrangian.Engine, u []float64) (*fixing.Subproblem, bool) {
	work := eng.Sparse()
	if _, err := eng.Evaluate(ctx, u); err != nil {
		return nil, false
	}
	fix := fixing.NonOverlapping(work, eng.ReducedCosts())
	fix, err := s.greedy.Extend(work, u, fix, nil, len(fix)+max(sp.NumRows()/200, 1))
	if err != nil {
		s.trace.debug("inner fixing failed", zap.Error(err))
		return nil, false
	}
	inner, err := fixing.Restrict(sp, eng.Lift(fix))
	if err != nil {
		s.trace.debug("inner fixing failed", zap.Error(err))
		return nil, false
	}

	return inner, true
}

package cft

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/setcover/fixing"
	"github.com/katalvlaran/setcover/greedy"
	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/numeric"
)

// Solve runs the CFT heuristic on inst and returns the best cover found with
// the best Lagrangian lower bound of the full instance.
//
// inst is prepared first (a no-op when already Prepared) and only read
// afterwards. warm, when non-nil and feasible for the current instance, seeds
// the incumbent: the returned cover is never more expensive than it. warm is
// never modified; an infeasible warm start (for instance one that predates a
// column introducing a new element) is ignored.
//
// Termination (checked at round boundaries): Beta·LB certifies the incumbent,
// the fixing fraction reaches 1, fixing leaves no free row, MaxRounds, the
// time limit, or ctx cancellation. Hitting the time limit after a cover exists
// is not an error; Result.Status tells what happened.
//
// Errors:
//   - ErrInvalidInput: nil instance or invalid options;
//   - ErrInfeasibleInstance: some element is covered by no column;
//   - ErrInfeasibleInstance joined with ErrTimeLimit or ctx.Err(): the solve
//     was stopped before any cover was built.
func Solve(ctx context.Context, inst *instance.Instance, warm *instance.Solution, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Result{}, err
	}
	if inst == nil {
		return Result{}, fmt.Errorf("cft: nil instance: %w", ErrInvalidInput)
	}
	if err := inst.Prepare(); err != nil {
		return Result{}, fmt.Errorf("cft: %w", err)
	}
	sp, err := inst.Sparse()
	if err != nil {
		return Result{}, fmt.Errorf("cft: %w", err)
	}

	s := newSolver(o, sp)
	s.adoptWarm(warm)
	status, err := s.run(ctx)
	if err != nil {
		return Result{}, err
	}

	return s.result(ctx, status)
}

// solver carries the state of one Solve call.
type solver struct {
	opts     Options
	pol      numeric.Policy
	sp       *instance.Sparse
	trace    *tracer
	greedy   *greedy.Greedy
	scorer   fixing.Scorer
	start    time.Time
	deadline time.Time
	phase    Phase
	rounds   int

	best instance.Solution // incumbent over the full instance
	lb   float64           // best bound of the full instance
	mult []float64         // multipliers attaining lb
}

func newSolver(o Options, sp *instance.Sparse) *solver {
	s := &solver{
		opts:   o,
		pol:    o.policy(),
		sp:     sp,
		trace:  newTracer(o.Logger, o.Verbose),
		greedy: greedy.New(),
		scorer: o.Scorer,
		start:  time.Now(),
		best:   instance.EmptySolution(),
		mult:   make([]float64, sp.NumRows()),
	}
	if s.scorer == nil {
		s.scorer = fixing.DeltaScorer{}
	}
	if o.TimeLimit > 0 {
		s.deadline = s.start.Add(o.TimeLimit)
	}

	return s
}

// adoptWarm installs a feasible warm start as the incumbent.
func (s *solver) adoptWarm(warm *instance.Solution) {
	if warm == nil || warm.IsEmpty() {
		return
	}
	cols := slices.Clone(warm.Columns)
	slices.Sort(cols)
	cols = slices.Compact(cols)
	if err := s.sp.Check(cols); err != nil {
		s.trace.warn("warm start ignored", zap.Error(err))
		return
	}
	cost, _ := s.sp.CostOf(cols)
	s.best = instance.Solution{Columns: cols, Cost: cost, LowerBound: math.Inf(-1)}
	s.trace.info("warm start", zap.Float64("cost", cost), zap.Int("columns", len(cols)))
}

// interrupted checks the wall clock and ctx.
func (s *solver) interrupted(ctx context.Context) (Status, bool) {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return StatusTimeLimit, true
		}
		return StatusCanceled, true
	}
	if !s.deadline.IsZero() && !time.Now().Before(s.deadline) {
		return StatusTimeLimit, true
	}

	return 0, false
}

// offer proposes a base-index cover; it becomes the incumbent on strict
// improvement. Every offer is shown to an observing scorer.
func (s *solver) offer(cols []int) bool {
	if obs, ok := s.scorer.(fixing.Observer); ok {
		obs.Observe(cols)
	}
	cost, err := s.sp.CostOf(cols)
	if err != nil || !s.pol.Less(cost, s.best.Cost) {
		return false
	}
	s.best = instance.Solution{Columns: cols, Cost: cost, LowerBound: math.Inf(-1)}
	s.trace.debug("incumbent", zap.Float64("cost", cost), zap.Stringer("phase", s.phase))

	return true
}

// run is the state machine Init → DualAscent → PrimalConstruct → Refine → Done.
func (s *solver) run(ctx context.Context) (Status, error) {
	s.phase = PhaseInit
	defer func() { s.phase = PhaseDone }()

	if ctx.Err() != nil {
		st, _ := s.interrupted(ctx)
		return st, nil
	}
	if s.sp.NumRows() == 0 {
		s.offer([]int{})
		s.lb = 0
		return StatusGapClosed, nil
	}

	// A raw-cost construction makes a cover available before any budget check.
	s.phase = PhasePrimalConstruct
	cols, _, err := s.greedy.Cover(s.sp, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("cft: initial construction: %w", err)
	}
	s.offer(cols)

	var (
		sched = fixing.NewSchedule(s.opts.MinFixing, s.opts.Alpha, s.pol)
		sub   = fixing.Identity(s.sp)
		frac  float64
	)
	for round := 0; ; round++ {
		if st, stop := s.interrupted(ctx); stop {
			return st, nil
		}

		prev := s.best.Cost
		out := s.threePhase(ctx, sub, round)
		s.rounds++
		if round == 0 && out.lb > s.lb {
			s.lb, s.mult = out.lb, out.mult
		}
		s.emitRound(RoundStats{
			Round:        round,
			Fraction:     frac,
			FixedColumns: len(sub.Fixed),
			FreeRows:     sub.FreeRows(),
			RoundBound:   out.roundBound,
			LowerBound:   s.lb,
			Incumbent:    s.best.Cost,
			Improved:     s.best.Cost < prev,
			Elapsed:      time.Since(s.start),
		})

		if out.interrupted {
			if st, stop := s.interrupted(ctx); stop {
				return st, nil
			}
		}
		if s.pol.Closes(s.opts.Beta*s.lb, s.best.Cost) {
			return StatusGapClosed, nil
		}
		if s.opts.MaxRounds > 0 && s.rounds >= s.opts.MaxRounds {
			return StatusMaxRounds, nil
		}

		s.phase = PhaseRefine
		sched.Next(s.best.Cost)
		if sched.Exhausted() {
			return StatusFixingExhausted, nil
		}
		frac = sched.Fraction()
		scores := s.scorer.Score(s.sp, s.best.Columns, s.mult)
		fixed, err := fixing.Select(s.sp, s.best.Columns, scores, frac)
		if err != nil {
			return 0, fmt.Errorf("cft: refinement: %w", err)
		}
		if sub, err = fixing.Restrict(s.sp, fixed); err != nil {
			return 0, fmt.Errorf("cft: refinement: %w", err)
		}
		if sub.FreeRows() == 0 {
			return StatusNoFreeRows, nil
		}
	}
}

func (s *solver) emitRound(rs RoundStats) {
	s.trace.info("round",
		zap.Int("round", rs.Round),
		zap.Float64("fraction", rs.Fraction),
		zap.Int("free_rows", rs.FreeRows),
		zap.Float64("lb", rs.LowerBound),
		zap.Float64("incumbent", rs.Incumbent),
		zap.Duration("elapsed", rs.Elapsed))
	if s.opts.OnRound != nil {
		s.opts.OnRound(rs)
	}
}

// result packages the incumbent. The bound is clamped to the cost so that
// LowerBound ≤ Cost holds at every termination point.
func (s *solver) result(ctx context.Context, status Status) (Result, error) {
	if s.best.IsEmpty() {
		cause := ctx.Err()
		if status == StatusTimeLimit || cause == nil {
			cause = errors.Join(ErrTimeLimit, cause)
		}
		return Result{}, fmt.Errorf("cft: no feasible cover found (%s): %w: %w", status, ErrInfeasibleInstance, cause)
	}
	if err := s.sp.Check(s.best.Columns); err != nil {
		return Result{}, fmt.Errorf("cft: incumbent lost feasibility: %w", err)
	}

	var (
		cost = numeric.Round1e9(s.best.Cost)
		lb   = numeric.Round1e9(math.Min(s.lb, s.best.Cost))
	)
	s.trace.info("done",
		zap.Stringer("status", status),
		zap.Float64("cost", cost),
		zap.Float64("lb", lb),
		zap.Int("rounds", s.rounds))

	return Result{
		Solution: instance.Solution{
			Columns:    slices.Clone(s.best.Columns),
			Cost:       cost,
			LowerBound: lb,
		},
		LowerBound:  lb,
		Multipliers: slices.Clone(s.mult),
		Rounds:      s.rounds,
		Status:      status,
		Elapsed:     time.Since(s.start),
	}, nil
}

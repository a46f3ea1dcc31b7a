package cft

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/setcover/fixing"
	"github.com/katalvlaran/setcover/lagrangian"
	"github.com/katalvlaran/setcover/numeric"
)

// Defaults of the CFT environment.
const (
	DefaultEpsilon        = numeric.DefaultEpsilon
	DefaultHeurIters      = 250
	DefaultAlpha          = 1.1
	DefaultBeta           = 1.0
	DefaultAbsSubgradExit = numeric.DefaultAbsExit
	DefaultRelSubgradExit = numeric.DefaultRelExit
	DefaultMinFixing      = 0.3
	DefaultStepFactor     = lagrangian.DefaultStepFactor
)

// Options configures one Solve call.
//
// Seed           – RNG seed of multiplier perturbation (0 selects a fixed default).
// TimeLimit      – wall-clock budget; 0 means unlimited.
// Epsilon        – relative acceptance ratio in (0,1]: lb certifies ub when lb ≥ Epsilon·ub.
// HeurIters      – plateau window of the ascent and length of the heuristic phase (≥ 1).
// Alpha          – growth factor of the refinement fixing fraction (> 1).
// Beta           – refinement stops once Beta·LB certifies the incumbent (> 0).
// AbsSubgradExit – absolute stagnation threshold of the ascent (≥ 0).
// RelSubgradExit – relative stagnation threshold of the ascent (≥ 0).
// MinFixing      – initial refinement fixing fraction in (0,1).
// Verbose        – 0 silent, 1 per-round info, 2 per-phase debug.
// Workers        – pricing goroutines for large instances (≤ 1 sequential).
// StepFactor     – initial subgradient step factor (> 0).
// MaxRounds      – refinement round cap; 0 means no cap.
// Scorer         – refinement fixing order; nil selects fixing.DeltaScorer.
// Logger         – zap logger; nil selects zap.NewNop().
// OnRound        – optional hook called after every refinement round.
type Options struct {
	Seed           int64
	TimeLimit      time.Duration
	Epsilon        float64
	HeurIters      int
	Alpha          float64
	Beta           float64
	AbsSubgradExit float64
	RelSubgradExit float64
	MinFixing      float64
	Verbose        int
	Workers        int
	StepFactor     float64
	MaxRounds      int
	Scorer         fixing.Scorer
	Logger         *zap.Logger
	OnRound        func(RoundStats)
}

// Option represents a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns the standard CFT parameter set.
func DefaultOptions() Options {
	return Options{
		Epsilon:        DefaultEpsilon,
		HeurIters:      DefaultHeurIters,
		Alpha:          DefaultAlpha,
		Beta:           DefaultBeta,
		AbsSubgradExit: DefaultAbsSubgradExit,
		RelSubgradExit: DefaultRelSubgradExit,
		MinFixing:      DefaultMinFixing,
		Workers:        1,
		StepFactor:     DefaultStepFactor,
	}
}

// WithOptions replaces the whole configuration, e.g. one decoded from a file.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTimeLimit sets the wall-clock budget. Panics on d < 0.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic("cft: WithTimeLimit: negative duration")
		}
		o.TimeLimit = d
	}
}

// WithEpsilon sets the relative acceptance ratio. Panics outside (0,1].
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0 && eps <= 1) {
			panic("cft: WithEpsilon: epsilon must lie in (0,1]")
		}
		o.Epsilon = eps
	}
}

// WithHeurIters sets the plateau window / heuristic phase length. Panics on n < 1.
func WithHeurIters(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("cft: WithHeurIters: must be ≥ 1")
		}
		o.HeurIters = n
	}
}

// WithAlpha sets the fixing fraction growth. Panics on a ≤ 1.
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if !(a > 1) || math.IsInf(a, 1) {
			panic("cft: WithAlpha: alpha must be > 1 and finite")
		}
		o.Alpha = a
	}
}

// WithBeta sets the refinement gap ratio. Panics on b ≤ 0.
func WithBeta(b float64) Option {
	return func(o *Options) {
		if !(b > 0) || math.IsInf(b, 1) {
			panic("cft: WithBeta: beta must be > 0 and finite")
		}
		o.Beta = b
	}
}

// WithSubgradExit sets the absolute and relative ascent stagnation thresholds.
// Panics on negative or NaN values.
func WithSubgradExit(abs, rel float64) Option {
	return func(o *Options) {
		if !(abs >= 0) || !(rel >= 0) {
			panic("cft: WithSubgradExit: thresholds must be ≥ 0")
		}
		o.AbsSubgradExit, o.RelSubgradExit = abs, rel
	}
}

// WithMinFixing sets the initial refinement fraction. Panics outside (0,1).
func WithMinFixing(f float64) Option {
	return func(o *Options) {
		if !(f > 0 && f < 1) {
			panic("cft: WithMinFixing: fraction must lie in (0,1)")
		}
		o.MinFixing = f
	}
}

// WithVerbose sets the diagnostic level.
func WithVerbose(level int) Option {
	return func(o *Options) { o.Verbose = level }
}

// WithWorkers sets the pricing fan-out.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithStepFactor sets the initial subgradient step factor. Panics on f ≤ 0.
func WithStepFactor(f float64) Option {
	return func(o *Options) {
		if !(f > 0) || math.IsInf(f, 1) {
			panic("cft: WithStepFactor: factor must be > 0 and finite")
		}
		o.StepFactor = f
	}
}

// WithMaxRounds caps the number of refinement rounds. Panics on n < 0.
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("cft: WithMaxRounds: must be ≥ 0")
		}
		o.MaxRounds = n
	}
}

// WithScorer sets the refinement fixing order.
func WithScorer(s fixing.Scorer) Option {
	return func(o *Options) { o.Scorer = s }
}

// WithLogger sets the zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnRound installs a per-round hook.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) { o.OnRound = fn }
}

// Validate checks every field and returns an error wrapping ErrInvalidInput
// for the first one out of its domain. Option constructors already panic on
// bad values; Validate covers Options built as struct literals.
func (o Options) Validate() error {
	bad := func(name string, v any) error {
		return fmt.Errorf("cft: option %s = %v: %w", name, v, ErrInvalidInput)
	}
	switch {
	case o.TimeLimit < 0:
		return bad("TimeLimit", o.TimeLimit)
	case !(o.Epsilon > 0 && o.Epsilon <= 1):
		return bad("Epsilon", o.Epsilon)
	case o.HeurIters < 1:
		return bad("HeurIters", o.HeurIters)
	case !(o.Alpha > 1) || math.IsInf(o.Alpha, 1):
		return bad("Alpha", o.Alpha)
	case !(o.Beta > 0) || math.IsInf(o.Beta, 1):
		return bad("Beta", o.Beta)
	case !(o.AbsSubgradExit >= 0) || math.IsInf(o.AbsSubgradExit, 1):
		return bad("AbsSubgradExit", o.AbsSubgradExit)
	case !(o.RelSubgradExit >= 0) || math.IsInf(o.RelSubgradExit, 1):
		return bad("RelSubgradExit", o.RelSubgradExit)
	case !(o.MinFixing > 0 && o.MinFixing < 1):
		return bad("MinFixing", o.MinFixing)
	case !(o.StepFactor > 0) || math.IsInf(o.StepFactor, 1):
		return bad("StepFactor", o.StepFactor)
	case o.MaxRounds < 0:
		return bad("MaxRounds", o.MaxRounds)
	case o.Verbose < 0:
		return bad("Verbose", o.Verbose)
	}

	return nil
}

// policy derives the comparison policy of the solve.
func (o Options) policy() numeric.Policy {
	return numeric.Policy{
		Epsilon: o.Epsilon,
		AbsExit: o.AbsSubgradExit,
		RelExit: o.RelSubgradExit,
	}
}

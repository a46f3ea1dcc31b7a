package lagrangian

import (
	"cmp"
	"context"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/setcover/instance"
)

// Engine bundles a Pricer with the scratch of one subgradient trajectory:
// reduced costs, the subgradient, and the row coverage of the relaxed selection.
// Buffers are reused across iterations; an Engine is single-goroutine.
//
// An engine built with NewCoreEngine works on a core of the full incidence:
// Sparse, Evaluate and ReducedCosts refer to the core, and Reprice moves the
// core after pricing the full incidence.
type Engine struct {
	pr      *Pricer
	full    *Pricer // nil unless the engine works on a core
	core    *Core
	fullRC  []float64
	workers int
	rc      []float64
	g       []float64
	cc      *instance.CoverCounters
	order   []int
}

// NewEngine prepares an engine over sp. workers is forwarded to the Pricer.
func NewEngine(sp *instance.Sparse, workers int) *Engine {
	return &Engine{
		pr:      NewPricer(sp, workers),
		workers: workers,
		rc:      make([]float64, sp.NumCols()),
		g:       make([]float64, sp.NumRows()),
		cc:      instance.NewCoverCounters(sp.NumRows()),
	}
}

// NewCoreEngine prepares an engine that prices core and reprices full.
// core must be a core of full (see TentativeCore, SelectCore).
func NewCoreEngine(full *instance.Sparse, core *Core, workers int) *Engine {
	e := NewEngine(core.Sparse, workers)
	e.full = NewPricer(full, workers)
	e.core = core
	e.fullRC = make([]float64, full.NumCols())

	return e
}

// Sparse returns the incidence the engine works on (the core, if any).
func (e *Engine) Sparse() *instance.Sparse { return e.pr.Sparse() }

// Cored reports whether the engine works on a core.
func (e *Engine) Cored() bool { return e.full != nil }

// Lift maps columns of Sparse() to columns of the full incidence.
func (e *Engine) Lift(cols []int) []int {
	if e.core == nil {
		return cols
	}

	return e.core.Lift(cols)
}

// ReducedCosts returns the reduced costs of the last Evaluate call.
// The slice is owned by the engine; callers MUST NOT retain it across calls.
func (e *Engine) ReducedCosts() []float64 { return e.rc }

// Reprice returns the full-incidence bound L(u). On a core engine it also
// rebuilds the core from the full reduced costs and leaves ReducedCosts
// consistent with u; otherwise it is Evaluate.
//
// Complexity: O(nnz) of the full incidence.
func (e *Engine) Reprice(ctx context.Context, u []float64) (float64, error) {
	if e.full == nil {
		return e.Evaluate(ctx, u)
	}
	lb, err := e.full.Price(ctx, u, e.fullRC)
	if err != nil {
		return 0, err
	}
	core, err := SelectCore(e.full.Sparse(), e.fullRC)
	if err != nil {
		return 0, err
	}
	e.core = core
	e.pr = NewPricer(core.Sparse, e.workers)
	e.rc = slices.Grow(e.rc[:0], len(core.ColMap))[:len(core.ColMap)]
	for k, j := range core.ColMap {
		e.rc[k] = e.fullRC[j]
	}

	return lb, nil
}

// Evaluate prices u and returns L(u).
func (e *Engine) Evaluate(ctx context.Context, u []float64) (float64, error) {
	return e.pr.Price(ctx, u, e.rc)
}

// Direction computes the subgradient at the last evaluated point and returns ||g||².
//
// The relaxed selection {j : rc_j < 0} is scanned by ascending reduced cost
// (ties by index) and a column only counts when it covers a row not yet
// covered by a cheaper one, so g_i = 1 − cov_i ∈ {1, 0, −1, ...} stays small.
// Components that would push a zero multiplier negative are projected to 0.
//
// Complexity: O(nnz + k log k).
func (e *Engine) Direction(u []float64) float64 {
	sp := e.pr.Sparse()
	e.order = e.order[:0]
	for j, r := range e.rc {
		if r < 0 {
			e.order = append(e.order, j)
		}
	}
	slices.SortFunc(e.order, func(a, b int) int {
		if c := cmp.Compare(e.rc[a], e.rc[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	e.cc.Reset(sp.NumRows())
	for _, j := range e.order {
		if col := sp.Col(j); !e.cc.RedundantCover(col) {
			e.cc.Cover(col)
		}
	}
	for i := range e.g {
		e.g[i] = float64(1 - e.cc.At(i))
		if u[i] <= 0 && e.g[i] < 0 {
			e.g[i] = 0
		}
	}

	return floats.Dot(e.g, e.g)
}

// Move applies u ← max(0, u + t·g) in place.
func (e *Engine) Move(u []float64, t float64) {
	floats.AddScaled(u, t, e.g)
	for i, v := range u {
		if v < 0 {
			u[i] = 0
		}
	}
}

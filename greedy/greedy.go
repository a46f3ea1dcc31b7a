// Package greedy - CFT greedy cover construction.
//
// Cover and Extend pick columns one at a time by the CFT score:
//
//   - gamma_j = c_j − Σ u_i over the rows of j still open,
//   - mu_j    = number of rows of j still open,
//   - score   = gamma/mu when gamma > 0, gamma·mu otherwise; lower is better.
//
// With u = 0 the score is the plain cost per newly covered row.
//
// Design:
//   - Lazy min-heap: closing a row only bumps the version of the columns that
//     touch it. A stale entry is re-scored when it surfaces and pushed back.
//     This is exact because, for u ≥ 0, closing rows never improves a score.
//   - Ties break by the lowest column index, so runs are reproducible.
//   - Scratch buffers live in Greedy and are reused across calls.
//
// Contracts:
//   - u is nil (all zero) or has one non-negative entry per row.
//   - forbidden is nil or has one entry per column.
//
// Complexity:
//   - O(nnz) score maintenance plus O((cols + stale pops) · log cols) heap work.
//   - Cover adds Prune (see prune.go).
package greedy

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/setcover/instance"
)

// Greedy owns the scratch of the constructor and is reused across calls.
// It is not safe for concurrent use.
type Greedy struct {
	gamma []float64
	mu    []int
	ver   []uint32
	pq    scoreHeap
	cc    *instance.CoverCounters
}

// New returns an empty constructor; buffers grow on first use.
func New() *Greedy {
	return &Greedy{cc: instance.NewCoverCounters(0)}
}

// Cover builds a complete cover of sp from multipliers u (nil means all zero),
// never picking a column marked in forbidden (nil means none), then prunes
// redundant columns.
//
// Returns the selected columns (ascending) and their total cost.
//
// Errors:
//   - ErrDimensionMismatch on len(u) != rows or len(forbidden) != cols;
//   - instance.ErrInfeasibleInstance when some row has no admissible column.
//
// Complexity: O(nnz · log ncols) plus pruning.
func (g *Greedy) Cover(sp *instance.Sparse, u []float64, forbidden []bool) ([]int, float64, error) {
	sel, err := g.run(sp, u, nil, forbidden, 0)
	if err != nil {
		return nil, 0, err
	}
	sel, cost := Prune(sp, sel)

	return sel, cost, nil
}

// Extend continues the partial selection start (copied) with greedy picks
// until every row is covered or the selection holds limit columns
// (limit ≤ 0 means no limit). No pruning is applied.
//
// The returned slice keeps start first, followed by the picks in pick order.
//
// Errors: as Cover, except that running out of candidates after reaching
// limit is not an error.
func (g *Greedy) Extend(sp *instance.Sparse, u []float64, start []int, forbidden []bool, limit int) ([]int, error) {
	return g.run(sp, u, start, forbidden, limit)
}

func (g *Greedy) run(sp *instance.Sparse, u []float64, start []int, forbidden []bool, limit int) ([]int, error) {
	var (
		nrows = sp.NumRows()
		ncols = sp.NumCols()
	)
	if u != nil && len(u) != nrows {
		return nil, fmt.Errorf("greedy: %d multipliers for %d rows: %w", len(u), nrows, ErrDimensionMismatch)
	}
	if forbidden != nil && len(forbidden) != ncols {
		return nil, fmt.Errorf("greedy: %d-entry mask for %d columns: %w", len(forbidden), ncols, ErrDimensionMismatch)
	}
	mult := func(i int) float64 {
		if u == nil {
			return 0
		}
		return u[i]
	}
	banned := func(j int) bool { return forbidden != nil && forbidden[j] }

	g.reset(sp)
	var j, i int
	for j = 0; j < ncols; j++ {
		g.gamma[j] = sp.Cost(j)
		for _, i = range sp.Col(j) {
			g.gamma[j] -= mult(i)
		}
		g.mu[j] = len(sp.Col(j))
	}

	var (
		sel  = make([]int, 0, len(start)+16)
		open = nrows
	)
	take := func(j int) {
		for _, i := range sp.Col(j) {
			if g.cc.At(i) != 0 {
				continue
			}
			open--
			ui := mult(i)
			for _, k := range sp.Row(i) {
				g.mu[k]--
				g.gamma[k] += ui
				g.ver[k]++
			}
		}
		g.cc.Cover(sp.Col(j))
		sel = append(sel, j)
	}

	for _, j = range start {
		if j < 0 || j >= ncols {
			return nil, instance.ErrColumnOutOfRange
		}
		take(j)
	}
	for j = 0; j < ncols; j++ {
		if g.mu[j] > 0 && !banned(j) {
			g.pq = append(g.pq, entry{score: score(g.gamma[j], g.mu[j]), col: j, ver: g.ver[j]})
		}
	}
	heap.Init(&g.pq)

	for open > 0 && (limit <= 0 || len(sel) < limit) {
		if g.pq.Len() == 0 {
			return nil, fmt.Errorf("greedy: row %d has no admissible column: %w",
				g.firstOpen(), instance.ErrInfeasibleInstance)
		}
		e := heap.Pop(&g.pq).(entry)
		if g.mu[e.col] == 0 {
			continue // nothing left to cover
		}
		if e.ver != g.ver[e.col] {
			heap.Push(&g.pq, entry{score: score(g.gamma[e.col], g.mu[e.col]), col: e.col, ver: g.ver[e.col]})
			continue
		}
		take(e.col)
	}

	return sel, nil
}

// reset sizes the scratch for sp.
func (g *Greedy) reset(sp *instance.Sparse) {
	ncols := sp.NumCols()
	if cap(g.gamma) < ncols {
		g.gamma = make([]float64, ncols)
		g.mu = make([]int, ncols)
		g.ver = make([]uint32, ncols)
	}
	g.gamma = g.gamma[:ncols]
	g.mu = g.mu[:ncols]
	g.ver = g.ver[:ncols]
	clear(g.ver)
	g.pq = g.pq[:0]
	g.cc.Reset(sp.NumRows())
}

func (g *Greedy) firstOpen() int {
	for i := 0; i < g.cc.Len(); i++ {
		if g.cc.At(i) == 0 {
			return i
		}
	}

	return -1
}

// score is gamma/mu for positive gamma and gamma·mu otherwise; lower is better.
func score(gamma float64, mu int) float64 {
	if gamma > 0 {
		return gamma / float64(mu)
	}

	return gamma * float64(mu)
}

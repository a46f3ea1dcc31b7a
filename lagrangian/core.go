// Package lagrangian - core pricing.
//
// A core is a column subset of a full incidence over the SAME rows. The ascent
// runs on the core and only periodically prices the full incidence, which is
// what keeps wide instances (tens of columns per row) tractable:
//
//   - TentativeCore takes columns in index order until every row is covered
//     by min(CoreRowCover, deg(i)) of them. It needs no multipliers.
//   - SelectCore rebuilds the core from full reduced costs: every column with
//     rc < 0.1 (at most CoreRowFactor·rows of them, lowest rc first), plus the
//     CoreRowCover lowest-rc columns of every row.
//
// The bound of a core is NOT a bound of the full incidence (it ignores the
// negative reduced costs outside the core). Only Engine.Reprice returns a
// bound valid for the full incidence.
//
// Determinism: ties in reduced cost break by column index; ColMap ascends.
//
// Complexity: TentativeCore O(nnz of the taken prefix); SelectCore
// O(nnz + k log k) for k columns under the threshold.
package lagrangian

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/setcover/instance"
)

const (
	// CoreRowCover is the number of cheapest columns a core keeps per row.
	CoreRowCover = 5

	// CoreRowFactor caps the below-threshold columns at CoreRowFactor·rows.
	CoreRowFactor = 5

	// coreThreshold admits every column priced below it.
	coreThreshold = 0.1

	// Full pricing starts every corePricingPeriod iterations and the interval
	// never grows beyond min(corePricingMaxPeriod, rows/3).
	corePricingPeriod    = 10
	corePricingMaxPeriod = 1000
)

// Core is a column subset of a full incidence.
type Core struct {
	// Sparse holds the core columns over all rows of the full incidence.
	Sparse *instance.Sparse
	// ColMap maps a core column to its full column, ascending.
	ColMap []int
}

// UseCore reports whether full has more columns than a core can hold, so that
// pricing a core is cheaper than pricing full.
func UseCore(full *instance.Sparse) bool {
	return full.NumCols() > (CoreRowFactor+CoreRowCover)*full.NumRows()
}

// TentativeCore returns the shortest column prefix of full that covers every
// row min(minCov, deg(i)) times.
//
// Errors: ErrBadConfig for minCov < 1.
func TentativeCore(full *instance.Sparse, minCov int) (*Core, error) {
	if minCov < 1 {
		return nil, fmt.Errorf("tentative core: min cover %d: %w", minCov, ErrBadConfig)
	}
	var (
		nrows = full.NumRows()
		need  = make([]int, nrows)
		done  int
		idx   []int
	)
	for i := 0; i < nrows; i++ {
		need[i] = min(minCov, len(full.Row(i)))
		if need[i] == 0 {
			done++
		}
	}
	for j := 0; j < full.NumCols() && done < nrows; j++ {
		idx = append(idx, j)
		for _, i := range full.Col(j) {
			need[i]--
			if need[i] == 0 {
				done++
			}
		}
	}

	return newCore(full, idx)
}

// SelectCore builds the core of full for the reduced costs rc.
//
// Errors: ErrDimensionMismatch when len(rc) != full.NumCols().
func SelectCore(full *instance.Sparse, rc []float64) (*Core, error) {
	if len(rc) != full.NumCols() {
		return nil, fmt.Errorf("select core: %d reduced costs for %d columns: %w",
			len(rc), full.NumCols(), ErrDimensionMismatch)
	}
	byRC := func(a, b int) int {
		if c := cmp.Compare(rc[a], rc[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}

	var cheap []int
	for j, r := range rc {
		if r < coreThreshold {
			cheap = append(cheap, j)
		}
	}
	if limit := CoreRowFactor * full.NumRows(); len(cheap) > limit {
		slices.SortFunc(cheap, byRC)
		cheap = cheap[:limit]
	}

	taken := roaring.New()
	for _, j := range cheap {
		taken.Add(uint32(j))
	}
	best := make([]int, 0, CoreRowCover)
	for i := 0; i < full.NumRows(); i++ {
		best = best[:0]
		for _, j := range full.Row(i) {
			pos, _ := slices.BinarySearchFunc(best, j, byRC)
			if pos == CoreRowCover {
				continue
			}
			if len(best) == CoreRowCover {
				best = best[:CoreRowCover-1]
			}
			best = slices.Insert(best, pos, j)
		}
		for _, j := range best {
			taken.Add(uint32(j))
		}
	}

	idx := make([]int, 0, taken.GetCardinality())
	it := taken.Iterator()
	for it.HasNext() {
		idx = append(idx, int(it.Next()))
	}

	return newCore(full, idx)
}

// Lift maps core columns to full columns, keeping order.
func (c *Core) Lift(cols []int) []int {
	out := make([]int, len(cols))
	for k, j := range cols {
		out[k] = c.ColMap[j]
	}

	return out
}

func newCore(full *instance.Sparse, idx []int) (*Core, error) {
	var (
		cols  = make([][]int, len(idx))
		costs = make([]float64, len(idx))
	)
	for k, j := range idx {
		cols[k] = full.Col(j)
		costs[k] = full.Cost(j)
	}
	sp, err := instance.NewSparse(full.NumRows(), cols, costs)
	if err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}

	return &Core{Sparse: sp, ColMap: idx}, nil
}

// pricingSchedule spaces the full pricings of a core ascent. The interval
// grows while the core bound tracks the full one and collapses otherwise.
type pricingSchedule struct {
	period    int
	next      int
	maxPeriod int
}

func newPricingSchedule(nrows int) pricingSchedule {
	return pricingSchedule{
		period:    corePricingPeriod,
		next:      corePricingPeriod,
		maxPeriod: max(1, min(corePricingMaxPeriod, nrows/3)),
	}
}

func (p *pricingSchedule) due(iter int) bool { return iter == p.next }

// update schedules the next pricing from the relative core/full bound gap.
func (p *pricingSchedule) update(coreLB, fullLB, ub float64) {
	var delta float64
	if ub > 0 && !math.IsInf(ub, 1) {
		delta = (coreLB - fullLB) / ub
	}
	switch {
	case delta <= 1e-6:
		p.period = min(p.maxPeriod, 10*p.period)
	case delta <= 0.02:
		p.period = min(p.maxPeriod, 5*p.period)
	case delta <= 0.2:
		p.period = min(p.maxPeriod, 2*p.period)
	default:
		p.period = corePricingPeriod
	}
	p.next += p.period
}

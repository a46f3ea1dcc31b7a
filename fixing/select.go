package fixing

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/numeric"
)

// InnerThreshold is the reduced cost below which a column is a candidate for
// inner fixing.
const InnerThreshold = -0.001

// Select orders sol by (score, column) ascending and takes columns while the
// number of rows they cover together stays within fraction·rows. The first
// column that would exceed the quota stops the scan. Returned ascending.
//
// Errors: ErrScoreCount if len(scores) != len(sol).
func Select(sp *instance.Sparse, sol []int, scores []float64, fraction float64) ([]int, error) {
	if len(scores) != len(sol) {
		return nil, fmt.Errorf("select: %d scores for %d columns: %w", len(scores), len(sol), ErrScoreCount)
	}

	order := make([]int, len(sol))
	for k := range order {
		order[k] = k
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(scores[a], scores[b]); c != 0 {
			return c
		}
		return cmp.Compare(sol[a], sol[b])
	})

	var (
		quota   = int(math.Floor(float64(sp.NumRows()) * fraction))
		cc      = instance.NewCoverCounters(sp.NumRows())
		covered int
		out     []int
	)
	for _, k := range order {
		j := sol[k]
		covered += cc.Cover(sp.Col(j))
		if covered > quota {
			break
		}
		out = append(out, j)
	}
	slices.Sort(out)

	return out, nil
}

// NonOverlapping returns the columns with rc_j < InnerThreshold whose rows are
// covered by no other such column. Returned ascending.
func NonOverlapping(sp *instance.Sparse, rc []float64) []int {
	cc := instance.NewCoverCounters(sp.NumRows())
	var cand []int
	for j, r := range rc {
		if r < InnerThreshold {
			cand = append(cand, j)
			cc.Cover(sp.Col(j))
		}
	}

	out := cand[:0]
	for _, j := range cand {
		alone := true
		for _, i := range sp.Col(j) {
			if cc.At(i) > 1 {
				alone = false
				break
			}
		}
		if alone {
			out = append(out, j)
		}
	}

	return out
}

// FixOut marks the columns that cannot belong to a cover strictly cheaper than
// ub: lb + rc_j ≥ ub under pol, where lb is a Lagrangian bound and rc its
// reduced costs. Rows that would lose every column keep their column with the
// lowest reduced cost (ties: lowest index), so the mask never makes a
// coverable incidence uncoverable.
//
// Returns the mask (len = cols) and the number of marked columns.
func FixOut(sp *instance.Sparse, rc []float64, lb, ub float64, pol numeric.Policy) ([]bool, int) {
	mask := make([]bool, sp.NumCols())
	if math.IsInf(ub, 1) || math.IsInf(lb, -1) {
		return mask, 0
	}

	var n int
	for j, r := range rc {
		if !pol.Less(lb+r, ub) {
			mask[j] = true
			n++
		}
	}
	for i := 0; i < sp.NumRows(); i++ {
		row := sp.Row(i)
		keep := -1
		for _, j := range row {
			if !mask[j] {
				keep = -2
				break
			}
			if keep == -1 || rc[j] < rc[keep] {
				keep = j
			}
		}
		if keep >= 0 {
			mask[keep] = false
			n--
		}
	}

	return mask, n
}

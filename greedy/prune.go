package greedy

import (
	"slices"

	"github.com/katalvlaran/setcover/instance"
)

// EnumLimit is the largest redundant set solved by exhaustive enumeration.
const EnumLimit = 10

// Prune removes redundant columns from the cover cols and returns the pruned
// cover (ascending) with its cost. cols is not modified. Feasibility is kept:
// a column is only dropped while every one of its rows stays covered.
//
// Strategy: while more than EnumLimit columns are redundant, drop the most
// expensive one (ties: highest index) and recompute redundancy; then try every
// subset of the remaining redundant columns and drop the most expensive
// removable subset (ties: the first in mask order).
//
// Complexity: O(r·Σ|col|) for the heuristic part, O(2^EnumLimit · Σ|col|) for
// the enumeration.
func Prune(sp *instance.Sparse, cols []int) ([]int, float64) {
	sel := slices.Clone(cols)
	slices.Sort(sel)
	sel = slices.Compact(sel)

	cc := instance.NewCoverCounters(sp.NumRows())
	for _, j := range sel {
		cc.Cover(sp.Col(j))
	}

	removed := make(map[int]bool)
	redundant := collectRedundant(sp, sel, cc, removed)
	for len(redundant) > EnumLimit {
		worst := redundant[0]
		for _, j := range redundant[1:] {
			if sp.Cost(j) > sp.Cost(worst) || (sp.Cost(j) == sp.Cost(worst) && j > worst) {
				worst = j
			}
		}
		cc.Uncover(sp.Col(worst))
		removed[worst] = true
		redundant = collectRedundant(sp, sel, cc, removed)
	}

	for _, j := range bestRemoval(sp, redundant, cc) {
		removed[j] = true
	}

	var (
		out  = sel[:0]
		cost float64
	)
	for _, j := range sel {
		if !removed[j] {
			out = append(out, j)
			cost += sp.Cost(j)
		}
	}

	return out, cost
}

// collectRedundant lists selected, not yet removed columns whose rows are all
// covered at least twice.
func collectRedundant(sp *instance.Sparse, sel []int, cc *instance.CoverCounters, removed map[int]bool) []int {
	var out []int
	for _, j := range sel {
		if !removed[j] && cc.Redundant(sp.Col(j)) {
			out = append(out, j)
		}
	}

	return out
}

// bestRemoval enumerates subsets of cand (|cand| ≤ EnumLimit) and returns the
// removable subset with the largest cost. cc is restored before returning.
func bestRemoval(sp *instance.Sparse, cand []int, cc *instance.CoverCounters) []int {
	if len(cand) == 0 {
		return nil
	}

	var (
		bestMask  uint32
		bestSaved float64
		n         = len(cand)
	)
	for mask := uint32(1); mask < 1<<n; mask++ {
		var saved float64
		ok := true
		for b := 0; b < n; b++ {
			if mask&(1<<b) != 0 {
				saved += sp.Cost(cand[b])
				if cc.Uncover(sp.Col(cand[b])) > 0 {
					ok = false
				}
			}
		}
		for b := 0; b < n; b++ {
			if mask&(1<<b) != 0 {
				cc.Cover(sp.Col(cand[b]))
			}
		}
		if ok && saved > bestSaved {
			bestMask, bestSaved = mask, saved
		}
	}

	var out []int
	for b := 0; b < n; b++ {
		if bestMask&(1<<b) != 0 {
			out = append(out, cand[b])
		}
	}

	return out
}

package lagrangian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/setcover/instance"
)

// ReducedCosts fills rc with c_j − Σ_{i∈j} u_i for every column of sp.
//
// Errors: ErrDimensionMismatch if len(u) != rows or len(rc) != cols.
//
// Complexity: O(nnz).
func ReducedCosts(sp *instance.Sparse, u, rc []float64) error {
	if len(u) != sp.NumRows() || len(rc) != sp.NumCols() {
		return fmt.Errorf("reduced costs: %d multipliers for %d rows, %d slots for %d columns: %w",
			len(u), sp.NumRows(), len(rc), sp.NumCols(), ErrDimensionMismatch)
	}
	priceRange(sp, u, rc, 0, sp.NumCols())

	return nil
}

// Bound returns L(u) = Σ u_i + Σ min(0, rc_j).
// rc must be the reduced costs of u; the result is a valid lower bound on the
// cost of every cover.
//
// Complexity: O(rows + cols).
func Bound(u, rc []float64) float64 {
	return floats.Sum(u) + negativeSum(rc)
}

// GreedyMultipliers returns u_i = min_{j∋i} c_j / |j|, the cost share of the
// cheapest column per covered row. Rows with no column get 0.
//
// Complexity: O(nnz).
func GreedyMultipliers(sp *instance.Sparse) []float64 {
	var (
		nrows = sp.NumRows()
		u     = make([]float64, nrows)
		i, j  int
		share float64
	)
	for i = 0; i < nrows; i++ {
		u[i] = math.Inf(1)
	}
	for j = 0; j < sp.NumCols(); j++ {
		col := sp.Col(j)
		share = sp.Cost(j) / float64(len(col))
		for _, i = range col {
			if share < u[i] {
				u[i] = share
			}
		}
	}
	for i = 0; i < nrows; i++ {
		if math.IsInf(u[i], 1) {
			u[i] = 0
		}
	}

	return u
}

// priceRange computes reduced costs for columns [lo, hi).
func priceRange(sp *instance.Sparse, u, rc []float64, lo, hi int) {
	var (
		j, i int
		r    float64
	)
	for j = lo; j < hi; j++ {
		r = sp.Cost(j)
		for _, i = range sp.Col(j) {
			r -= u[i]
		}
		rc[j] = r
	}
}

// negativeSum returns Σ min(0, x_j).
func negativeSum(x []float64) float64 {
	var s float64
	for _, v := range x {
		if v < 0 {
			s += v
		}
	}

	return s
}

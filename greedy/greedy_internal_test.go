package greedy

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/setcover/instance"
)

// wideSparse draws ncols columns of 3..8 rows with integer costs and closes
// every row with a costly singleton, so scores stay exact in float64.
func wideSparse(t *testing.T, nrows, ncols int, seed int64) *instance.Sparse {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var (
		cols  [][]int
		costs []float64
	)
	for j := 0; j < ncols; j++ {
		col := rng.Perm(nrows)[:3+rng.Intn(6)]
		slices.Sort(col)
		cols = append(cols, col)
		costs = append(costs, float64(1+rng.Intn(20)))
	}
	for i := 0; i < nrows; i++ {
		cols = append(cols, []int{i})
		costs = append(costs, 50)
	}
	sp, err := instance.NewSparse(nrows, cols, costs)
	require.NoError(t, err)

	return sp
}

// scanOrder picks by a full rescan of every column per step.
func scanOrder(sp *instance.Sparse, u []float64) []int {
	var (
		covered = make([]bool, sp.NumRows())
		open    = sp.NumRows()
		sel     []int
	)
	for open > 0 {
		best, bestScore := -1, 0.0
		for j := 0; j < sp.NumCols(); j++ {
			gamma, mu := sp.Cost(j), 0
			for _, i := range sp.Col(j) {
				if !covered[i] {
					gamma -= u[i]
					mu++
				}
			}
			if mu == 0 {
				continue
			}
			if sc := score(gamma, mu); best < 0 || sc < bestScore {
				best, bestScore = j, sc
			}
		}
		for _, i := range sp.Col(best) {
			if !covered[i] {
				covered[i] = true
				open--
			}
		}
		sel = append(sel, best)
	}

	return sel
}

func TestExtend_LazyHeapMatchesRescan(t *testing.T) {
	sp := wideSparse(t, 60, 1200, 3)
	rng := rand.New(rand.NewSource(9))
	u := make([]float64, sp.NumRows())
	for i := range u {
		u[i] = float64(rng.Intn(4))
	}

	g := New()
	for _, mult := range [][]float64{nil, u} {
		ref := mult
		if ref == nil {
			ref = make([]float64, sp.NumRows())
		}
		sel, err := g.Extend(sp, mult, nil, nil, 0)
		require.NoError(t, err)
		require.Equal(t, scanOrder(sp, ref), sel)
		require.Less(t, cap(g.pq), 2*sp.NumCols(), "one live entry per column")
	}
}

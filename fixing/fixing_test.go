package fixing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/setcover/fixing"
	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/numeric"
)

func exampleSparse(t *testing.T) *instance.Sparse {
	t.Helper()
	sp, err := instance.NewSparse(10, [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{0, 1, 2, 3, 4, 5},
		{0, 1, 2, 3, 4},
		{6, 7, 8, 9},
	}, []float64{10, 5, 4, 4})
	require.NoError(t, err)

	return sp
}

func TestRestrict_FixOneColumn(t *testing.T) {
	base := exampleSparse(t)
	sub, err := fixing.Restrict(base, []int{3, 3})
	require.NoError(t, err)

	require.Equal(t, []int{3}, sub.Fixed)
	require.Equal(t, 4.0, sub.FixedCost)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, sub.RowMap)
	require.Equal(t, []int{0, 1, 2}, sub.ColMap)
	require.Equal(t, 6, sub.FreeRows())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, sub.Sparse.Col(0), "col 0 loses its closed rows")
	require.Equal(t, 10.0, sub.Sparse.Cost(0))

	require.Equal(t, []int{1, 3}, sub.Lift([]int{1}))

	u := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.Equal(t, []float64{0, 1, 2, 3, 4, 5}, sub.Project(u))
}

func TestRestrict_ClosedColumnsDisappear(t *testing.T) {
	base := exampleSparse(t)
	sub, err := fixing.Restrict(base, []int{1, 3})
	require.NoError(t, err)
	require.Zero(t, sub.FreeRows())
	require.Zero(t, sub.Sparse.NumCols())
	require.Equal(t, 9.0, sub.FixedCost)
	require.Equal(t, []int{1, 3}, sub.Lift(nil))
}

func TestRestrict_Errors(t *testing.T) {
	base := exampleSparse(t)
	_, err := fixing.Restrict(base, []int{4})
	require.ErrorIs(t, err, instance.ErrColumnOutOfRange)

	sp, err := instance.NewSparse(3, [][]int{{0}, {1}}, []float64{1, 1})
	require.NoError(t, err)
	_, err = fixing.Restrict(sp, []int{0})
	require.ErrorIs(t, err, instance.ErrInfeasibleInstance)
	require.Contains(t, err.Error(), "base row 2")
}

func TestNest_ComposesMaps(t *testing.T) {
	base := exampleSparse(t)
	outer, err := fixing.Restrict(base, []int{3})
	require.NoError(t, err)
	// In outer, column 2 (sub index) is base column 2 covering rows 0..4.
	inner, err := fixing.Restrict(outer.Sparse, []int{2})
	require.NoError(t, err)

	nested := outer.Nest(inner)
	require.Equal(t, []int{2, 3}, nested.Fixed)
	require.Equal(t, 8.0, nested.FixedCost)
	require.Equal(t, []int{5}, nested.RowMap)
	require.Equal(t, []int{0, 1}, nested.ColMap)
	require.Equal(t, []int{1, 2, 3}, nested.Lift([]int{1}))
}

func TestIdentity(t *testing.T) {
	base := exampleSparse(t)
	id := fixing.Identity(base)
	require.Same(t, base, id.Sparse)
	require.Equal(t, []int{0, 1, 2, 3}, id.ColMap)
	require.Equal(t, []int{1, 3}, id.Lift([]int{3, 1}))
	require.Zero(t, id.FixedCost)
}

func TestDeltaScorer(t *testing.T) {
	sp := exampleSparse(t)
	u := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}

	// Solution {1,2,3}: rows 0..4 covered twice, row 5 once, rows 6..9 once.
	got := fixing.DeltaScorer{}.Score(sp, []int{1, 2, 3}, u)
	require.InDeltaSlice(t, []float64{2.5, 2.5, 0}, got, 1e-12)
}

func TestFrequencyScorer(t *testing.T) {
	f := fixing.NewFrequencyScorer()
	require.Equal(t, []float64{0, 0}, f.Score(nil, []int{1, 3}, nil))

	f.Observe([]int{1, 3})
	f.Observe([]int{3})
	require.Equal(t, []float64{-0.5, -1}, f.Score(nil, []int{1, 3}, nil))

	var _ fixing.Observer = f
	var _ fixing.Scorer = f
	var _ fixing.Scorer = fixing.DeltaScorer{}
}

func TestSelect_Quota(t *testing.T) {
	sp := exampleSparse(t)
	sol := []int{1, 3}

	// col 3 scores lowest and covers 4 rows; col 1 would push coverage to 10.
	got, err := fixing.Select(sp, sol, []float64{1, 0}, 0.5)
	require.NoError(t, err)
	require.Equal(t, []int{3}, got)

	got, err = fixing.Select(sp, sol, []float64{1, 0}, 0.3)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = fixing.Select(sp, sol, []float64{0, 0}, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, got)

	_, err = fixing.Select(sp, sol, []float64{0}, 1)
	require.ErrorIs(t, err, fixing.ErrScoreCount)
}

func TestNonOverlapping(t *testing.T) {
	sp := exampleSparse(t)
	// cols 1 and 2 overlap on rows 0..4; col 3 stands alone.
	got := fixing.NonOverlapping(sp, []float64{1, -1, -1, -0.5})
	require.Equal(t, []int{3}, got)

	require.Empty(t, fixing.NonOverlapping(sp, []float64{0, -0.0005, 0, 0}))
}

func TestFixOut(t *testing.T) {
	sp := exampleSparse(t)
	pol := numeric.DefaultPolicy()

	mask, n := fixing.FixOut(sp, []float64{2, 0, 0.5, 0}, 8.8, 9, pol)
	require.Equal(t, []bool{true, false, true, false}, mask)
	require.Equal(t, 2, n)

	// Every column priced out: each row keeps its cheapest column.
	mask, n = fixing.FixOut(sp, []float64{3, 2, 1, 1}, 9, 9, pol)
	require.False(t, mask[2], "rows 0..4 keep col 2")
	require.False(t, mask[3], "rows 6..9 keep col 3")
	require.False(t, mask[1], "row 5 keeps col 1")
	require.True(t, mask[0])
	require.Equal(t, 1, n)

	mask, n = fixing.FixOut(sp, []float64{3, 2, 1, 1}, 9, math.Inf(1), pol)
	require.Zero(t, n)
	require.Equal(t, []bool{false, false, false, false}, mask)
}

func TestSchedule(t *testing.T) {
	s := fixing.NewSchedule(0.3, 1.1, numeric.DefaultPolicy())
	require.Equal(t, 0.3, s.Next(100))
	require.InDelta(t, 0.33, s.Next(100), 1e-12, "no improvement grows")
	require.InDelta(t, 0.363, s.Next(99.9999), 1e-12, "noise-level improvement grows")
	require.Equal(t, 0.3, s.Next(90), "real improvement resets")
	require.False(t, s.Exhausted())

	for !s.Exhausted() {
		s.Next(90)
	}
	require.GreaterOrEqual(t, s.Fraction(), 1.0)
}

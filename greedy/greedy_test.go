package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/setcover/greedy"
	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/lagrangian"
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

func TestCover_RawCosts(t *testing.T) {
	sp := exampleSparse(t)
	cols, cost, err := greedy.New().Cover(sp, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, cols)
	require.Equal(t, 9.0, cost)
	require.NoError(t, sp.Check(cols))
}

func TestCover_GreedyMultipliers(t *testing.T) {
	sp := exampleSparse(t)
	cols, cost, err := greedy.New().Cover(sp, lagrangian.GreedyMultipliers(sp), nil)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, cols)
	require.Equal(t, 9.0, cost)
}

func TestCover_ForbiddenColumns(t *testing.T) {
	sp := exampleSparse(t)
	g := greedy.New()

	cols, cost, err := g.Cover(sp, nil, []bool{false, true, false, false})
	require.NoError(t, err)
	require.Equal(t, []int{0}, cols, "col 0 alone once 2 and 3 turn redundant")
	require.Equal(t, 10.0, cost)

	_, _, err = g.Cover(sp, nil, []bool{true, true, false, false})
	require.ErrorIs(t, err, instance.ErrInfeasibleInstance)
	require.Contains(t, err.Error(), "row 5")
}

func TestCover_TiesBreakByLowestIndex(t *testing.T) {
	sp, err := instance.NewSparse(2, [][]int{{0, 1}, {0, 1}, {0, 1}}, []float64{3, 3, 3})
	require.NoError(t, err)

	cols, cost, err := greedy.New().Cover(sp, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []int{0}, cols)
	require.Equal(t, 3.0, cost)
}

func TestCover_Errors(t *testing.T) {
	sp := exampleSparse(t)
	g := greedy.New()

	_, _, err := g.Cover(sp, make([]float64, 3), nil)
	require.ErrorIs(t, err, greedy.ErrDimensionMismatch)
	_, _, err = g.Cover(sp, nil, make([]bool, 2))
	require.ErrorIs(t, err, greedy.ErrDimensionMismatch)
	_, err = g.Extend(sp, nil, []int{9}, nil, 0)
	require.ErrorIs(t, err, instance.ErrColumnOutOfRange)
}

func TestExtend_StartAndLimit(t *testing.T) {
	sp := exampleSparse(t)
	g := greedy.New()

	sel, err := g.Extend(sp, nil, []int{3}, nil, 2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, sel)

	sel, err = g.Extend(sp, nil, []int{3}, nil, 0)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, sel, "unpruned completion")
	require.NoError(t, sp.Check(sel))
}

func TestCover_ScratchReuse(t *testing.T) {
	g := greedy.New()
	big := exampleSparse(t)
	small, err := instance.NewSparse(1, [][]int{{0}}, []float64{2})
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		cols, _, err := g.Cover(big, nil, nil)
		require.NoError(t, err)
		require.Equal(t, []int{1, 3}, cols)

		cols, cost, err := g.Cover(small, nil, nil)
		require.NoError(t, err)
		require.Equal(t, []int{0}, cols)
		require.Equal(t, 2.0, cost)
	}
}

func TestPrune_Enumeration(t *testing.T) {
	sp := exampleSparse(t)
	in := []int{3, 2, 1, 0, 2}

	cols, cost := greedy.Prune(sp, in)
	require.Equal(t, []int{1, 3}, cols)
	require.Equal(t, 9.0, cost)
	require.Equal(t, []int{3, 2, 1, 0, 2}, in, "input untouched")
}

func TestPrune_HeuristicThenEnumeration(t *testing.T) {
	cols := make([][]int, 12)
	costs := make([]float64, 12)
	sel := make([]int, 12)
	for j := range cols {
		cols[j] = []int{0}
		costs[j] = float64(12 - j)
		sel[j] = j
	}
	sp, err := instance.NewSparse(1, cols, costs)
	require.NoError(t, err)

	out, cost := greedy.Prune(sp, sel)
	require.Equal(t, []int{11}, out)
	require.Equal(t, 1.0, cost)
}

func TestPrune_NothingRedundant(t *testing.T) {
	sp := exampleSparse(t)
	out, cost := greedy.Prune(sp, []int{1, 3})
	require.Equal(t, []int{1, 3}, out)
	require.Equal(t, 9.0, cost)
}

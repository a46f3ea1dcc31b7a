package instance_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/setcover/instance"
)

// InstanceSuite covers the Building/Prepared lifecycle and input validation.
type InstanceSuite struct {
	suite.Suite
	inst *instance.Instance
}

func (s *InstanceSuite) SetupTest() {
	s.inst = instance.New()
}

// addExampleColumns loads {0..9}→10, {0..5}→5, {0..4}→4, {6..9}→4.
func (s *InstanceSuite) addExampleColumns() {
	for _, c := range []struct {
		elems []int
		cost  float64
	}{
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10},
		{[]int{0, 1, 2, 3, 4, 5}, 5},
		{[]int{0, 1, 2, 3, 4}, 4},
		{[]int{6, 7, 8, 9}, 4},
	} {
		_, err := s.inst.AddColumn(c.elems, c.cost)
		require.NoError(s.T(), err)
	}
}

func (s *InstanceSuite) TestAddColumnReturnsInsertionIndex() {
	j0, err := s.inst.AddColumn([]int{0, 1}, 1)
	require.NoError(s.T(), err)
	j1, err := s.inst.AddColumn([]int{2}, 2)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 0, j0)
	require.Equal(s.T(), 1, j1)
	require.Equal(s.T(), 2, s.inst.NumColumns())
	require.Equal(s.T(), 3, s.inst.NumElements())
}

func (s *InstanceSuite) TestNegativeCostRejectedWithoutSideEffects() {
	s.addExampleColumns()

	_, err := s.inst.AddColumn([]int{0, 1}, -10)
	require.ErrorIs(s.T(), err, instance.ErrInvalidInput)

	var ce instance.ColumnError
	require.True(s.T(), errors.As(err, &ce))
	require.Equal(s.T(), 4, ce.Column)
	require.Equal(s.T(), -10.0, ce.Cost)
	require.Equal(s.T(), 4, s.inst.NumColumns(), "column count unchanged")
}

func (s *InstanceSuite) TestNegativeElementRejected() {
	_, err := s.inst.AddColumn([]int{-1, 1, 2}, 10)
	require.ErrorIs(s.T(), err, instance.ErrInvalidInput)

	var ce instance.ColumnError
	require.True(s.T(), errors.As(err, &ce))
	require.Equal(s.T(), -1, ce.Element)
	require.Zero(s.T(), s.inst.NumColumns())
}

func (s *InstanceSuite) TestNonFiniteAndEmptyRejected() {
	_, err := s.inst.AddColumn([]int{0}, math.NaN())
	require.ErrorIs(s.T(), err, instance.ErrInvalidInput)
	_, err = s.inst.AddColumn([]int{0}, math.Inf(1))
	require.ErrorIs(s.T(), err, instance.ErrInvalidInput)
	_, err = s.inst.AddColumn(nil, 1)
	require.ErrorIs(s.T(), err, instance.ErrInvalidInput)
}

func (s *InstanceSuite) TestDuplicatesCollapsedAndInputNotRetained() {
	elems := []int{3, 1, 3, 2, 1}
	j, err := s.inst.AddColumn(elems, 1)
	require.NoError(s.T(), err)
	elems[0] = 99

	col, cost, err := s.inst.Column(j)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1, 2, 3}, col)
	require.Equal(s.T(), 1.0, cost)
}

func (s *InstanceSuite) TestPrepareBuildsRows() {
	s.addExampleColumns()
	require.Equal(s.T(), instance.Building, s.inst.State())

	require.NoError(s.T(), s.inst.Prepare())
	require.Equal(s.T(), instance.Prepared, s.inst.State())

	sp, err := s.inst.Sparse()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10, sp.NumRows())
	require.Equal(s.T(), 4, sp.NumCols())
	require.Equal(s.T(), []int{0, 1, 2}, sp.Row(0))
	require.Equal(s.T(), []int{0, 1}, sp.Row(5))
	require.Equal(s.T(), []int{0, 3}, sp.Row(9))
}

func (s *InstanceSuite) TestPrepareDetectsUncoveredElement() {
	for _, c := range []struct {
		elems []int
		cost  float64
	}{
		{[]int{0, 1, 2, 3, 4, 5, 6, 8, 9}, 10},
		{[]int{0, 1, 2, 3, 4, 5}, 5},
		{[]int{0, 1, 2, 3, 4}, 4},
		{[]int{6, 8, 9}, 4},
	} {
		_, err := s.inst.AddColumn(c.elems, c.cost)
		require.NoError(s.T(), err)
	}

	err := s.inst.Prepare()
	require.ErrorIs(s.T(), err, instance.ErrInfeasibleInstance)
	require.Contains(s.T(), err.Error(), "element 7")
	require.Equal(s.T(), instance.Building, s.inst.State())

	_, err = s.inst.Sparse()
	require.ErrorIs(s.T(), err, instance.ErrNotPrepared)
}

func (s *InstanceSuite) TestElementAboveMaximumRejected() {
	_, err := s.inst.AddColumn([]int{0, 1 << 36}, 1)
	require.ErrorIs(s.T(), err, instance.ErrInvalidInput)

	var ce instance.ColumnError
	require.ErrorAs(s.T(), err, &ce)
	require.Equal(s.T(), 1<<36, ce.Element)
	require.Zero(s.T(), s.inst.NumColumns())
	require.Zero(s.T(), s.inst.NumElements())
}

func (s *InstanceSuite) TestSparseUniverseReportedBeforeAllocation() {
	// 2^31 implied rows would need gigabytes of row storage.
	_, err := s.inst.AddColumn([]int{0, 1 << 31}, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1<<31+1, s.inst.NumElements())

	err = s.inst.Prepare()
	require.ErrorIs(s.T(), err, instance.ErrInfeasibleInstance)
	require.Contains(s.T(), err.Error(), "element 1 ")
	require.Equal(s.T(), instance.Building, s.inst.State())
}

func (s *InstanceSuite) TestAddAfterPrepareReturnsToBuilding() {
	s.addExampleColumns()
	require.NoError(s.T(), s.inst.Prepare())

	_, err := s.inst.AddColumn([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), instance.Building, s.inst.State())

	_, err = s.inst.Sparse()
	require.ErrorIs(s.T(), err, instance.ErrNotPrepared)

	require.NoError(s.T(), s.inst.Prepare())
	sp, err := s.inst.Sparse()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, sp.NumCols())
	require.Equal(s.T(), []int{0, 1, 2, 4}, sp.Row(0))
}

func (s *InstanceSuite) TestDeclaredUniverse() {
	inst := instance.New(instance.WithUniverse(4))
	_, err := inst.AddColumn([]int{0, 1, 2}, 1)
	require.NoError(s.T(), err)

	_, err = inst.AddColumn([]int{4}, 1)
	require.ErrorIs(s.T(), err, instance.ErrInvalidInput)

	require.ErrorIs(s.T(), inst.Prepare(), instance.ErrInfeasibleInstance, "element 3 declared but uncovered")
	_, err = inst.AddColumn([]int{3}, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), inst.Prepare())
	require.Equal(s.T(), 4, inst.NumElements())
}

func (s *InstanceSuite) TestEvaluateAndFeasible() {
	s.addExampleColumns()
	require.NoError(s.T(), s.inst.Prepare())

	sol, err := s.inst.Evaluate([]int{3, 1, 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1, 3}, sol.Columns)
	require.Equal(s.T(), 9.0, sol.Cost)
	require.NoError(s.T(), s.inst.Feasible(sol))

	part, err := s.inst.Evaluate([]int{2})
	require.NoError(s.T(), err)
	require.ErrorIs(s.T(), s.inst.Feasible(part), instance.ErrUncovered)
	require.False(s.T(), part.IsEmpty(), "computed-but-infeasible is not empty")

	_, err = s.inst.Evaluate([]int{7})
	require.ErrorIs(s.T(), err, instance.ErrColumnOutOfRange)
}

func TestInstanceSuite(t *testing.T) {
	suite.Run(t, new(InstanceSuite))
}

func TestEmptySolution(t *testing.T) {
	e := instance.EmptySolution()
	require.True(t, e.IsEmpty())
	require.True(t, math.IsInf(e.LowerBound, -1))

	s := instance.Solution{Columns: []int{1, 2}, Cost: 3}
	c := s.Clone()
	c.Columns[0] = 9
	require.Equal(t, 1, s.Columns[0])
	require.True(t, s.Contains(2))
}

func TestCoverCounters(t *testing.T) {
	cc := instance.NewCoverCounters(4)
	require.Equal(t, 2, cc.Cover([]int{0, 1}))
	require.Equal(t, 1, cc.Cover([]int{1, 2}))
	require.True(t, cc.RedundantCover([]int{0, 2}))
	require.False(t, cc.RedundantCover([]int{3}))
	require.False(t, cc.Redundant([]int{0, 1}))
	require.Equal(t, 1, cc.Uncovered())
	require.Equal(t, 1, cc.Uncover([]int{1, 2}))
	require.Equal(t, 1, cc.At(1))

	cc.Reset(2)
	require.Equal(t, 2, cc.Len())
	require.Equal(t, 2, cc.Uncovered())
}

func TestNewSparse_Validation(t *testing.T) {
	_, err := instance.NewSparse(2, [][]int{{0, 2}}, []float64{1})
	require.ErrorIs(t, err, instance.ErrInvalidInput)

	_, err = instance.NewSparse(2, [][]int{{0}}, []float64{1, 2})
	require.ErrorIs(t, err, instance.ErrInvalidInput)

	sp, err := instance.NewSparse(3, [][]int{{0, 1}, {1}}, []float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []int{2}, sp.Uncovered())
	require.ErrorIs(t, sp.Check([]int{0, 1}), instance.ErrUncovered)
}

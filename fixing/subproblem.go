package fixing

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/setcover/instance"
)

// Subproblem is a base incidence with some columns forced in.
type Subproblem struct {
	// Sparse is the reduced incidence over the open rows.
	Sparse *instance.Sparse
	// RowMap maps a subproblem row to its base row.
	RowMap []int
	// ColMap maps a subproblem column to its base column.
	ColMap []int
	// Fixed lists the forced base columns, ascending.
	Fixed []int
	// FixedCost is the total cost of Fixed.
	FixedCost float64
}

// Restrict forces the base columns fixed (duplicates ignored) and builds the
// subproblem over the rows they leave open. Columns that only touch closed
// rows disappear; the others keep their cost and lose their closed rows.
//
// Errors:
//   - instance.ErrColumnOutOfRange for a fixed index outside the base;
//   - instance.ErrInfeasibleInstance if an open row loses every column.
//
// Complexity: O(nnz + |fixed| log |fixed|).
func Restrict(base *instance.Sparse, fixed []int) (*Subproblem, error) {
	closed, err := base.CoverBitmap(fixed)
	if err != nil {
		return nil, fmt.Errorf("restrict: %w", err)
	}
	fixedSet := roaring.New()
	for _, j := range fixed {
		fixedSet.Add(uint32(j))
	}

	var (
		nrows  = base.NumRows()
		rowIdx = make([]int, nrows)
		rowMap = make([]int, 0, nrows-int(closed.GetCardinality()))
		i, j   int
	)
	for i = 0; i < nrows; i++ {
		if closed.Contains(uint32(i)) {
			rowIdx[i] = -1
			continue
		}
		rowIdx[i] = len(rowMap)
		rowMap = append(rowMap, i)
	}

	var (
		cols   [][]int
		costs  []float64
		colMap []int
	)
	for j = 0; j < base.NumCols(); j++ {
		if fixedSet.Contains(uint32(j)) {
			continue
		}
		var col []int
		for _, i = range base.Col(j) {
			if rowIdx[i] >= 0 {
				col = append(col, rowIdx[i])
			}
		}
		if len(col) == 0 {
			continue
		}
		cols = append(cols, col)
		costs = append(costs, base.Cost(j))
		colMap = append(colMap, j)
	}

	sp, err := instance.NewSparse(len(rowMap), cols, costs)
	if err != nil {
		return nil, fmt.Errorf("restrict: %w", err)
	}
	if missing := sp.Uncovered(); len(missing) > 0 {
		return nil, fmt.Errorf("restrict: base row %d has no free column: %w",
			rowMap[missing[0]], instance.ErrInfeasibleInstance)
	}

	fixedCols := make([]int, 0, fixedSet.GetCardinality())
	var fixedCost float64
	it := fixedSet.Iterator()
	for it.HasNext() {
		j = int(it.Next())
		fixedCols = append(fixedCols, j)
		fixedCost += base.Cost(j)
	}

	return &Subproblem{
		Sparse:    sp,
		RowMap:    rowMap,
		ColMap:    colMap,
		Fixed:     fixedCols,
		FixedCost: fixedCost,
	}, nil
}

// Identity wraps base as a subproblem with nothing fixed.
func Identity(base *instance.Sparse) *Subproblem {
	rowMap := make([]int, base.NumRows())
	for i := range rowMap {
		rowMap[i] = i
	}
	colMap := make([]int, base.NumCols())
	for j := range colMap {
		colMap[j] = j
	}

	return &Subproblem{Sparse: base, RowMap: rowMap, ColMap: colMap}
}

// FreeRows returns the number of open rows.
func (s *Subproblem) FreeRows() int { return len(s.RowMap) }

// Lift maps subproblem columns to base columns and adds the fixed ones.
// The result is ascending.
func (s *Subproblem) Lift(sub []int) []int {
	out := make([]int, 0, len(s.Fixed)+len(sub))
	out = append(out, s.Fixed...)
	for _, j := range sub {
		out = append(out, s.ColMap[j])
	}
	slices.Sort(out)

	return out
}

// Project returns the multipliers of the open rows, taken from base-row
// multipliers u.
func (s *Subproblem) Project(u []float64) []float64 {
	out := make([]float64, len(s.RowMap))
	for k, i := range s.RowMap {
		out[k] = u[i]
	}

	return out
}

// Nest maps the rows and columns of inner, a subproblem built from s.Sparse,
// back to the base of s, so that inner's Fixed, ColMap and RowMap refer to
// base indices. It returns the composed view; inner is not modified.
func (s *Subproblem) Nest(inner *Subproblem) *Subproblem {
	rowMap := make([]int, len(inner.RowMap))
	for k, i := range inner.RowMap {
		rowMap[k] = s.RowMap[i]
	}
	colMap := make([]int, len(inner.ColMap))
	for k, j := range inner.ColMap {
		colMap[k] = s.ColMap[j]
	}
	fixed := make([]int, 0, len(s.Fixed)+len(inner.Fixed))
	fixed = append(fixed, s.Fixed...)
	for _, j := range inner.Fixed {
		fixed = append(fixed, s.ColMap[j])
	}
	slices.Sort(fixed)

	return &Subproblem{
		Sparse:    inner.Sparse,
		RowMap:    rowMap,
		ColMap:    colMap,
		Fixed:     fixed,
		FixedCost: s.FixedCost + inner.FixedCost,
	}
}

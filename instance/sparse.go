// SPDX-License-Identifier: MIT
// Package instance - sparse column/row incidence.
//
// Sparse is the read-only view every algorithm works on. It stores the
// column-major element lists handed in, derives the row-major column lists
// (ascending column index per row), and the per-column costs.
//
// Contracts:
//   - Element indices lie in [0, NumRows).
//   - Slices returned by Col/Row/Costs are shared; callers MUST NOT mutate them.
//   - A Sparse never changes after construction.
//
// Complexity: construction O(nnz + rows + cols) time and space.
package instance

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sparse is an immutable incidence matrix between rows and columns.
type Sparse struct {
	nrows int
	cols  [][]int
	rows  [][]int
	costs []float64
}

// NewSparse builds the incidence for nrows rows from column element lists.
// Column lists are expected sorted and duplicate-free (Instance guarantees it;
// fixed subproblems preserve it); they are referenced, not copied.
//
// Errors: ErrInvalidInput on length mismatch, more than MaxElement+1 rows,
// negative or NaN cost, or an element outside [0, nrows).
func NewSparse(nrows int, cols [][]int, costs []float64) (*Sparse, error) {
	if nrows < 0 || uint64(nrows) > MaxElement+1 || len(cols) != len(costs) {
		return nil, fmt.Errorf("sparse: %d columns, %d costs, %d rows: %w",
			len(cols), len(costs), nrows, ErrInvalidInput)
	}

	var (
		j, i   int
		counts = make([]int, nrows)
	)
	for j = 0; j < len(cols); j++ {
		if math.IsNaN(costs[j]) || costs[j] < 0 {
			return nil, fmt.Errorf("sparse: column %d cost %g: %w", j, costs[j], ErrInvalidInput)
		}
		for _, i = range cols[j] {
			if i < 0 || i >= nrows {
				return nil, fmt.Errorf("sparse: column %d element %d outside [0,%d): %w",
					j, i, nrows, ErrInvalidInput)
			}
			counts[i]++
		}
	}

	// One backing buffer for all rows keeps the row lists contiguous.
	var (
		nnz  int
		rows = make([][]int, nrows)
	)
	for i = 0; i < nrows; i++ {
		nnz += counts[i]
	}
	buf := make([]int, nnz)
	var off int
	for i = 0; i < nrows; i++ {
		rows[i] = buf[off : off : off+counts[i]]
		off += counts[i]
	}
	for j = 0; j < len(cols); j++ {
		for _, i = range cols[j] {
			rows[i] = append(rows[i], j)
		}
	}

	return &Sparse{
		nrows: nrows,
		cols:  append([][]int(nil), cols...),
		rows:  rows,
		costs: append([]float64(nil), costs...),
	}, nil
}

// NumRows returns the number of rows (elements).
func (s *Sparse) NumRows() int { return s.nrows }

// NumCols returns the number of columns.
func (s *Sparse) NumCols() int { return len(s.cols) }

// Col returns the sorted element list of column j.
func (s *Sparse) Col(j int) []int { return s.cols[j] }

// Row returns the ascending list of columns covering row i.
func (s *Sparse) Row(i int) []int { return s.rows[i] }

// Cost returns the cost of column j.
func (s *Sparse) Cost(j int) float64 { return s.costs[j] }

// Costs returns the shared cost vector.
func (s *Sparse) Costs() []float64 { return s.costs }

// Uncovered lists rows that no column covers, ascending.
func (s *Sparse) Uncovered() []int {
	var out []int
	for i := 0; i < s.nrows; i++ {
		if len(s.rows[i]) == 0 {
			out = append(out, i)
		}
	}

	return out
}

// CostOf sums the costs of cols.
//
// Errors: ErrColumnOutOfRange.
func (s *Sparse) CostOf(cols []int) (float64, error) {
	var sum float64
	for _, j := range cols {
		if j < 0 || j >= len(s.cols) {
			return 0, ErrColumnOutOfRange
		}
		sum += s.costs[j]
	}

	return sum, nil
}

// CoverBitmap returns the set of rows covered by cols.
//
// Errors: ErrColumnOutOfRange.
func (s *Sparse) CoverBitmap(cols []int) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for _, j := range cols {
		if j < 0 || j >= len(s.cols) {
			return nil, ErrColumnOutOfRange
		}
		for _, i := range s.cols[j] {
			bm.Add(uint32(i))
		}
	}

	return bm, nil
}

// Check verifies that cols is a cover of every row.
//
// Errors: ErrColumnOutOfRange, ErrUncovered (wrapped with the first gap).
//
// Complexity: O(Σ|col| · log) via the roaring bitmap.
func (s *Sparse) Check(cols []int) error {
	bm, err := s.CoverBitmap(cols)
	if err != nil {
		return err
	}
	if bm.GetCardinality() == uint64(s.nrows) {
		return nil
	}
	all := roaring.New()
	all.AddRange(0, uint64(s.nrows))
	all.AndNot(bm)

	return fmt.Errorf("sparse: row %d uncovered (%d total): %w", all.Minimum(), all.GetCardinality(), ErrUncovered)
}

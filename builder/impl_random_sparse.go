// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// impl_random_sparse.go - RandomSparse(rows, cols, density) constructor.
//
// Model (OR-Library scp4x..scpex shape):
//   - Each (row, column) incidence is drawn independently with probability density.
//   - An empty column receives one uniformly drawn row.
//   - Rows covered by fewer than cfg.minRowCover columns are then patched into
//     uniformly drawn columns that do not yet contain them.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooSmall).
//   - 0 < density ≤ 1 (else ErrInvalidDensity).
//   - cfg.rng must be non-nil unless density == 1 (else ErrNeedRandSource).
//
// Complexity: O(rows*cols) Bernoulli trials, O(nnz) memory.
//
// Determinism: trials run column-major (j asc, then i asc); patching runs i asc.

package builder

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/setcover/instance"
)

const (
	methodRandomSparse = "RandomSparse"
	minRows            = 1
	minCols            = 1
)

// RandomSparse returns a Constructor appending cols random columns over a
// universe of rows elements.
func RandomSparse(rows, cols int, density float64) Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		if err := validateShape(methodRandomSparse, rows, cols); err != nil {
			return err
		}
		if err := validateDensity(methodRandomSparse, density); err != nil {
			return err
		}
		if cfg.rng == nil && density < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var (
			i, j int
			set  = make([][]int, cols)
		)
		for j = 0; j < cols; j++ {
			if density == 1 {
				set[j] = make([]int, rows)
				for i = range set[j] {
					set[j][i] = i
				}
				continue
			}
			for i = 0; i < rows; i++ {
				if cfg.rng.Float64() < density {
					set[j] = append(set[j], i)
				}
			}
			if len(set[j]) == 0 {
				set[j] = append(set[j], cfg.rng.Intn(rows))
			}
		}
		patchCoverage(set, rows, cfg.minRowCover, cfg.rng)

		return appendColumns(methodRandomSparse, in, cfg, set)
	}
}

// patchCoverage inserts rows covered by fewer than k columns into uniformly
// drawn columns lacking them, until each row reaches min(k, len(set)).
// Columns stay sorted. A nil rng patches into the lowest-index columns.
func patchCoverage(set [][]int, rows, k int, rng *rand.Rand) {
	count := make([]int, rows)
	for _, col := range set {
		for _, i := range col {
			count[i]++
		}
	}
	want := min(k, len(set))

	var (
		i, j, pos int
		found     bool
	)
	for i = 0; i < rows; i++ {
		for tries := 0; count[i] < want; tries++ {
			if rng != nil && tries < 4*len(set) {
				j = rng.Intn(len(set))
			} else {
				// Fall back to a sweep so the loop always terminates.
				j = tries % len(set)
			}
			pos, found = slices.BinarySearch(set[j], i)
			if found {
				continue
			}
			set[j] = slices.Insert(set[j], pos, i)
			count[i]++
		}
	}
}

// validateShape checks the common row/column minimums.
func validateShape(method string, rows, cols int) error {
	if rows < minRows {
		return fmt.Errorf("%s: rows=%d < min=%d: %w", method, rows, minRows, ErrTooSmall)
	}
	if cols < minCols {
		return fmt.Errorf("%s: cols=%d < min=%d: %w", method, cols, minCols, ErrTooSmall)
	}

	return nil
}

// validateDensity checks density ∈ (0,1].
func validateDensity(method string, density float64) error {
	if !(density > 0 && density <= 1) {
		return fmt.Errorf("%s: density=%.6f not in (0,1]: %w", method, density, ErrInvalidDensity)
	}

	return nil
}

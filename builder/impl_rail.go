// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// impl_rail.go - Rail(rows, cols, maxSpan) constructor.
//
// Model (crew-scheduling shape of the RAIL benchmarks):
//   - Rows are trips ordered in time; a column is a duty covering a run of
//     consecutive trips [start, start+length) with 1 ≤ length ≤ maxSpan.
//   - start is uniform over rows, length uniform over [1, maxSpan]; runs are
//     clipped at the last row.
//   - Coverage is patched like RandomSparse, so a few duties may gain an
//     isolated trip.
//   - Costs come from cfg.costFn; the default is unicost, as in RAIL507..RAIL4872
//     after their cost normalisation.
//
// Contract: rows, cols, maxSpan ≥ 1 (else ErrTooSmall); rng required.

package builder

import (
	"fmt"

	"github.com/katalvlaran/setcover/instance"
)

const (
	methodRail = "Rail"
	minSpan    = 1
)

// Rail returns a Constructor appending cols duty-shaped columns.
func Rail(rows, cols, maxSpan int) Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		if err := validateShape(methodRail, rows, cols); err != nil {
			return err
		}
		if maxSpan < minSpan {
			return fmt.Errorf("%s: maxSpan=%d < min=%d: %w", methodRail, maxSpan, minSpan, ErrTooSmall)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRail, ErrNeedRandSource)
		}

		set := make([][]int, cols)
		for j := range set {
			start := cfg.rng.Intn(rows)
			end := min(start+1+cfg.rng.Intn(maxSpan), rows)
			run := make([]int, 0, end-start)
			for i := start; i < end; i++ {
				run = append(run, i)
			}
			set[j] = run
		}
		patchCoverage(set, rows, cfg.minRowCover, cfg.rng)

		return appendColumns(methodRail, in, cfg, set)
	}
}

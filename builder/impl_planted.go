// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// impl_planted.go - Planted(rows, parts, decoys, density) constructor.
//
// Model:
//   - The rows are shuffled and dealt into parts blocks of near-equal size; each
//     block becomes one column. These parts columns form a disjoint cover and are
//     appended FIRST, so on a fresh instance they occupy indices [0, parts).
//   - decoys further columns are drawn as in RandomSparse(rows, decoys, density).
//   - Every column is priced by cfg.costFn. The planted cover's total cost is an
//     upper bound on the optimum, which tests use as a known target.
//
// Contract: rows ≥ 1, 1 ≤ parts ≤ rows, decoys ≥ 0, 0 < density ≤ 1;
// rng required.

package builder

import (
	"fmt"

	"github.com/katalvlaran/setcover/instance"
)

const methodPlanted = "Planted"

// Planted returns a Constructor that hides a disjoint cover among decoys.
func Planted(rows, parts, decoys int, density float64) Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		if err := validateShape(methodPlanted, rows, parts); err != nil {
			return err
		}
		if parts > rows {
			return fmt.Errorf("%s: parts=%d > rows=%d: %w", methodPlanted, parts, rows, ErrTooSmall)
		}
		if decoys < 0 {
			return fmt.Errorf("%s: decoys=%d < 0: %w", methodPlanted, decoys, ErrTooSmall)
		}
		if err := validateDensity(methodPlanted, density); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodPlanted, ErrNeedRandSource)
		}

		perm := cfg.rng.Perm(rows)
		hidden := make([][]int, parts)
		for k, i := range perm {
			hidden[k%parts] = append(hidden[k%parts], i)
		}
		if err := appendColumns(methodPlanted, in, cfg, hidden); err != nil {
			return err
		}
		if decoys == 0 {
			return nil
		}

		// Decoys only need to be columns; coverage is already guaranteed.
		set := make([][]int, decoys)
		for j := range set {
			for i := 0; i < rows; i++ {
				if cfg.rng.Float64() < density {
					set[j] = append(set[j], i)
				}
			}
			if len(set[j]) == 0 {
				set[j] = append(set[j], cfg.rng.Intn(rows))
			}
		}

		return appendColumns(methodPlanted, in, cfg, set)
	}
}

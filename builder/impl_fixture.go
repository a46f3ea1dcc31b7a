// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/setcover/instance"
)

const methodFixture = "Fixture"

// Fixture names. The costs of fixture columns are fixed; cfg.costFn is ignored.
const (
	// FixtureSplit: {0..9}→10, {0..5}→5, {0..4}→4, {6..9}→4. Optimum {1,3}, cost 9.
	FixtureSplit = "split"
	// FixtureHole: like FixtureSplit but element 7 is covered by no column,
	// so Prepare fails with instance.ErrInfeasibleInstance.
	FixtureHole = "hole"
	// FixtureShortcut: FixtureSplit plus {0..9}→5 appended last. Optimum {4}, cost 5.
	FixtureShortcut = "shortcut"
	// FixtureChain: ten rows, columns {i, i+1}→1 for i in 0..8 plus singletons
	// {i}→1. Optimum cost 5.
	FixtureChain = "chain"
)

type fixtureColumn struct {
	elems []int
	cost  float64
}

var fixtures = map[string][]fixtureColumn{
	FixtureSplit: {
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10},
		{[]int{0, 1, 2, 3, 4, 5}, 5},
		{[]int{0, 1, 2, 3, 4}, 4},
		{[]int{6, 7, 8, 9}, 4},
	},
	FixtureHole: {
		{[]int{0, 1, 2, 3, 4, 5, 6, 8, 9}, 10},
		{[]int{0, 1, 2, 3, 4, 5}, 5},
		{[]int{0, 1, 2, 3, 4}, 4},
		{[]int{6, 8, 9}, 4},
	},
	FixtureShortcut: {
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10},
		{[]int{0, 1, 2, 3, 4, 5}, 5},
		{[]int{0, 1, 2, 3, 4}, 4},
		{[]int{6, 7, 8, 9}, 4},
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5},
	},
	FixtureChain: chainColumns(10),
}

func chainColumns(n int) []fixtureColumn {
	cols := make([]fixtureColumn, 0, 2*n-1)
	for i := 0; i+1 < n; i++ {
		cols = append(cols, fixtureColumn{[]int{i, i + 1}, 1})
	}
	for i := 0; i < n; i++ {
		cols = append(cols, fixtureColumn{[]int{i}, 1})
	}

	return cols
}

// Fixture returns a Constructor appending the named hand-made instance.
// Unknown names fail with ErrUnknownFixture.
func Fixture(name string) Constructor {
	return func(in *instance.Instance, _ builderConfig) error {
		cols, ok := fixtures[name]
		if !ok {
			return fmt.Errorf("%s: %q: %w", methodFixture, name, ErrUnknownFixture)
		}
		for j, c := range cols {
			if _, err := in.AddColumn(c.elems, c.cost); err != nil {
				return fmt.Errorf("%s: AddColumn(#%d): %w: %w", methodFixture, j, ErrConstructFailed, err)
			}
		}

		return nil
	}
}

// Fixtures lists the known fixture names in a stable order.
func Fixtures() []string {
	return []string{FixtureSplit, FixtureHole, FixtureShortcut, FixtureChain}
}

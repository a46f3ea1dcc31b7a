// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates every builder knob. It is passed by value to the
// constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Column cost generator.
	costFn CostFn
	// Minimum number of columns covering each row (random constructors).
	minRowCover int
}

const defaultMinRowCover = 1

// newBuilderConfig applies opts over the deterministic defaults, last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		costFn:      DefaultCostFn,
		minRowCover: defaultMinRowCover,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cost evaluates the configured CostFn for a column of the given size.
func (c builderConfig) cost(size int) float64 {
	return c.costFn(size, c.rng)
}

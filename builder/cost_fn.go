package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultColumnCost is the cost assigned to every column when no CostFn is set.
const DefaultColumnCost float64 = 1

// CostFn produces a column cost given the column size and an optional RNG.
// It must be deterministic for a given RNG state and must return a finite,
// non-negative value.
type CostFn func(size int, rng *rand.Rand) float64

// DefaultCostFn always returns DefaultColumnCost (unicost instances).
func DefaultCostFn(_ int, _ *rand.Rand) float64 {
	return DefaultColumnCost
}

// ConstantCostFn returns a CostFn that always yields value.
// Panics if value is negative or not finite.
func ConstantCostFn(value float64) CostFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantCostFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(int, *rand.Rand) float64 {
		return value
	}
}

// UniformCostFn returns a CostFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. A nil RNG yields min.
func UniformCostFn(min, max float64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(_ int, rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerCostFn returns a CostFn sampling integers uniformly in [min, max],
// the shape of the OR-Library random instances (costs 1..100).
// Panics if min < 0 or max < min. A nil RNG yields min.
func IntegerCostFn(min, max int) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(_ int, rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// SizeScaledCostFn returns a CostFn charging base per covered row plus a
// uniform jitter in [0, jitter). Larger columns cost more, which keeps greedy
// from trivially picking the widest column.
// Panics if base or jitter is negative.
func SizeScaledCostFn(base, jitter float64) CostFn {
	if base < 0 || jitter < 0 {
		panic(fmt.Sprintf("SizeScaledCostFn: require base, jitter ≥ 0, got base=%g, jitter=%g", base, jitter))
	}

	return func(size int, rng *rand.Rand) float64 {
		c := base * float64(size)
		if rng != nil && jitter > 0 {
			c += rng.Float64() * jitter
		}

		return c
	}
}

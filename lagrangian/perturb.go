package lagrangian

import "math/rand"

const (
	perturbLow  = 0.9
	perturbSpan = 0.2
)

// Perturb scales every multiplier by an independent factor drawn uniformly
// from [0.9, 1.1). It moves the next ascent off the previous trajectory
// while staying in the same region of the dual.
//
// rng MUST NOT be shared across goroutines.
//
// Complexity: O(len(u)).
func Perturb(u []float64, rng *rand.Rand) {
	for i := range u {
		u[i] *= perturbLow + perturbSpan*rng.Float64()
	}
}

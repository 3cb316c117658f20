package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// newRand returns a generator seeded with seed, or with a time-dependent
// seed when seed is 0.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		//nolint:gosec // Weight initialization is not security-critical.
		return rand.New(rand.NewSource(rand.Int63()))
	}
	//nolint:gosec // Weight initialization is not security-critical.
	return rand.New(rand.NewSource(seed))
}

// Uniform creates a leaf parameter drawn from U(-1, 1).
func Uniform(g *autodiff.Graph, name string, rng *rand.Rand) *Parameter {
	return NewParameter(name, g.Scalar(rng.Float64()*2.0-1.0))
}

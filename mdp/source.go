package mdp

import (
	mtrand "math/rand"

	"github.com/seehuhn/mt19937"
	"golang.org/x/exp/rand"
)

// FromRand adapts an exp/rand generator into a Source.
func FromRand(r *rand.Rand) Source {
	if r == nil {
		panic("nil rand generator")
	}
	return r.Float64
}

// NewSource returns a Source backed by a PCG generator with the given
// seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed)).Float64
}

// NewMersenneTwister returns a Source backed by a Mersenne Twister
// seeded with seed. Two sources built from the same seed produce
// identical streams, which makes searches bit-for-bit repeatable.
func NewMersenneTwister(seed int64) Source {
	r := mtrand.New(mt19937.New())
	r.Seed(seed)
	return r.Float64
}

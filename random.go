package nanops

import (
	"math"
	"math/rand/v2"
)

// DefaultSeed seeds the generator used by NewRand when no seed is given.
const DefaultSeed = 42

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Rand returns an array of the given shape filled with uniform values in
// [0, 1) drawn from rng.
func Rand(rng *rand.Rand, shape ...int) *Array {
	a := Zeros(shape...)
	for i := range a.data {
		a.data[i] = rng.Float64()
	}
	return a
}

// RandNaN is Rand with roughly the given fraction of elements set to NaN.
func RandNaN(rng *rand.Rand, fraction float64, shape ...int) *Array {
	a := Rand(rng, shape...)
	for i := range a.data {
		if rng.Float64() < fraction {
			a.data[i] = math.NaN()
		}
	}
	return a
}

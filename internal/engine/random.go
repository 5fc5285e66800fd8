package engine

import (
	"math/rand/v2"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// GlobalSource draws from the package-level generator, which is safe for concurrent use.
func GlobalSource() RandomSource {
	return globalSource{}
}

// NewSeededSource returns a reproducible source. It must not be shared between goroutines.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

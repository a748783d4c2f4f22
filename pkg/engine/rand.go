package engine

import "math/rand/v2"

// Rand is the injected randomness source for event rolls. *rand.Rand
// satisfies it, and tests substitute a scripted sequence to pin down
// branch selection.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a source seeded from the system entropy pool.
func NewRand() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRand returns a deterministic source for tests and replays.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

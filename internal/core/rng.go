package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// Every stochastic decision of a simulation should draw from one RNG so that
// runs with equal seeds stay bit-identical.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed restarts the stream as if the RNG had been built with NewRNG(seed).
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// IntRange returns a random int in the inclusive range [lo, hi].
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Chance reports true with probability p. Exactly one value is drawn
// regardless of p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// ShuffleInts permutes vals in place.
func (r *RNG) ShuffleInts(vals []int) {
	r.r.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

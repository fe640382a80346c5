package sim

import "math/rand"

// RandomSource supplies the uniform draws behind every stochastic decision.
// *rand.Rand satisfies it; tests substitute scripted sources.
type RandomSource interface {
	Intn(n int) int   // [0, n)
	Float64() float64 // [0, 1)
}

// NewRandom returns a RandomSource that reproduces the same game for the same seed.
func NewRandom(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// IntRange draws an integer in [lo, hi). Empty ranges return lo.
func IntRange(r RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// FloatRange draws a float in [lo, hi).
func FloatRange(r RandomSource, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func Chance(r RandomSource, p float64) bool {
	return r.Float64() < p
}

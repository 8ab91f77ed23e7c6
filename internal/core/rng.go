package core

import "math/rand"

// Rand is the random source every randomized decision goes through:
// tile wobble, reshuffles, swap timing, round shuffling and text generation.
// Tests substitute a seeded or scripted source to pin exact outcomes.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// Intn returns a number in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// NewRand returns a Rand backed by math/rand seeded with seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes n elements in place with a Fisher-Yates pass.
func Shuffle(rng Rand, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		swap(i, j)
	}
}

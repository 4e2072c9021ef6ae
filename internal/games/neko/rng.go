package neko

import "math/rand"

// Source is the draw contract the simulation depends on.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Random derives every randomized value the kernel needs from a Source.
type Random struct {
	src Source
}

// NewRandom creates a generator from a seed. Equal seeds give equal runs.
func NewRandom(seed int64) *Random {
	return &Random{src: rand.New(rand.NewSource(seed))}
}

// NewRandomFrom wraps an arbitrary source.
func NewRandomFrom(src Source) *Random {
	return &Random{src: src}
}

// Float64 returns a uniform draw in [0, 1).
func (r *Random) Float64() float64 {
	return r.src.Float64()
}

// Range returns a uniform draw in [min, max).
func (r *Random) Range(min, max float64) float64 {
	return min + r.src.Float64()*(max-min)
}

// Chance returns true with probability p.
func (r *Random) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.src.Float64() < p
}

// Intn returns a uniform int in [0, n). Returns 0 for n <= 0.
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n)
}

// Shuffle performs an unbiased Fisher-Yates shuffle over n elements.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

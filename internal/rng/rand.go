package rng

import "math/rand/v2"

// Source yields uniform numbers in [0, 1). Everything random in the scene goes
// through it so tests can script the exact draws.
type Source interface {
	Float64() float64
}

// Rand is a seeded PCG generator. It is a plain value: copying a Rand makes an
// independent generator that continues with the same sequence.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) Rand {
	var r Rand
	r.pcg.Seed(uint64(seed), 0x9e3779b97f4a7c15)
	return r
}

func (r *Rand) Float64() float64 {
	return float64(r.pcg.Uint64()>>11) * 0x1p-53
}

// Range returns a number in [lo, hi).
func Range(s Source, lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Index returns floor(U*n), an index in [0, n). It returns 0 when n <= 0
// without drawing.
func Index(s Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Chance reports whether a uniform draw falls below p.
func Chance(s Source, p float64) bool {
	return s.Float64() < p
}

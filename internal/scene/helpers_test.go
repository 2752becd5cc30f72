package scene

import "github.com/iburimskiy/balloon-pop/internal/rng"

// script replays fixed draws, then keeps returning rest.
type script struct {
	vals []float64
	i    int
	rest float64
}

func (s *script) Float64() float64 {
	if s.i < len(s.vals) {
		v := s.vals[s.i]
		s.i++
		return v
	}
	return s.rest
}

type fakeSound struct {
	loaded      bool
	activations int
	plays       int
	activateErr error
}

func (f *fakeSound) Activate() error {
	f.activations++
	return f.activateErr
}

func (f *fakeSound) Loaded() bool { return f.loaded }

func (f *fakeSound) Play() { f.plays++ }

func seeded(seed int64) *rng.Rand {
	r := rng.NewRand(seed)
	return &r
}

package scene

import (
	"math"
	"testing"

	"github.com/iburimskiy/balloon-pop/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEffects(src *script) *Effects {
	return NewEffects(src, palette.Macaron, palette.Background, palette.DefaultContrastThreshold, 1000)
}

func TestEffects_SpawnWithContrastSearch(t *testing.T) {
	// maxRadius, base index, neighbour direction, particle count; then every
	// particle draw is 0.25.
	src := &script{vals: []float64{0.5, 0.0, 0.0, 0.0}, rest: 0.25}
	fx := newTestEffects(src)

	e := fx.SpawnAt(200, 150, nil)
	require.Len(t, e.Particles, 10)
	assert.Equal(t, 1, fx.Len())
	assert.Equal(t, 200.0, e.X)
	assert.Equal(t, 150.0, e.Y)
	assert.Equal(t, 1000.0, e.Duration)
	assert.InDelta(t, 80.0, e.MaxRadius, 1e-9)

	for i, p := range e.Particles {
		// Pair (2, 3) is the first index-order match; a draw of 0.25 picks
		// the first colour.
		assert.Equal(t, palette.Macaron[2], p.Color)
		assert.InDelta(t, 2*math.Pi/10*float64(i)-0.05, p.Angle, 1e-9)
		assert.InDelta(t, 45.0, p.Radius, 1e-9)
		assert.InDelta(t, 7.5, p.Size, 1e-9)
		assert.InDelta(t, 177.5, p.Alpha, 1e-9)
		assert.InDelta(t, -2.0, p.OX, 1e-9)
		assert.InDelta(t, -2.0, p.OY, 1e-9)
	}
}

func TestEffects_SecondColourOfPair(t *testing.T) {
	src := &script{vals: []float64{0.5, 0.0, 0.0, 0.0}, rest: 0.75}
	e := newTestEffects(src).SpawnAt(0, 0, nil)
	for _, p := range e.Particles {
		assert.Equal(t, palette.Macaron[3], p.Color)
	}
}

func TestEffects_ExplicitPairBypassesSearch(t *testing.T) {
	pair := palette.Pair{palette.Macaron[0], palette.Macaron[7]}
	fx := NewEffects(seeded(3), palette.Macaron, palette.Background, palette.DefaultContrastThreshold, 1000)

	for range 20 {
		e := fx.SpawnAt(10, 10, &pair)
		for _, p := range e.Particles {
			assert.Contains(t, []palette.RGB{pair[0], pair[1]}, p.Color)
		}
	}
}

func TestEffects_FallbackWhenNothingStandsOut(t *testing.T) {
	pale := []palette.RGB{palette.Background, {255, 200, 210}, {250, 204, 213}}
	fx := NewEffects(seeded(5), pale, palette.Background, palette.DefaultContrastThreshold, 1000)
	fallback := palette.Fallback(palette.Background)

	e := fx.SpawnAt(10, 10, nil)
	for _, p := range e.Particles {
		assert.Contains(t, []palette.RGB{fallback[0], fallback[1]}, p.Color)
	}
}

func TestEffects_ParticleCountRange(t *testing.T) {
	fx := NewEffects(seeded(11), palette.Macaron, palette.Background, palette.DefaultContrastThreshold, 1000)
	seen := map[int]bool{}
	for range 2000 {
		e := fx.SpawnAt(0, 0, nil)
		n := len(e.Particles)
		assert.GreaterOrEqual(t, n, 10)
		assert.Less(t, n, 18)
		seen[n] = true
		assert.GreaterOrEqual(t, e.MaxRadius, 40.0)
		assert.Less(t, e.MaxRadius, 120.0)
		for _, p := range e.Particles {
			assert.GreaterOrEqual(t, p.Size, 6.0)
			assert.Less(t, p.Size, 12.0)
			assert.GreaterOrEqual(t, p.Alpha, 160.0)
			assert.Less(t, p.Alpha, 230.0)
			assert.LessOrEqual(t, math.Abs(p.Radius-e.MaxRadius*0.6), 6.0)
		}
	}
	assert.Len(t, seen, 8)
}

func TestEffects_ParticlesShrinkAndFade(t *testing.T) {
	src := &script{vals: []float64{0.5, 0.0, 0.0, 0.0}, rest: 0.25}
	fx := newTestEffects(src)
	e := fx.SpawnAt(100, 100, nil)

	discs := fx.Advance(0, nil)
	require.Len(t, discs, 10)
	prevSize, prevAlpha := discs[0].Radius, discs[0].Alpha
	assert.InDelta(t, 3.75, prevSize, 1e-9)
	assert.InDelta(t, 177.5, prevAlpha, 1e-9)

	for step := 1; step < 10; step++ {
		discs = fx.Advance(100, nil)
		require.NotEmpty(t, discs, "step %d", step)
		assert.Less(t, discs[0].Radius, prevSize)
		assert.Less(t, discs[0].Alpha, prevAlpha)
		prevSize, prevAlpha = discs[0].Radius, discs[0].Alpha
	}

	discs = fx.Advance(100, nil)
	assert.Empty(t, discs)
	assert.Equal(t, 1.0, e.Life())
	for _, p := range e.Particles {
		assert.Equal(t, 0.0, p.SizeAt(e.Life()))
	}
	assert.Equal(t, 0, fx.Len())
}

func TestEffects_DiscPositionFollowsParticleGeometry(t *testing.T) {
	src := &script{vals: []float64{0.5, 0.0, 0.0, 0.0}, rest: 0.25}
	fx := newTestEffects(src)
	e := fx.SpawnAt(100, 50, nil)

	discs := fx.Advance(0, nil)
	require.Len(t, discs, len(e.Particles))
	for i, p := range e.Particles {
		assert.InDelta(t, 100+math.Cos(p.Angle)*p.Radius+p.OX, discs[i].X, 1e-9)
		assert.InDelta(t, 50+math.Sin(p.Angle)*p.Radius+p.OY, discs[i].Y, 1e-9)
		assert.Equal(t, p.Color, discs[i].Color)
	}
}

func TestEffects_RemovalDoesNotSkipEntries(t *testing.T) {
	fx := NewEffects(seeded(1), palette.Macaron, palette.Background, palette.DefaultContrastThreshold, 1000)
	e1 := fx.SpawnAt(0, 0, nil)
	e2 := fx.SpawnAt(0, 0, nil)
	e3 := fx.SpawnAt(0, 0, nil)
	e4 := fx.SpawnAt(0, 0, nil)
	e1.Age = 999
	e3.Age = 999
	e4.Age = 999

	fx.Advance(1, nil)

	require.Equal(t, 1, fx.Len())
	assert.Same(t, e2, fx.Active()[0])
	assert.Equal(t, 1.0, e2.Age)
	assert.Equal(t, 1000.0, e1.Age)
	assert.Equal(t, 1000.0, e3.Age)
	assert.Equal(t, 1000.0, e4.Age)
}

func TestExplosion_ExpiredAtDuration(t *testing.T) {
	e := Explosion{Duration: 1000}
	assert.False(t, e.Expired())
	e.Advance(999)
	assert.False(t, e.Expired())
	e.Advance(1)
	assert.True(t, e.Expired())
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(3))
}

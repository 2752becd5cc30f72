package scene

import (
	"math"
	"slices"

	"github.com/iburimskiy/balloon-pop/internal/palette"
	"github.com/iburimskiy/balloon-pop/internal/rng"
)

const (
	minParticles = 10
	maxParticles = 18 // exclusive

	minBurstRadius = 40.0
	maxBurstRadius = 120.0

	ringFactor  = 0.6
	ringJitter  = 6.0
	angleJitter = 0.1
	offsetRange = 4.0
)

// Effects owns the explosions currently on screen.
type Effects struct {
	src        rng.Source
	colors     []palette.RGB
	background palette.RGB
	threshold  int
	duration   float64
	active     []*Explosion
}

func NewEffects(src rng.Source, colors []palette.RGB, background palette.RGB, threshold int, duration float64) *Effects {
	return &Effects{
		src:        src,
		colors:     colors,
		background: background,
		threshold:  threshold,
		duration:   duration,
	}
}

// SpawnAt starts a burst at (x, y). With a nil pair the colours come from the
// contrast search over the palette; otherwise particles pick from pair.
func (fx *Effects) SpawnAt(x, y float64, pair *palette.Pair) *Explosion {
	e := &Explosion{
		X:         x,
		Y:         y,
		Duration:  fx.duration,
		MaxRadius: rng.Range(fx.src, minBurstRadius, maxBurstRadius),
	}

	var colors palette.Pair
	if pair != nil {
		colors = *pair
	} else {
		colors = fx.contrastingPair()
	}

	count := int(rng.Range(fx.src, minParticles, maxParticles))
	ring := e.MaxRadius * ringFactor
	e.Particles = make([]Particle, count)
	for i := range e.Particles {
		angle := 2*math.Pi/float64(count)*float64(i) + rng.Range(fx.src, -angleJitter, angleJitter)
		c := colors[1]
		if rng.Chance(fx.src, 0.5) {
			c = colors[0]
		}
		e.Particles[i] = Particle{
			Angle:  angle,
			Color:  c,
			Radius: ring + rng.Range(fx.src, -ringJitter, ringJitter),
			Size:   rng.Range(fx.src, 6, 12),
			Alpha:  rng.Range(fx.src, 160, 230),
			OX:     rng.Range(fx.src, -offsetRange, offsetRange),
			OY:     rng.Range(fx.src, -offsetRange, offsetRange),
		}
	}

	fx.active = append(fx.active, e)
	return e
}

// contrastingPair picks a random palette entry and one of its neighbours, then
// lets the contrast search move on from there.
func (fx *Effects) contrastingPair() palette.Pair {
	if len(fx.colors) == 0 {
		return palette.Fallback(fx.background)
	}
	base := rng.Index(fx.src, len(fx.colors))
	second := base - 1
	if rng.Chance(fx.src, 0.5) {
		second = base + 1
	}
	b, s, ok := palette.ChooseContrastingPair(fx.colors, fx.background, fx.threshold, base, second)
	if !ok {
		return palette.Fallback(fx.background)
	}
	return palette.Pair{fx.colors[b], fx.colors[s]}
}

// Advance ages every explosion by dt, appends the visible particles to dst and
// drops the explosions that are done. Iteration runs from the end so removal
// never skips an entry.
func (fx *Effects) Advance(dt float64, dst []Disc) []Disc {
	for i := len(fx.active) - 1; i >= 0; i-- {
		e := fx.active[i]
		e.Advance(dt)
		dst = e.appendVisible(dst)
		if e.Expired() {
			fx.active = slices.Delete(fx.active, i, i+1)
		}
	}
	return dst
}

func (fx *Effects) Active() []*Explosion {
	return fx.active
}

func (fx *Effects) Len() int {
	return len(fx.active)
}

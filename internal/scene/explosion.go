package scene

import (
	"math"

	"github.com/iburimskiy/balloon-pop/internal/palette"
)

// Particles smaller than this are no longer drawn.
const minVisibleSize = 0.2

// Particle is one dot of a burst. Size is its diameter at age 0.
type Particle struct {
	Angle  float64
	Radius float64
	Size   float64
	Alpha  float64
	OX, OY float64
	Color  palette.RGB
}

// SizeAt returns the diameter at the given life fraction in [0, 1].
func (p Particle) SizeAt(life float64) float64 {
	return math.Max(0, p.Size*(1-life))
}

func (p Particle) AlphaAt(life float64) float64 {
	return p.Alpha * (1 - life)
}

// Offset is the particle centre relative to the burst origin.
func (p Particle) Offset() (float64, float64) {
	return math.Cos(p.Angle)*p.Radius + p.OX, math.Sin(p.Angle)*p.Radius + p.OY
}

// Explosion is a ring of particles that shrink and fade over Duration
// milliseconds.
type Explosion struct {
	X, Y      float64
	Age       float64
	Duration  float64
	MaxRadius float64
	Particles []Particle
}

func (e *Explosion) Life() float64 {
	return Clamp01(e.Age / e.Duration)
}

func (e *Explosion) Advance(dt float64) {
	e.Age += dt
}

func (e *Explosion) Expired() bool {
	return e.Age >= e.Duration
}

// appendVisible appends a disc for every particle still large enough to draw.
func (e *Explosion) appendVisible(dst []Disc) []Disc {
	life := e.Life()
	for _, p := range e.Particles {
		size := p.SizeAt(life)
		if size <= minVisibleSize {
			continue
		}
		dx, dy := p.Offset()
		dst = append(dst, Disc{
			X:      e.X + dx,
			Y:      e.Y + dy,
			Radius: size / 2,
			Color:  p.Color,
			Alpha:  p.AlphaAt(life),
		})
	}
	return dst
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

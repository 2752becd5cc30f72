package scene

import (
	"math"

	"github.com/iburimskiy/balloon-pop/internal/palette"
	"github.com/iburimskiy/balloon-pop/internal/rng"
)

const (
	MinBalloonSize = 30.0
	MaxBalloonSize = 120.0

	highlightAlpha  = 180
	highlightMargin = 2
	respawnDepth    = 60
)

// Balloon is a circle drifting upward. R is the drawn diameter; the hit radius
// is R/2. R and Color never change after creation.
type Balloon struct {
	X, Y  float64
	R     float64
	Speed float64
	Alpha float64
	Color palette.RGB
}

func newBalloon(src rng.Source, width, height float64, colors []palette.RGB) Balloon {
	r := rng.Range(src, MinBalloonSize, MaxBalloonSize)
	c := colors[rng.Index(src, len(colors))]
	return Balloon{
		X:     rng.Range(src, 0, width),
		Y:     rng.Range(src, 0, height),
		R:     r,
		Alpha: rng.Range(src, 50, 255),
		Speed: mapRange(r, MinBalloonSize, MaxBalloonSize, 3, 0.5),
		Color: c,
	}
}

// Advance moves the balloon up by Speed*moveScale and wraps it to just below
// the bottom edge once it is fully above the top.
func (b *Balloon) Advance(moveScale, height float64) {
	b.Y -= b.Speed * moveScale
	if b.Y < -b.R/2 {
		b.Y = height + b.R/2
	}
}

func (b *Balloon) HitTest(px, py float64) bool {
	return math.Hypot(px-b.X, py-b.Y) < b.R/2
}

// RespawnBelow puts the balloon back under the canvas near originX, the way a
// burst scatters the balloons it hit.
func (b *Balloon) RespawnBelow(src rng.Source, originX, spread, height float64) {
	b.X = originX + rng.Range(src, -spread*0.8, spread*0.8)
	b.Y = height + b.R/2 + rng.Range(src, 0, respawnDepth)
	b.Speed = mapRange(b.R, MinBalloonSize, MaxBalloonSize, 2.5, 0.4)
	b.Alpha = rng.Range(src, 120, 255)
}

func (b *Balloon) RespawnAfterClick(src rng.Source, width, height float64) {
	b.Y = height + b.R/2 + rng.Range(src, 0, respawnDepth)
	b.X = rng.Range(src, 0, width)
}

// Highlight returns the white reflection square, kept inside the upper-right
// part of the circle with a 2 px margin.
func (b *Balloon) Highlight() RoundedSquare {
	radius := b.R / 2
	side := radius * 0.35
	halfDiag := side * math.Sqrt2 / 2
	d := math.Max(0, radius-halfDiag-highlightMargin)
	offset := d / math.Sqrt2
	return RoundedSquare{
		X:      b.X + offset - side/2,
		Y:      b.Y - offset - side/2,
		Side:   side,
		Corner: side * 0.25,
		Color:  palette.RGB{255, 255, 255},
		Alpha:  highlightAlpha,
	}
}

func (b *Balloon) sprite() Sprite {
	return Sprite{
		Body: Disc{
			X:      b.X,
			Y:      b.Y,
			Radius: b.R / 2,
			Color:  b.Color,
			Alpha:  b.Alpha,
		},
		Highlight: b.Highlight(),
	}
}

// mapRange maps v linearly from [inLo, inHi] to [outLo, outHi] without clamping.
func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

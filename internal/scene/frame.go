package scene

import "github.com/iburimskiy/balloon-pop/internal/palette"

// Disc is a filled circle. Alpha is on the 0-255 scale.
type Disc struct {
	X, Y   float64
	Radius float64
	Color  palette.RGB
	Alpha  float64
}

// RoundedSquare is an axis-aligned square with rounded corners. X and Y are the
// top-left corner.
type RoundedSquare struct {
	X, Y   float64
	Side   float64
	Corner float64
	Color  palette.RGB
	Alpha  float64
}

// Sprite is one balloon as it appears on screen: the body and its highlight.
type Sprite struct {
	Body      Disc
	Highlight RoundedSquare
}

type Align int

const (
	AlignLeftTop Align = iota
	AlignCenter
)

type Text struct {
	Content string
	X, Y    float64
	Size    float64
	Color   palette.RGB
	Align   Align
}

// Frame is the display list produced by one tick, in paint order: background,
// particles, balloons, then text.
type Frame struct {
	Background palette.RGB
	Particles  []Disc
	Balloons   []Sprite
	Texts      []Text
}

func (f *Frame) reset(bg palette.RGB) {
	f.Background = bg
	f.Particles = f.Particles[:0]
	f.Balloons = f.Balloons[:0]
	f.Texts = f.Texts[:0]
}

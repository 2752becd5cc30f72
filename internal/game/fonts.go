package game

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/iburimskiy/balloon-pop/internal/scene"
)

// Faces hands out Go Regular faces by point size, creating each size once.
type Faces struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

func LoadFaces() (*Faces, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Faces{font: f, faces: map[float64]font.Face{}}, nil
}

func (f *Faces) Face(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %vpt: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// textOrigin returns the dot (baseline start) for drawing t with face.
// AlignLeftTop puts the top of the ascent at (t.X, t.Y); AlignCenter centres
// the ink bounds on it.
func textOrigin(face font.Face, t scene.Text) (int, int) {
	x, y := int(t.X), int(t.Y)
	switch t.Align {
	case scene.AlignCenter:
		b := measure(face, t.Content)
		return x - b.Dx()/2 - b.Min.X, y - (b.Min.Y+b.Max.Y)/2
	default:
		return x, y + face.Metrics().Ascent.Ceil()
	}
}

func measure(face font.Face, s string) image.Rectangle {
	b, _ := font.BoundString(face, s)
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

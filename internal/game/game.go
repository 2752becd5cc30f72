package game

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/balloon-pop/internal/scene"
)

// Sound is the part of the pop effect the window needs: stopping it on quit
// and reporting live voices in the debug overlay.
type Sound interface {
	Stop()
	Voices() int
}

type Game struct {
	scene *scene.Scene
	sound Sound
	faces *Faces
	debug bool

	// clock
	now   func() time.Time
	start time.Time
	last  time.Time

	// canvas size as last reported by Layout
	width, height int

	// input edge detection
	prevKey  map[ebiten.Key]bool
	touchIDs []ebiten.TouchID
	clicks   []image.Point

	// drawing scratch space
	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex
	indices       []uint16

	lastErr error
}

func NewGame(sc *scene.Scene, sound Sound, faces *Faces, debug bool) *Game {
	return newGame(sc, sound, faces, debug, time.Now)
}

func newGame(sc *scene.Scene, sound Sound, faces *Faces, debug bool, now func() time.Time) *Game {
	w, h := sc.Size()
	t := now()
	return &Game{
		scene:   sc,
		sound:   sound,
		faces:   faces,
		debug:   debug,
		now:     now,
		start:   t,
		last:    t,
		width:   int(w),
		height:  int(h),
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		if g.sound != nil {
			g.sound.Stop()
		}
		return ebiten.Termination
	}

	g.clicks = g.clicks[:0]
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.clicks = append(g.clicks, image.Pt(x, y))
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.clicks = append(g.clicks, image.Pt(x, y))
	}

	g.step(g.clicks, g.now())
	return nil
}

// step feeds this update's pointer presses to the scene, then advances it to t.
func (g *Game) step(clicks []image.Point, t time.Time) {
	for _, c := range clicks {
		g.scene.Click(float64(c.X), float64(c.Y))
	}
	dt := t.Sub(g.last)
	g.last = t
	g.scene.Tick(millis(t.Sub(g.start)), millis(dt))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

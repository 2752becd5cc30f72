package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/balloon-pop/internal/scene"
)

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.scene.Frame()
	screen.Fill(toNRGBA(f.Background, 255))

	for _, p := range f.Particles {
		g.drawDisc(screen, p)
	}
	for _, b := range f.Balloons {
		g.drawDisc(screen, b.Body)
		g.drawRoundedSquare(screen, b.Highlight)
	}
	for _, t := range f.Texts {
		g.drawText(screen, t)
	}

	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDisc(screen *ebiten.Image, d scene.Disc) {
	vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.Radius), toNRGBA(d.Color, d.Alpha), true)
}

func (g *Game) drawRoundedSquare(screen *ebiten.Image, sq scene.RoundedSquare) {
	if g.whiteSubImage == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		g.whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	x, y := float32(sq.X), float32(sq.Y)
	s, r := float32(sq.Side), float32(sq.Corner)

	var path vector.Path
	path.MoveTo(x+r, y)
	path.LineTo(x+s-r, y)
	path.ArcTo(x+s, y, x+s, y+r, r)
	path.LineTo(x+s, y+s-r)
	path.ArcTo(x+s, y+s, x+s-r, y+s, r)
	path.LineTo(x+r, y+s)
	path.ArcTo(x, y+s, x, y+s-r, r)
	path.LineTo(x, y+r)
	path.ArcTo(x, y, x+r, y, r)
	path.Close()

	g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
	c := toNRGBA(sq.Color, sq.Alpha)
	for i := range g.vertices {
		g.vertices[i].SrcX = 1
		g.vertices[i].SrcY = 1
		g.vertices[i].ColorR = float32(c.R) / 255
		g.vertices[i].ColorG = float32(c.G) / 255
		g.vertices[i].ColorB = float32(c.B) / 255
		g.vertices[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(g.vertices, g.indices, g.whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawText(screen *ebiten.Image, t scene.Text) {
	face, err := g.faces.Face(t.Size)
	if err != nil {
		g.lastErr = err
		ebitenutil.DebugPrintAt(screen, t.Content, int(t.X), int(t.Y))
		return
	}
	x, y := textOrigin(face, t)
	text.Draw(screen, t.Content, face, x, y, toNRGBA(t.Color, 255))
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	burst := g.scene.LatestBurst()
	voices := 0
	if g.sound != nil {
		voices = g.sound.Voices()
	}
	status := fmt.Sprintf("TPS %.0f | %s | explosions %d | last burst respawned %d | voices %d | up %s",
		ebiten.ActualTPS(),
		g.scene.Phase(),
		g.scene.Effects().Len(),
		len(burst.Respawned),
		voices,
		formatDuration(g.last.Sub(g.start)),
	)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 10, g.height-20)
}

package scene

import (
	"log"
	"math"

	"github.com/iburimskiy/balloon-pop/internal/palette"
	"github.com/iburimskiy/balloon-pop/internal/rng"
)

// Sound is the pop cue. Activate is called once, on the click that starts the
// scene. Play is only called when Loaded reports true.
type Sound interface {
	Activate() error
	Loaded() bool
	Play()
}

type Label struct {
	Text  string
	X, Y  float64
	Size  float64
	Color palette.RGB
}

type Options struct {
	Width, Height     float64
	BalloonCount      int
	MoveScale         float64
	BurstInterval     float64 // ms
	ExplosionDuration float64 // ms
	ContrastThreshold int
	Background        palette.RGB
	Colors            []palette.RGB
	Label             Label
}

func DefaultOptions() Options {
	return Options{
		Width:             1024,
		Height:            768,
		BalloonCount:      100,
		MoveScale:         0.45,
		BurstInterval:     1000,
		ExplosionDuration: 1000,
		ContrastThreshold: palette.DefaultContrastThreshold,
		Background:        palette.Background,
		Colors:            palette.Macaron,
		Label: Label{
			Text:  "30670",
			X:     10,
			Y:     10,
			Size:  15,
			Color: palette.RGB{0x4B, 0x00, 0x82},
		},
	}
}

type Phase int

const (
	NotStarted Phase = iota
	Started
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case Started:
		return "started"
	default:
		return "unknown"
	}
}

type ClickKind int

const (
	ClickStarted ClickKind = iota
	ClickPopped
	ClickMissed
)

// Burst records what the latest periodic burst did.
type Burst struct {
	Explosion *Explosion
	Respawned []int
}

const (
	promptText    = "Click anywhere to start"
	promptSubtext = "(enables sound)"
	promptSize    = 32
	subtextSize   = 16
)

// Scene is the whole animation state. It is driven from a single goroutine:
// Click for pointer presses, Tick once per frame.
type Scene struct {
	opts      Options
	src       rng.Source
	sound     Sound
	phase     Phase
	balloons  []Balloon
	effects   *Effects
	lastBurst float64
	burst     Burst
	frames    int64
	frame     Frame
}

// New builds the scene and its balloons. A nil sound plays nothing and an
// empty Colors uses the macaron palette.
func New(opts Options, src rng.Source, sound Sound) *Scene {
	if sound == nil {
		sound = silence{}
	}
	if len(opts.Colors) == 0 {
		opts.Colors = palette.Macaron
	}
	s := &Scene{
		opts:    opts,
		src:     src,
		sound:   sound,
		effects: NewEffects(src, opts.Colors, opts.Background, opts.ContrastThreshold, opts.ExplosionDuration),
	}
	s.balloons = make([]Balloon, opts.BalloonCount)
	for i := range s.balloons {
		s.balloons[i] = newBalloon(src, opts.Width, opts.Height, opts.Colors)
	}
	return s
}

// Resize changes the canvas size used for wrapping, respawning and centring.
// Existing balloons keep their positions.
func (s *Scene) Resize(width, height float64) {
	s.opts.Width = width
	s.opts.Height = height
}

func (s *Scene) Size() (float64, float64) {
	return s.opts.Width, s.opts.Height
}

func (s *Scene) Phase() Phase {
	return s.phase
}

func (s *Scene) Balloons() []Balloon {
	return s.balloons
}

func (s *Scene) Effects() *Effects {
	return s.effects
}

// LastBurst returns the time of the latest periodic burst, in ms.
func (s *Scene) LastBurst() float64 {
	return s.lastBurst
}

func (s *Scene) LatestBurst() Burst {
	return s.burst
}

// Frame returns the display list built by the latest Tick.
func (s *Scene) Frame() *Frame {
	return &s.frame
}

// Tick advances the scene to now (ms since start), dt ms after the previous
// tick, and rebuilds the display list.
func (s *Scene) Tick(now, dt float64) *Frame {
	s.frames++
	s.frame.reset(s.opts.Background)

	if s.phase == NotStarted {
		s.startScreen()
		return &s.frame
	}

	if now-s.lastBurst > s.opts.BurstInterval {
		s.periodicBurst()
		s.lastBurst = now
	}

	s.frame.Particles = s.effects.Advance(dt, s.frame.Particles)

	// Each balloon is drawn where it was before this tick's move.
	for i := range s.balloons {
		b := &s.balloons[i]
		s.frame.Balloons = append(s.frame.Balloons, b.sprite())
		b.Advance(s.opts.MoveScale, s.opts.Height)
	}

	l := s.opts.Label
	s.frame.Texts = append(s.frame.Texts, Text{
		Content: l.Text,
		X:       l.X,
		Y:       l.Y,
		Size:    l.Size,
		Color:   l.Color,
		Align:   AlignLeftTop,
	})
	return &s.frame
}

func (s *Scene) startScreen() {
	cx, cy := s.opts.Width/2, s.opts.Height/2
	if math.Sin(float64(s.frames)*0.1) > 0 {
		s.frame.Texts = append(s.frame.Texts, Text{
			Content: promptText,
			X:       cx,
			Y:       cy,
			Size:    promptSize,
			Color:   palette.RGB{0, 0, 0},
			Align:   AlignCenter,
		})
	}
	s.frame.Texts = append(s.frame.Texts, Text{
		Content: promptSubtext,
		X:       cx,
		Y:       cy + 50,
		Size:    subtextSize,
		Color:   palette.RGB{100, 100, 100},
		Align:   AlignCenter,
	})
}

func (s *Scene) periodicBurst() {
	s.playPop()

	w, h := s.opts.Width, s.opts.Height
	x := rng.Range(s.src, w*0.1, w*0.9)
	y := rng.Range(s.src, h*0.1, h*0.9)
	e := s.effects.SpawnAt(x, y, nil)

	s.burst = Burst{Explosion: e}
	if len(s.balloons) == 0 {
		return
	}
	n := int(rng.Range(s.src, 2, 6))
	for range n {
		idx := rng.Index(s.src, len(s.balloons))
		s.balloons[idx].RespawnBelow(s.src, e.X, e.MaxRadius, h)
		s.burst.Respawned = append(s.burst.Respawned, idx)
	}
}

// Click handles a pointer press at (x, y). The first click only starts the
// scene. After that the topmost balloon under the pointer pops; idx is its
// index when kind is ClickPopped.
func (s *Scene) Click(x, y float64) (kind ClickKind, idx int) {
	if s.phase == NotStarted {
		if err := s.sound.Activate(); err != nil {
			log.Printf("audio activation failed, continuing without sound: %v", err)
		}
		s.phase = Started
		return ClickStarted, -1
	}

	for i := len(s.balloons) - 1; i >= 0; i-- {
		b := &s.balloons[i]
		if !b.HitTest(x, y) {
			continue
		}
		pair := palette.Pair{b.Color, s.opts.Colors[rng.Index(s.src, len(s.opts.Colors))]}
		s.effects.SpawnAt(b.X, b.Y, &pair)
		b.RespawnAfterClick(s.src, s.opts.Width, s.opts.Height)
		s.playPop()
		return ClickPopped, i
	}
	return ClickMissed, -1
}

func (s *Scene) playPop() {
	if s.sound.Loaded() {
		s.sound.Play()
	}
}

type silence struct{}

func (silence) Activate() error { return nil }
func (silence) Loaded() bool    { return false }
func (silence) Play()           {}

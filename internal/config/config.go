package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/balloon-pop/internal/palette"
	"github.com/iburimskiy/balloon-pop/internal/scene"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Balloon Pop"
	TPS          = 60

	// Scene parameters
	BalloonCount        = 100
	MoveScale           = 0.45
	BurstIntervalMs     = 1000
	ExplosionDurationMs = 1000

	// Audio parameters
	SoundFile  = "data/pop.wav"
	SampleRate = 44100
	MaxVoices  = 8
)

type Config struct {
	Window  Window  `yaml:"window"`
	Scene   Scene   `yaml:"scene"`
	Palette Palette `yaml:"palette"`
	Label   Label   `yaml:"label"`
	Audio   Audio   `yaml:"audio"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Scene struct {
	BalloonCount        int     `yaml:"balloon_count"`
	MoveScale           float64 `yaml:"move_scale"`
	BurstIntervalMs     float64 `yaml:"burst_interval_ms"`
	ExplosionDurationMs float64 `yaml:"explosion_duration_ms"`
	ContrastThreshold   int     `yaml:"contrast_threshold"`
	// Seed 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// Colours are written as "#rrggbb".
type Palette struct {
	Background string   `yaml:"background"`
	Colors     []string `yaml:"colors"`
}

type Label struct {
	Text  string  `yaml:"text"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
}

type Audio struct {
	Sound      string `yaml:"sound"`
	SampleRate int    `yaml:"sample_rate"`
	MaxVoices  int    `yaml:"max_voices"`
}

func Default() Config {
	colors := make([]string, len(palette.Macaron))
	for i, c := range palette.Macaron {
		colors[i] = FormatColor(c)
	}
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
			TPS:    TPS,
		},
		Scene: Scene{
			BalloonCount:        BalloonCount,
			MoveScale:           MoveScale,
			BurstIntervalMs:     BurstIntervalMs,
			ExplosionDurationMs: ExplosionDurationMs,
			ContrastThreshold:   palette.DefaultContrastThreshold,
		},
		Palette: Palette{
			Background: FormatColor(palette.Background),
			Colors:     colors,
		},
		Label: Label{
			Text:  "30670",
			X:     10,
			Y:     10,
			Size:  15,
			Color: "#4b0082",
		},
		Audio: Audio{
			Sound:      SoundFile,
			SampleRate: SampleRate,
			MaxVoices:  MaxVoices,
		},
	}
}

// Load reads name from fsys on top of the defaults. Keys missing from the file
// keep their default values; unknown keys are an error.
func Load(fsys fs.FS, name string) (Config, error) {
	cfg := Default()
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", name, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.Window.TPS))
	}
	if c.Scene.BalloonCount < 0 {
		errs = append(errs, fmt.Errorf("balloon_count %d must not be negative", c.Scene.BalloonCount))
	}
	if c.Scene.MoveScale < 0 {
		errs = append(errs, fmt.Errorf("move_scale %v must not be negative", c.Scene.MoveScale))
	}
	if c.Scene.BurstIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("burst_interval_ms %v must be positive", c.Scene.BurstIntervalMs))
	}
	if c.Scene.ExplosionDurationMs <= 0 {
		errs = append(errs, fmt.Errorf("explosion_duration_ms %v must be positive", c.Scene.ExplosionDurationMs))
	}
	if len(c.Palette.Colors) == 0 {
		errs = append(errs, errors.New("palette needs at least one colour"))
	}
	for _, s := range append([]string{c.Palette.Background, c.Label.Color}, c.Palette.Colors...) {
		if _, err := ParseColor(s); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Label.Size <= 0 {
		errs = append(errs, fmt.Errorf("label size %v must be positive", c.Label.Size))
	}
	if c.Audio.Sound == "" {
		errs = append(errs, errors.New("audio sound file is empty"))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate %d must be positive", c.Audio.SampleRate))
	}
	if c.Audio.MaxVoices < 0 {
		errs = append(errs, fmt.Errorf("max_voices %d must not be negative", c.Audio.MaxVoices))
	}
	return errors.Join(errs...)
}

// SceneOptions converts the config into the scene's own parameters.
func (c Config) SceneOptions() (scene.Options, error) {
	if err := c.Validate(); err != nil {
		return scene.Options{}, err
	}
	bg, _ := ParseColor(c.Palette.Background)
	labelColor, _ := ParseColor(c.Label.Color)
	colors := make([]palette.RGB, len(c.Palette.Colors))
	for i, s := range c.Palette.Colors {
		colors[i], _ = ParseColor(s)
	}
	return scene.Options{
		Width:             float64(c.Window.Width),
		Height:            float64(c.Window.Height),
		BalloonCount:      c.Scene.BalloonCount,
		MoveScale:         c.Scene.MoveScale,
		BurstInterval:     c.Scene.BurstIntervalMs,
		ExplosionDuration: c.Scene.ExplosionDurationMs,
		ContrastThreshold: c.Scene.ContrastThreshold,
		Background:        bg,
		Colors:            colors,
		Label: scene.Label{
			Text:  c.Label.Text,
			X:     c.Label.X,
			Y:     c.Label.Y,
			Size:  c.Label.Size,
			Color: labelColor,
		},
	}, nil
}

// ParseColor reads a "#rrggbb" colour.
func ParseColor(s string) (palette.RGB, error) {
	if len(s) != 7 || s[0] != '#' || strings.Trim(s[1:], hexDigits) != "" {
		return palette.RGB{}, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return palette.RGB{}, fmt.Errorf("colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return palette.RGB{r, g, b}, nil
}

func FormatColor(c palette.RGB) string {
	return colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}.Hex()
}

const hexDigits = "0123456789abcdefABCDEF"

package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/balloon-pop/internal/audio"
	"github.com/iburimskiy/balloon-pop/internal/config"
	"github.com/iburimskiy/balloon-pop/internal/game"
	"github.com/iburimskiy/balloon-pop/internal/rng"
	"github.com/iburimskiy/balloon-pop/internal/scene"
)

//go:embed data/*
var embeddedFiles embed.FS

func main() {
	configPath := flag.String("config", "data/config.yaml", "YAML config inside the data directory")
	seed := flag.Int64("seed", 0, "random seed (0 uses the config seed, then the clock)")
	chooseSound := flag.Bool("choose-sound", false, "pick the pop sound with a file dialog")
	debug := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	// Files on disk win over the embedded copies so assets can be tweaked
	// without rebuilding.
	var fsys fs.FS = overlayFS{disk: os.DirFS("."), embedded: embeddedFiles}

	cfg, err := config.Load(fsys, *configPath)
	if err != nil {
		fatal(err)
	}

	soundFS, soundName := fsys, cfg.Audio.Sound
	if *chooseSound {
		path, err := chooseSoundFile()
		if err != nil {
			fatal(err)
		}
		if path != "" {
			soundFS, soundName = os.DirFS(filepath.Dir(path)), filepath.Base(path)
		}
	}
	if _, err := fs.Stat(soundFS, soundName); err != nil {
		fatal(fmt.Errorf("sound asset: %w", err))
	}

	effect := audio.NewEffect(cfg.Audio.SampleRate, cfg.Audio.MaxVoices)
	effect.LoadAsync(soundFS, soundName)

	opts, err := cfg.SceneOptions()
	if err != nil {
		fatal(err)
	}
	s := *seed
	if s == 0 {
		s = cfg.Scene.Seed
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("seed %d", s)
	src := rng.NewRand(s)
	sc := scene.New(opts, &src, effect)

	faces, err := game.LoadFaces()
	if err != nil {
		fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	g := game.NewGame(sc, effect, faces, *debug)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// overlayFS opens each file from disk when it exists there and from the
// embedded files otherwise.
type overlayFS struct {
	disk, embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.disk.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.embedded.Open(name)
}

// chooseSoundFile returns the picked path, or "" when the dialog was cancelled.
func chooseSoundFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Pop Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	fmt.Printf("Using sound %v\n", filename)
	return filename, nil
}

func fatal(err error) {
	log.Printf("fatal: %v", err)
	_ = zenity.Error(err.Error(), zenity.Title("Balloon Pop"), zenity.ErrorIcon)
	os.Exit(1)
}

package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported sound format")

const resampleQuality = 4

// Effect is a short sound decoded once into memory and played on demand. Every
// Play starts a new voice, so a pop can fire again while the previous one is
// still audible.
type Effect struct {
	mu     sync.RWMutex
	buffer *beep.Buffer

	ready     atomic.Bool
	active    atomic.Bool
	voices    atomic.Int32
	rate      beep.SampleRate
	maxVoices int

	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
	clear       func()
}

// NewEffect returns an effect that plays at sampleRate with at most maxVoices
// overlapping playbacks (0 means unlimited).
func NewEffect(sampleRate, maxVoices int) *Effect {
	return &Effect{
		rate:        beep.SampleRate(sampleRate),
		maxVoices:   maxVoices,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
		clear:       speaker.Clear,
	}
}

// LoadAsync decodes name from fsys in the background. The returned channel
// receives the result once and is then closed.
func (e *Effect) LoadAsync(fsys fs.FS, name string) <-chan error {
	done := make(chan error, 1)
	go func() {
		err := e.Load(fsys, name)
		if err != nil {
			log.Printf("sound %s not loaded: %v", name, err)
		}
		done <- err
		close(done)
	}()
	return done
}

// Load decodes name from fsys and keeps the samples in memory.
func (e *Effect) Load(fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	defer func() { _ = streamer.Close() }()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	e.mu.Lock()
	e.buffer = buf
	e.mu.Unlock()
	e.ready.Store(true)

	log.Printf("loaded sound %s (%d samples at %d Hz)", name, buf.Len(), format.SampleRate)
	return nil
}

// Loaded reports whether the samples are decoded and ready to play.
func (e *Effect) Loaded() bool {
	return e.ready.Load()
}

// Activate opens the audio device. Calling it again is a no-op.
func (e *Effect) Activate() error {
	if e.active.Load() {
		return nil
	}
	if err := e.initSpeaker(e.rate, e.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	e.active.Store(true)
	return nil
}

// Play starts one playback. It does nothing when the device is not active, the
// sound is not loaded yet, or all voices are busy.
func (e *Effect) Play() {
	if !e.active.Load() || !e.ready.Load() {
		return
	}
	if e.maxVoices > 0 && int(e.voices.Load()) >= e.maxVoices {
		return
	}

	e.mu.RLock()
	buf := e.buffer
	e.mu.RUnlock()

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if from := buf.Format().SampleRate; from != e.rate {
		s = beep.Resample(resampleQuality, from, e.rate, s)
	}
	e.play(newVoice(s, &e.voices))
}

// Voices returns the number of playbacks still running.
func (e *Effect) Voices() int {
	return int(e.voices.Load())
}

// Stop silences every running voice.
func (e *Effect) Stop() {
	if !e.active.Load() {
		return
	}
	e.clear()
	e.voices.Store(0)
}

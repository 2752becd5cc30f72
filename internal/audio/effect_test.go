package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentWav encodes n samples of silence at rate into WAV bytes.
func silentWav(t *testing.T, rate, n int) []byte {
	t.Helper()
	name := filepath.Join(t.TempDir(), "pop.wav")
	f, err := os.Create(name)
	require.NoError(t, err)
	format := beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(n), format))
	require.NoError(t, f.Close())
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return data
}

type recorder struct {
	inits   int
	played  []beep.Streamer
	cleared int
	initErr error
}

func newTestEffect(rate, maxVoices int) (*Effect, *recorder) {
	rec := &recorder{}
	e := NewEffect(rate, maxVoices)
	e.initSpeaker = func(beep.SampleRate, int) error {
		rec.inits++
		return rec.initErr
	}
	e.play = func(s ...beep.Streamer) { rec.played = append(rec.played, s...) }
	e.clear = func() { rec.cleared++ }
	return e, rec
}

func drain(s beep.Streamer) {
	buf := make([][2]float64, 512)
	for {
		if _, ok := s.Stream(buf); !ok {
			return
		}
	}
}

func TestEffect_OperationsBeforeLoadAreSafe(t *testing.T) {
	e, rec := newTestEffect(44100, 4)
	assert.False(t, e.Loaded())
	e.Play()
	e.Stop()
	require.NoError(t, e.Activate())
	e.Play()
	assert.Empty(t, rec.played)
	assert.Equal(t, 0, rec.cleared)
}

func TestEffect_LoadAsyncWav(t *testing.T) {
	e, _ := newTestEffect(44100, 4)
	fsys := fstest.MapFS{"data/pop.wav": {Data: silentWav(t, 44100, 441)}}

	err := <-e.LoadAsync(fsys, "data/pop.wav")
	require.NoError(t, err)
	assert.True(t, e.Loaded())
}

func TestEffect_LoadErrors(t *testing.T) {
	e, _ := newTestEffect(44100, 4)
	fsys := fstest.MapFS{
		"pop.ogg": {Data: []byte("OggS")},
		"bad.wav": {Data: []byte("not a wave file")},
	}

	err := e.Load(fsys, "pop.ogg")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	assert.Error(t, e.Load(fsys, "bad.wav"))
	assert.Error(t, <-e.LoadAsync(fsys, "missing.mp3"))
	assert.False(t, e.Loaded())
}

func TestEffect_PlayNeedsActivation(t *testing.T) {
	e, rec := newTestEffect(44100, 4)
	require.NoError(t, e.Load(fstest.MapFS{"pop.wav": {Data: silentWav(t, 44100, 100)}}, "pop.wav"))

	e.Play()
	assert.Empty(t, rec.played)

	require.NoError(t, e.Activate())
	require.NoError(t, e.Activate())
	assert.Equal(t, 1, rec.inits)

	e.Play()
	e.Play()
	assert.Len(t, rec.played, 2)
	assert.Equal(t, 2, e.Voices())
}

func TestEffect_ActivationFailure(t *testing.T) {
	e, rec := newTestEffect(44100, 4)
	rec.initErr = errors.New("no audio device")
	require.NoError(t, e.Load(fstest.MapFS{"pop.wav": {Data: silentWav(t, 44100, 100)}}, "pop.wav"))

	err := e.Activate()
	assert.ErrorIs(t, err, rec.initErr)
	e.Play()
	assert.Empty(t, rec.played)
}

func TestEffect_VoiceCap(t *testing.T) {
	e, rec := newTestEffect(44100, 2)
	require.NoError(t, e.Load(fstest.MapFS{"pop.wav": {Data: silentWav(t, 44100, 100)}}, "pop.wav"))
	require.NoError(t, e.Activate())

	e.Play()
	e.Play()
	e.Play()
	require.Len(t, rec.played, 2)
	assert.Equal(t, 2, e.Voices())

	drain(rec.played[0])
	assert.Equal(t, 1, e.Voices())
	// Draining twice releases the slot only once.
	drain(rec.played[0])
	assert.Equal(t, 1, e.Voices())

	e.Play()
	assert.Len(t, rec.played, 3)
	assert.Equal(t, 2, e.Voices())

	e.Stop()
	assert.Equal(t, 1, rec.cleared)
	assert.Equal(t, 0, e.Voices())
}

func TestEffect_ResamplesOtherRates(t *testing.T) {
	e, rec := newTestEffect(44100, 0)
	require.NoError(t, e.Load(fstest.MapFS{"pop.wav": {Data: silentWav(t, 22050, 100)}}, "pop.wav"))
	require.NoError(t, e.Activate())

	e.Play()
	require.Len(t, rec.played, 1)
	v, ok := rec.played[0].(*voice)
	require.True(t, ok)
	assert.IsType(t, &beep.Resampler{}, v.Source)
}

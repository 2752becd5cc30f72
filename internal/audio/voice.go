package audio

import (
	"sync"
	"sync/atomic"

	"github.com/faiface/beep"
)

// voice wraps one playback of the effect and releases its slot in the live
// voice count when the source runs dry.
type voice struct {
	Source beep.Streamer
	live   *atomic.Int32
	finish sync.Once
}

func newVoice(src beep.Streamer, live *atomic.Int32) *voice {
	live.Add(1)
	return &voice{
		Source: src,
		live:   live,
	}
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	n, ok := v.Source.Stream(samples)
	if !ok || n < len(samples) {
		v.finish.Do(func() { v.live.Add(-1) })
	}
	return n, ok
}

func (v *voice) Err() error { return v.Source.Err() }

// Package audio plays the game's synthesized sounds through the system
// speaker. When no audio device is available the sink stays silent.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-hop/internal/assets"
	"github.com/vovakirdan/tui-hop/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sink is a core.AudioSink backed by a beep mixer.
type Sink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       []*beep.Ctrl
	logger      *log.Logger
	muted       bool
	initialized bool
}

// NewSink creates a sink. A muted sink never touches the speaker.
func NewSink(logger *log.Logger, muted bool) *Sink {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Sink{
		mixer:  &beep.Mixer{},
		logger: logger,
		muted:  muted,
	}
}

// Initialize opens the speaker. On failure the sink stays silent and the
// error is returned for the caller to report.
func (s *Sink) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized || s.muted {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		s.logger.Warn("audio unavailable, running silent", "err", err)
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	s.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Active reports whether sounds reach the speaker.
func (s *Sink) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Play starts a sound. Handles that are not atlas tones are ignored.
func (s *Sink) Play(h core.SoundHandle, looping bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	tone, ok := h.(*assets.Tone)
	if !ok {
		s.logger.Debug("ignoring unknown sound handle", "sound", h.SoundName())
		return
	}

	st := Streamer(tone, looping)
	if looping {
		ctrl := &beep.Ctrl{Streamer: st}
		s.loops = append(s.loops, ctrl)
		st = ctrl
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Stop silences every sound but keeps the speaker open for the next game.
func (s *Sink) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		s.stopLocked()
	}
}

func (s *Sink) stopLocked() {
	speaker.Lock()
	for _, c := range s.loops {
		c.Paused = true
	}
	s.mixer.Clear()
	speaker.Unlock()

	s.loops = nil
}

// Close stops every sound and releases the speaker.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	s.stopLocked()
	speaker.Close()
	s.initialized = false
}

// Streamer builds the beep streamer for a tone with its volume applied.
func Streamer(tone *assets.Tone, looping bool) beep.Streamer {
	var st beep.Streamer = NewToneStreamer(sampleRate, tone.Notes, looping)
	if tone.Volume != 0 {
		st = &effects.Volume{Streamer: st, Base: 2, Volume: tone.Volume}
	}
	return st
}

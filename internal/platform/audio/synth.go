package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-hop/internal/assets"
)

const (
	amplitude = 0.25
	attack    = 5 * time.Millisecond
	release   = 15 * time.Millisecond
)

// ToneStreamer synthesizes a note sequence as a sine wave with a short
// attack and release per note. A looping streamer never drains.
type ToneStreamer struct {
	sr    beep.SampleRate
	notes []assets.Note
	lens  []int
	loop  bool

	note  int
	pos   int
	phase float64
}

// NewToneStreamer creates a streamer for the notes at the given sample rate.
func NewToneStreamer(sr beep.SampleRate, notes []assets.Note, loop bool) *ToneStreamer {
	lens := make([]int, len(notes))
	for i, n := range notes {
		lens[i] = sr.N(time.Duration(n.Millis) * time.Millisecond)
	}
	return &ToneStreamer{sr: sr, notes: notes, lens: lens, loop: loop}
}

// Len returns the number of samples of one pass over the notes.
func (s *ToneStreamer) Len() int {
	total := 0
	for _, l := range s.lens {
		total += l
	}
	return total
}

// Stream fills samples with the next part of the sequence.
func (s *ToneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if s.note >= len(s.notes) {
			if !s.loop || s.Len() == 0 {
				break
			}
			s.note, s.pos = 0, 0
		}

		note := s.notes[s.note]
		length := s.lens[s.note]

		v := 0.0
		if note.Freq > 0 && length > 0 {
			v = amplitude * s.envelope(s.pos, length) * math.Sin(s.phase)
			s.phase += 2 * math.Pi * note.Freq / float64(s.sr)
			if s.phase > 2*math.Pi {
				s.phase -= 2 * math.Pi
			}
		}
		samples[n][0] = v
		samples[n][1] = v
		n++

		s.pos++
		if s.pos >= length {
			s.note++
			s.pos = 0
		}
	}
	return n, n > 0
}

// Err always returns nil.
func (s *ToneStreamer) Err() error {
	return nil
}

func (s *ToneStreamer) envelope(pos, length int) float64 {
	a := s.sr.N(attack)
	r := s.sr.N(release)
	env := 1.0
	if a > 0 && pos < a {
		env = float64(pos) / float64(a)
	}
	if left := length - pos; r > 0 && left < r {
		env = math.Min(env, float64(left)/float64(r))
	}
	return env
}

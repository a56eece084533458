package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-hop/internal/assets"
	"github.com/vovakirdan/tui-hop/internal/core"
)

// drain streams s until it ends or limit samples were produced.
func drain(s beep.Streamer, limit int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestToneStreamerLength(t *testing.T) {
	notes := []assets.Note{{Freq: 440, Millis: 100}, {Freq: 0, Millis: 50}, {Freq: 660, Millis: 100}}
	st := NewToneStreamer(sampleRate, notes, false)

	want := sampleRate.N(100*time.Millisecond) + sampleRate.N(50*time.Millisecond) + sampleRate.N(100*time.Millisecond)
	if st.Len() != want {
		t.Fatalf("Len() = %d, expected %d", st.Len(), want)
	}

	total, peak := drain(st, 10*want)
	if total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
	if peak <= 0 || peak > amplitude {
		t.Errorf("peak = %v, expected within (0, %v]", peak, amplitude)
	}

	if n, ok := st.Stream(make([][2]float64, 16)); n != 0 || ok {
		t.Errorf("drained streamer returned (%d, %v)", n, ok)
	}
}

func TestToneStreamerRest(t *testing.T) {
	st := NewToneStreamer(sampleRate, []assets.Note{{Freq: 0, Millis: 20}}, false)
	_, peak := drain(st, 1<<20)
	if peak != 0 {
		t.Errorf("a rest should be silent, peak = %v", peak)
	}
}

func TestToneStreamerLoops(t *testing.T) {
	st := NewToneStreamer(sampleRate, []assets.Note{{Freq: 330, Millis: 10}}, true)

	limit := 20 * st.Len()
	if total, _ := drain(st, limit); total < limit {
		t.Errorf("looping streamer ended after %d samples", total)
	}
}

func TestStreamerAppliesVolume(t *testing.T) {
	tone := &assets.Tone{Name: "t", Notes: []assets.Note{{Freq: 440, Millis: 50}}, Volume: -1}
	quiet := &assets.Tone{Name: "t", Notes: tone.Notes}

	_, loud := drain(Streamer(quiet, false), 1<<20)
	_, soft := drain(Streamer(tone, false), 1<<20)
	if soft >= loud {
		t.Errorf("volume -1 should be quieter: %v >= %v", soft, loud)
	}
}

func TestMutedSinkIsSilent(t *testing.T) {
	s := NewSink(nil, true)
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize on a muted sink failed: %v", err)
	}
	if s.Active() {
		t.Error("muted sink must not open the speaker")
	}

	a, err := assets.Default()
	if err != nil {
		t.Fatal(err)
	}
	music, _ := a.LoadMusic("music")

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("silent sink panicked: %v", r)
		}
	}()
	s.Play(music, true)
	s.Play(core.NopSound("x"), false)
	s.Stop()
	s.Close()
}

func TestSinkWithoutInitialize(t *testing.T) {
	s := NewSink(nil, false)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized sink panicked: %v", r)
		}
	}()
	s.Play(core.NopSound("hop"), false)
	s.Stop()
	s.Close()
}

func TestSinkStopKeepsSpeaker(t *testing.T) {
	s := NewSink(nil, false)
	if err := s.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	defer s.Close()

	a, err := assets.Default()
	if err != nil {
		t.Fatal(err)
	}
	music, _ := a.LoadMusic("music")
	s.Play(music, true)

	s.Stop()
	if !s.Active() {
		t.Error("Stop should keep the speaker open")
	}
	if len(s.loops) != 0 {
		t.Errorf("loops left after Stop: %d", len(s.loops))
	}
}

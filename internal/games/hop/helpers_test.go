package hop

import (
	"testing"

	"github.com/vovakirdan/tui-hop/internal/config"
	"github.com/vovakirdan/tui-hop/internal/core"
	"github.com/vovakirdan/tui-hop/internal/registry"
)

type drawCall struct {
	name        string
	x, y, z     float64
	t           core.Transform
	transformed bool
}

// recorder captures draw calls.
type recorder struct {
	calls []drawCall
}

func (r *recorder) Draw(img core.ImageHandle, x, y, z float64) {
	r.calls = append(r.calls, drawCall{name: imageName(img), x: x, y: y, z: z})
}

func (r *recorder) DrawTransformed(img core.ImageHandle, x, y, z float64, t core.Transform) {
	r.calls = append(r.calls, drawCall{name: imageName(img), x: x, y: y, z: z, t: t, transformed: true})
}

func (r *recorder) find(name string) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func imageName(img core.ImageHandle) string {
	if n, ok := img.(core.NopImage); ok {
		return n.Name
	}
	return ""
}

type played struct {
	name    string
	looping bool
}

// speaker records played sounds.
type speaker struct {
	sounds []played
}

func (s *speaker) Play(h core.SoundHandle, looping bool) {
	s.sounds = append(s.sounds, played{name: h.SoundName(), looping: looping})
}

func (s *speaker) count(name string) int {
	n := 0
	for _, p := range s.sounds {
		if p.name == name {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, variant string, env registry.Env) *Game {
	t.Helper()
	cfg, err := config.Default(variant)
	if err != nil {
		t.Fatalf("Default(%q) failed: %v", variant, err)
	}
	g, err := NewWithConfig(variant, cfg, env)
	if err != nil {
		t.Fatalf("NewWithConfig(%q) failed: %v", variant, err)
	}
	return g
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// failRun steps a game in the play level without input until the run ends.
func failRun(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for i := 0; i < 1000; i++ {
		res := g.Step(core.NewInputFrame())
		if res.RunEnded {
			return res
		}
	}
	t.Fatal("run did not end within 1000 ticks")
	return core.StepResult{}
}

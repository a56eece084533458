package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-hop/internal/assets"
	"github.com/vovakirdan/tui-hop/internal/core"
	"github.com/vovakirdan/tui-hop/internal/storage"
)

// fakeGame records its input and draws a fixed message in the middle of the
// playfield.
type fakeGame struct {
	frames []core.InputFrame
	level  string
	quit   bool
	endRun bool
	text   core.ImageHandle
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) State() core.GameState    { return core.GameState{Level: g.level, Quit: g.quit} }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	res := core.StepResult{State: g.State()}
	if g.endRun {
		res.RunEnded, res.FinalScore = true, 2
		g.endRun = false
	}
	return res
}

func (g *fakeGame) Render(r core.Renderer) {
	if g.text != nil {
		r.DrawTransformed(g.text, 400, 300, 0, core.Transform{ScaleX: 1, ScaleY: 1, Tint: core.ColorRed})
	}
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []core.Action
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []core.Action{core.ActionHop, core.ActionConfirm}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []core.Action{core.ActionConfirm}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []core.Action{core.ActionQuit}},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), []core.Action{core.ActionQuit}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), []core.Action{core.ActionQuit}},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := actionsFor(tt.ev)
			if len(got) != len(tt.want) {
				t.Fatalf("actions = %v, expected %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("actions = %v, expected %v", got, tt.want)
				}
			}
		})
	}
}

func TestHostKeyTimeout(t *testing.T) {
	screen := newSimScreen(t)
	g := &fakeGame{level: "play"}
	h := NewHost(screen, g, nil, core.RuntimeConfig{Seed: 1}, 800, 600, nil)

	clock := time.Unix(50, 0)
	h.now = func() time.Time { return clock }

	h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	h.Tick()
	if !g.frames[0].Pressed(core.ActionHop) {
		t.Fatal("first tick should see the press")
	}

	clock = clock.Add(50 * time.Millisecond)
	h.Tick()
	if g.frames[1].Pressed(core.ActionHop) || !g.frames[1].Held(core.ActionHop) {
		t.Error("second tick should see space held but not pressed")
	}

	clock = clock.Add(keyTimeout)
	h.Tick()
	if g.frames[2].Held(core.ActionHop) {
		t.Error("space should be released after the timeout")
	}
}

func TestHostRecordsRunsAndQuits(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	screen := newSimScreen(t)
	g := &fakeGame{level: "play"}
	h := NewHost(screen, g, store, core.RuntimeConfig{Seed: 1}, 800, 600, nil)

	for i := 0; i < 4; i++ {
		h.Tick()
	}
	g.endRun, g.level = true, "fail"
	if !h.Tick() {
		t.Fatal("game should keep running after a failed run")
	}

	best, err := store.HighScore("fake")
	if err != nil {
		t.Fatal(err)
	}
	if best != 2 || h.Runs() != 1 {
		t.Errorf("best = %d runs = %d, expected 2 and 1", best, h.Runs())
	}

	g.quit = true
	if h.Tick() {
		t.Error("Tick should report false once the game quits")
	}
}

func TestHostDraw(t *testing.T) {
	atlas, err := assets.Default()
	if err != nil {
		t.Fatal(err)
	}

	screen := newSimScreen(t)
	g := &fakeGame{level: "play", text: atlas.TextImage("HI", 20)}
	h := NewHost(screen, g, nil, core.RuntimeConfig{Seed: 1}, 800, 600, nil)
	h.Draw()

	found := false
	for y := 0; y < 24 && !found; y++ {
		for x := 0; x < 79; x++ {
			r1, _, style, _ := screen.GetContent(x, y)
			r2, _, _, _ := screen.GetContent(x+1, y)
			if r1 == 'H' && r2 == 'I' {
				found = true
				if style != styleFor(core.ColorRed) {
					t.Error("tinted text should use the red style")
				}
				break
			}
		}
	}
	if !found {
		t.Error("text was not drawn on the tcell screen")
	}
}

func TestHostResize(t *testing.T) {
	screen := newSimScreen(t)
	h := NewHost(screen, &fakeGame{}, nil, core.RuntimeConfig{Seed: 1}, 800, 600, nil)

	h.HandleEvent(tcell.NewEventResize(100, 30))
	if h.buf.Width() != 100 || h.buf.Height() != 30 {
		t.Errorf("buffer = %dx%d, expected 100x30", h.buf.Width(), h.buf.Height())
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if styleFor(core.Color(200)) != tcell.StyleDefault.Foreground(tcell.ColorDefault) {
		t.Error("unknown colours should fall back to the default style")
	}
	if styleFor(core.ColorGray) == styleFor(core.ColorDefault) {
		t.Error("gray should differ from the default")
	}
}

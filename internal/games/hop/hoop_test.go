package hop

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-hop/internal/config"
)

func TestNewHoop(t *testing.T) {
	h := NewHoop(config.DefaultHopConfig().Hoops)

	if h.X != 0 || h.Y != 0 || !h.Active {
		t.Fatalf("new hoop = (%v, %v, %v), expected (0, 0, true)", h.X, h.Y, h.Active)
	}

	h.Update(10)
	if h.X != -10 {
		t.Errorf("X = %v, expected -10", h.X)
	}
	if h.Y != 0 {
		t.Errorf("Y = %v, expected unchanged 0", h.Y)
	}
}

func TestHoopMiss(t *testing.T) {
	tests := []struct {
		name   string
		hx, hy float64
		px, py float64
		miss   bool
	}{
		{"through the gap", 266, 300, 266, 300, false},
		{"edge of gap", 266, 372, 266, 300, false},
		{"gap too low", 266, 373, 266, 300, true},
		{"gap too high", 270, 200, 266, 300, true},
		{"not aligned yet", 278, 500, 266, 300, false},
		{"just aligned", 277.5, 500, 266, 300, true},
		{"already past", 250, 500, 266, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHoop(config.DefaultHopConfig().Hoops)
			h.X, h.Y = tt.hx, tt.hy
			p := NewPlayer(config.DefaultHopConfig(), Cues{})
			p.X, p.Y = tt.px, tt.py

			if got := h.Miss(p); got != tt.miss {
				t.Errorf("Miss() = %v, expected %v", got, tt.miss)
			}
		})
	}
}

func TestHoopFieldInit(t *testing.T) {
	cfg := config.DefaultHopConfig()
	f := NewHoopField(cfg, 42, nil)
	f.Movement = 9
	f.Init()

	if f.Movement != 3.0 {
		t.Errorf("Movement = %v, expected 3.0", f.Movement)
	}
	if len(f.Hoops) != 6 {
		t.Fatalf("hoop count = %d, expected 6", len(f.Hoops))
	}
	for i, h := range f.Hoops {
		if want := 600 + 200*float64(i); h.X != want {
			t.Errorf("hoop %d: X = %v, expected %v", i, h.X, want)
		}
		if h.Y < 150 || h.Y > 500 {
			t.Errorf("hoop %d: Y = %v outside band", i, h.Y)
		}
		if !h.Active {
			t.Errorf("hoop %d should be active", i)
		}
	}

	// The first hoop is placed relative to the neutral row of its predecessor.
	if h := f.Hoops[0]; h.Y < 175 || h.Y > 450 {
		t.Errorf("hoop 0: Y = %v outside [175, 450]", h.Y)
	}
}

func TestHoopFieldClassicInit(t *testing.T) {
	f := NewHoopField(config.DefaultClassicConfig(), 1, nil)
	f.Init()

	if f.Hoops[0].X != 800 {
		t.Errorf("first hoop X = %v, expected 800", f.Hoops[0].X)
	}
	if f.Movement != 2.0 {
		t.Errorf("Movement = %v, expected 2.0", f.Movement)
	}
}

func TestRecycleStaysInWindow(t *testing.T) {
	cfg := config.DefaultHopConfig()

	for seed := int64(0); seed < 50; seed++ {
		f := NewHoopField(cfg, seed, nil)
		f.Init()

		for step := 0; step < 60; step++ {
			i := step % len(f.Hoops)
			prev := f.Hoops[(i+len(f.Hoops)-1)%len(f.Hoops)]
			h := f.Hoops[i]
			h.X = -250
			h.Active = false

			lo := max(prev.Y-150, 150)
			hi := min(prev.Y+125, 500)

			f.Recycle(i)

			if h.Y < lo || h.Y > hi {
				t.Fatalf("seed %d step %d: Y = %v outside [%v, %v]", seed, step, h.Y, lo, hi)
			}
			if h.X != 950 {
				t.Fatalf("seed %d step %d: X = %v, expected 950", seed, step, h.X)
			}
			if !h.Active {
				t.Fatalf("seed %d step %d: recycled hoop should be active", seed, step)
			}
		}
	}
}

func TestRecycleReachesWholeWindow(t *testing.T) {
	f := NewHoopField(config.DefaultHopConfig(), 7, nil)
	seen := map[float64]bool{}

	for n := 0; n < 5000; n++ {
		f.Hoops[5].Y = 160
		f.Recycle(0)
		seen[f.Hoops[0].Y] = true
	}

	// [10, 285] clipped to [150, 500] is [150, 285].
	if !seen[150] || !seen[285] {
		t.Errorf("window ends not reached: 150=%v 285=%v", seen[150], seen[285])
	}
	for y := range seen {
		if y < 150 || y > 285 {
			t.Errorf("row %v outside [150, 285]", y)
		}
	}
}

func TestRecycleEmptyWindowClamps(t *testing.T) {
	cfg := config.DefaultHopConfig()
	cfg.Hoops.WindowAbove = -10
	cfg.Hoops.WindowBelow = 10
	f := NewHoopField(cfg, 1, nil)

	tests := []struct {
		prev float64
		want float64
	}{
		{900, 500},
		{20, 150},
	}
	for _, tt := range tests {
		f.Hoops[5].Y = tt.prev
		if r := f.Candidates(0); !r.Empty() {
			t.Fatalf("prev %v: candidates %v should be empty", tt.prev, r)
		}
		f.Recycle(0)
		if f.Hoops[0].Y != tt.want {
			t.Errorf("prev %v: Y = %v, expected %v", tt.prev, f.Hoops[0].Y, tt.want)
		}
	}
}

// isolate parks every hoop but the first far to the right.
func isolate(f *HoopField, x, y float64) *Hoop {
	for _, h := range f.Hoops {
		h.X, h.Y, h.Active = 5000, 300, true
	}
	h := f.Hoops[0]
	h.X, h.Y = x, y
	return h
}

func TestHoopFieldScoring(t *testing.T) {
	cfg := config.DefaultHopConfig()
	f := NewHoopField(cfg, 1, nil)
	p := NewPlayer(cfg, Cues{})
	h := isolate(f, 268, 300)
	f.Movement = 3

	if got := f.Update(p); got != 1 {
		t.Fatalf("points = %d, expected 1", got)
	}
	if h.Active {
		t.Error("scored hoop should be inactive")
	}
	if got := f.Update(p); got != 0 {
		t.Errorf("points on the next tick = %d, expected 0", got)
	}
}

func TestKillingHoopDoesNotScore(t *testing.T) {
	cfg := config.DefaultHopConfig()
	f := NewHoopField(cfg, 1, nil)
	p := NewPlayer(cfg, Cues{})
	h := isolate(f, 268, 450)
	f.Movement = 3

	if got := f.Update(p); got != 0 {
		t.Errorf("points = %d, expected 0", got)
	}
	if p.Alive {
		t.Error("player should have died on the missed hoop")
	}
	if !h.Active {
		t.Error("missed hoop should stay active")
	}
}

func TestHoopFieldRecyclesOffscreenHoop(t *testing.T) {
	cfg := config.DefaultHopConfig()
	f := NewHoopField(cfg, 1, nil)
	p := NewPlayer(cfg, Cues{})
	h := isolate(f, -198, 300)
	h.Active = false
	f.Movement = 3

	f.Update(p)

	if h.X != 999 {
		t.Errorf("X = %v, expected 999 (-201 + 1200)", h.X)
	}
	if !h.Active {
		t.Error("recycled hoop should be active")
	}
}

func TestHoopFieldAccelerate(t *testing.T) {
	f := NewHoopField(config.DefaultHopConfig(), 1, nil)
	f.Init()
	for i := 0; i < 400; i++ {
		f.Accelerate()
	}
	if math.Abs(f.Movement-4.0) > 1e-9 {
		t.Errorf("Movement = %v, expected 4.0", f.Movement)
	}
	f.Init()
	if f.Movement != 3.0 {
		t.Errorf("Movement after Init = %v, expected 3.0", f.Movement)
	}
}

func TestHoopFieldSeedDeterminism(t *testing.T) {
	cfg := config.DefaultHopConfig()
	rows := func(seed int64) []float64 {
		f := NewHoopField(cfg, seed, nil)
		f.Init()
		out := make([]float64, 0, len(f.Hoops))
		for _, h := range f.Hoops {
			out = append(out, h.Y)
		}
		return out
	}

	a, b := rows(99), rows(99)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("hoop %d: rows differ for the same seed: %v vs %v", i, a[i], b[i])
		}
	}
}

package hop

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hop/internal/config"
	"github.com/vovakirdan/tui-hop/internal/core"
)

// Hoop is a scrolling gap. X, Y is the centre of the gap.
// Active is cleared once the hoop has scored and set again on recycle.
type Hoop struct {
	X      float64
	Y      float64
	Active bool

	missX float64
	missY float64
}

// NewHoop creates an active hoop at the origin.
func NewHoop(cfg config.Hoops) *Hoop {
	return &Hoop{
		Active: true,
		missX:  cfg.MissX,
		missY:  cfg.MissY,
	}
}

// Update scrolls the hoop left.
func (h *Hoop) Update(movement float64) {
	h.X -= movement
}

// Miss reports whether the player is lined up with the hoop column but
// outside its gap.
func (h *Hoop) Miss(p *Player) bool {
	return math.Abs(h.X-p.X) < h.missX && math.Abs(h.Y-p.Y) > h.missY
}

// HoopField is a fixed ring of hoops conveyed right to left.
type HoopField struct {
	Hoops    []*Hoop
	Movement float64

	cfg    config.Hoops
	scroll config.Scroll
	rng    *rand.Rand
	logger *log.Logger
}

// NewHoopField creates the ring of hoops. Call Init before the first update.
func NewHoopField(cfg config.HopConfig, seed int64, logger *log.Logger) *HoopField {
	f := &HoopField{
		Hoops:  make([]*Hoop, cfg.Hoops.Count),
		cfg:    cfg.Hoops,
		scroll: cfg.Scroll,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
	for i := range f.Hoops {
		f.Hoops[i] = NewHoop(cfg.Hoops)
	}
	f.Movement = cfg.Scroll.BaseSpeed
	return f
}

// Seed restarts the random sequence used for hoop rows.
func (f *HoopField) Seed(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
}

// Init lays out the starting conveyor and resets the scroll speed.
func (f *HoopField) Init() {
	f.Movement = f.scroll.BaseSpeed

	for _, h := range f.Hoops {
		h.Y = f.cfg.InitialRow
	}

	cursor := f.cfg.StartOffset
	for i, h := range f.Hoops {
		f.Recycle(i)
		cursor += f.cfg.Spacing
		h.X = cursor
	}
}

// Candidates returns the rows hoop i may take when recycled: the window
// around its ring predecessor clipped to the band.
func (f *HoopField) Candidates(i int) core.IntRange {
	prev := f.prev(i)
	row := int(math.Round(prev.Y))
	window := core.IntRange{Lo: row + f.cfg.WindowAbove, Hi: row + f.cfg.WindowBelow}
	return window.Intersect(f.band())
}

func (f *HoopField) prev(i int) *Hoop {
	n := len(f.Hoops)
	return f.Hoops[(i-1+n)%n]
}

func (f *HoopField) band() core.IntRange {
	return core.IntRange{Lo: f.cfg.BandMin, Hi: f.cfg.BandMax}
}

// Recycle moves hoop i further right with a fresh row and reactivates it.
func (f *HoopField) Recycle(i int) {
	h := f.Hoops[i]

	rows := f.Candidates(i)
	if rows.Empty() {
		prevRow := int(math.Round(f.prev(i).Y))
		row := core.Clamp(prevRow, f.cfg.BandMin, f.cfg.BandMax)
		if f.logger != nil {
			f.logger.Warn("empty respawn window, clamping to band",
				"hoop", i, "prev", prevRow, "row", row)
		}
		h.Y = float64(row)
	} else {
		h.Y = float64(rows.Lo + f.rng.Intn(rows.Len()))
	}

	h.X += f.cfg.RecycleAdvance
	h.Active = true
}

// Accelerate applies one tick of the scroll ramp.
func (f *HoopField) Accelerate() {
	f.Movement += f.scroll.Acceleration
}

// Update scrolls every hoop and resolves it against the player, hoop by hoop
// in index order: scroll, recycle, miss, score. It returns the points scored.
func (f *HoopField) Update(p *Player) int {
	points := 0
	for i, h := range f.Hoops {
		h.Update(f.Movement)
		if h.X < f.cfg.RecycleX {
			f.Recycle(i)
		}
		if h.Miss(p) {
			p.Die()
		}
		if h.Active && p.Alive && h.X < p.X {
			points++
			h.Active = false
		}
	}
	return points
}

// Next returns the first hoop the player has not yet passed, or nil.
func (f *HoopField) Next(p *Player) *Hoop {
	var next *Hoop
	for _, h := range f.Hoops {
		if h.X+f.cfg.MissX < p.X {
			continue
		}
		if next == nil || h.X < next.X {
			next = h
		}
	}
	return next
}

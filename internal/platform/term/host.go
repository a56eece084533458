// Package term runs a game directly on a tcell screen.
//
// It is the alternative to the Bubble Tea frontend: a raw event loop with a
// fixed-rate ticker and per-key timestamps that stand in for key releases.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-hop/internal/assets"
	"github.com/vovakirdan/tui-hop/internal/core"
	"github.com/vovakirdan/tui-hop/internal/registry"
	"github.com/vovakirdan/tui-hop/internal/storage"
)

// keyTimeout is how long a key stays held after its last event.
const keyTimeout = 150 * time.Millisecond

var palette = map[core.Color]tcell.Color{
	core.ColorDefault:       tcell.ColorDefault,
	core.ColorRed:           tcell.ColorMaroon,
	core.ColorGreen:         tcell.ColorGreen,
	core.ColorYellow:        tcell.ColorOlive,
	core.ColorBlue:          tcell.ColorNavy,
	core.ColorMagenta:       tcell.ColorPurple,
	core.ColorCyan:          tcell.ColorTeal,
	core.ColorWhite:         tcell.ColorSilver,
	core.ColorBrightRed:     tcell.ColorRed,
	core.ColorBrightGreen:   tcell.ColorLime,
	core.ColorBrightYellow:  tcell.ColorYellow,
	core.ColorBrightBlue:    tcell.ColorBlue,
	core.ColorBrightMagenta: tcell.ColorFuchsia,
	core.ColorBrightCyan:    tcell.ColorAqua,
	core.ColorBrightWhite:   tcell.ColorWhite,
	core.ColorOrange:        tcell.PaletteColor(208),
	core.ColorGray:          tcell.PaletteColor(245),
}

// styleFor converts a cell colour to a tcell style.
func styleFor(c core.Color) tcell.Style {
	fg, ok := palette[c]
	if !ok {
		fg = tcell.ColorDefault
	}
	return tcell.StyleDefault.Foreground(fg)
}

// actionsFor maps a key event to game actions.
func actionsFor(ev *tcell.EventKey) []core.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []core.Action{core.ActionQuit}
	case tcell.KeyEnter:
		return []core.Action{core.ActionConfirm}
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return []core.Action{core.ActionHop, core.ActionConfirm}
		case 'q', 'Q':
			return []core.Action{core.ActionQuit}
		}
	}
	return nil
}

// Host drives one game on a tcell screen.
type Host struct {
	screen   tcell.Screen
	game     registry.Game
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	buf      *core.Screen
	renderer *assets.ScreenRenderer

	pressed core.InputFrame
	keys    map[core.Action]time.Time
	now     func() time.Time

	runTicks int
	runs     int
}

// NewHost prepares a host for the game. The screen must already be initialized.
// fieldW and fieldH are the playfield size the game draws in; store may be nil.
func NewHost(screen tcell.Screen, game registry.Game, store *storage.Store, cfg core.RuntimeConfig, fieldW, fieldH int, logger *log.Logger) *Host {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}

	w, h := screen.Size()
	if w > 0 && h > 0 {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	return &Host{
		screen:   screen,
		game:     game,
		store:    store,
		logger:   logger,
		config:   cfg,
		buf:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: assets.NewScreenRenderer(fieldW, fieldH),
		pressed:  core.NewInputFrame(),
		keys:     make(map[core.Action]time.Time),
		now:      time.Now,
	}
}

// Start resets the game with the host's runtime config.
func (h *Host) Start() {
	h.game.Reset(h.config)
}

// HandleEvent records key presses and follows terminal resizes.
func (h *Host) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := h.now()
		for _, a := range actionsFor(ev) {
			h.pressed.Set(a)
			h.keys[a] = now
		}
	case *tcell.EventResize:
		w, height := ev.Size()
		h.config.ScreenW, h.config.ScreenH = w, height
		h.buf.Resize(w, height)
		h.screen.Sync()
	}
}

// frame collects the presses since the last tick plus every key still inside
// its timeout.
func (h *Host) frame() core.InputFrame {
	in := h.pressed.Clone()
	now := h.now()
	for a, last := range h.keys {
		if now.Sub(last) < keyTimeout {
			in.SetHeld(a)
		} else {
			delete(h.keys, a)
		}
	}
	return in
}

// Tick advances the game by one step. It reports false once the game asked
// to close.
func (h *Host) Tick() bool {
	result := h.game.Step(h.frame())
	h.pressed.Clear()
	h.runTicks++

	if result.RunEnded {
		h.runs++
		if h.store != nil {
			if _, err := h.store.SaveScore(h.game.ID(), result.FinalScore, h.runTicks); err != nil {
				h.logger.Error("failed to record run", "err", err)
			}
		}
	}
	if result.State.Level != "play" {
		h.runTicks = 0
	}

	return !result.State.Quit
}

// Draw renders the game into the tcell back buffer and shows it.
func (h *Host) Draw() {
	h.game.Render(h.renderer)
	h.renderer.Flush(h.buf)

	h.screen.Clear()
	for y := 0; y < h.buf.Height(); y++ {
		for x := 0; x < h.buf.Width(); x++ {
			cell := h.buf.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			h.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	h.screen.Show()
}

// Runs returns the number of runs finished on this host.
func (h *Host) Runs() int {
	return h.runs
}

// Loop polls events and ticks the game until it quits or ctx is done.
func (h *Host) Loop(ctx context.Context) error {
	h.Start()

	ticker := time.NewTicker(time.Second / time.Duration(h.config.TickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			h.HandleEvent(ev)

		case <-ticker.C:
			if !h.Tick() {
				return nil
			}
			h.Draw()
		}
	}
}

// Run opens the terminal, plays the game and restores the terminal on exit.
func Run(ctx context.Context, game registry.Game, store *storage.Store, cfg core.RuntimeConfig, fieldW, fieldH int, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	return NewHost(screen, game, store, cfg, fieldW, fieldH, logger).Loop(ctx)
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hop/internal/assets"
	"github.com/vovakirdan/tui-hop/internal/core"
	"github.com/vovakirdan/tui-hop/internal/registry"
	"github.com/vovakirdan/tui-hop/internal/storage"
)

// holdWindow is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases.
const holdWindow = 150 * time.Millisecond

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	renderer *assets.ScreenRenderer
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     GameKeyMap

	pressed  core.InputFrame
	lastSeen map[core.Action]time.Time
	now      func() time.Time

	runTicks int
	runs     int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// fieldW and fieldH are the playfield size the game draws in.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, fieldW, fieldH int, logger *log.Logger) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: assets.NewScreenRenderer(fieldW, fieldH),
		store:    store,
		logger:   logger,
		config:   cfg,
		keys:     DefaultGameKeyMap(),
		pressed:  core.NewInputFrame(),
		lastSeen: make(map[core.Action]time.Time),
		now:      time.Now,
	}
}

// Init initializes the model and starts the game.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key presses for the next tick.
func (m *Model) handleKey(msg tea.KeyMsg) {
	now := m.now()
	for _, a := range m.keys.Actions(msg) {
		m.pressed.Set(a)
		m.lastSeen[a] = now
	}
}

// frame builds the input of the coming tick: the presses since the last tick
// plus every key seen within the hold window.
func (m *Model) frame() core.InputFrame {
	in := m.pressed.Clone()
	now := m.now()
	for a, seen := range m.lastSeen {
		if now.Sub(seen) <= holdWindow {
			in.SetHeld(a)
		} else {
			delete(m.lastSeen, a)
		}
	}
	return in
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.frame())
	m.pressed.Clear()
	m.runTicks++

	if result.RunEnded {
		m.runs++
		if m.store != nil {
			if _, err := m.store.SaveScore(m.game.ID(), result.FinalScore, m.runTicks); err != nil {
				m.logger.Error("failed to record run", "err", err)
			}
		}
	}
	if result.State.Level != "play" {
		m.runTicks = 0
	}

	if result.State.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.renderer)
	m.renderer.Flush(m.screen)
	return RenderScreen(m.screen)
}

// Runs returns the number of runs finished in this model.
func (m *Model) Runs() int {
	return m.runs
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, fieldW, fieldH int, logger *log.Logger) error {
	model := NewModel(game, store, cfg, fieldW, fieldH, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

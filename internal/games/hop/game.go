package hop

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hop/internal/config"
	"github.com/vovakirdan/tui-hop/internal/core"
	"github.com/vovakirdan/tui-hop/internal/registry"
)

// transition is a (level, event) pair of the transition table.
type transition struct {
	from LevelKind
	on   Event
}

// transitions is fixed for the life of the process. Pairs not listed are ignored.
var transitions = map[transition]LevelKind{
	{LevelTitle, EventContinue}: LevelPlay,
	{LevelPlay, EventFail}:      LevelFail,
	{LevelFail, EventContinue}:  LevelPlay,
}

// Game drives the active level and keeps the scores of the session.
type Game struct {
	id    string
	title string
	cfg   config.HopConfig

	logger     *log.Logger
	background core.ImageHandle

	levels  map[LevelKind]Level
	play    *PlayLevel
	fail    *MessageLevel
	current Level
	entry   LevelKind

	score     int
	highScore int
	quit      bool
}

// New builds a game for the given variant with the collaborators in env.
func New(variant string, env registry.Env) (*Game, error) {
	env = env.Normalize()

	cfg, err := config.Load(variant, env.ConfigPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(variant, cfg, env)
}

// NewWithConfig builds a game from an explicit configuration.
func NewWithConfig(variant string, cfg config.HopConfig, env registry.Env) (*Game, error) {
	env = env.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	background, err := env.Assets.LoadImage(ImageBackground)
	if err != nil {
		return nil, fmt.Errorf("hop: load image %q: %w", ImageBackground, err)
	}
	logo, err := env.Assets.LoadImage(ImageLogo)
	if err != nil {
		return nil, fmt.Errorf("hop: load image %q: %w", ImageLogo, err)
	}

	play, err := NewPlayLevel(cfg, 0, env.Assets, env.Audio, env.Logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		id:         variant,
		title:      titleFor(variant),
		cfg:        cfg,
		logger:     env.Logger,
		background: background,
		play:       play,
		entry:      LevelPlay,
	}
	w, h := cfg.Playfield.Width, cfg.Playfield.Height
	g.fail = NewMessageLevel(LevelFail, env.Assets, env.Clock, logo, w, h, failMessage(g))
	g.levels = map[LevelKind]Level{
		LevelPlay: g.play,
		LevelFail: g.fail,
	}
	if cfg.Flow.TitleScreen {
		g.levels[LevelTitle] = NewMessageLevel(LevelTitle, env.Assets, env.Clock, logo, w, h, titleMessage)
		g.entry = LevelTitle
	}

	g.Reset(core.DefaultConfig())
	return g, nil
}

func titleFor(variant string) string {
	if variant == config.VariantClassic {
		return "Hoop Hop Classic"
	}
	return "Hoop Hop"
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset reseeds the hoop field, clears the session scores and enters the
// first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.play.Seed(cfg.Seed)
	g.score = 0
	g.highScore = 0
	g.quit = false
	g.activate(g.entry)
}

// Step runs one tick: discrete input first, then the level update unless the
// input already produced an event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.quit {
		return core.StepResult{State: g.State()}
	}

	ev := g.current.HandleInput(in)
	if ev == EventNone {
		ev = g.current.Update(in)
	}

	res := g.dispatch(ev)
	res.State = g.State()
	return res
}

// dispatch applies the transition table to an event of the active level.
func (g *Game) dispatch(ev Event) core.StepResult {
	var res core.StepResult
	if ev == EventNone {
		return res
	}
	from := g.current.Kind()

	if ev == EventQuit {
		g.quit = true
		g.logger.Debug("quit requested", "level", from)
		return res
	}

	to, ok := transitions[transition{from, ev}]
	if !ok {
		return res
	}

	if from == LevelPlay && ev == EventFail {
		g.score = g.play.Score()
		if g.score > g.highScore {
			g.highScore = g.score
		}
		res.RunEnded = true
		res.FinalScore = g.score
		g.logger.Info("run ended", "game", g.id, "score", g.score, "high", g.highScore)
	}

	g.logger.Debug("level transition", "from", from, "event", ev, "to", to)
	g.activate(to)
	return res
}

func (g *Game) activate(kind LevelKind) {
	lv, ok := g.levels[kind]
	if !ok {
		panic(fmt.Sprintf("hop: no %s level wired", kind))
	}
	g.current = lv
	lv.Start()
}

// Render draws the background and delegates everything else to the level.
func (g *Game) Render(r core.Renderer) {
	r.Draw(g.background, 0, 0, 0)
	g.current.Draw(r)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.score
	if g.current.Kind() == LevelPlay {
		score = g.play.Score()
	}
	return core.GameState{
		Score:     score,
		HighScore: g.highScore,
		Level:     g.current.Kind().String(),
		Movement:  g.play.Movement(),
		GameOver:  g.current.Kind() == LevelFail,
		Quit:      g.quit,
	}
}

// Score returns the score of the last finished run.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score of the session.
func (g *Game) HighScore() int {
	return g.highScore
}

// Movement returns the scroll speed of the play level.
func (g *Game) Movement() float64 {
	return g.play.Movement()
}

// Level returns the active level.
func (g *Game) Level() Level {
	return g.current
}

// Play returns the play level.
func (g *Game) Play() *PlayLevel {
	return g.play
}

// Config returns the rules the game was built with.
func (g *Game) Config() config.HopConfig {
	return g.cfg
}

// Register the variants with the registry
func init() {
	for _, variant := range []string{config.VariantHop, config.VariantClassic} {
		variant := variant
		registry.Register(variant, func(env registry.Env) (registry.Game, error) {
			return New(variant, env)
		})
	}
}

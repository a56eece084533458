// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hop/internal/core"
)

// ErrUnknownGame is returned by Create for ids that were never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the core interface that all games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, drawing and sound.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "hop").
	ID() string

	// Title returns a human-readable name for display (e.g., "Hoop Hop").
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Hop, Confirm, Quit).
	Step(in core.InputFrame) core.StepResult

	// Render issues the draw calls for the current frame.
	Render(r core.Renderer)

	// State returns the current game state.
	State() core.GameState
}

// Env carries the collaborators a game is constructed with.
// Nil fields are replaced by no-op implementations (see Normalize).
type Env struct {
	Assets     core.AssetProvider
	Audio      core.AudioSink
	Clock      core.Clock
	Logger     *log.Logger
	ConfigPath string // Optional custom config file
}

// Normalize fills nil collaborators with no-op implementations.
func (e Env) Normalize() Env {
	if e.Assets == nil {
		e.Assets = core.NopAssets{}
	}
	if e.Audio == nil {
		e.Audio = core.NopAudio{}
	}
	if e.Clock == nil {
		e.Clock = core.FixedClock(0)
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	return e
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(env Env) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered or if the
// factory cannot build an instance with a no-op environment.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Get title by creating a temporary instance
	g, err := f(Env{}.Normalize())
	if err != nil {
		panic(fmt.Sprintf("registry: game %q cannot be built: %v", id, err))
	}

	factories[id] = f
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the factory fails.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	g, err := f(env.Normalize())
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

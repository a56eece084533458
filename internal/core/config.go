package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Score of the current (or just finished) run
	HighScore int     // Best score seen during this process
	Level     string  // Name of the active level ("title", "play", "fail")
	Movement  float64 // Current horizontal scroll speed of the play level
	GameOver  bool    // True while the failure screen is showing
	Quit      bool    // Set once a level asked to close the game
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// RunEnded is true on the tick a run finished; FinalScore holds its score.
	RunEnded   bool
	FinalScore int
}

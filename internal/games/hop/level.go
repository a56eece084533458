// Package hop implements Hoop Hop: a hopper falls under gravity and must pass
// through a stream of scrolling hoops. The game is a small state machine of
// levels (title, play, fail) driven one fixed tick at a time.
package hop

import "github.com/vovakirdan/tui-hop/internal/core"

// Asset names requested from the AssetProvider.
const (
	ImageBackground = "background"
	ImageLogo       = "logo"
	ImageHoop       = "hoop"
	ImageRising     = "hopper_rising"
	ImageFalling    = "hopper_falling"
	ImageDead       = "hopper_dead"

	SoundHop      = "hop"
	SoundGameOver = "gameover"
	MusicTheme    = "music"
)

// Text sizes for TextImage.
const (
	messageFontSize = 36
	scoreFontSize   = 20
)

// Event is a transition request returned by a level.
type Event int

const (
	EventNone Event = iota
	EventContinue
	EventQuit
	EventFail
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventContinue:
		return "continue"
	case EventQuit:
		return "quit"
	case EventFail:
		return "fail"
	default:
		return "unknown"
	}
}

// LevelKind identifies one of the game's levels.
type LevelKind int

const (
	LevelTitle LevelKind = iota
	LevelPlay
	LevelFail
)

// String returns the level name.
func (k LevelKind) String() string {
	switch k {
	case LevelTitle:
		return "title"
	case LevelPlay:
		return "play"
	case LevelFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Level is one state of the game.
//
// HandleInput receives the discrete presses of a tick before Update runs.
// Either may return an event; Game reacts to the first non-None one.
type Level interface {
	Kind() LevelKind
	Start()
	HandleInput(in core.InputFrame) Event
	Update(in core.InputFrame) Event
	Draw(r core.Renderer)
}

package hop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-hop/internal/core"
)

// MessageLevel shows the logo and a swaying message until the player
// confirms or quits. Title and Fail are both message levels.
type MessageLevel struct {
	kind    LevelKind
	message func() string

	assets core.AssetProvider
	clock  core.Clock
	logo   core.ImageHandle
	width  float64
	height float64

	text    string
	textImg core.ImageHandle
}

// NewMessageLevel creates a message level. The message function is evaluated
// on every Start, so it may read state that changes between activations.
func NewMessageLevel(kind LevelKind, assets core.AssetProvider, clock core.Clock, logo core.ImageHandle, width, height int, message func() string) *MessageLevel {
	return &MessageLevel{
		kind:    kind,
		message: message,
		assets:  assets,
		clock:   clock,
		logo:    logo,
		width:   float64(width),
		height:  float64(height),
	}
}

// Kind returns the level kind.
func (m *MessageLevel) Kind() LevelKind {
	return m.kind
}

// Start regenerates the displayed message.
func (m *MessageLevel) Start() {
	if m.message == nil {
		panic(fmt.Sprintf("hop: %s level has no message", m.kind))
	}
	m.text = m.message()
	m.textImg = m.assets.TextImage(m.text, messageFontSize)
}

// Message returns the text computed by the last Start.
func (m *MessageLevel) Message() string {
	return m.text
}

// HandleInput ignores discrete presses; message levels poll held keys in Update.
func (m *MessageLevel) HandleInput(core.InputFrame) Event {
	return EventNone
}

// Update maps held keys to events. Time plays no part.
func (m *MessageLevel) Update(in core.InputFrame) Event {
	switch {
	case in.Held(core.ActionQuit):
		return EventQuit
	case in.Held(core.ActionConfirm):
		return EventContinue
	default:
		return EventNone
	}
}

// Draw pulses the logo and sways the message with the clock.
func (m *MessageLevel) Draw(r core.Renderer) {
	t := m.clock.Seconds()

	c := math.Cos(t * 4)
	logo := core.Centered()
	logo.ScaleX = 1 + c*0.1
	logo.ScaleY = logo.ScaleX
	r.DrawTransformed(m.logo, m.width/2, m.height/2-80, 1, logo)

	if m.textImg == nil {
		return
	}
	s := math.Sin(t)
	s3 := s * s * s
	msg := core.Centered()
	msg.Rotation = s * 5
	msg.ScaleX = 1 + math.Abs(0.1*s3)
	msg.ScaleY = msg.ScaleX
	msg.Tint = core.ColorRed
	x := m.width/2 + float64(int(100*s))
	y := m.height/2 + 160 + math.Abs(50*s3)
	r.DrawTransformed(m.textImg, x, y, 1, msg)
}

// Scoreboard exposes the scores a fail screen reports.
type Scoreboard interface {
	Score() int
	HighScore() int
}

func titleMessage() string {
	return "Stay alive by hopping!\nPress SPACE to hop!\nPress ESCAPE to close."
}

func failMessage(sb Scoreboard) func() string {
	return func() string {
		return fmt.Sprintf("You scored %d.\nYour high score is %d.\n"+
			"Press SPACE if you dare to continue...\n"+
			"Or ESCAPE if it is just too much for you.", sb.Score(), sb.HighScore())
	}
}

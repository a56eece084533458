package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionHop            // Space - give the player an upward impulse
	ActionConfirm        // Space, Enter - continue from a message screen
	ActionQuit           // Esc, Q, Ctrl+C - close the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionHop:
		return "Hop"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
//
// Pressed holds discrete press events that arrived since the previous tick.
// Held holds the keys considered down during this tick. Terminals rarely report
// key releases, so hosts approximate Held (a key counts as held for a short
// window after its last press); a press always implies held.
type InputFrame struct {
	Actions map[Action]bool
	held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed (and therefore held) for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.SetHeld(a)
}

// SetHeld marks an action as held without a new press event.
func (f *InputFrame) SetHeld(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Pressed returns true if the action was pressed during this frame.
func (f InputFrame) Pressed(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Has is an alias of Pressed.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed(a)
}

// Held returns true if the action was pressed or held during this frame.
func (f InputFrame) Held(a Action) bool {
	if f.Pressed(a) {
		return true
	}
	if f.held == nil {
		return false
	}
	return f.held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.held {
		delete(f.held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.held {
		clone.held[k] = v
	}
	return clone
}

package core

// Action represents a semantic game event, abstracted from physical key presses.
// The simulation works with high-level intents and is agnostic to the
// originating input device.
type Action int

const (
	ActionNone        Action = iota
	ActionJumpPress          // Space, W, Up - begin a jump (or start the run)
	ActionJumpRelease        // key-up of the jump key - cut the jump short
	ActionDuckPress          // S, Down - duck while grounded, speed-drop while airborne
	ActionDuckRelease        // key-up of the duck key - stand back up
	ActionRestart            // R key - restart after game over
	ActionPause              // P - pause/unpause
	ActionQuit               // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJumpPress:
		return "JumpPress"
	case ActionJumpRelease:
		return "JumpRelease"
	case ActionDuckPress:
		return "DuckPress"
	case ActionDuckRelease:
		return "DuckRelease"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input events delivered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether an action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for a := range f.Actions {
		delete(f.Actions, a)
	}
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for a, v := range f.Actions {
		if v {
			clone.Actions[a] = true
		}
	}
	return clone
}

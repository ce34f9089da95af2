package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionAimLeft         // Left arrow, A - sweep the turret toward 180 degrees
	ActionAimRight        // Right arrow, D - sweep the turret toward 0 degrees
	ActionFire            // Space - fire the active weapon and end the turn
	ActionPause           // P - pause/unpause the game
	ActionRestart         // R - restart the match
	ActionQuit            // Q, Ctrl+C - exit the game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is a discrete press or release of a semantic action.
// Terminals only report key-down, so the platform layer synthesizes
// releases; games consume both without knowing the difference.
type KeyEvent struct {
	Action  Action
	Pressed bool // true for press, false for release
}

// InputFrame collects the ordered key events delivered during one
// simulation tick. Order matters: a fire release must reach the active
// tank before the turn advances.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press appends a press event for the given action.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: true})
}

// Release appends a release event for the given action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: false})
}

// Has returns true if the given action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.Events {
		if ev.Action == a && ev.Pressed {
			return true
		}
	}
	return false
}

// Empty returns true if no events were recorded this frame.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets all events for the next frame.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]KeyEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}

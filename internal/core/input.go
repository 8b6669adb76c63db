package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - cursor up
	ActionDown           // S, Down arrow - cursor down
	ActionLeft           // A, Left arrow - cursor left
	ActionRight          // D, Right arrow - cursor right
	ActionConfirm        // Enter, Space - select square / confirm choice
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionUndo           // U - take back the last move
	ActionHint           // H - ask for a suggested move
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionUndo:
		return "Undo"
	case ActionHint:
		return "Hint"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player's input during one simulation tick.
// It contains all actions that were triggered during this frame and the
// last mouse click, if any.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	click    Point
	hasClick bool
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a left click at screen position (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.click = Point{X: x, Y: y}
	f.hasClick = true
}

// Click returns the clicked screen position, if a click happened this frame.
func (f InputFrame) Click() (Point, bool) {
	return f.click, f.hasClick
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.hasClick = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.click = f.click
	clone.hasClick = f.hasClick
	return clone
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone            Action = iota
	ActionUp                     // W, Up arrow - steer / move cursor up
	ActionDown                   // S, Down arrow
	ActionLeft                   // A, Left arrow
	ActionRight                  // D, Right arrow
	ActionPlace                  // Enter, Space - place object at cursor (edit phase)
	ActionPickObstacle           // 1
	ActionPickCollectible        // 2
	ActionPickSpeed              // 3
	ActionPickShield             // 4
	ActionRestart                // R - start or restart the round
	ActionPause                  // P - pause/unpause
	ActionBack                   // B, Escape
	ActionQuit                   // Q, Ctrl+C
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
	case ActionPlace:
		return "Place"
	case ActionPickObstacle:
		return "PickObstacle"
	case ActionPickCollectible:
		return "PickCollectible"
	case ActionPickSpeed:
		return "PickSpeed"
	case ActionPickShield:
		return "PickShield"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Click is a pointer press in screen cell coordinates.
type Click struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool

	// Presses lists discrete key presses since the previous frame, in order.
	// A held key shows up once per terminal key repeat.
	Presses []Action

	// Clicks holds pointer presses received since the previous frame, in order.
	Clicks []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a discrete key press.
func (f *InputFrame) Press(a Action) {
	f.Presses = append(f.Presses, a)
}

// PressCount returns how many times a was pressed this frame.
func (f InputFrame) PressCount(a Action) int {
	n := 0
	for _, p := range f.Presses {
		if p == a {
			n++
		}
	}
	return n
}

// AddClick records a pointer press.
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Presses = f.Presses[:0]
	f.Clicks = f.Clicks[:0]
}

package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - climb
	ActionDown           // S, Down arrow - dive
	ActionLeft           // A, Left arrow - fly back
	ActionRight          // D, Right arrow - boost forward
	ActionConfirm        // Enter, Space - choose nearest tile
	ActionBack           // Esc - leave results / abort to menu
	ActionRestart        // R - restart after a run
	ActionQuit           // Q, Ctrl+C - exit
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
	default:
		return "Unknown"
	}
}

// Controls is the directional input state read once per simulation tick.
type Controls struct {
	Up, Down, Left, Right bool
}

// Set marks the direction behind a as held or released.
// Non-directional actions are ignored.
func (c *Controls) Set(a Action, held bool) {
	switch a {
	case ActionUp:
		c.Up = held
	case ActionDown:
		c.Down = held
	case ActionLeft:
		c.Left = held
	case ActionRight:
		c.Right = held
	}
}


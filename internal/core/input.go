package core

import "github.com/vovakirdan/tui-snake/internal/grid"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionPause          // P
	ActionRestart        // R, only honoured after game over
	ActionQuit           // Q, Esc, Ctrl+C
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

// Direction returns the steering direction for a movement action, or
// grid.None for every other action.
func (a Action) Direction() grid.Direction {
	switch a {
	case ActionUp:
		return grid.Up
	case ActionDown:
		return grid.Down
	case ActionLeft:
		return grid.Left
	case ActionRight:
		return grid.Right
	default:
		return grid.None
	}
}

// IsMove reports whether the action steers the snake.
func (a Action) IsMove() bool {
	return a.Direction() != grid.None
}

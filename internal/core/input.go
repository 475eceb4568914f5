package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left, A, H
	ActionMoveRight        // Right, D, L
	ActionSoftDrop         // Down, S, J - one cell down
	ActionRotate           // Up, W, K - clockwise with wall kick
	ActionHardDrop         // Space - drop and lock
	ActionPause            // P, Esc
	ActionRestart          // R, only after game over
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
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

// InputFrame is the input batch for one frame: the discrete actions
// pressed since the previous frame, in arrival order, plus the real
// time that elapsed since the previous frame.
type InputFrame struct {
	Actions []Action
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was pressed at least once this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of buffered actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets the frame for reuse, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
	f.Elapsed = 0
}

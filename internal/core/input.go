package core

// Action represents a logical input, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionUpPressed
	ActionUpReleased
	ActionDownPressed
	ActionDownReleased
	ActionStart // start or restart the session
	ActionQuit  // leave the program, handled by the frontend
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUpPressed:
		return "UpPressed"
	case ActionUpReleased:
		return "UpReleased"
	case ActionDownPressed:
		return "DownPressed"
	case ActionDownReleased:
		return "DownReleased"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action changes vertical velocity.
func (a Action) IsMovement() bool {
	switch a {
	case ActionUpPressed, ActionUpReleased, ActionDownPressed, ActionDownReleased:
		return true
	}
	return false
}

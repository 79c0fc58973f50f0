package core

// Viewport is the size of the visible world in world units.
// It is read once at startup and never changes within a session.
type Viewport struct {
	W, H float64
}

// DefaultViewport is the world size used when no display dictates one.
func DefaultViewport() Viewport {
	return Viewport{W: 800, H: 480}
}

// Phase is the session state machine position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState is a snapshot of the session, returned after every tick.
type GameState struct {
	Score int     // Displayed score, floor of the fractional accumulator
	Phase Phase   // Current session phase
	Step  int     // Difficulty steps crossed so far
	Speed float64 // Current horizontal speed in world units per tick
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseEnded
}

// Event is a bit set of things that happened during one tick.
type Event uint8

const (
	EventPass     Event = 1 << iota // an obstacle was passed and scored
	EventLevelUp                    // a difficulty step was applied
	EventGameOver                   // the session ended this tick
)

// Has reports whether all bits of e are set.
func (ev Event) Has(e Event) bool {
	return ev&e == e
}

// StepResult is returned by a simulation tick.
type StepResult struct {
	State  GameState
	Events Event
	// Continue asks the caller to schedule another tick.
	Continue bool
}

// Package state tracks where the host run loop is in its lifetime.
package state

// RunState represents the current state of the run loop
type RunState int

const (
	StateBooting RunState = iota
	StateRunning
	StateReplaying
	StateStalled
	StateExited
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StateBooting:
		return "Booting"
	case StateRunning:
		return "Running"
	case StateReplaying:
		return "Replaying"
	case StateStalled:
		return "Stalled"
	case StateExited:
		return "Exited"
	default:
		return "Unknown"
	}
}

// Active reports whether the loop should keep ticking scenes.
func (s RunState) Active() bool {
	return s == StateBooting || s == StateRunning || s == StateReplaying
}

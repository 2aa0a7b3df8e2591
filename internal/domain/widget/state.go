package widget

// State is the interaction state of a widget. Idle, Hover and Pressed are the
// stable tiers; the *To* states are in-progress transitions between them.
type State int

const (
	Idle State = iota
	IdleToHover
	Hover
	HoverToPressed
	PressedToHover
	HoverToIdle
	Pressed
	PressedToIdle
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case IdleToHover:
		return "IdleToHover"
	case Hover:
		return "Hover"
	case HoverToPressed:
		return "HoverToPressed"
	case PressedToHover:
		return "PressedToHover"
	case HoverToIdle:
		return "HoverToIdle"
	case Pressed:
		return "Pressed"
	case PressedToIdle:
		return "PressedToIdle"
	default:
		return "Unknown"
	}
}

// IsTransitional reports whether s is one of the four *To* states.
func (s State) IsTransitional() bool {
	switch s {
	case IdleToHover, HoverToPressed, PressedToHover, HoverToIdle, PressedToIdle:
		return true
	default:
		return false
	}
}

// Destination returns the stable tier a transition settles on.
// Stable states return themselves.
func (s State) Destination() State {
	switch s {
	case IdleToHover, PressedToHover:
		return Hover
	case HoverToPressed:
		return Pressed
	case HoverToIdle, PressedToIdle:
		return Idle
	default:
		return s
	}
}

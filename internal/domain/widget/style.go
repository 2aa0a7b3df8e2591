package widget

import (
	"fmt"
	"image/color"

	"github.com/younwookim/starframe/internal/domain/geom"
	"github.com/younwookim/starframe/internal/domain/palette"
)

// Tier holds the attributes a widget shows at one interaction level.
// With relative transforms Position and Size are offsets from the widget's
// own geometry; otherwise they replace it.
type Tier struct {
	Color      color.NRGBA
	Background color.NRGBA
	Position   geom.Vec2
	Size       geom.Vec2
}

// Geometry is a widget's position and size at the start of a tick.
type Geometry struct {
	Position geom.Vec2
	Size     geom.Vec2
}

// Style describes how a widget looks in each tier and how it moves between them.
// A Style is read-only while widgets use it and may be shared between them.
type Style struct {
	Idle    Tier
	Hover   Tier
	Pressed Tier

	// Smooth interpolates between tiers instead of snapping.
	Smooth bool
	// Relative treats tier Position/Size as offsets from the widget geometry.
	Relative bool
}

// NewStyle creates a style whose three tiers all start as idle.
func NewStyle(idle Tier, smooth, relative bool) *Style {
	return &Style{
		Idle:     idle,
		Hover:    idle,
		Pressed:  idle,
		Smooth:   smooth,
		Relative: relative,
	}
}

// DefaultStyle returns the stock button look: black on light gray, red text
// on hover, dark purple while pressed. No offsets, snapping, relative.
func DefaultStyle() *Style {
	return &Style{
		Idle:     Tier{Color: palette.Black, Background: palette.LightGray},
		Hover:    Tier{Color: palette.Red, Background: palette.LightGray},
		Pressed:  Tier{Color: palette.DarkPurple, Background: palette.LightGray},
		Relative: true,
	}
}

// EditIdle replaces the idle tier.
func (s *Style) EditIdle(t Tier) *Style {
	s.Idle = t
	return s
}

// EditHover replaces the hover tier.
func (s *Style) EditHover(t Tier) *Style {
	s.Hover = t
	return s
}

// EditPressed replaces the pressed tier.
func (s *Style) EditPressed(t Tier) *Style {
	s.Pressed = t
	return s
}

// WithSmooth sets whether tier changes interpolate.
func (s *Style) WithSmooth(smooth bool) *Style {
	s.Smooth = smooth
	return s
}

// WithRelative sets whether tier transforms are offsets.
func (s *Style) WithRelative(relative bool) *Style {
	s.Relative = relative
	return s
}

// Clone returns an independent copy of s.
func (s *Style) Clone() *Style {
	c := *s
	return &c
}

// Tier returns the configured tier for a stable state.
// It panics for transitional states.
func (s *Style) Tier(st State) Tier {
	switch st {
	case Idle:
		return s.Idle
	case Hover:
		return s.Hover
	case Pressed:
		return s.Pressed
	default:
		panic(fmt.Sprintf("widget: no style tier for state %s", st))
	}
}

// Resolve returns the attributes a widget with the given origin geometry
// should reach in the stable state st. It panics for transitional states.
func (s *Style) Resolve(st State, origin Geometry) Tier {
	t := s.Tier(st)
	if s.Relative {
		t.Position = origin.Position.Add(t.Position)
		t.Size = origin.Size.Add(t.Size)
	}
	return t
}

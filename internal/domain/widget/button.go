// Package widget provides the animated UI elements scenes are built from.
package widget

import (
	"image/color"

	"github.com/younwookim/starframe/internal/domain/draw"
	"github.com/younwookim/starframe/internal/domain/geom"
	"github.com/younwookim/starframe/internal/domain/interp"
)

const (
	// LabelFontSize is the font size button labels are drawn with.
	LabelFontSize = 20

	// fractionRate is how much of a transition completes per second.
	fractionRate = 0.5
)

// Button is a labelled rectangle that reacts to hover and press.
//
// The host sets Hovered and Pressed each tick; Update (or Draw) then moves
// the button toward the matching tier of its Style.
type Button struct {
	Position geom.Vec2
	Size     geom.Vec2
	Hovered  bool
	Pressed  bool
	Label    string
	Style    *Style

	color      color.NRGBA
	background color.NRGBA
	state      State
	fraction   float32
}

// NewButton creates an idle button showing the style's idle colors.
func NewButton(position, size geom.Vec2, label string, style *Style) *Button {
	return &Button{
		Position:   position,
		Size:       size,
		Label:      label,
		Style:      style,
		color:      style.Idle.Color,
		background: style.Idle.Background,
		state:      Idle,
	}
}

// State returns the current interaction state
func (b *Button) State() State {
	return b.state
}

// Fraction returns the progress of the current transition (0.0 ~ 1.0)
func (b *Button) Fraction() float32 {
	return b.fraction
}

// Color returns the visible label color
func (b *Button) Color() color.NRGBA {
	return b.color
}

// Background returns the visible background color
func (b *Button) Background() color.NRGBA {
	return b.background
}

// Bounds returns the button's current rectangle
func (b *Button) Bounds() geom.Rect {
	return geom.RectFrom(b.Position, b.Size)
}

// SetStyle swaps the style. An idle button takes the new idle colors at once.
func (b *Button) SetStyle(s *Style) {
	b.Style = s
	if b.state == Idle {
		b.color = s.Idle.Color
		b.background = s.Idle.Background
	}
}

// Contains reports whether p lies on the button, edges included.
func (b *Button) Contains(p geom.Vec2) bool {
	return b.Bounds().Contains(p)
}

// Update advances the interaction state machine by dt seconds and updates
// the visible attributes.
func (b *Button) Update(dt float32) {
	if dt < 0 {
		dt = 0
	}
	origin := Geometry{Position: b.Position, Size: b.Size}

	if !b.Style.Smooth {
		b.snap(origin)
		return
	}

	b.beginTransition()
	if b.state.IsTransitional() {
		b.advance(dt, origin)
	}
}

// Draw updates the button and renders its background and centred label.
func (b *Button) Draw(c draw.Canvas, dt float32) {
	b.Update(dt)

	c.FillRect(int(b.Position.X), int(b.Position.Y), int(b.Size.X), int(b.Size.Y), b.background)

	center := b.Bounds().Center()
	labelX := int(center.X) - c.MeasureText(b.Label, LabelFontSize)/2
	labelY := int(center.Y) - LabelFontSize/2
	c.Text(b.Label, labelX, labelY, LabelFontSize, b.color)
}

// snap moves straight to the tier matching the inputs, one step per tick.
func (b *Button) snap(origin Geometry) {
	switch b.state {
	case Idle:
		if b.Hovered && !b.Pressed {
			b.apply(Hover, origin)
		}
	case Hover:
		if !b.Hovered {
			b.apply(Idle, origin)
		} else if b.Pressed {
			b.apply(Pressed, origin)
		}
	case Pressed:
		if !b.Hovered {
			b.apply(Idle, origin)
		} else if !b.Pressed {
			b.apply(Hover, origin)
		}
	default:
		// Left over from a smooth style that was swapped out mid-transition.
		b.apply(b.state.Destination(), origin)
	}
}

func (b *Button) apply(st State, origin Geometry) {
	t := b.Style.Resolve(st, origin)
	b.color = t.Color
	b.background = t.Background
	b.Position = t.Position
	b.Size = t.Size
	b.state = st
}

// beginTransition enters a *To* state when the inputs no longer match a
// stable tier. Inputs are ignored while a transition is running.
func (b *Button) beginTransition() {
	switch b.state {
	case Idle:
		if b.Hovered && !b.Pressed {
			b.enter(IdleToHover)
		}
	case Hover:
		if !b.Hovered {
			b.enter(HoverToIdle)
		} else if b.Pressed {
			b.enter(HoverToPressed)
		}
	case Pressed:
		if !b.Hovered {
			b.enter(PressedToIdle)
		} else if !b.Pressed {
			b.enter(PressedToHover)
		}
	}
}

func (b *Button) enter(st State) {
	b.state = st
	b.fraction = 0
}

// advance steps the running transition. Targets are resolved against this
// tick's origin, so a button whose base geometry moves chases its target.
func (b *Button) advance(dt float32, origin Geometry) {
	dest := b.state.Destination()
	target := b.Style.Resolve(dest, origin)

	b.fraction += fractionRate * dt
	if b.fraction >= 1 {
		b.fraction = 1
	}

	b.color = interp.Color(b.color, target.Color, b.fraction)
	b.background = interp.Color(b.background, target.Background, b.fraction)
	b.Size = interp.Vector(b.Size, target.Size, b.fraction)
	b.Position = interp.Vector(b.Position, target.Position, b.fraction)

	if b.fraction == 1 {
		b.state = dest
	}
}

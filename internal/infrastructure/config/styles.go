package config

import (
	"fmt"

	"github.com/younwookim/starframe/internal/domain/geom"
	"github.com/younwookim/starframe/internal/domain/palette"
	"github.com/younwookim/starframe/internal/domain/widget"
)

// Style builds the named widget style. An unknown name is an error.
func (s *StyleSheet) Style(name string) (*widget.Style, error) {
	sc, ok := s.Styles[name]
	if !ok {
		return nil, fmt.Errorf("unknown style %q", name)
	}

	idle, err := sc.Idle.tier(widget.Tier{})
	if err != nil {
		return nil, fmt.Errorf("style %s idle: %w", name, err)
	}
	hover, err := sc.Hover.tier(idle)
	if err != nil {
		return nil, fmt.Errorf("style %s hover: %w", name, err)
	}
	pressed, err := sc.Pressed.tier(idle)
	if err != nil {
		return nil, fmt.Errorf("style %s pressed: %w", name, err)
	}

	return widget.NewStyle(idle, sc.Smooth, sc.Relative).
		EditHover(hover).
		EditPressed(pressed), nil
}

// StyleOr returns the named style, or fallback when the sheet has no such style.
func (s *StyleSheet) StyleOr(name string, fallback *widget.Style) *widget.Style {
	if s == nil {
		return fallback
	}
	st, err := s.Style(name)
	if err != nil {
		return fallback
	}
	return st
}

func (tc TierConfig) tier(base widget.Tier) (widget.Tier, error) {
	t := base
	var err error
	if tc.Color != "" {
		if t.Color, err = palette.Parse(tc.Color); err != nil {
			return t, err
		}
	}
	if tc.Background != "" {
		if t.Background, err = palette.Parse(tc.Background); err != nil {
			return t, err
		}
	}
	if tc.Position != nil {
		if t.Position, err = pair("position", tc.Position); err != nil {
			return t, err
		}
	}
	if tc.Size != nil {
		if t.Size, err = pair("size", tc.Size); err != nil {
			return t, err
		}
	}
	return t, nil
}

func pair(field string, v []float32) (geom.Vec2, error) {
	if len(v) != 2 {
		return geom.Vec2{}, fmt.Errorf("%s needs 2 values, got %d", field, len(v))
	}
	return geom.V(v[0], v[1]), nil
}

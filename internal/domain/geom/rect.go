package geom

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// R is shorthand for Rect{X: x, Y: y, Width: w, Height: h}.
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectFrom builds a Rect from a position and a size.
func RectFrom(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Contains reports whether p lies inside r. Both edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	if p.X < r.X || p.X > r.X+r.Width {
		return false
	}
	return p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the centre point of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Package geom provides the small 2D value types shared by widgets and scenes.
package geom

// Vec2 is a 2D vector in window coordinates.
type Vec2 struct {
	X float32
	Y float32
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vec2 {
	return Vec2{}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

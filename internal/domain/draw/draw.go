// Package draw defines the primitive drawing operations widgets and scenes render with.
//
// A Canvas is valid for a single render submission. Implementations decide
// how and when the operations reach the screen.
package draw

import (
	"image"
	"image/color"

	"github.com/younwookim/starframe/internal/domain/geom"
)

// Texture is an opaque image handle. *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Canvas is the set of draw primitives available while rendering a frame.
type Canvas interface {
	// Clear fills the whole drawable area.
	Clear(c color.NRGBA)

	// FillRect draws a filled rectangle in whole pixels.
	FillRect(x, y, w, h int, c color.NRGBA)

	// StrokeRect draws a rectangle outline.
	StrokeRect(r geom.Rect, thickness float32, c color.NRGBA)

	// Line draws a line segment from p0 to p1.
	Line(p0, p1 geom.Vec2, thickness float32, c color.NRGBA)

	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y, fontSize int, c color.NRGBA)

	// MeasureText returns the rendered width of s in pixels.
	MeasureText(s string, fontSize int) int

	// DrawTexture draws the src region of tex into dst. dst.X/dst.Y is where
	// origin (relative to dst) lands; rotation is in degrees around origin.
	DrawTexture(tex Texture, src, dst geom.Rect, origin geom.Vec2, rotation float32, tint color.NRGBA)
}

// TextureSize returns the pixel width and height of tex.
func TextureSize(tex Texture) (w, h int) {
	b := tex.Bounds()
	return b.Dx(), b.Dy()
}

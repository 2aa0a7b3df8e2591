package widget

import (
	"image"
	"image/color"

	"github.com/younwookim/starframe/internal/domain/draw"
	"github.com/younwookim/starframe/internal/domain/geom"
)

// op is one recorded draw call
type op struct {
	kind      string
	x, y      int
	w, h      int
	text      string
	size      int
	color     color.NRGBA
	rect      geom.Rect
	src, dst  geom.Rect
	origin    geom.Vec2
	rotation  float32
	thickness float32
}

// recordingCanvas is a test double for draw.Canvas
type recordingCanvas struct {
	ops []op
}

func (c *recordingCanvas) Clear(col color.NRGBA) {
	c.ops = append(c.ops, op{kind: "clear", color: col})
}

func (c *recordingCanvas) FillRect(x, y, w, h int, col color.NRGBA) {
	c.ops = append(c.ops, op{kind: "fill", x: x, y: y, w: w, h: h, color: col})
}

func (c *recordingCanvas) StrokeRect(r geom.Rect, thickness float32, col color.NRGBA) {
	c.ops = append(c.ops, op{kind: "stroke", rect: r, thickness: thickness, color: col})
}

func (c *recordingCanvas) Line(p0, p1 geom.Vec2, thickness float32, col color.NRGBA) {
	c.ops = append(c.ops, op{kind: "line", thickness: thickness, color: col})
}

func (c *recordingCanvas) Text(s string, x, y, fontSize int, col color.NRGBA) {
	c.ops = append(c.ops, op{kind: "text", text: s, x: x, y: y, size: fontSize, color: col})
}

// MeasureText pretends every glyph is 10 pixels wide.
func (c *recordingCanvas) MeasureText(s string, fontSize int) int {
	return len(s) * 10
}

func (c *recordingCanvas) DrawTexture(tex draw.Texture, src, dst geom.Rect, origin geom.Vec2, rotation float32, tint color.NRGBA) {
	c.ops = append(c.ops, op{kind: "texture", src: src, dst: dst, origin: origin, rotation: rotation, color: tint})
}

// fakeTexture is a texture of a fixed size
type fakeTexture struct {
	w, h int
}

func (t fakeTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.w, t.h)
}

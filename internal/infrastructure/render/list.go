// Package render turns draw.Canvas calls into Ebitengine draw calls.
//
// Scenes render while they update, but Ebitengine only hands out the screen
// in Draw. List records the operations during Update and Flush replays the
// last submission onto the screen.
package render

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/starframe/internal/domain/draw"
	"github.com/younwookim/starframe/internal/domain/geom"
)

// OpKind identifies a recorded draw operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpStrokeRect
	OpLine
	OpText
	OpTexture
)

// String returns the string representation of the op kind
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "Clear"
	case OpFillRect:
		return "FillRect"
	case OpStrokeRect:
		return "StrokeRect"
	case OpLine:
		return "Line"
	case OpText:
		return "Text"
	case OpTexture:
		return "Texture"
	default:
		return "Unknown"
	}
}

// Op is one recorded draw call. Only the fields its Kind uses are set.
type Op struct {
	Kind      OpKind
	Color     color.NRGBA
	Rect      geom.Rect // FillRect, StrokeRect, texture destination
	Src       geom.Rect // texture source region
	P0, P1    geom.Vec2 // line end points
	Origin    geom.Vec2
	Thickness float32
	Rotation  float32
	Text      string
	FontSize  int
	Texture   draw.Texture
}

// List is a draw.Canvas that records operations for a later Flush.
type List struct {
	fonts *Fonts
	ops   []Op
}

var _ draw.Canvas = (*List)(nil)

// NewList creates an empty display list measuring text with fonts.
func NewList(fonts *Fonts) *List {
	return &List{fonts: fonts}
}

// Reset drops everything recorded so far.
func (l *List) Reset() {
	l.ops = l.ops[:0]
}

// Ops returns the recorded operations in submission order.
func (l *List) Ops() []Op {
	return l.ops
}

// Len returns the number of recorded operations.
func (l *List) Len() int {
	return len(l.ops)
}

func (l *List) Clear(c color.NRGBA) {
	l.ops = append(l.ops, Op{Kind: OpClear, Color: c})
}

func (l *List) FillRect(x, y, w, h int, c color.NRGBA) {
	l.ops = append(l.ops, Op{
		Kind:  OpFillRect,
		Color: c,
		Rect:  geom.R(float32(x), float32(y), float32(w), float32(h)),
	})
}

func (l *List) StrokeRect(r geom.Rect, thickness float32, c color.NRGBA) {
	l.ops = append(l.ops, Op{Kind: OpStrokeRect, Color: c, Rect: r, Thickness: thickness})
}

func (l *List) Line(p0, p1 geom.Vec2, thickness float32, c color.NRGBA) {
	l.ops = append(l.ops, Op{Kind: OpLine, Color: c, P0: p0, P1: p1, Thickness: thickness})
}

func (l *List) Text(s string, x, y, fontSize int, c color.NRGBA) {
	l.ops = append(l.ops, Op{
		Kind:     OpText,
		Color:    c,
		Text:     s,
		FontSize: fontSize,
		P0:       geom.V(float32(x), float32(y)),
	})
}

func (l *List) MeasureText(s string, fontSize int) int {
	return l.fonts.Measure(s, fontSize)
}

func (l *List) DrawTexture(tex draw.Texture, src, dst geom.Rect, origin geom.Vec2, rotation float32, tint color.NRGBA) {
	l.ops = append(l.ops, Op{
		Kind:     OpTexture,
		Color:    tint,
		Texture:  tex,
		Src:      src,
		Rect:     dst,
		Origin:   origin,
		Rotation: rotation,
	})
}

// Flush replays the recorded operations onto screen. The list is kept so
// the same submission can be drawn again if no new one arrives.
func (l *List) Flush(screen *ebiten.Image) {
	for i := range l.ops {
		l.flushOp(screen, &l.ops[i])
	}
}

func (l *List) flushOp(screen *ebiten.Image, op *Op) {
	r := op.Rect
	switch op.Kind {
	case OpClear:
		screen.Fill(op.Color)
	case OpFillRect:
		vector.FillRect(screen, r.X, r.Y, r.Width, r.Height, op.Color, false)
	case OpStrokeRect:
		vector.StrokeRect(screen, r.X, r.Y, r.Width, r.Height, op.Thickness, op.Color, true)
	case OpLine:
		vector.StrokeLine(screen, op.P0.X, op.P0.Y, op.P1.X, op.P1.Y, op.Thickness, op.Color, true)
	case OpText:
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(float64(op.P0.X), float64(op.P0.Y))
		opts.ColorScale.ScaleWithColor(op.Color)
		text.Draw(screen, op.Text, l.fonts.Face(op.FontSize), opts)
	case OpTexture:
		l.flushTexture(screen, op)
	}
}

func (l *List) flushTexture(screen *ebiten.Image, op *Op) {
	img, ok := op.Texture.(*ebiten.Image)
	if !ok {
		log.Printf("render: cannot draw texture of type %T", op.Texture)
		return
	}
	src := op.Src
	if src.Width == 0 || src.Height == 0 {
		return
	}

	sub := img.SubImage(image.Rect(
		int(src.X), int(src.Y),
		int(src.X+src.Width), int(src.Y+src.Height),
	)).(*ebiten.Image)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(op.Rect.Width/src.Width), float64(op.Rect.Height/src.Height))
	opts.GeoM.Translate(-float64(op.Origin.X), -float64(op.Origin.Y))
	opts.GeoM.Rotate(float64(op.Rotation) * math.Pi / 180)
	opts.GeoM.Translate(float64(op.Rect.X), float64(op.Rect.Y))
	opts.ColorScale.ScaleWithColor(op.Color)
	opts.Filter = ebiten.FilterLinear
	screen.DrawImage(sub, opts)
}

package render

import (
	"image"
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starframe/internal/domain/geom"
)

type fakeTexture struct{ w, h int }

func (f fakeTexture) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }

func newTestList(t *testing.T) *List {
	t.Helper()
	fonts, err := DefaultFonts()
	require.NoError(t, err)
	return NewList(fonts)
}

func TestList_RecordsInOrder(t *testing.T) {
	l := newTestList(t)
	red := color.NRGBA{R: 230, G: 41, B: 55, A: 255}
	tex := fakeTexture{w: 64, h: 32}

	l.Clear(color.NRGBA{A: 255})
	l.FillRect(1, 2, 3, 4, red)
	l.StrokeRect(geom.R(5, 6, 7, 8), 3, red)
	l.Line(geom.V(0, 80), geom.V(640, 80), 1, red)
	l.Text("Start", 10, 20, 20, red)
	l.DrawTexture(tex, geom.R(0, 0, 64, 32), geom.R(100, 100, 128, 64), geom.V(64, 32), 45, red)

	ops := l.Ops()
	require.Len(t, ops, 6)

	kinds := make([]OpKind, len(ops))
	for i, op := range ops {
		kinds[i] = op.Kind
	}
	assert.Equal(t, []OpKind{OpClear, OpFillRect, OpStrokeRect, OpLine, OpText, OpTexture}, kinds)

	assert.Equal(t, geom.R(1, 2, 3, 4), ops[1].Rect)
	assert.Equal(t, float32(3), ops[2].Thickness)
	assert.Equal(t, geom.V(640, 80), ops[3].P1)
	assert.Equal(t, "Start", ops[4].Text)
	assert.Equal(t, 20, ops[4].FontSize)
	assert.Equal(t, geom.V(10, 20), ops[4].P0)
	assert.Equal(t, tex, ops[5].Texture)
	assert.Equal(t, float32(45), ops[5].Rotation)
	assert.Equal(t, geom.V(64, 32), ops[5].Origin)
}

func TestList_Reset(t *testing.T) {
	l := newTestList(t)
	l.Clear(color.NRGBA{A: 255})
	l.FillRect(0, 0, 1, 1, color.NRGBA{A: 255})
	require.Equal(t, 2, l.Len())

	l.Reset()

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Ops())
}

func TestOpKind_String(t *testing.T) {
	tests := []struct {
		kind     OpKind
		expected string
	}{
		{OpClear, "Clear"},
		{OpFillRect, "FillRect"},
		{OpStrokeRect, "StrokeRect"},
		{OpLine, "Line"},
		{OpText, "Text"},
		{OpTexture, "Texture"},
		{OpKind(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestFonts_Measure(t *testing.T) {
	fonts, err := DefaultFonts()
	require.NoError(t, err)

	assert.Equal(t, 0, fonts.Measure("", 20))

	short := fonts.Measure("Exit", 20)
	long := fonts.Measure("Exit Exit", 20)
	big := fonts.Measure("Exit", 40)

	assert.Greater(t, short, 0)
	assert.Greater(t, long, short)
	assert.Greater(t, big, short)
}

func TestFonts_FaceCache(t *testing.T) {
	fonts, err := DefaultFonts()
	require.NoError(t, err)

	assert.Same(t, fonts.Face(20), fonts.Face(20))
	assert.NotSame(t, fonts.Face(20), fonts.Face(21))
	assert.Equal(t, 1.0, fonts.Face(0).Size, "sizes clamp to one pixel")
}

func TestNewFonts_InvalidData(t *testing.T) {
	_, err := NewFonts([]byte("not a font"))
	assert.Error(t, err)
}

func TestTextures_MissingFile(t *testing.T) {
	tex := NewFSTextures(fstest.MapFS{})
	_, err := tex.Load("does/not/exist.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does/not/exist.png")
	assert.Empty(t, tex.images)
}

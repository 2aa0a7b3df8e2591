package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts hands out text faces of one typeface, cached per pixel size.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

// NewFonts parses a TrueType/OpenType font.
func NewFonts(ttf []byte) (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Fonts{
		source: source,
		faces:  make(map[int]*text.GoTextFace),
	}, nil
}

// DefaultFonts returns the Go Regular typeface.
func DefaultFonts() (*Fonts, error) {
	return NewFonts(goregular.TTF)
}

// Face returns the face for size, creating it on first use.
func (f *Fonts) Face(size int) *text.GoTextFace {
	if size < 1 {
		size = 1
	}
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: float64(size)}
		f.faces[size] = face
	}
	return face
}

// Measure returns the advance width of s in whole pixels, rounded up.
func (f *Fonts) Measure(s string, size int) int {
	if s == "" {
		return 0
	}
	face := f.Face(size)
	w, _ := text.Measure(s, face, face.Size)
	return int(math.Ceil(w))
}

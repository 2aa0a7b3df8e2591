package widget

import (
	"github.com/younwookim/starframe/internal/domain/draw"
	"github.com/younwookim/starframe/internal/domain/geom"
	"github.com/younwookim/starframe/internal/domain/palette"
)

// HeaderHeight is the band at the top of the screen reserved for buttons.
// Covers are fitted into the area below it.
const HeaderHeight = 80

// Cover is a titled image shown in the area below the header.
type Cover struct {
	Texture  draw.Texture
	Label    string
	Origin   geom.Vec2
	Pos      geom.Vec2
	Size     geom.Vec2
	Rotation float32
}

// NewCover creates an unrotated cover.
func NewCover(tex draw.Texture, label string, origin, pos, size geom.Vec2) *Cover {
	return &Cover{
		Texture: tex,
		Label:   label,
		Origin:  origin,
		Pos:     pos,
		Size:    size,
	}
}

// Frame computes where the texture lands on a screen of the given size.
// dst is centred horizontally and pushed down by half the header; origin is
// the centre of dst, which is also the rotation pivot.
func (c *Cover) Frame(screen geom.Vec2) (src, dst geom.Rect, origin geom.Vec2) {
	w, h := draw.TextureSize(c.Texture)
	src = geom.R(0, 0, float32(w), float32(h))

	if src.Width == src.Height {
		side := screen.X
		if screen.Y < side {
			side = screen.Y
		}
		side -= HeaderHeight
		dst = geom.R(screen.X/2, screen.Y/2+HeaderHeight/2, side, side)
	} else {
		widthScale := screen.X / src.Width
		heightScale := widthScale
		if src.Height*widthScale > screen.Y {
			heightScale = screen.Y / src.Height
		}

		widthScale -= 0.016
		heightScale -= 0.05

		dst = geom.R(screen.X/2, screen.Y/2+HeaderHeight/2, widthScale*src.Width, heightScale*src.Height)
	}

	origin = geom.V(dst.Width/2, dst.Height/2)
	return src, dst, origin
}

// Draw renders the cover image. A cover without a texture draws nothing.
func (c *Cover) Draw(cv draw.Canvas, screen geom.Vec2) {
	if c.Texture == nil {
		return
	}
	src, dst, origin := c.Frame(screen)
	cv.DrawTexture(c.Texture, src, dst, origin, c.Rotation, palette.White)
}

// DrawOutline draws the cover's layout box.
func (c *Cover) DrawOutline(cv draw.Canvas) {
	cv.StrokeRect(geom.RectFrom(c.Pos, c.Size), 3, palette.Red)
}

// CoverBook is an ordered collection of covers with a cursor.
type CoverBook struct {
	Covers []*Cover
	cursor int
}

// NewCoverBook creates an empty book.
func NewCoverBook() *CoverBook {
	return &CoverBook{}
}

// Insert appends a cover.
func (b *CoverBook) Insert(c *Cover) {
	b.Covers = append(b.Covers, c)
}

// Len returns the number of covers.
func (b *CoverBook) Len() int {
	return len(b.Covers)
}

// Current returns the cover under the cursor, or nil if the book is empty.
func (b *CoverBook) Current() *Cover {
	if len(b.Covers) == 0 {
		return nil
	}
	return b.Covers[b.cursor]
}

// Next moves the cursor forward, wrapping around.
func (b *CoverBook) Next() {
	if len(b.Covers) == 0 {
		return
	}
	b.cursor = (b.cursor + 1) % len(b.Covers)
}

// Prev moves the cursor back, wrapping around.
func (b *CoverBook) Prev() {
	if len(b.Covers) == 0 {
		return
	}
	b.cursor = (b.cursor - 1 + len(b.Covers)) % len(b.Covers)
}

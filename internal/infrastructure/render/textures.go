package render

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/starframe/internal/domain/draw"
)

// Textures loads images once and hands out the cached handle afterwards.
type Textures struct {
	fsys   fs.FS
	images map[string]*ebiten.Image
}

// NewFSTextures creates a cache reading from fsys.
func NewFSTextures(fsys fs.FS) *Textures {
	return &Textures{fsys: fsys, images: make(map[string]*ebiten.Image)}
}

// Load returns the image at path.
func (t *Textures) Load(path string) (draw.Texture, error) {
	if img, ok := t.images[path]; ok {
		return img, nil
	}

	img, _, err := ebitenutil.NewImageFromFileSystem(t.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}

	t.images[path] = img
	return img, nil
}

// Dispose releases every cached image.
func (t *Textures) Dispose() {
	for path, img := range t.images {
		img.Deallocate()
		delete(t.images, path)
	}
}

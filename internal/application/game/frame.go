package game

import (
	"errors"

	"github.com/younwookim/starframe/internal/application/scene"
	"github.com/younwookim/starframe/internal/application/system"
	"github.com/younwookim/starframe/internal/domain/draw"
	"github.com/younwookim/starframe/internal/domain/geom"
	"github.com/younwookim/starframe/internal/infrastructure/render"
)

var errNoTextures = errors.New("no texture loader configured")

// frame is the scene.Host handed to scenes for one tick.
type frame struct {
	input    system.InputState
	list     *render.List
	textures TextureLoader
}

var _ scene.Host = (*frame)(nil)

func newFrame(in system.InputState, list *render.List, textures TextureLoader) *frame {
	return &frame{input: in, list: list, textures: textures}
}

func (f *frame) DT() float32 {
	return f.input.DT
}

func (f *frame) Pointer() geom.Vec2 {
	return f.input.Pointer()
}

func (f *frame) PointerDown() bool {
	return f.input.MouseDown
}

func (f *frame) PointerPressed() bool {
	return f.input.MouseClick
}

func (f *frame) ScreenSize() geom.Vec2 {
	return f.input.Screen()
}

func (f *frame) BeginDrawing() draw.Canvas {
	f.list.Reset()
	return f.list
}

func (f *frame) LoadTexture(path string) (draw.Texture, error) {
	if f.textures == nil {
		return nil, errNoTextures
	}
	return f.textures.Load(path)
}

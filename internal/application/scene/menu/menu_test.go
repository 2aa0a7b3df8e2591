package menu

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starframe/internal/application/scene"
	"github.com/younwookim/starframe/internal/domain/draw"
	"github.com/younwookim/starframe/internal/domain/geom"
	"github.com/younwookim/starframe/internal/domain/palette"
	"github.com/younwookim/starframe/internal/domain/widget"
	"github.com/younwookim/starframe/internal/infrastructure/config"
	"github.com/younwookim/starframe/internal/infrastructure/render"
)

type fakeTexture struct{ w, h int }

func (f fakeTexture) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }

type fakeHost struct {
	list     *render.List
	pointer  geom.Vec2
	down     bool
	pressed  bool
	screen   geom.Vec2
	textures map[string]draw.Texture
}

func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()
	fonts, err := render.DefaultFonts()
	require.NoError(t, err)
	return &fakeHost{
		list:    render.NewList(fonts),
		pointer: geom.V(-100, -100),
		screen:  geom.V(640, 480),
		textures: map[string]draw.Texture{
			"covers/a.png": fakeTexture{w: 256, h: 256},
			"covers/b.png": fakeTexture{w: 320, h: 180},
		},
	}
}

func (h *fakeHost) DT() float32           { return 1.0 / 60.0 }
func (h *fakeHost) Pointer() geom.Vec2    { return h.pointer }
func (h *fakeHost) PointerDown() bool     { return h.down }
func (h *fakeHost) PointerPressed() bool  { return h.pressed }
func (h *fakeHost) ScreenSize() geom.Vec2 { return h.screen }
func (h *fakeHost) BeginDrawing() draw.Canvas {
	h.list.Reset()
	return h.list
}
func (h *fakeHost) LoadTexture(path string) (draw.Texture, error) {
	if tex, ok := h.textures[path]; ok {
		return tex, nil
	}
	return nil, fmt.Errorf("no such texture %s", path)
}

func (h *fakeHost) click(p geom.Vec2) {
	h.pointer = p
	h.down = true
	h.pressed = true
}

func testConfig() config.MenuConfig {
	return config.MenuConfig{
		StartScene:    "Opening",
		CurtainHold:   2,
		CurtainFrames: 4,
		CurtainRatio:  0.52,
		Covers: []config.CoverConfig{
			{Path: "covers/a.png", Label: "A"},
			{Path: "covers/missing.png", Label: "Missing"},
			{Path: "covers/b.png", Label: "B"},
		},
	}
}

func newLoadedMenu(t *testing.T) (*Menu, *fakeHost) {
	t.Helper()
	h := newFakeHost(t)
	m := New(testConfig(), nil)
	m.Load(h)
	return m, h
}

func TestMenu_Name(t *testing.T) {
	assert.Equal(t, "Menu", New(config.MenuConfig{}, nil).Name())
}

func TestMenu_LoadSkipsMissingCovers(t *testing.T) {
	m, _ := newLoadedMenu(t)

	require.Equal(t, 2, m.Book().Len())
	assert.Equal(t, "A", m.Book().Current().Label)
	assert.Equal(t, geom.V(20, 80), m.Book().Current().Pos)
}

func TestMenu_LayoutFollowsScreen(t *testing.T) {
	m, h := newLoadedMenu(t)

	require.Equal(t, scene.Stay(), m.Update(h))
	require.Equal(t, scene.Stay(), m.Update(h))

	split := float32(640) / 3
	start := m.Button(ButtonStart)
	options := m.Button(ButtonOptions)
	exit := m.Button(ButtonExit)

	assert.InDelta(t, split-10, start.Size.X, 1e-4)
	assert.InDelta(t, split-10, exit.Size.X, 1e-4)
	assert.InDelta(t, 320-(split-10)/2, options.Position.X, 1e-4)
	assert.InDelta(t, 630-(split-10), exit.Position.X, 1e-4)
	assert.Equal(t, geom.V(620, 240), m.Button(ButtonRight).Position)
	assert.Equal(t, float32(240), m.Button(ButtonLeft).Position.Y)
	assert.Equal(t, geom.V(600, 400), m.Book().Current().Size)

	h.screen = geom.V(1000, 600)
	m.Update(h)
	assert.Equal(t, geom.V(980, 300), m.Button(ButtonRight).Position)
}

func TestMenu_ExitButton(t *testing.T) {
	m, h := newLoadedMenu(t)
	m.Update(h)

	h.click(geom.V(600, 40))
	cmd := m.Update(h)

	assert.Equal(t, scene.KindExit, cmd.Kind())
}

func TestMenu_HoverWithoutPressDoesNotExit(t *testing.T) {
	m, h := newLoadedMenu(t)
	m.Update(h)

	h.pointer = geom.V(600, 40)
	h.down = true
	cmd := m.Update(h)

	assert.Equal(t, scene.Stay(), cmd)
	assert.True(t, m.Button(ButtonExit).Hovered)
	assert.True(t, m.Button(ButtonExit).Pressed)
	assert.False(t, m.Button(ButtonStart).Hovered)
}

func TestMenu_StartButton(t *testing.T) {
	m, h := newLoadedMenu(t)
	m.Update(h)

	h.click(geom.V(50, 40))
	cmd := m.Update(h)

	assert.Equal(t, scene.KindJumpTo, cmd.Kind())
	assert.Equal(t, "Opening", cmd.Target())
}

func TestMenu_StartWithoutTargetStays(t *testing.T) {
	cfg := testConfig()
	cfg.StartScene = ""
	m := New(cfg, nil)
	h := newFakeHost(t)
	m.Load(h)
	m.Update(h)

	h.click(geom.V(50, 40))

	assert.Equal(t, scene.Stay(), m.Update(h))
}

func TestMenu_ArrowsCycleCovers(t *testing.T) {
	m, h := newLoadedMenu(t)
	m.Update(h)

	h.click(geom.V(630, 260))
	m.Update(h)
	assert.Equal(t, "B", m.Book().Current().Label)

	m.Update(h)
	assert.Equal(t, "A", m.Book().Current().Label, "wraps around")

	h.click(geom.V(10, 260))
	m.Update(h)
	assert.Equal(t, "B", m.Book().Current().Label)
}

func TestMenu_Curtain(t *testing.T) {
	m, h := newLoadedMenu(t)

	for i := 0; i < 6; i++ {
		m.Update(h)
		assert.NotEqual(t, CurtainOpen, m.Curtain(), "tick %d", i)

		ops := h.list.Ops()
		last := ops[len(ops)-1]
		assert.Equal(t, render.OpFillRect, last.Kind)
		assert.Equal(t, palette.Black, last.Color)
	}
	assert.Equal(t, CurtainOpening, m.Curtain())

	m.Update(h)
	assert.Equal(t, CurtainOpen, m.Curtain())
	for _, op := range h.list.Ops() {
		if op.Kind == render.OpFillRect {
			assert.NotEqual(t, palette.Black, op.Color, "curtain no longer drawn")
		}
	}
}

func TestMenu_CurtainOpensOutward(t *testing.T) {
	m, h := newLoadedMenu(t)

	m.Update(h)
	assert.Equal(t, float32(240), m.curtainH)
	assert.Equal(t, float32(240), m.curtainY)

	for i := 0; i < 4; i++ {
		m.Update(h)
	}
	assert.Less(t, m.curtainH, float32(240))
	assert.Greater(t, m.curtainY, float32(240))

	m.Update(h)
	m.Update(h)
	assert.InDelta(t, 240-480*0.52, m.curtainH, 1e-3)
	assert.InDelta(t, 240+480*0.52, m.curtainY, 1e-3)
}

func TestMenu_DrawOrder(t *testing.T) {
	m, h := newLoadedMenu(t)
	m.Update(h)

	ops := h.list.Ops()
	require.Greater(t, len(ops), 5)
	assert.Equal(t, render.OpClear, ops[0].Kind)
	assert.Equal(t, palette.RayWhite, ops[0].Color)
	assert.Equal(t, render.OpTexture, ops[1].Kind)
	assert.Equal(t, render.OpStrokeRect, ops[2].Kind)
	assert.Equal(t, render.OpFillRect, ops[3].Kind)
	assert.Equal(t, palette.White, ops[3].Color)
	assert.Equal(t, render.OpLine, ops[4].Kind)
	assert.Equal(t, float32(widget.HeaderHeight), ops[4].P0.Y)
}

func TestMenu_LoadReopensCurtain(t *testing.T) {
	m, h := newLoadedMenu(t)
	for i := 0; i < 8; i++ {
		m.Update(h)
	}
	require.Equal(t, CurtainOpen, m.Curtain())

	m.Load(h)

	assert.Equal(t, CurtainClosed, m.Curtain())
	assert.Equal(t, 2, m.Book().Len())
}

func TestCurtainPhase_String(t *testing.T) {
	assert.Equal(t, "Closed", CurtainClosed.String())
	assert.Equal(t, "Opening", CurtainOpening.String())
	assert.Equal(t, "Open", CurtainOpen.String())
	assert.Equal(t, "Unknown", CurtainPhase(7).String())
}

func TestMenu_ArrowsSnapWithoutTouchingSharedStyle(t *testing.T) {
	style := widget.DefaultStyle().WithSmooth(true)
	m := New(testConfig(), style)

	assert.Same(t, style, m.Button(ButtonStart).Style)
	assert.True(t, style.Smooth)
	assert.False(t, m.Button(ButtonLeft).Style.Smooth)
	assert.False(t, m.Button(ButtonRight).Style.Smooth)
	assert.Equal(t, style.Hover, m.Button(ButtonLeft).Style.Hover)
}

func TestMenu_LoadRestoresButtonStyles(t *testing.T) {
	style := widget.DefaultStyle().WithSmooth(true)
	m := New(testConfig(), style)
	h := newFakeHost(t)

	other := widget.NewStyle(widget.Tier{Color: palette.Blue, Background: palette.White}, false, false)
	m.Button(ButtonExit).SetStyle(other)
	m.Button(ButtonLeft).SetStyle(other)

	m.Load(h)

	assert.Same(t, style, m.Button(ButtonExit).Style)
	assert.NotSame(t, other, m.Button(ButtonLeft).Style)
	assert.False(t, m.Button(ButtonLeft).Style.Smooth)
}

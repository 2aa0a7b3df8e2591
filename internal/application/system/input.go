// Package system samples per-frame input from Ebitengine.
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/starframe/internal/domain/geom"
)

// InputSystem reads pointer and clock state from Ebitengine once per frame
type InputSystem struct {
	fixedDT float32
}

// NewInputSystem creates a new input system.
// A positive fixedDT is reported every frame instead of the measured one.
func NewInputSystem(fixedDT float32) *InputSystem {
	return &InputSystem{fixedDT: fixedDT}
}

// InputState holds the input snapshot for one frame
type InputState struct {
	MouseX     int
	MouseY     int
	MouseDown  bool
	MouseClick bool
	DT         float32
	ScreenW    int
	ScreenH    int
}

// Pointer returns the cursor position as a vector.
func (in InputState) Pointer() geom.Vec2 {
	return geom.V(float32(in.MouseX), float32(in.MouseY))
}

// Screen returns the drawable area as a vector.
func (in InputState) Screen() geom.Vec2 {
	return geom.V(float32(in.ScreenW), float32(in.ScreenH))
}

// DT returns the frame time the next snapshot will carry.
func (s *InputSystem) DT() float32 {
	if s.fixedDT > 0 {
		return s.fixedDT
	}
	return FrameDT(0, ebiten.ActualTPS(), ebiten.TPS())
}

// GetInput reads the current input state for a screen of the given size
func (s *InputSystem) GetInput(screenW, screenH int) InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:     mx,
		MouseY:     my,
		MouseDown:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		DT:         s.DT(),
		ScreenW:    screenW,
		ScreenH:    screenH,
	}
}

// FrameDT picks the frame time: fixed if set, else from the measured tick
// rate, falling back to the target rate while the measurement warms up.
func FrameDT(fixed float32, actualTPS float64, targetTPS int) float32 {
	if fixed > 0 {
		return fixed
	}
	if actualTPS >= 1 {
		return float32(1 / actualTPS)
	}
	if targetTPS > 0 {
		return 1 / float32(targetTPS)
	}
	return 1.0 / 60.0
}

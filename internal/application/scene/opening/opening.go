// Package opening is the title screen: the title fades in, holds, fades out
// and hands over to the next scene.
package opening

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/starframe/internal/application/scene"
	"github.com/younwookim/starframe/internal/domain/palette"
	"github.com/younwookim/starframe/internal/infrastructure/config"
)

// Name is the scene's registry key.
const Name = "Opening"

// Phase is where the title animation is.
type Phase int

const (
	PhaseFadeIn Phase = iota
	PhaseHold
	PhaseFadeOut
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseFadeIn:
		return "FadeIn"
	case PhaseHold:
		return "Hold"
	case PhaseFadeOut:
		return "FadeOut"
	default:
		return "Unknown"
	}
}

// Opening fades a title in and out. All timings are in frames.
type Opening struct {
	cfg     config.OpeningConfig
	phase   Phase
	frame   int
	alpha   float32
	fadeIn  *gween.Tween
	fadeOut *gween.Tween
}

var _ scene.Scene = (*Opening)(nil)

// New creates the opening scene. Zero fields in cfg take the stock values.
func New(cfg config.OpeningConfig) *Opening {
	return &Opening{cfg: withDefaults(cfg)}
}

func withDefaults(cfg config.OpeningConfig) config.OpeningConfig {
	if cfg.Title == "" {
		cfg.Title = "Starframe"
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = 20
	}
	if cfg.FadeInFrames <= 0 {
		cfg.FadeInFrames = 210
	}
	if cfg.FadeInPeak <= 0 {
		cfg.FadeInPeak = 2
	}
	if cfg.HoldFrames <= 0 {
		cfg.HoldFrames = 840
	}
	if cfg.FadeOutFrames <= 0 {
		cfg.FadeOutFrames = 210
	}
	if cfg.JumpAt <= 0 {
		cfg.JumpAt = 260
	}
	if cfg.Next == "" {
		cfg.Next = "Menu"
	}
	return cfg
}

func (o *Opening) Name() string {
	return Name
}

// Load restarts the animation from the beginning.
func (o *Opening) Load(h scene.Host) {
	o.phase = PhaseFadeIn
	o.frame = 0
	o.alpha = 0
	o.fadeIn = gween.New(0, o.cfg.FadeInPeak, float32(o.cfg.FadeInFrames), ease.InSine)
	// Mirrors the fade-in: same swing, starting from fully visible.
	o.fadeOut = gween.New(1, 1-o.cfg.FadeInPeak, float32(o.cfg.FadeOutFrames), ease.OutSine)
}

func (o *Opening) Update(h scene.Host) scene.Command {
	switch o.phase {
	case PhaseFadeIn:
		o.alpha, _ = o.fadeIn.Set(float32(o.frame))
		if o.frame >= o.cfg.FadeInFrames {
			o.phase = PhaseHold
			o.frame = 0
		}
	case PhaseHold:
		if o.frame >= o.cfg.HoldFrames {
			o.alpha = 1
			o.phase = PhaseFadeOut
			o.frame = 0
		}
	case PhaseFadeOut:
		o.alpha, _ = o.fadeOut.Set(float32(o.frame))
		if o.frame >= o.cfg.JumpAt {
			return scene.JumpTo(o.cfg.Next)
		}
	}

	screen := h.ScreenSize()
	c := h.BeginDrawing()
	c.Clear(palette.Black)
	size := o.cfg.FontSize
	c.Text(o.cfg.Title,
		int(screen.X)/2-c.MeasureText(o.cfg.Title, size)/2,
		int(screen.Y)/2-size/2,
		size,
		palette.Fade(palette.White, o.alpha))

	o.frame++
	return scene.Stay()
}

func (o *Opening) Unload(h scene.Host) {}

// Phase returns the current animation phase.
func (o *Opening) Phase() Phase {
	return o.phase
}

// Alpha returns the title opacity before clamping.
func (o *Opening) Alpha() float32 {
	return o.alpha
}

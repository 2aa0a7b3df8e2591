// Package game provides the scene manager and the Ebitengine run loop that drives it.
package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/starframe/internal/application/replay"
	"github.com/younwookim/starframe/internal/application/state"
	"github.com/younwookim/starframe/internal/application/system"
	"github.com/younwookim/starframe/internal/domain/draw"
	"github.com/younwookim/starframe/internal/infrastructure/render"
)

// TextureLoader loads images for scenes.
type TextureLoader interface {
	Load(path string) (draw.Texture, error)
}

// Options configures the run loop.
type Options struct {
	ScreenW   int
	ScreenH   int
	Resizable bool
	MaxJumps  int
	FixedDT   float32
}

// Game implements ebiten.Game and ticks the scene manager once per frame.
type Game struct {
	manager  *Manager
	input    *system.InputSystem
	list     *render.List
	textures TextureLoader
	state    state.RunState
	screenW  int
	screenH  int
	resize   bool
	frame    int

	// Input recording and playback
	recorder       *replay.Recorder
	recordFilename string
	replayer       *replay.Replayer
}

// New creates a Game driving m. Scenes render into list; Draw flushes it.
func New(m *Manager, opts Options, list *render.List, textures TextureLoader) *Game {
	if opts.MaxJumps > 0 {
		m.SetMaxJumps(opts.MaxJumps)
	}
	return &Game{
		manager:  m,
		input:    system.NewInputSystem(opts.FixedDT),
		list:     list,
		textures: textures,
		state:    state.StateBooting,
		screenW:  opts.ScreenW,
		screenH:  opts.ScreenH,
		resize:   opts.Resizable,
	}
}

// Record enables input recording. The recording is saved to filename when
// the loop stops, or on F5.
func (g *Game) Record(r *replay.Recorder, filename string) {
	g.recorder = r
	g.recordFilename = filename
	log.Printf("Recording enabled: %s", filename)
}

// Replay feeds recorded input instead of live input until it runs out.
func (g *Game) Replay(r *replay.Replayer) {
	g.replayer = r
	log.Printf("Replaying %d frames", r.TotalFrames())
}

// State returns the run loop status.
func (g *Game) State() state.RunState {
	return g.state
}

// Frames returns the number of frames ticked so far.
func (g *Game) Frames() int {
	return g.frame
}

// Update polls input and ticks the scene manager.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.recording() && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.saveRecording()
	}
	return g.Step(g.nextInput())
}

// Step ticks the scene manager with an explicit input snapshot.
func (g *Game) Step(in system.InputState) error {
	if !g.state.Active() {
		if g.state == state.StateExited {
			return ebiten.Termination
		}
		return ErrNoScene
	}

	h := newFrame(in, g.list, g.textures)
	if !g.manager.HasCurrent() {
		g.stop(h, state.StateStalled)
		return ErrNoScene
	}
	if g.state == state.StateBooting {
		g.state = state.StateRunning
		if g.replayer != nil {
			g.state = state.StateReplaying
		}
	}

	if g.recorder != nil {
		g.recorder.RecordFrame(in)
	}

	err := g.manager.Tick(h)
	g.frame++

	switch {
	case errors.Is(err, ErrExit):
		g.stop(h, state.StateExited)
		return ebiten.Termination
	case err != nil:
		g.stop(h, state.StateStalled)
		return err
	}
	return nil
}

func (g *Game) nextInput() system.InputState {
	if g.replayer != nil {
		if in, ok := g.replayer.GetInput(); ok {
			return in
		}
		log.Printf("Replay finished after %d frames", g.replayer.CurrentFrame())
		g.replayer = nil
		g.state = state.StateRunning
	}
	return g.input.GetInput(g.screenW, g.screenH)
}

func (g *Game) stop(h *frame, next state.RunState) {
	g.manager.Shutdown(h)
	g.state = next
	if g.recording() {
		g.saveRecording()
		g.recorder.Stop()
	}
}

func (g *Game) recording() bool {
	return g.recorder != nil && g.recorder.IsRecording()
}

// saveRecording saves the current recording to file
func (g *Game) saveRecording() {
	if g.recorder == nil {
		return
	}

	filename := g.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := g.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, g.recorder.FrameCount())
	}
}

// Draw shows the last submission a scene rendered.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.list.Flush(screen)
}

// Layout returns the logical screen dimensions. A resizable window adopts
// the outside size so scenes lay out against the real window.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.resize && outsideWidth > 0 && outsideHeight > 0 {
		g.screenW, g.screenH = outsideWidth, outsideHeight
	}
	return g.screenW, g.screenH
}

// SetDT fixes the frame time reported to scenes.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float32) {
	g.input = system.NewInputSystem(dt)
}

package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starframe/internal/application/game"
	"github.com/younwookim/starframe/internal/application/replay"
	"github.com/younwookim/starframe/internal/application/state"
	"github.com/younwookim/starframe/internal/infrastructure/config"
	"github.com/younwookim/starframe/internal/infrastructure/render"
)

func loadEmbedded(t *testing.T) (*config.Loader, *config.AppConfig) {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	return loader, cfg
}

// newTestGame wires a game the way main does, starting in scene.
func newTestGame(t *testing.T, scene string) *game.Game {
	t.Helper()
	loader, cfg := loadEmbedded(t)
	fonts, err := render.DefaultFonts()
	require.NoError(t, err)

	m := buildManager(cfg)
	require.True(t, m.SetCurrent(scene))
	return game.New(m, game.Options{
		ScreenW:  cfg.Display.ScreenWidth,
		ScreenH:  cfg.Display.ScreenHeight,
		MaxJumps: cfg.Display.MaxJumps,
	}, render.NewList(fonts), render.NewFSTextures(loader.FS()))
}

// exitReplay idles for the given frames, then clicks the Exit button.
func exitReplay(idle int) replay.ReplayData {
	data := replay.CreateTestReplayData(idle+1, 0, 0)
	data.Scene = "Menu"
	last := &data.Frames[idle]
	last.MX, last.MY = 600, 40
	last.MD, last.MC = true, true
	return data
}

func runReplay(t *testing.T, data replay.ReplayData) (frames int, err error) {
	t.Helper()
	g := newTestGame(t, data.Scene)
	r := replay.NewReplayer(data)
	for {
		in, ok := r.GetInput()
		if !ok {
			return g.Frames(), nil
		}
		if err := g.Step(in); err != nil {
			return g.Frames(), err
		}
	}
}

func TestEmbeddedConfigs(t *testing.T) {
	_, cfg := loadEmbedded(t)

	m := buildManager(cfg)
	assert.Equal(t, 2, m.Len())
	assert.NotNil(t, m.Find(cfg.Scenes.Initial))
	assert.NotNil(t, m.Find(cfg.Scenes.Opening.Next))
	assert.NotNil(t, m.Find(cfg.Scenes.Menu.StartScene))
}

func TestReplay_ExitFromMenu(t *testing.T) {
	frames, err := runReplay(t, exitReplay(5))

	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 6, frames)
}

func TestReplay_IsDeterministic(t *testing.T) {
	data := exitReplay(30)

	frames1, err1 := runReplay(t, data)
	frames2, err2 := runReplay(t, data)

	assert.Equal(t, frames1, frames2)
	assert.Equal(t, err1, err2)
}

func TestReplay_OpeningRunsWithoutInput(t *testing.T) {
	g := newTestGame(t, "Opening")
	data := replay.CreateTestReplayData(120, 0, 0)
	r := replay.NewReplayer(data)

	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		require.NoError(t, g.Step(in))
	}

	assert.Equal(t, 120, g.Frames())
	assert.Equal(t, state.StateRunning, g.State())
}

package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/starframe/internal/application/game"
	"github.com/younwookim/starframe/internal/application/replay"
	"github.com/younwookim/starframe/internal/application/scene/menu"
	"github.com/younwookim/starframe/internal/application/scene/opening"
	"github.com/younwookim/starframe/internal/domain/widget"
	"github.com/younwookim/starframe/internal/infrastructure/config"
	"github.com/younwookim/starframe/internal/infrastructure/render"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Read configs from this directory instead of the embedded ones")
	startScene := flag.String("scene", "", "Start in this scene instead of the configured one")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back input recorded with -record")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fonts, err := render.DefaultFonts()
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	manager := buildManager(cfg)

	initial := cfg.Scenes.Initial
	if *startScene != "" {
		initial = *startScene
	}

	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		if *startScene == "" && replayer.Scene() != "" {
			initial = replayer.Scene()
		}
	}

	if !manager.SetCurrent(initial) {
		log.Fatalf("Unknown start scene %q", initial)
	}

	display := cfg.Display
	textures := render.NewFSTextures(loader.FS())
	g := game.New(manager, game.Options{
		ScreenW:   display.ScreenWidth,
		ScreenH:   display.ScreenHeight,
		Resizable: display.Resizable,
		MaxJumps:  display.MaxJumps,
		FixedDT:   display.FixedDT,
	}, render.NewList(fonts), textures)
	defer textures.Dispose()

	if replayer != nil {
		g.Replay(replayer)
	}
	if *recordFlag != "" {
		g.Record(replay.NewRecorder(initial), *recordFlag)
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)
	if display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	// Run game
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, game.ErrNoScene) {
		log.Fatal(err)
	}
	log.Printf("Stopped after %d frames (%s)", g.Frames(), g.State())
}

// buildManager registers every scene the application ships with.
func buildManager(cfg *config.AppConfig) *game.Manager {
	manager := game.NewManager()
	manager.Register(opening.New(cfg.Scenes.Opening))
	manager.Register(menu.New(cfg.Scenes.Menu, cfg.Styles.StyleOr(cfg.Scenes.Menu.Style, widget.DefaultStyle())))
	return manager
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

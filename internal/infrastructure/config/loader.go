package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig holds all loaded configurations
type AppConfig struct {
	Display *DisplayConfig
	Scenes  *ScenesConfig
	Styles  *StyleSheet
}

// Loader loads configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	cfg := DisplayConfig{
		ScreenWidth:  640,
		ScreenHeight: 480,
		Title:        "Starframe",
		Framerate:    60,
	}
	if err := l.readJSON("display.json", &cfg); err != nil {
		return nil, err
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return nil, fmt.Errorf("invalid display.json: screen size %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.Framerate <= 0 {
		return nil, fmt.Errorf("invalid display.json: framerate %d", cfg.Framerate)
	}
	return &cfg, nil
}

// LoadScenes loads scenes.json
func (l *Loader) LoadScenes() (*ScenesConfig, error) {
	var cfg ScenesConfig
	if err := l.readJSON("scenes.json", &cfg); err != nil {
		return nil, err
	}
	if cfg.Initial == "" {
		return nil, fmt.Errorf("invalid scenes.json: no initial scene")
	}
	return &cfg, nil
}

// LoadStyles loads styles.yaml
func (l *Loader) LoadStyles() (*StyleSheet, error) {
	data, err := fs.ReadFile(l.fsys, "styles.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read styles.yaml: %w", err)
	}

	var sheet StyleSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse styles.yaml: %w", err)
	}

	// Surface bad colors at load time rather than on first use.
	for name := range sheet.Styles {
		if _, err := sheet.Style(name); err != nil {
			return nil, err
		}
	}

	return &sheet, nil
}

// LoadAll loads every configuration file
func (l *Loader) LoadAll() (*AppConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	scenes, err := l.LoadScenes()
	if err != nil {
		return nil, err
	}

	styles, err := l.LoadStyles()
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Display: display,
		Scenes:  scenes,
		Styles:  styles,
	}, nil
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

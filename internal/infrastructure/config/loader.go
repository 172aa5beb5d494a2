package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Screens *ScreensConfig
	Worlds  *WorldsConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
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

func (l *Loader) load(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	cfg := DefaultDisplay()
	if err := l.load("display.json", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid display.json: %w", err)
	}
	return cfg, nil
}

// LoadScreens loads screens.json
func (l *Loader) LoadScreens() (*ScreensConfig, error) {
	cfg := DefaultScreens()
	if err := l.load("screens.json", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid screens.json: %w", err)
	}
	return cfg, nil
}

// LoadWorlds loads worlds.json
func (l *Loader) LoadWorlds() (*WorldsConfig, error) {
	var cfg WorldsConfig
	if err := l.load("worlds.json", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid worlds.json: %w", err)
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (display, screens, worlds)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	screens, err := l.LoadScreens()
	if err != nil {
		return nil, err
	}

	worlds, err := l.LoadWorlds()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Screens: screens,
		Worlds:  worlds,
	}, nil
}

package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/screenflow/internal/domain/progress"
)

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        int     `json:"scale"`
	Framerate    int     `json:"framerate"`
	Resizable    bool    `json:"resizable"`
	Bloom        float64 `json:"bloom"` // 0 disables the final-target bloom
	Title        string  `json:"title"`
}

// DefaultDisplay returns the values used for keys missing from display.json
func DefaultDisplay() *DisplayConfig {
	return &DisplayConfig{
		ScreenWidth:  320,
		ScreenHeight: 240,
		Scale:        2,
		Framerate:    60,
		Bloom:        0.35,
		Title:        "Screenflow",
	}
}

// Validate rejects values the frame driver cannot run with
func (c *DisplayConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Framerate <= 0 {
		return fmt.Errorf("framerate must be positive, got %d", c.Framerate)
	}
	if c.Bloom < 0 || c.Bloom > 1 {
		return fmt.Errorf("bloom must be in [0,1], got %v", c.Bloom)
	}
	return nil
}

// ScreensConfig is the root config for screens.json. All durations are seconds.
type ScreensConfig struct {
	FadeIn     float64            `json:"fadeIn"`
	FadeOut    float64            `json:"fadeOut"`
	Menu       MenuConfig         `json:"menu"`
	LevelStart LevelStartConfig   `json:"levelStart"`
	InGame     InGameConfig       `json:"inGame"`
	Pause      PauseConfig        `json:"pause"`
	LevelEnd   LevelEndConfig     `json:"levelEnd"`
	Summary    SummaryConfig      `json:"summary"`
	Complete   GameCompleteConfig `json:"gameComplete"`
	GameOver   GameOverConfig     `json:"gameOver"`
	Credits    CreditsConfig      `json:"credits"`
}

// MenuConfig configures menu-style screens (main menu, world/level select)
type MenuConfig struct {
	ItemPopIn   float64 `json:"itemPopIn"`   // stagger between menu items
	CursorPulse float64 `json:"cursorPulse"` // period of the cursor pulse
	UnlockFade  float64 `json:"unlockFade"`
}

// LevelStartConfig configures the level title card
type LevelStartConfig struct {
	TitleSlide float64 `json:"titleSlide"`
	Hold       float64 `json:"hold"`
}

// InGameConfig configures gameplay screens
type InGameConfig struct {
	BossIntro   float64 `json:"bossIntro"`
	ShieldPulse float64 `json:"shieldPulse"`
}

// PauseConfig configures the pause overlay
type PauseConfig struct {
	Dim     float64 `json:"dim"` // backdrop darkening, 0..1
	DimTime float64 `json:"dimTime"`
}

// LevelEndConfig configures the slow-down after a level is beaten
type LevelEndConfig struct {
	Slowdown float64 `json:"slowdown"`
	Banner   float64 `json:"banner"`
}

// SummaryConfig configures the level/boss complete summary screens
type SummaryConfig struct {
	FadeIn     float64 `json:"fadeIn"`
	LabelDrop  float64 `json:"labelDrop"`
	LabelFade  float64 `json:"labelFade"`
	UnlockFade float64 `json:"unlockFade"`
	Glow       float64 `json:"glow"`
}

// GameCompleteConfig configures the final victory screen
type GameCompleteConfig struct {
	Title     float64 `json:"title"`
	Fireworks float64 `json:"fireworks"`
}

// GameOverConfig configures the game over screen
type GameOverConfig struct {
	Drop float64 `json:"drop"`
}

// CreditsConfig configures the credits roll
type CreditsConfig struct {
	ScrollSpeed float64  `json:"scrollSpeed"` // pixels per second
	LineHeight  float64  `json:"lineHeight"`
	Lines       []string `json:"lines"`
}

// DefaultScreens returns the values used for keys missing from screens.json
func DefaultScreens() *ScreensConfig {
	return &ScreensConfig{
		FadeIn:  0.5,
		FadeOut: 0.5,
		Menu: MenuConfig{
			ItemPopIn:   0.08,
			CursorPulse: 0.8,
			UnlockFade:  0.6,
		},
		LevelStart: LevelStartConfig{TitleSlide: 0.6, Hold: 1.0},
		InGame:     InGameConfig{BossIntro: 2.0, ShieldPulse: 0.4},
		Pause:      PauseConfig{Dim: 0.6, DimTime: 0.2},
		LevelEnd:   LevelEndConfig{Slowdown: 1.0, Banner: 0.5},
		Summary: SummaryConfig{
			FadeIn:     1.5,
			LabelDrop:  0.8,
			LabelFade:  0.5,
			UnlockFade: 0.6,
			Glow:       1.2,
		},
		Complete: GameCompleteConfig{Title: 2.0, Fireworks: 0.7},
		GameOver: GameOverConfig{Drop: 0.8},
		Credits:  CreditsConfig{ScrollSpeed: 30, LineHeight: 16},
	}
}

// Validate rejects negative durations
func (c *ScreensConfig) Validate() error {
	durations := map[string]float64{
		"fadeIn":                c.FadeIn,
		"fadeOut":               c.FadeOut,
		"menu.itemPopIn":        c.Menu.ItemPopIn,
		"menu.unlockFade":       c.Menu.UnlockFade,
		"levelStart.titleSlide": c.LevelStart.TitleSlide,
		"levelStart.hold":       c.LevelStart.Hold,
		"inGame.bossIntro":      c.InGame.BossIntro,
		"pause.dimTime":         c.Pause.DimTime,
		"levelEnd.slowdown":     c.LevelEnd.Slowdown,
		"levelEnd.banner":       c.LevelEnd.Banner,
		"summary.fadeIn":        c.Summary.FadeIn,
		"summary.labelDrop":     c.Summary.LabelDrop,
		"summary.labelFade":     c.Summary.LabelFade,
		"summary.unlockFade":    c.Summary.UnlockFade,
		"summary.glow":          c.Summary.Glow,
		"gameComplete.title":    c.Complete.Title,
		"gameOver.drop":         c.GameOver.Drop,
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, d)
		}
	}
	if c.Menu.CursorPulse <= 0 || c.InGame.ShieldPulse <= 0 || c.Complete.Fireworks <= 0 {
		return errors.New("pulse periods must be positive")
	}
	if c.Credits.ScrollSpeed <= 0 || c.Credits.LineHeight <= 0 {
		return errors.New("credits scroll speed and line height must be positive")
	}
	return nil
}

// WorldsConfig is the root config for worlds.json
type WorldsConfig struct {
	Worlds []WorldConfig `json:"worlds"`
}

// WorldConfig describes one world and its levels
type WorldConfig struct {
	Name   string        `json:"name"`
	Levels []LevelConfig `json:"levels"`
}

// LevelConfig drives the scripted simulation for one level
type LevelConfig struct {
	Duration float64 `json:"duration"`        // seconds until the level is beaten
	Boss     bool    `json:"boss,omitempty"`  // only valid on a world's last level
	DieAt    float64 `json:"dieAt,omitempty"` // player dies at this time when > 0
}

// Validate checks the catalog shape
func (c *WorldsConfig) Validate() error {
	if len(c.Worlds) == 0 {
		return errors.New("at least one world is required")
	}
	for w, world := range c.Worlds {
		if len(world.Levels) == 0 {
			return fmt.Errorf("world %d (%s) has no levels", w, world.Name)
		}
		for l, level := range world.Levels {
			if level.Duration <= 0 {
				return fmt.Errorf("world %d level %d: duration must be positive", w, l)
			}
			if level.Boss && l != len(world.Levels)-1 {
				return fmt.Errorf("world %d level %d: only the last level can be a boss", w, l)
			}
		}
	}
	return nil
}

// Catalog converts the config into the progress catalog
func (c *WorldsConfig) Catalog() progress.Catalog {
	cat := progress.Catalog{Worlds: make([]progress.World, len(c.Worlds))}
	for i, w := range c.Worlds {
		cat.Worlds[i] = progress.World{
			Name:   w.Name,
			Levels: len(w.Levels),
			Boss:   w.Levels[len(w.Levels)-1].Boss,
		}
	}
	return cat
}

// Level returns the config of (world, level)
func (c *WorldsConfig) Level(world, level int) (LevelConfig, bool) {
	if world < 0 || world >= len(c.Worlds) {
		return LevelConfig{}, false
	}
	levels := c.Worlds[world].Levels
	if level < 0 || level >= len(levels) {
		return LevelConfig{}, false
	}
	return levels[level], true
}

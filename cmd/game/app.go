package main

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/game"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/screens"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/domain/progress"
	"github.com/younwookim/screenflow/internal/domain/simulation"
	"github.com/younwookim/screenflow/internal/infrastructure/audio"
	"github.com/younwookim/screenflow/internal/infrastructure/config"
	"github.com/younwookim/screenflow/internal/infrastructure/i18n"
	"github.com/younwookim/screenflow/internal/infrastructure/resource"
	"github.com/younwookim/screenflow/internal/infrastructure/save"
)

// fontName is the only font the screens acquire
const fontName = "fonts/basic"

// appOptions selects how the collaborators are built
type appOptions struct {
	ConfigDir string // empty uses the embedded configs
	SavePath  string // empty keeps progress in memory
	Lang      string
	Start     state.Kind
	// Unlocked overrides the loaded progress (replays)
	Unlocked []int
	Logger   *slog.Logger

	// Alloc and Upload select the graphics backend
	Alloc  render.Allocator
	Upload resource.Upload
	Audio  display.Audio
}

// app is the wired game
type app struct {
	cfg       *config.GameConfig
	ctx       *display.Context
	machine   *display.Machine
	driver    *game.Driver
	resources *resource.Manager
	store     *save.Store
}

func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(gameFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// newApp loads everything and starts the first screen
func newApp(opts appOptions) (*app, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Null{}
	}
	cfg, err := loadConfig(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	catalog := cfg.Worlds.Catalog()

	a := &app{cfg: cfg}
	var saver display.ProgressSaver
	prog := progress.New(catalog)
	if opts.SavePath != "" {
		a.store = save.NewStore(opts.SavePath, catalog)
		if prog, err = a.store.Load(); err != nil {
			return nil, err
		}
		saver = a.store
	}
	if opts.Unlocked != nil {
		prog = &progress.Progress{UnlockedLevels: append([]int(nil), opts.Unlocked...)}
		prog.Normalize(catalog)
	}

	text, err := i18n.New(gameFS, "locales", opts.Lang, log)
	if err != nil {
		return nil, err
	}

	assets, err := fs.Sub(gameFS, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to get asset subfs: %w", err)
	}
	a.resources = resource.NewManager(assets, opts.Upload, log)
	a.resources.RegisterFont(fontName)

	sim := simulation.New(func(w, l int) (simulation.Level, bool) {
		lc, ok := cfg.Worlds.Level(w, l)
		return simulation.Level{Duration: lc.Duration, Boss: lc.Boss, DieAt: lc.DieAt}, ok
	})

	a.ctx = &display.Context{
		Logger:    log,
		Alloc:     opts.Alloc,
		Sim:       sim,
		Audio:     opts.Audio,
		Resources: a.resources,
		Text:      text,
		Progress:  prog,
		Catalog:   catalog,
		Saver:     saver,
		Timings:   cfg.Screens,
		Bloom:     cfg.Display.Bloom,
		Width:     cfg.Display.ScreenWidth,
		Height:    cfg.Display.ScreenHeight,
	}
	a.machine = display.NewMachine(a.ctx, screens.New)
	if err := a.machine.Start(opts.Start, state.Params{}); err != nil {
		return nil, err
	}
	a.driver = game.NewDriver(a.machine, a.ctx)

	log.Info("game ready",
		"start", opts.Start.String(),
		"worlds", catalog.WorldCount(),
		"lang", text.Language().String(),
		"save", opts.SavePath,
	)
	return a, nil
}

// close tears the game down and reports leaked resources
func (a *app) close() {
	a.driver.Close()
	if n := a.resources.Outstanding(); n > 0 {
		a.ctx.Logger.Error("resources still held at shutdown", "count", n)
	}
}

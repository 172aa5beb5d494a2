package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/game"
	"github.com/younwookim/screenflow/internal/application/replay"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/infrastructure/audio"
	"github.com/younwookim/screenflow/internal/infrastructure/graphics"
	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
	"github.com/younwookim/screenflow/internal/infrastructure/logging"
)

// runOptions holds the parsed command line
type runOptions struct {
	record   string
	replay   string
	config   string
	save     string
	lang     string
	headless int
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file or directory (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play a recording without a window and exit")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	saveFlag := flag.String("save", defaultSavePath(), "Progress save file, empty keeps progress in memory")
	langFlag := flag.String("lang", "en", "Language for screen text")
	levelFlag := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFileFlag := flag.String("log-file", "", "Also write logs to this file")
	strictFlag := flag.Bool("strict", os.Getenv("SCREENFLOW_STRICT") == "1", "Panic on invariant violations")
	headlessFlag := flag.Int("headless-frames", 0, "Run N idle frames without a window and exit")
	flag.Parse()

	log, closeLog := logging.Setup(logging.Options{Level: *levelFlag, File: *logFileFlag})
	slog.SetDefault(log)
	invariant.SetLogger(log)
	invariant.SetStrict(*strictFlag)

	err := run(log, runOptions{
		record:   *recordFlag,
		replay:   *replayFlag,
		config:   *configFlag,
		save:     *saveFlag,
		lang:     *langFlag,
		headless: *headlessFlag,
	})
	if err != nil {
		log.Error("fatal", "err", err)
	}
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func run(log *slog.Logger, opts runOptions) error {
	switch {
	case opts.replay != "":
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return err
		}
		res, err := runReplay(data, opts.config, log)
		if err != nil {
			return err
		}
		report("replay", res)
		return nil
	case opts.headless > 0:
		res, err := runHeadless(opts.headless, opts.config, log)
		if err != nil {
			return err
		}
		report("headless", res)
		return nil
	}
	return runWindowed(log, opts)
}

func report(mode string, res replayResult) {
	fmt.Printf("%s: %d frames, final screen %s, unlocked %v, leaked %d\n",
		mode, res.Frames, res.Final, res.Unlocked, res.Leaked)
}

// runWindowed opens the window and blocks until the game quits
func runWindowed(log *slog.Logger, opts runOptions) error {
	var sink display.Audio = audio.Null{}
	mixer, err := audio.Open(audio.Options{Logger: log})
	if err != nil {
		log.Warn("audio disabled", "err", err)
	} else {
		sink = mixer
	}

	a, err := newApp(appOptions{
		ConfigDir: opts.config,
		SavePath:  opts.save,
		Lang:      opts.lang,
		Start:     state.KindMainMenu,
		Logger:    log,
		Alloc:     graphics.Allocator{},
		Upload:    graphics.FromImage,
		Audio:     sink,
	})
	if err != nil {
		return err
	}
	defer a.close()

	disp := a.cfg.Display
	if opts.record != "" {
		a.driver.SetRecorder(replay.NewRecorder(state.KindMainMenu.String(),
			disp.ScreenWidth, disp.ScreenHeight, a.ctx.Progress.UnlockedLevels))
		log.Info("Recording input", "path", opts.record)
	}

	// Ctrl-C leaves through the same path as the quit menu item
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		if _, ok := <-sig; ok {
			a.driver.Quit()
		}
	}()

	g := game.New(a.driver, game.NewPoller(nil), game.Options{
		Width:     disp.ScreenWidth,
		Height:    disp.ScreenHeight,
		Scale:     disp.Scale,
		Framerate: disp.Framerate,
		Resizable: disp.Resizable,
	})

	// Set up ebiten
	ebiten.SetWindowSize(disp.ScreenWidth*disp.Scale, disp.ScreenHeight*disp.Scale)
	ebiten.SetWindowTitle(disp.Title)
	ebiten.SetTPS(disp.Framerate)
	if disp.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	runErr := ebiten.RunGame(g)

	if r := a.driver.Recorder(); r != nil {
		r.Stop()
		if path, err := r.Save(opts.record); err != nil {
			log.Error("failed to save recording", "err", err)
		} else {
			log.Info("Recording saved", "path", path, "frames", r.FrameCount())
		}
	}
	if runErr != nil {
		return fmt.Errorf("failed to run game: %w", runErr)
	}
	return nil
}

// defaultSavePath is under the user config directory, or the working
// directory when that is unknown
func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "screenflow_save.toml"
	}
	return filepath.Join(dir, "screenflow", "save.toml")
}

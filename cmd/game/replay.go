package main

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/replay"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/infrastructure/audio"
)

// replayResult summarizes a headless run
type replayResult struct {
	Frames   int
	Final    state.Kind
	Unlocked []int
	Leaked   int
}

// runReplay plays data through a headless game and reports where it ended
func runReplay(data *replay.ReplayData, configDir string, log *slog.Logger) (replayResult, error) {
	start, ok := state.ParseKind(data.Start)
	if !ok {
		return replayResult{}, fmt.Errorf("unknown start screen %q", data.Start)
	}

	alloc := &render.NullAllocator{}
	a, err := newApp(appOptions{
		ConfigDir: configDir,
		Start:     start,
		Unlocked:  data.Progress,
		Logger:    log,
		Alloc:     alloc,
		Audio:     audio.Null{},
	})
	if err != nil {
		return replayResult{}, err
	}
	if data.Width > 0 && data.Height > 0 {
		a.driver.Resize(data.Width, data.Height)
	}

	r := replay.NewReplayer(*data)
	n := a.driver.Run(r.Next, 0)

	res := replayResult{Frames: n, Unlocked: append([]int(nil), a.ctx.Progress.UnlockedLevels...)}
	res.Final, _ = a.machine.GetCurrentDisplayState()
	a.close()
	res.Leaked = a.resources.Outstanding() + int(alloc.Live())

	log.Info("replay finished",
		"frames", res.Frames,
		"of", r.TotalFrames(),
		"final", res.Final.String(),
		"leaked", res.Leaked,
	)
	return res, nil
}

// runHeadless runs frames of fixed dt without input
func runHeadless(frames int, configDir string, log *slog.Logger) (replayResult, error) {
	data := replay.Script(state.KindMainMenu.String(), 0, 0, replay.Idle(frames, 1.0/60)...)
	return runReplay(&data, configDir, log)
}

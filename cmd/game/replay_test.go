package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/replay"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/infrastructure/logging"
)

const frameDT = 1.0 / 60

// press is one frame carrying a single button press
func press(b display.Button) replay.FrameInput {
	return replay.FrameInput{Dt: frameDT, Events: []display.Event{display.ButtonPress(b)}}
}

// script joins idle stretches and presses into one frame list
func script(parts ...[]replay.FrameInput) []replay.FrameInput {
	var out []replay.FrameInput
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func idle(n int) []replay.FrameInput { return replay.Idle(n, frameDT) }

func nullAlloc() *render.NullAllocator { return &render.NullAllocator{} }

func one(f replay.FrameInput) []replay.FrameInput { return []replay.FrameInput{f} }

// toLevel walks from the main menu into the first level
func toLevel() []replay.FrameInput {
	return script(
		idle(120), one(press(display.ButtonConfirm)), // main menu: play
		idle(120), one(press(display.ButtonConfirm)), // world select: first world
		idle(120), one(press(display.ButtonConfirm)), // level select: first level
		idle(240), // title card advances on its own
	)
}

func TestRunReplay_MenusIntoFirstLevel(t *testing.T) {
	data := replay.Script(state.KindMainMenu.String(), 0, 0, toLevel()...)

	res, err := runReplay(&data, "", logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, len(data.Frames), res.Frames)
	assert.Equal(t, state.KindInGame, res.Final)
	assert.Equal(t, 0, res.Leaked)
}

func TestRunReplay_CompletingLevelUnlocksNext(t *testing.T) {
	frames := script(
		toLevel(),
		idle(2400), // level, level end and summary labels
		one(press(display.ButtonConfirm)),
		idle(180),
	)
	data := replay.Script(state.KindMainMenu.String(), 0, 0, frames...)

	res, err := runReplay(&data, "", logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, state.KindLevelSelect, res.Final)
	require.NotEmpty(t, res.Unlocked)
	assert.Equal(t, 2, res.Unlocked[0])
	assert.Equal(t, 0, res.Leaked)
}

func TestRunReplay_ResizeMidMenu(t *testing.T) {
	data := replay.Script(state.KindMainMenu.String(), 640, 480, idle(60)...)

	res, err := runReplay(&data, "", logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, state.KindMainMenu, res.Final)
	assert.Equal(t, 0, res.Leaked)
}

func TestRunReplay_UnknownStart(t *testing.T) {
	data := replay.Script("Nowhere", 0, 0, idle(1)...)

	_, err := runReplay(&data, "", logging.Discard())
	assert.Error(t, err)
}

func TestRunReplay_FromFile(t *testing.T) {
	rec := replay.NewRecorder(state.KindMainMenu.String(), 320, 240, nil)
	for _, f := range toLevel() {
		rec.RecordFrame(f.Dt, f.Events)
	}
	path := filepath.Join(t.TempDir(), "run.json")
	_, err := rec.Save(path)
	require.NoError(t, err)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	res, err := runReplay(data, "", logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, state.KindInGame, res.Final)
}

func TestRunHeadless_IdleMenuLeaksNothing(t *testing.T) {
	res, err := runHeadless(300, "", logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, 300, res.Frames)
	assert.Equal(t, state.KindMainMenu, res.Final)
	assert.Equal(t, 0, res.Leaked)
}

func TestNewApp_PersistsProgress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n\n[progress]\nunlocked_levels = [3, 2]\ncompleted = 4\n"), 0o644))

	a, err := newApp(appOptions{
		SavePath: path,
		Start:    state.KindWorldSelect,
		Logger:   logging.Discard(),
		Alloc:    nullAlloc(),
	})
	require.NoError(t, err)
	defer a.close()

	assert.True(t, a.ctx.Progress.IsWorldUnlocked(1))
	assert.Equal(t, 4, a.ctx.Progress.Completed)
	kind, ok := a.machine.GetCurrentDisplayState()
	require.True(t, ok)
	assert.Equal(t, state.KindWorldSelect, kind)
}

func TestNewApp_BadConfigDir(t *testing.T) {
	_, err := newApp(appOptions{
		ConfigDir: filepath.Join(t.TempDir(), "missing"),
		Start:     state.KindMainMenu,
		Logger:    logging.Discard(),
		Alloc:     nullAlloc(),
	})
	assert.Error(t, err)
}

// Package game provides the frame driver that runs the display state
// machine, either inside an ebiten window or headless.
package game

import (
	"log/slog"

	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/replay"
	"go.uber.org/atomic"
)

// Driver advances one frame at a time. Each frame it dispatches input to
// the active state, renders it into the backbuffer, steps the simulation
// when the state allows it and drains the transition queue if a screen
// asked for it.
type Driver struct {
	machine  *display.Machine
	ctx      *display.Context
	back     render.Surface
	recorder *replay.Recorder
	log      *slog.Logger

	frames atomic.Uint64
	quit   atomic.Bool
}

// NewDriver creates a driver for m. ctx must be the context m was built
// with; its Quit hook is pointed at the driver when unset.
func NewDriver(m *display.Machine, ctx *display.Context) *Driver {
	d := &Driver{machine: m, ctx: ctx, log: ctx.Logger}
	if d.log == nil {
		d.log = slog.Default()
	}
	d.back = ctx.Alloc.NewSurface(ctx.Width, ctx.Height)
	if ctx.Quit == nil {
		ctx.Quit = d.Quit
	}
	return d
}

// SetRecorder records every frame's input from now on
func (d *Driver) SetRecorder(r *replay.Recorder) { d.recorder = r }

// Recorder returns the active recorder, or nil
func (d *Driver) Recorder() *replay.Recorder { return d.recorder }

// Frame runs one frame
func (d *Driver) Frame(dt float64, events []display.Event) {
	if d.recorder != nil {
		d.recorder.RecordFrame(dt, events)
	}

	for _, e := range events {
		d.machine.Dispatch(e)
	}
	d.machine.RenderFrame(dt, d.back)

	if d.machine.AllowsGameModelUpdates() {
		d.ctx.Sim.Tick(dt)
		d.ctx.Sim.UpdateState()
		d.ctx.Audio.Tick(dt)
	}

	if d.machine.TakeDrainRequest() {
		d.machine.SetCurrentStateAsNextQueuedState()
	}
	d.frames.Inc()
}

// Resize reallocates the backbuffer and forwards the new size to the
// machine. Calls with the current size are ignored.
func (d *Driver) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		d.machine.DisplaySizeChanged(w, h)
		return
	}
	if cw, ch := d.back.Size(); cw == w && ch == h {
		return
	}
	d.back.Dispose()
	d.back = d.ctx.Alloc.NewSurface(w, h)
	d.machine.DisplaySizeChanged(w, h)
	d.log.Debug("display resized", "width", w, "height", h)
}

// Backbuffer returns the surface the last frame was presented to
func (d *Driver) Backbuffer() render.Surface { return d.back }

// Machine returns the driven state machine
func (d *Driver) Machine() *display.Machine { return d.machine }

// Frames returns the number of frames run
func (d *Driver) Frames() uint64 { return d.frames.Load() }

// Quit asks the driver to stop after the current frame. Safe from any
// goroutine.
func (d *Driver) Quit() { d.quit.Store(true) }

// Quitting reports whether Quit was called
func (d *Driver) Quitting() bool { return d.quit.Load() }

// Close destroys every state and the backbuffer
func (d *Driver) Close() {
	d.machine.Close()
	d.ctx.Audio.StopAll()
	d.back.Dispose()
}

// FrameSource yields each frame's delta and input. ok is false once the
// source is exhausted.
type FrameSource func() (dt float64, events []display.Event, ok bool)

// Fixed yields input-free frames of dt forever
func Fixed(dt float64) FrameSource {
	return func() (float64, []display.Event, bool) { return dt, nil, true }
}

// Run drives frames from src until it is exhausted, Quit is called or
// maxFrames have run (zero means no limit). It returns the number of
// frames run.
func (d *Driver) Run(src FrameSource, maxFrames int) int {
	n := 0
	for !d.Quitting() && (maxFrames <= 0 || n < maxFrames) {
		dt, events, ok := src()
		if !ok {
			break
		}
		d.Frame(dt, events)
		n++
	}
	return n
}

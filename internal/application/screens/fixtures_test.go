package screens

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/render/rendertest"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/domain/asset"
	"github.com/younwookim/screenflow/internal/domain/progress"
	"github.com/younwookim/screenflow/internal/domain/simulation"
	"github.com/younwookim/screenflow/internal/domain/sound"
	"github.com/younwookim/screenflow/internal/infrastructure/config"
	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
	"github.com/younwookim/screenflow/internal/infrastructure/logging"
)

func TestMain(m *testing.M) {
	invariant.SetStrict(true)
	os.Exit(m.Run())
}

// lenient turns invariant panics off for tests of the degraded paths
func lenient(t *testing.T) {
	t.Helper()
	invariant.SetStrict(false)
	t.Cleanup(func() { invariant.SetStrict(true) })
}

// fakeSim is a test double for display.Simulation
type fakeSim struct {
	begun  []string
	inputs []simulation.Action
	ticks  int

	complete, dead, defeated, paused bool
	forfeit                          bool
	bossHP                           float64
	elapsed                          float64
}

func (f *fakeSim) Tick(dt float64) {
	f.ticks++
	f.elapsed += dt
}

func (f *fakeSim) UpdateState() {
	if f.forfeit {
		f.dead = true
	}
}

func (f *fakeSim) Begin(world, level int, boss bool) {
	f.begun = append(f.begun, fmt.Sprintf("%d/%d/%v", world, level, boss))
	f.complete, f.dead, f.defeated, f.forfeit = false, false, false, false
	f.bossHP = 1
	f.elapsed = 0
}

func (f *fakeSim) Input(a simulation.Action, pressed bool) {
	if !pressed {
		return
	}
	f.inputs = append(f.inputs, a)
	if a == simulation.ActionForfeit {
		f.forfeit = true
	}
}

func (f *fakeSim) Paused() bool               { return f.paused }
func (f *fakeSim) LevelComplete() bool        { return f.complete }
func (f *fakeSim) PlayerDead() bool           { return f.dead }
func (f *fakeSim) BossDefeated() bool         { return f.defeated }
func (f *fakeSim) BossHealth() float64        { return f.bossHP }
func (f *fakeSim) Camera() (float64, float64) { return 10, 0 }
func (f *fakeSim) Elapsed() float64           { return f.elapsed }

// fakeAudio records cues
type fakeAudio struct {
	played   []sound.Cue
	stopped  []sound.Cue
	listener [2]float64
	ticks    int
}

func (f *fakeAudio) Tick(float64)                     { f.ticks++ }
func (f *fakeAudio) SetListenerPosition(x, y float64) { f.listener = [2]float64{x, y} }
func (f *fakeAudio) Play(c sound.Cue)                 { f.played = append(f.played, c) }
func (f *fakeAudio) Stop(c sound.Cue)                 { f.stopped = append(f.stopped, c) }
func (f *fakeAudio) StopAll()                         {}

func (f *fakeAudio) count(c sound.Cue) int {
	n := 0
	for _, p := range f.played {
		if p == c {
			n++
		}
	}
	return n
}

// fakeResources hands out unique handles and tracks releases
type fakeResources struct {
	alloc      *rendertest.Allocator
	next       uint64
	live       map[uint64]asset.Handle
	textures   map[uint64]render.Surface
	missing    map[string]bool
	acquired   int
	badRelease int
}

func newFakeResources() *fakeResources {
	return &fakeResources{
		alloc:    rendertest.NewAllocator(),
		live:     make(map[uint64]asset.Handle),
		textures: make(map[uint64]render.Surface),
		missing:  make(map[string]bool),
	}
}

func (f *fakeResources) acquire(kind asset.Kind, path string) (asset.Handle, bool) {
	if f.missing[path] {
		return asset.Handle{}, false
	}
	f.next++
	f.acquired++
	h := asset.Handle{ID: f.next, Kind: kind, Path: path}
	f.live[h.ID] = h
	if kind == asset.KindTexture {
		f.textures[h.ID] = f.alloc.NewSurface(32, 32)
	}
	return h, true
}

func (f *fakeResources) AcquireTexture(p string) (asset.Handle, bool) {
	return f.acquire(asset.KindTexture, p)
}
func (f *fakeResources) AcquireFont(p string) (asset.Handle, bool) {
	return f.acquire(asset.KindFont, p)
}
func (f *fakeResources) AcquireMesh(p string) (asset.Handle, bool) {
	return f.acquire(asset.KindMesh, p)
}

func (f *fakeResources) Release(h asset.Handle) {
	if _, ok := f.live[h.ID]; !ok {
		f.badRelease++
		return
	}
	delete(f.live, h.ID)
	if tex, ok := f.textures[h.ID]; ok {
		tex.Dispose()
		delete(f.textures, h.ID)
	}
}

func (f *fakeResources) Texture(h asset.Handle) render.Surface { return f.textures[h.ID] }

func (f *fakeResources) livePaths() []string {
	var out []string
	for _, h := range f.live {
		out = append(out, h.Path)
	}
	return out
}

// fakeText returns message ids untranslated
type fakeText struct{}

func (fakeText) T(id string, _ map[string]any) string { return id }

// fakeSaver counts saves
type fakeSaver struct {
	saves int
	last  progress.Progress
}

func (f *fakeSaver) Save(p *progress.Progress) error {
	f.saves++
	f.last = *p
	return nil
}

func testCatalog() progress.Catalog {
	return progress.Catalog{Worlds: []progress.World{
		{Name: "world_a", Levels: 3, Boss: true},
		{Name: "world_b", Levels: 2, Boss: true},
	}}
}

// harness runs screens on a real Machine with the frame order of the driver
type harness struct {
	t     *testing.T
	alloc *rendertest.Allocator
	sim   *fakeSim
	audio *fakeAudio
	res   *fakeResources
	saver *fakeSaver
	ctx   *display.Context
	m     *display.Machine
	dst   render.Surface
	quit  bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cat := testCatalog()
	h := &harness{
		t:     t,
		alloc: rendertest.NewAllocator(),
		sim:   &fakeSim{},
		audio: &fakeAudio{},
		res:   newFakeResources(),
		saver: &fakeSaver{},
	}
	h.ctx = &display.Context{
		Logger:    logging.Discard(),
		Alloc:     h.alloc,
		Sim:       h.sim,
		Audio:     h.audio,
		Resources: h.res,
		Text:      fakeText{},
		Progress:  progress.New(cat),
		Catalog:   cat,
		Saver:     h.saver,
		Timings:   config.DefaultScreens(),
		Bloom:     0.3,
		Width:     320,
		Height:    240,
		Quit:      func() { h.quit = true },
	}
	h.m = display.NewMachine(h.ctx, New)
	h.dst = h.alloc.NewSurface(320, 240)
	return h
}

func (h *harness) start(kind state.Kind, params state.Params) {
	h.t.Helper()
	require.NoError(h.t, h.m.Start(kind, params))
}

// frame mirrors the frame driver: input, render, simulation, drain
func (h *harness) frame(dt float64, events ...display.Event) {
	for _, e := range events {
		h.m.Dispatch(e)
	}
	h.m.RenderFrame(dt, h.dst)
	if h.m.AllowsGameModelUpdates() {
		h.sim.Tick(dt)
		h.sim.UpdateState()
		h.audio.Tick(dt)
	}
	if h.m.TakeDrainRequest() {
		h.m.SetCurrentStateAsNextQueuedState()
	}
}

func (h *harness) press(b display.Button) {
	h.frame(0.1, display.ButtonPress(b))
}

func (h *harness) kind() state.Kind {
	k, ok := h.m.GetCurrentDisplayState()
	require.True(h.t, ok)
	return k
}

// runUntil steps 0.1s frames until kind is active
func (h *harness) runUntil(kind state.Kind, maxFrames int) bool {
	for i := 0; i < maxFrames; i++ {
		if h.kind() == kind {
			return true
		}
		h.frame(0.1)
	}
	return h.kind() == kind
}

// runUntilPhase steps frames until the active screen reports phase
func (h *harness) runUntilPhase(p Phase, maxFrames int) bool {
	type phased interface{ Phase() Phase }
	for i := 0; i < maxFrames; i++ {
		if s, ok := h.m.Current().(phased); ok && s.Phase() == p {
			return true
		}
		h.frame(0.1)
	}
	s, ok := h.m.Current().(phased)
	return ok && s.Phase() == p
}

func rendertestID(s render.Surface) int {
	return rendertest.ID(s)
}

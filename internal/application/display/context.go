package display

import (
	"log/slog"

	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/domain/asset"
	"github.com/younwookim/screenflow/internal/domain/progress"
	"github.com/younwookim/screenflow/internal/domain/simulation"
	"github.com/younwookim/screenflow/internal/domain/sound"
	"github.com/younwookim/screenflow/internal/infrastructure/config"
)

// Simulation is the external gameplay model. Screens read its flags but
// only the frame driver advances it.
type Simulation interface {
	Tick(dt float64)
	UpdateState()
	Begin(world, level int, boss bool)
	Input(a simulation.Action, pressed bool)
	Paused() bool
	LevelComplete() bool
	PlayerDead() bool
	BossDefeated() bool
	// BossHealth is in [0,1]
	BossHealth() float64
	Camera() (x, y float64)
	Elapsed() float64
}

// Audio plays discrete cues and follows the camera
type Audio interface {
	Tick(dt float64)
	SetListenerPosition(x, y float64)
	Play(c sound.Cue)
	Stop(c sound.Cue)
	StopAll()
}

// Resources hands out reference-counted assets by path. Every successful
// acquire must be matched by exactly one Release.
type Resources interface {
	AcquireTexture(path string) (asset.Handle, bool)
	AcquireFont(path string) (asset.Handle, bool)
	AcquireMesh(path string) (asset.Handle, bool)
	Release(h asset.Handle)
	// Texture returns the surface of a texture handle, or nil
	Texture(h asset.Handle) render.Surface
}

// Localizer translates screen labels
type Localizer interface {
	T(id string, data map[string]any) string
}

// ProgressSaver persists player progress
type ProgressSaver interface {
	Save(p *progress.Progress) error
}

// Navigator is the transition surface screens use. The Machine implements it.
type Navigator interface {
	// AddStateToQueue appends a pending transition.
	AddStateToQueue(kind state.Kind, params state.Params)
	// RequestQueueDrain asks the frame driver to pop the queue after this frame.
	RequestQueueDrain()
	// Replace constructs kind and makes it active, destroying the current state.
	Replace(kind state.Kind, params state.Params)
	// Overlay constructs kind and makes it active, retaining the current
	// state as the backdrop.
	Overlay(kind state.Kind, params state.Params)
	// RestoreBackdrop destroys the active overlay and reinstates the backdrop.
	RestoreBackdrop()
	// ReleaseBackdrop destroys the retained backdrop.
	ReleaseBackdrop()
	// Backdrop returns the retained state, or nil.
	Backdrop() State
	// Pending returns the number of queued transitions.
	Pending() int
}

// Context carries the collaborators every screen is constructed with.
// Width and Height track the current window size.
type Context struct {
	Logger    *slog.Logger
	Alloc     render.Allocator
	Sim       Simulation
	Audio     Audio
	Resources Resources
	Text      Localizer
	Progress  *progress.Progress
	Catalog   progress.Catalog
	Saver     ProgressSaver
	Timings   *config.ScreensConfig
	Bloom     float64
	Width     int
	Height    int
	Nav       Navigator
	// Quit asks the frame driver to stop after the current frame.
	Quit func()
}

// Factory constructs the state for kind
type Factory func(kind state.Kind, params state.Params, ctx *Context) (State, error)

package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/screenflow/internal/infrastructure/graphics"
)

// Options configures the window loop
type Options struct {
	Width     int
	Height    int
	Scale     int
	Framerate int
	// Resizable follows the window size instead of a fixed logical size
	Resizable bool
}

// Game implements ebiten.Game on top of a Driver
type Game struct {
	driver *Driver
	poller *Poller
	opts   Options
	dt     float64
}

// New creates a Game running d
func New(d *Driver, poller *Poller, opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Framerate <= 0 {
		opts.Framerate = 60
	}
	return &Game{
		driver: d,
		poller: poller,
		opts:   opts,
		dt:     1.0 / float64(opts.Framerate),
	}
}

// Update runs one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.driver.Quitting() {
		return ebiten.Termination
	}
	g.driver.Frame(g.dt, g.poller.Poll())
	return nil
}

// Draw presents the backbuffer.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if s, ok := g.driver.Backbuffer().(*graphics.Surface); ok {
		screen.DrawImage(s.Image(), nil)
	}
}

// Layout returns the logical screen size, resizing the driver when the
// window size changes.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.opts.Resizable {
		return g.opts.Width, g.opts.Height
	}
	w := max(outsideWidth/g.opts.Scale, 1)
	h := max(outsideHeight/g.opts.Scale, 1)
	g.driver.Resize(w, h)
	return w, h
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

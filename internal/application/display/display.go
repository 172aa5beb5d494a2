// Package display owns the active screen and the transitions between screens.
//
// Exactly one State is active at a time. Screens request transitions either
// directly through the Navigator or by queueing (kind, params) pairs that the
// frame driver drains once the screen asks for it. Replacements requested
// while a state is handling input or drawing are applied after the frame's
// drawing has finished.
package display

import (
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
)

// State is one logical screen
type State interface {
	// RenderFrame advances the screen's choreography by dt seconds and
	// draws the frame into dst.
	RenderFrame(dt float64, dst render.Surface)

	ButtonPressed(b Button)
	ButtonReleased(b Button)
	MousePressed(b MouseButton, x, y int)
	MouseReleased(b MouseButton, x, y int)
	MouseMoved(x, y int)
	WindowFocus(focused bool)

	// DisplaySizeChanged reallocates every render target at the new size.
	DisplaySizeChanged(w, h int)

	// AllowsGameModelUpdates reports whether the frame driver should advance
	// the simulation after this frame.
	AllowsGameModelUpdates() bool

	Type() state.Kind

	// Close releases everything the state acquired. It is called exactly
	// once, by whoever destroys the state.
	Close()
}

// Snapshotter is implemented by states that can serve their last rendered
// frame as a backdrop for an overlay.
type Snapshotter interface {
	LastFrame() render.Surface
}

// Package render assembles frames from ordered off-screen passes.
//
// Screens never talk to the graphics backend directly. They draw into
// Surfaces obtained from an Allocator, and multi-pass screens arrange their
// Surfaces in a Chain whose stages run in a fixed producer -> consumer order.
package render

import "image/color"

// CompositeOptions controls how one surface is drawn onto another.
// A zero Scale means 1. Alpha is applied as given; use Opaque for 1.
type CompositeOptions struct {
	Alpha    float64
	ScaleX   float64
	ScaleY   float64
	OffsetX  float64
	OffsetY  float64
	Additive bool
}

// Opaque draws the source unscaled at full opacity
var Opaque = CompositeOptions{Alpha: 1}

// WithAlpha returns options drawing at the given opacity
func WithAlpha(alpha float64) CompositeOptions {
	return CompositeOptions{Alpha: clamp01(alpha)}
}

// Scale returns the effective scale factors
func (o CompositeOptions) Scale() (float64, float64) {
	sx, sy := o.ScaleX, o.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// Surface is a drawable image owned by exactly one writer at a time
type Surface interface {
	Size() (w, h int)
	// Clear resets every pixel to transparent.
	Clear()
	Fill(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	DrawText(s string, x, y float64, c color.Color)
	// Composite draws src onto this surface.
	Composite(src Surface, opts CompositeOptions)
	// Dispose releases the backing memory. The surface must not be used after.
	Dispose()
}

// Allocator creates surfaces on the graphics backend
type Allocator interface {
	NewSurface(w, h int) Surface
}

// TargetOwner is implemented by anything holding render targets, so size
// invariants can be checked from outside.
type TargetOwner interface {
	RenderTargets() []*Target
}

// Fade scales a color's alpha by a in [0,1]
func Fade(c color.RGBA, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

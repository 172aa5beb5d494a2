package render

import (
	"image/color"

	"go.uber.org/atomic"
)

// NullAllocator creates surfaces that draw nothing. Headless runs use it
// to drive the full state machine without a window.
type NullAllocator struct {
	live atomic.Int64
}

// NewSurface implements Allocator
func (a *NullAllocator) NewSurface(w, h int) Surface {
	a.live.Inc()
	return &nullSurface{w: w, h: h, alloc: a}
}

// Live returns the number of surfaces not yet disposed
func (a *NullAllocator) Live() int64 { return a.live.Load() }

type nullSurface struct {
	w, h     int
	disposed bool
	alloc    *NullAllocator
}

func (s *nullSurface) Size() (int, int)                               { return s.w, s.h }
func (s *nullSurface) Clear()                                         {}
func (s *nullSurface) Fill(color.Color)                               {}
func (s *nullSurface) FillRect(_, _, _, _ float64, _ color.Color)     {}
func (s *nullSurface) DrawText(string, float64, float64, color.Color) {}
func (s *nullSurface) Composite(Surface, CompositeOptions)            {}

func (s *nullSurface) Dispose() {
	if !s.disposed {
		s.disposed = true
		s.alloc.live.Dec()
	}
}

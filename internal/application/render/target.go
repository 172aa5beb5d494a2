package render

import "github.com/younwookim/screenflow/internal/infrastructure/invariant"

// Target is a named off-screen surface whose size always tracks the window
type Target struct {
	name       string
	alloc      Allocator
	surface    Surface
	w, h       int
	producedAt uint64
	bound      bool
}

// NewTarget allocates a w x h target
func NewTarget(name string, alloc Allocator, w, h int) *Target {
	t := &Target{name: name, alloc: alloc}
	t.Resize(w, h)
	return t
}

// Name returns the target's name
func (t *Target) Name() string { return t.name }

// Size returns the allocated dimensions
func (t *Target) Size() (int, int) { return t.w, t.h }

// Surface returns the backing surface, nil after Dispose
func (t *Target) Surface() Surface { return t.surface }

// ProducedAt returns the chain frame that last wrote this target (0 = never)
func (t *Target) ProducedAt() uint64 { return t.producedAt }

// Bound reports whether a stage is currently drawing into the target
func (t *Target) Bound() bool { return t.bound }

// Resize reallocates the surface at w x h. The previous contents are lost
// and the target counts as not produced.
func (t *Target) Resize(w, h int) {
	if !invariant.Check(!t.bound, "target resized while bound", "target", t.name) {
		return
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if t.surface != nil {
		if t.w == w && t.h == h {
			return
		}
		t.surface.Dispose()
	}
	t.surface = t.alloc.NewSurface(w, h)
	t.w, t.h = w, h
	t.producedAt = 0
}

// Dispose releases the surface. Safe to call more than once.
func (t *Target) Dispose() {
	if t.surface == nil {
		return
	}
	t.surface.Dispose()
	t.surface = nil
	t.producedAt = 0
}

func (t *Target) bind() Surface {
	t.bound = true
	t.surface.Clear()
	return t.surface
}

func (t *Target) unbind(frame uint64) {
	t.bound = false
	t.producedAt = frame
}

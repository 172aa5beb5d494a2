// Package rendertest provides an in-memory render backend that records
// every drawing operation, for tests that must not touch the GPU.
package rendertest

import (
	"image/color"

	"github.com/younwookim/screenflow/internal/application/render"
)

// Op is one recorded drawing call
type Op struct {
	Surface int
	Kind    string // clear, fill, rect, text, composite
	Src     int    // composite source surface, 0 otherwise
	Text    string
	Alpha   float64
}

// Allocator hands out recording surfaces and keeps a shared op log
type Allocator struct {
	Ops       []Op
	next      int
	live      map[int]*Surface
	Allocated int
}

// NewAllocator creates an empty allocator
func NewAllocator() *Allocator {
	return &Allocator{live: make(map[int]*Surface)}
}

// NewSurface implements render.Allocator
func (a *Allocator) NewSurface(w, h int) render.Surface {
	a.next++
	a.Allocated++
	s := &Surface{ID: a.next, W: w, H: h, alloc: a}
	a.live[s.ID] = s
	return s
}

// Live returns the number of surfaces not yet disposed
func (a *Allocator) Live() int { return len(a.live) }

// Reset clears the op log
func (a *Allocator) Reset() { a.Ops = nil }

// Texts returns every string drawn since the last Reset
func (a *Allocator) Texts() []string {
	var out []string
	for _, op := range a.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// OpsOn returns the ops recorded against one surface
func (a *Allocator) OpsOn(id int) []Op {
	var out []Op
	for _, op := range a.Ops {
		if op.Surface == id {
			out = append(out, op)
		}
	}
	return out
}

// Surface records operations instead of drawing
type Surface struct {
	ID       int
	W, H     int
	Disposed bool
	// Disposals counts Dispose calls so double releases show up
	Disposals int
	alloc     *Allocator
}

func (s *Surface) record(op Op) {
	op.Surface = s.ID
	s.alloc.Ops = append(s.alloc.Ops, op)
}

func (s *Surface) Size() (int, int) { return s.W, s.H }

func (s *Surface) Clear() { s.record(Op{Kind: "clear"}) }

func (s *Surface) Fill(color.Color) { s.record(Op{Kind: "fill"}) }

func (s *Surface) FillRect(_, _, _, _ float64, _ color.Color) { s.record(Op{Kind: "rect"}) }

func (s *Surface) DrawText(text string, _, _ float64, _ color.Color) {
	s.record(Op{Kind: "text", Text: text})
}

func (s *Surface) Composite(src render.Surface, opts render.CompositeOptions) {
	op := Op{Kind: "composite", Alpha: opts.Alpha}
	if rs, ok := src.(*Surface); ok {
		op.Src = rs.ID
	}
	s.record(op)
}

func (s *Surface) Dispose() {
	s.Disposals++
	s.Disposed = true
	delete(s.alloc.live, s.ID)
}

// ID returns the recording id of a surface created by an Allocator, or 0
func ID(s render.Surface) int {
	if rs, ok := s.(*Surface); ok {
		return rs.ID
	}
	return 0
}

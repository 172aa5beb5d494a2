package render

import (
	"errors"
	"fmt"

	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
)

var (
	// ErrStageOrder is returned when a stage reads a target that no strictly
	// earlier stage produces.
	ErrStageOrder = errors.New("render: stage reads a target not produced by an earlier stage")
	// ErrTargetOwned is returned when a stage writes a target another stage owns.
	ErrTargetOwned = errors.New("render: target already owned by another stage")
	// ErrUnknownTarget is returned for lookups of targets the chain does not have.
	ErrUnknownTarget = errors.New("render: unknown target")
)

// DrawFunc draws one stage's content category into dst. inputs holds the
// surfaces of the stage's declared inputs, in declaration order.
type DrawFunc func(dst Surface, inputs []Surface)

// Stage is one pass: it owns Output and may read Inputs
type Stage struct {
	Name   string
	Output string
	Inputs []string
	Draw   DrawFunc
}

// Chain is an ordered list of stages with a linear data dependency between
// their targets. Stages run in the order they were added.
type Chain struct {
	alloc   Allocator
	w, h    int
	stages  []Stage
	targets map[string]*Target
	owner   map[string]string
	order   []string
	frame   uint64
}

// NewChain creates an empty chain whose targets will be w x h
func NewChain(alloc Allocator, w, h int) *Chain {
	return &Chain{
		alloc:   alloc,
		w:       w,
		h:       h,
		targets: make(map[string]*Target),
		owner:   make(map[string]string),
	}
}

// AddStage appends a stage and allocates its output target
func (c *Chain) AddStage(s Stage) error {
	if owner, ok := c.owner[s.Output]; ok {
		return fmt.Errorf("%w: %s written by %s and %s", ErrTargetOwned, s.Output, owner, s.Name)
	}
	for _, in := range s.Inputs {
		if _, ok := c.owner[in]; !ok {
			return fmt.Errorf("%w: %s reads %s", ErrStageOrder, s.Name, in)
		}
	}
	c.owner[s.Output] = s.Name
	c.targets[s.Output] = NewTarget(s.Output, c.alloc, c.w, c.h)
	c.order = append(c.order, s.Output)
	c.stages = append(c.stages, s)
	return nil
}

// MustAddStage is AddStage for statically known chains
func (c *Chain) MustAddStage(s Stage) *Chain {
	if err := c.AddStage(s); err != nil {
		panic(err)
	}
	return c
}

// Render runs one frame: every stage binds and clears its target, draws,
// unbinds, and hands its surface on to later stages.
func (c *Chain) Render() {
	c.frame++
	for _, s := range c.stages {
		out := c.targets[s.Output]
		if w, h := out.Size(); !invariant.Check(w == c.w && h == c.h,
			"stale render target size", "target", s.Output, "w", w, "h", h, "want_w", c.w, "want_h", c.h) {
			out.Resize(c.w, c.h)
		}

		inputs := make([]Surface, 0, len(s.Inputs))
		for _, name := range s.Inputs {
			in := c.targets[name]
			invariant.Check(in.ProducedAt() == c.frame, "stage reads a target not produced this frame",
				"stage", s.Name, "input", name)
			inputs = append(inputs, in.Surface())
		}

		dst := out.bind()
		if s.Draw != nil {
			s.Draw(dst, inputs)
		}
		out.unbind(c.frame)
	}
}

// Resize reallocates every target at w x h. Call it between frames only.
func (c *Chain) Resize(w, h int) {
	c.w, c.h = w, h
	for _, name := range c.order {
		c.targets[name].Resize(w, h)
	}
}

// Size returns the size the chain's targets are allocated at
func (c *Chain) Size() (int, int) { return c.w, c.h }

// Frame returns the number of frames rendered
func (c *Chain) Frame() uint64 { return c.frame }

// Target returns the named target
func (c *Chain) Target(name string) (*Target, error) {
	t, ok := c.targets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
	}
	return t, nil
}

// Final returns the output of the last stage, nil for an empty chain
func (c *Chain) Final() *Target {
	if len(c.order) == 0 {
		return nil
	}
	return c.targets[c.order[len(c.order)-1]]
}

// RenderTargets returns every target in production order
func (c *Chain) RenderTargets() []*Target {
	out := make([]*Target, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.targets[name])
	}
	return out
}

// StageNames returns the stage names in execution order
func (c *Chain) StageNames() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name
	}
	return names
}

// Dispose releases every target
func (c *Chain) Dispose() {
	for _, name := range c.order {
		c.targets[name].Dispose()
	}
}

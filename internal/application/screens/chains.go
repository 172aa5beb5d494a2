package screens

import (
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
)

const (
	targetBackground    = "background"
	targetFullScene     = "fullScene"
	targetPostFullScene = "postFullScene"
	targetFinal         = "final"
)

// layer draws one content category
type layer func(dst render.Surface)

// over composites the single input and then draws content on top
func over(content layer) render.DrawFunc {
	return func(dst render.Surface, inputs []render.Surface) {
		dst.Composite(inputs[0], render.Opaque)
		if content != nil {
			content(dst)
		}
	}
}

// newMenuChain builds background -> final
func newMenuChain(ctx *display.Context, background, content layer) *render.Chain {
	c := render.NewChain(ctx.Alloc, ctx.Width, ctx.Height)
	c.MustAddStage(render.Stage{
		Name:   "background",
		Output: targetBackground,
		Draw:   func(dst render.Surface, _ []render.Surface) { background(dst) },
	})
	c.MustAddStage(render.Stage{
		Name:   "gather",
		Output: targetFinal,
		Inputs: []string{targetBackground},
		Draw:   over(content),
	})
	return c
}

// newGameplayChain builds background -> fullScene -> postFullScene -> final
func newGameplayChain(ctx *display.Context, background, scene, post, gather layer) *render.Chain {
	c := render.NewChain(ctx.Alloc, ctx.Width, ctx.Height)
	c.MustAddStage(render.Stage{
		Name:   "background",
		Output: targetBackground,
		Draw:   func(dst render.Surface, _ []render.Surface) { background(dst) },
	})
	c.MustAddStage(render.Stage{
		Name:   "fullScene",
		Output: targetFullScene,
		Inputs: []string{targetBackground},
		Draw:   over(scene),
	})
	c.MustAddStage(render.Stage{
		Name:   "postFullScene",
		Output: targetPostFullScene,
		Inputs: []string{targetFullScene},
		Draw:   over(post),
	})
	c.MustAddStage(render.Stage{
		Name:   "gather",
		Output: targetFinal,
		Inputs: []string{targetPostFullScene},
		Draw:   over(gather),
	})
	return c
}

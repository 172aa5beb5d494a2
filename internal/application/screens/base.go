package screens

import (
	"log/slog"

	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/domain/asset"
	"github.com/younwookim/screenflow/internal/domain/sound"
	"github.com/younwookim/screenflow/internal/infrastructure/config"
	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
)

// fontPath is the face every screen draws labels with
const fontPath = "fonts/basic"

var defaultTimings = config.DefaultScreens()

// base holds what every screen owns: its context, acquired asset handles
// and render chain. It supplies no-op input handlers.
type base struct {
	ctx    *display.Context
	kind   state.Kind
	params state.Params
	chain  *render.Chain

	handles []asset.Handle
	closed  bool
}

func newBase(ctx *display.Context, kind state.Kind, params state.Params) base {
	return base{ctx: ctx, kind: kind, params: params}
}

func (b *base) acquire(fn func(string) (asset.Handle, bool), path string) asset.Handle {
	h, ok := fn(path)
	if !invariant.Check(ok, "asset not found", "path", path, "screen", b.kind.String()) {
		return asset.Handle{}
	}
	b.handles = append(b.handles, h)
	return h
}

func (b *base) acquireTexture(path string) asset.Handle {
	return b.acquire(b.ctx.Resources.AcquireTexture, path)
}

func (b *base) acquireFont(path string) asset.Handle {
	return b.acquire(b.ctx.Resources.AcquireFont, path)
}

func (b *base) acquireMesh(path string) asset.Handle {
	return b.acquire(b.ctx.Resources.AcquireMesh, path)
}

// drawTexture stretches a texture over dst; missing textures draw nothing
func (b *base) drawTexture(dst render.Surface, h asset.Handle, alpha, offsetX float64) {
	if !h.Valid() {
		return
	}
	tex := b.ctx.Resources.Texture(h)
	if tex == nil {
		return
	}
	tw, th := tex.Size()
	w, hh := dst.Size()
	dst.Composite(tex, render.CompositeOptions{
		Alpha:   alpha,
		ScaleX:  float64(w) / float64(tw),
		ScaleY:  float64(hh) / float64(th),
		OffsetX: offsetX,
	})
}

func (b *base) log() *slog.Logger {
	if b.ctx.Logger == nil {
		return slog.Default()
	}
	return b.ctx.Logger
}

func (b *base) timings() *config.ScreensConfig {
	if b.ctx.Timings == nil {
		return defaultTimings
	}
	return b.ctx.Timings
}

func (b *base) text(id string, data map[string]any) string {
	if b.ctx.Text == nil {
		return id
	}
	return b.ctx.Text.T(id, data)
}

func (b *base) play(c sound.Cue) {
	if b.ctx.Audio != nil {
		b.ctx.Audio.Play(c)
	}
}

// worldLevel returns the world and level params. Both are required; when
// either is missing or outside the catalog the furthest unlocked level is
// used.
func (b *base) worldLevel() (int, int) {
	w, hasW := b.params.World()
	l, hasL := b.params.Level()
	if invariant.Check(hasW && hasL, "missing world/level params", "screen", b.kind.String(), "params", b.params.String()) &&
		invariant.Check(b.ctx.Catalog.Contains(w, l), "world/level outside catalog", "screen", b.kind.String(), "world", w, "level", l) {
		return w, l
	}
	return b.ctx.Progress.FurthestUnlocked()
}

// present draws the chain's final target onto dst with bloom, dimmed by
// the screen's visibility
func (b *base) present(dst render.Surface, visibility float64) {
	dst.Clear()
	final := b.chain.Final().Surface()
	if b.ctx.Bloom > 0 {
		render.Bloom(dst, final, b.ctx.Bloom)
	} else {
		dst.Composite(final, render.Opaque)
	}
	b.fadeOver(dst, visibility)
}

func (b *base) fadeOver(dst render.Surface, visibility float64) {
	if visibility >= 1 {
		return
	}
	w, h := dst.Size()
	dst.FillRect(0, 0, float64(w), float64(h), render.Fade(colorBlack, 1-visibility))
}

func (b *base) Type() state.Kind { return b.kind }

func (b *base) ButtonReleased(display.Button) {}

func (b *base) MousePressed(display.MouseButton, int, int) {}

func (b *base) MouseReleased(display.MouseButton, int, int) {}

func (b *base) MouseMoved(int, int) {}

func (b *base) WindowFocus(bool) {}

func (b *base) AllowsGameModelUpdates() bool { return false }

// DisplaySizeChanged reallocates every target of the screen's chain
func (b *base) DisplaySizeChanged(w, h int) {
	if b.chain != nil {
		b.chain.Resize(w, h)
	}
}

// RenderTargets implements render.TargetOwner
func (b *base) RenderTargets() []*render.Target {
	if b.chain == nil {
		return nil
	}
	return b.chain.RenderTargets()
}

// Close releases every acquired handle and the chain's targets
func (b *base) Close() {
	if !invariant.Check(!b.closed, "display state closed twice", "screen", b.kind.String()) {
		return
	}
	b.closed = true
	for _, h := range b.handles {
		b.ctx.Resources.Release(h)
	}
	b.handles = nil
	if b.chain != nil {
		b.chain.Dispose()
	}
}

package screens

import (
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
	"github.com/younwookim/screenflow/internal/domain/progress"
)

// LevelEnd records a beaten level, shows a short banner and then queues
// the multi-hop sequence that follows: the summary screen and the select
// screen (or the game complete screen after the final boss).
type LevelEnd struct {
	base
	flow    *flow
	anim    *ticker.Choreography
	world   int
	level   int
	advance progress.Advance
	banner  string
}

// NewLevelEnd creates the banner screen. Params: world and level (required).
// Progress is updated and saved on construction.
func NewLevelEnd(ctx *display.Context, params state.Params) *LevelEnd {
	s := &LevelEnd{base: newBase(ctx, state.KindLevelEnd, params)}
	t := s.timings()

	s.world, s.level = s.worldLevel()
	s.advance = ctx.Progress.Complete(ctx.Catalog, s.world, s.level)
	s.log().Info("level completed",
		"world", s.world,
		"level", s.level,
		"new_level", s.advance.NewLevel,
		"new_world", s.advance.NewWorld,
		"finished", s.advance.Finished,
	)
	if ctx.Saver != nil {
		if err := ctx.Saver.Save(ctx.Progress); err != nil {
			s.log().Warn("failed to save progress", "err", err)
		}
	}

	s.acquireFont(fontPath)
	s.banner = s.text("levelend_clear", nil)

	s.anim = ticker.NewChoreography().
		Add("slowdown", ticker.NewLinear(1, 0, t.LevelEnd.Slowdown, ticker.EaseOutQuad)).
		Add("banner", ticker.NewKeyframes(ticker.EaseOutSine,
			ticker.Key{Time: 0, Value: 0},
			ticker.Key{Time: t.LevelEnd.Banner * 0.6, Value: 1.2},
			ticker.Key{Time: t.LevelEnd.Banner, Value: 1},
		))
	s.flow = newFlow(nil, s.anim, t.FadeOut)
	s.flow.autoAdvance = true

	s.chain = newMenuChain(ctx, s.drawBackground, s.drawContent)
	return s
}

// Advance returns what completing the level unlocked
func (s *LevelEnd) Advance() progress.Advance { return s.advance }

func (s *LevelEnd) drawBackground(dst render.Surface) {
	dst.Fill(colorSky)
	w, h := dst.Size()
	ground := float64(h) * 0.8
	dst.FillRect(0, ground, float64(w), float64(h)-ground, colorGround)
}

func (s *LevelEnd) drawContent(dst render.Surface) {
	w, h := dst.Size()
	scale := s.anim.Value("banner")
	if scale <= 0 {
		return
	}
	bh := 2 * glyphH * scale
	dst.FillRect(0, float64(h)/2-bh/2, float64(w), bh, render.Fade(colorBlack, 0.7))
	dst.DrawText(s.banner, centerX(w, s.banner), float64(h)/2-glyphH/2, render.Fade(colorAccent, min(scale, 1)))
}

// RenderFrame implements display.State
func (s *LevelEnd) RenderFrame(dt float64, dst render.Surface) {
	s.flow.Tick(dt)
	s.chain.Render()
	s.present(dst, s.flow.Visibility())

	if s.flow.TakeReady() {
		s.queueFollowUps()
		s.ctx.Nav.RequestQueueDrain()
	}
}

func (s *LevelEnd) queueFollowUps() {
	nav := s.ctx.Nav
	a := s.advance
	summaryKind := state.KindLevelComplete
	if s.ctx.Catalog.IsBossLevel(s.world, s.level) {
		summaryKind = state.KindBossComplete
	}
	summary := state.Params{}.WithWorld(s.world).WithLevel(s.level)

	if a.Finished {
		nav.AddStateToQueue(summaryKind, summary)
		nav.AddStateToQueue(state.KindGameComplete, state.Params{})
		return
	}

	if a.NextWorld != s.world {
		next := state.Params{}.WithWorld(a.NextWorld)
		if a.NewWorld {
			summary = summary.WithUnlocking(a.NextWorld)
			next = next.WithUnlocking(a.NextWorld)
		}
		nav.AddStateToQueue(summaryKind, summary)
		nav.AddStateToQueue(state.KindWorldSelect, next)
		return
	}

	next := state.Params{}.WithWorld(a.NextWorld).WithLevel(a.NextLevel)
	if a.NewLevel {
		summary = summary.WithUnlocking(a.NextLevel)
		next = next.WithUnlocking(a.NextLevel)
	}
	nav.AddStateToQueue(summaryKind, summary)
	nav.AddStateToQueue(state.KindLevelSelect, next)
}

// AllowsGameModelUpdates implements display.State. The world keeps
// settling under the banner.
func (s *LevelEnd) AllowsGameModelUpdates() bool {
	return s.flow.Phase() < PhaseFadingOut
}

// ButtonPressed implements display.State
func (s *LevelEnd) ButtonPressed(display.Button) {
	s.flow.Skip()
}

package screens

import (
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
	"github.com/younwookim/screenflow/internal/domain/asset"
	"github.com/younwookim/screenflow/internal/domain/sound"
)

// Summary is the level complete and boss complete screen.
//
// After the fade-in the title drops in, the subtitle and the unlock label
// fade in and the title glows. Once all of that is done the screen waits
// for input, fades out and asks the frame driver to drain the queue.
type Summary struct {
	base
	flow *flow
	anim *ticker.Choreography

	bg        asset.Handle
	unlocking int
	victory   bool
	unlocked  bool

	title    string
	subtitle string
	unlock   string
	hint     string
}

// NewLevelComplete creates the level summary.
// Params: world and level (required), unlocking (next level), fade-in.
func NewLevelComplete(ctx *display.Context, params state.Params) *Summary {
	return newSummary(ctx, state.KindLevelComplete, params)
}

// NewBossComplete creates the boss summary.
// Params: world and level (required), unlocking (next world), fade-in.
func NewBossComplete(ctx *display.Context, params state.Params) *Summary {
	return newSummary(ctx, state.KindBossComplete, params)
}

func newSummary(ctx *display.Context, kind state.Kind, params state.Params) *Summary {
	s := &Summary{base: newBase(ctx, kind, params), unlocking: -1}
	t := s.timings().Summary

	world, level := s.worldLevel()
	s.acquireFont(fontPath)
	s.bg = s.acquireTexture("textures/summary_bg.png")

	titleID, unlockID := "summary_level_complete", "summary_unlocked_level"
	if kind == state.KindBossComplete {
		titleID, unlockID = "summary_boss_complete", "summary_unlocked_world"
	}
	s.title = s.text(titleID, nil)
	s.subtitle = s.text("hud_level", map[string]any{"World": world + 1, "N": level + 1})
	s.hint = s.text("summary_continue", nil)

	unlockFade := ticker.NewSequence(ticker.NewDelay(t.LabelDrop), ticker.NewFade(t.UnlockFade))
	if u, ok := params.Unlocking(); ok {
		s.unlocking = u
		s.unlock = s.text(unlockID, map[string]any{"N": u + 1})
	} else {
		unlockFade.Finish()
	}

	s.anim = ticker.NewChoreography().
		Add("labelDrop", ticker.NewKeyframes(ticker.EaseOutQuad,
			ticker.Key{Time: 0, Value: -1},
			ticker.Key{Time: t.LabelDrop * 0.7, Value: 0.1},
			ticker.Key{Time: t.LabelDrop, Value: 0},
		)).
		Add("labelFade", ticker.NewSequence(ticker.NewDelay(t.LabelDrop*0.5), ticker.NewFade(t.LabelFade))).
		Add("unlockFade", unlockFade).
		Add("glow", ticker.NewKeyframes(ticker.EaseInOutSine,
			ticker.Key{Time: 0, Value: 0},
			ticker.Key{Time: t.Glow * 0.5, Value: 1.3},
			ticker.Key{Time: t.Glow, Value: 1},
		)).
		Add("hint", ticker.NewRepeating(0.3, 1, 1, ticker.WaveSine))
	s.flow = newFlow(fadeInFor(params, t.FadeIn), s.anim, s.timings().FadeOut)

	s.chain = newMenuChain(ctx, s.drawBackground, s.drawContent)
	return s
}

// Phase returns the screen's phase
func (s *Summary) Phase() Phase { return s.flow.Phase() }

func (s *Summary) drawBackground(dst render.Surface) {
	dst.Fill(colorMenuBg)
	s.drawTexture(dst, s.bg, 0.6, 0)
}

func (s *Summary) drawContent(dst render.Surface) {
	w, h := dst.Size()
	y := float64(h)/4 + s.anim.Value("labelDrop")*float64(h)/4

	if glow := s.anim.Value("glow"); glow > 0 {
		gw := float64(len(s.title)*glyphW) * glow
		dst.FillRect(float64(w)/2-gw/2-8, y-4, gw+16, glyphH+8, render.Fade(colorAccent, 0.25*glow))
	}
	dst.DrawText(s.title, centerX(w, s.title), y, colorAccent)
	dst.DrawText(s.subtitle, centerX(w, s.subtitle), float64(h)/2, render.Fade(colorText, s.anim.Value("labelFade")))
	if s.unlocking >= 0 {
		dst.DrawText(s.unlock, centerX(w, s.unlock), float64(h)/2+2*glyphH, render.Fade(colorAccent, s.anim.Value("unlockFade")))
	}
	if s.flow.Interactive() {
		dst.DrawText(s.hint, centerX(w, s.hint), float64(h)*0.8, render.Fade(colorDim, s.anim.Value("hint")))
	}
}

// RenderFrame implements display.State
func (s *Summary) RenderFrame(dt float64, dst render.Surface) {
	s.flow.Tick(dt)
	s.cues()
	s.chain.Render()
	s.present(dst, s.flow.Visibility())

	if s.flow.TakeReady() {
		if s.ctx.Nav.Pending() == 0 {
			s.log().Warn("summary finished with an empty queue", "screen", s.kind.String())
			s.ctx.Nav.AddStateToQueue(state.KindMainMenu, state.Params{})
		}
		s.ctx.Nav.RequestQueueDrain()
	}
}

// cues plays the victory sound the first time the glow rises above zero
// and the unlock sound when the unlock label starts to appear
func (s *Summary) cues() {
	if !s.victory && s.anim.Value("glow") > 0 {
		s.victory = true
		s.play(sound.CueVictory)
	}
	if s.unlocking >= 0 && !s.unlocked && s.anim.Value("unlockFade") > 0 {
		s.unlocked = true
		s.play(sound.CueUnlock)
	}
}

func (s *Summary) input() {
	if s.flow.Skip() {
		return
	}
	if s.flow.Advance() {
		s.play(sound.CueConfirm)
	}
}

// ButtonPressed implements display.State
func (s *Summary) ButtonPressed(b display.Button) {
	switch b {
	case display.ButtonConfirm, display.ButtonSkip, display.ButtonBack:
		s.input()
	}
}

// MousePressed implements display.State
func (s *Summary) MousePressed(b display.MouseButton, _, _ int) {
	if b == display.MouseLeft {
		s.input()
	}
}

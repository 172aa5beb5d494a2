package screens

import (
	"math"

	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
	"github.com/younwookim/screenflow/internal/domain/sound"
)

// GameComplete is shown after the final boss. It continues to the credits.
type GameComplete struct {
	base
	flow  *flow
	anim  *ticker.Choreography
	title string
	hint  string
}

// NewGameComplete creates the victory screen. Params: fade-in.
func NewGameComplete(ctx *display.Context, params state.Params) *GameComplete {
	s := &GameComplete{base: newBase(ctx, state.KindGameComplete, params)}
	t := s.timings()

	s.acquireFont(fontPath)
	s.title = s.text("complete_title", nil)
	s.hint = s.text("summary_continue", nil)

	s.anim = ticker.NewChoreography().
		Add("title", ticker.NewLinear(0, 1, t.Complete.Title, ticker.EaseOutBounce)).
		Add("fireworks", ticker.NewRepeating(0, 1, t.Complete.Fireworks, ticker.WaveTriangle))
	s.flow = newFlow(fadeInFor(params, t.FadeIn), s.anim, t.FadeOut)
	s.flow.onEnter = func(p Phase) {
		if p == PhasePrimary {
			s.play(sound.CueVictory)
		}
	}

	s.chain = newMenuChain(ctx, func(dst render.Surface) { dst.Fill(colorMenuBg) }, s.drawContent)
	return s
}

func (s *GameComplete) drawContent(dst render.Surface) {
	w, h := dst.Size()
	burst := s.anim.Value("fireworks")
	for i := 0; i < 6; i++ {
		angle := float64(i) * math.Pi / 3
		r := 20 + 40*burst
		x := float64(w)/2 + math.Cos(angle)*r
		y := float64(h)/3 + math.Sin(angle)*r
		dst.FillRect(x, y, 3, 3, render.Fade(colorAccent, 1-burst))
	}
	y := float64(h)/3*s.anim.Value("title") - glyphH/2
	dst.DrawText(s.title, centerX(w, s.title), y, colorAccent)
	if s.flow.Interactive() {
		dst.DrawText(s.hint, centerX(w, s.hint), float64(h)*0.8, colorDim)
	}
}

// RenderFrame implements display.State
func (s *GameComplete) RenderFrame(dt float64, dst render.Surface) {
	s.flow.Tick(dt)
	s.chain.Render()
	s.present(dst, s.flow.Visibility())

	if s.flow.TakeReady() {
		s.ctx.Nav.Replace(state.KindCredits, state.Params{})
	}
}

// ButtonPressed implements display.State
func (s *GameComplete) ButtonPressed(b display.Button) {
	if b != display.ButtonConfirm && b != display.ButtonSkip {
		return
	}
	if s.flow.Skip() {
		return
	}
	if s.flow.Advance() {
		s.play(sound.CueConfirm)
	}
}

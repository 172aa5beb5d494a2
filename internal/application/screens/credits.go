package screens

import (
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
)

// Credits scrolls the credit lines once and returns to the main menu.
// Any input skips to the end.
type Credits struct {
	base
	flow   *flow
	anim   *ticker.Choreography
	lines  []string
	height float64
}

// NewCredits creates the credits roll. Params: fade-in.
func NewCredits(ctx *display.Context, params state.Params) *Credits {
	s := &Credits{base: newBase(ctx, state.KindCredits, params)}
	t := s.timings()

	s.acquireFont(fontPath)
	for _, id := range t.Credits.Lines {
		s.lines = append(s.lines, s.text(id, nil))
	}
	s.height = float64(len(s.lines)) * t.Credits.LineHeight

	// scroll runs from just below the screen until the last line has left
	// the top
	distance := float64(ctx.Height) + s.height
	s.anim = ticker.NewChoreography().
		Add("scroll", ticker.NewLinear(0, distance, distance/t.Credits.ScrollSpeed, ticker.EaseLinear))
	s.flow = newFlow(fadeInFor(params, t.FadeIn), s.anim, t.FadeOut)
	s.flow.autoAdvance = true

	s.chain = newMenuChain(ctx, func(dst render.Surface) { dst.Fill(colorBlack) }, s.drawContent)
	return s
}

func (s *Credits) drawContent(dst render.Surface) {
	w, h := dst.Size()
	lh := s.timings().Credits.LineHeight
	top := float64(h) - s.anim.Value("scroll")
	for i, line := range s.lines {
		y := top + float64(i)*lh
		if y < -lh || y > float64(h) {
			continue
		}
		c := colorText
		if i == 0 {
			c = colorAccent
		}
		dst.DrawText(line, centerX(w, line), y, c)
	}
}

// RenderFrame implements display.State
func (s *Credits) RenderFrame(dt float64, dst render.Surface) {
	s.flow.Tick(dt)
	s.chain.Render()
	s.present(dst, s.flow.Visibility())

	if s.flow.TakeReady() {
		s.ctx.Nav.Replace(state.KindMainMenu, state.Params{})
	}
}

// ButtonPressed implements display.State
func (s *Credits) ButtonPressed(display.Button) {
	s.flow.Skip()
}

// MousePressed implements display.State
func (s *Credits) MousePressed(display.MouseButton, int, int) {
	s.flow.Skip()
}

package screens

import (
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
	"github.com/younwookim/screenflow/internal/domain/simulation"
	"github.com/younwookim/screenflow/internal/domain/sound"
)

const (
	pauseResume = iota
	pauseRetire
	pauseQuit
)

// InGamePause is the overlay installed over a retained gameplay screen.
// It draws the backdrop's last frame dimmed. Resume reinstates the
// backdrop; quitting destroys it and drains to the main menu.
type InGamePause struct {
	base
	flow  *flow
	anim  *ticker.Choreography
	menu  *menu
	title string

	// leaving is set once the backdrop restore has been requested; the
	// overlay ignores the rest of the frame's input
	leaving bool
}

// NewInGamePause creates the pause overlay. Params: fade-in.
func NewInGamePause(ctx *display.Context, params state.Params) *InGamePause {
	s := &InGamePause{base: newBase(ctx, state.KindInGamePause, params)}
	t := s.timings()

	s.acquireFont(fontPath)
	s.title = s.text("pause_title", nil)
	s.menu = newMenu([]string{
		s.text("pause_resume", nil),
		s.text("pause_retire", nil),
		s.text("pause_quit", nil),
	}, float64(ctx.Height)/2)

	s.anim = ticker.NewChoreography().
		Add("cursor", ticker.NewRepeating(0, 1, t.Menu.CursorPulse, ticker.WaveSine))
	s.flow = newFlow(fadeInFor(params, t.Pause.DimTime), s.anim, t.FadeOut)

	s.chain = newMenuChain(ctx, s.drawBackdrop, s.drawContent)
	return s
}

// drawBackdrop draws the retained screen's last frame, dimmed
func (s *InGamePause) drawBackdrop(dst render.Surface) {
	dst.Fill(colorBlack)
	if snap, ok := s.ctx.Nav.Backdrop().(display.Snapshotter); ok {
		if last := snap.LastFrame(); last != nil {
			dst.Composite(last, render.Opaque)
		}
	}
	dim := s.timings().Pause.Dim
	if s.flow.Phase() == PhaseFadingIn {
		dim *= s.flow.Visibility()
	}
	w, h := dst.Size()
	dst.FillRect(0, 0, float64(w), float64(h), render.Fade(colorBlack, dim))
}

func (s *InGamePause) drawContent(dst render.Surface) {
	w, h := dst.Size()
	s.menu.top = float64(h) / 2
	dst.DrawText(s.title, centerX(w, s.title), float64(h)/4, colorAccent)
	s.menu.draw(dst, 1, s.anim.Value("cursor"))
}

// RenderFrame implements display.State
func (s *InGamePause) RenderFrame(dt float64, dst render.Surface) {
	s.flow.Tick(dt)
	s.chain.Render()
	dst.Clear()
	dst.Composite(s.chain.Final().Surface(), render.Opaque)
	if s.flow.Phase() >= PhaseFadingOut {
		s.fadeOver(dst, s.flow.Visibility())
	}

	if s.flow.TakeReady() {
		s.ctx.Nav.ReleaseBackdrop()
		s.ctx.Nav.AddStateToQueue(state.KindMainMenu, state.Params{})
		s.ctx.Nav.RequestQueueDrain()
	}
}

func (s *InGamePause) resume() {
	s.play(sound.CueBack)
	s.flow.Skip()
	s.restore()
}

func (s *InGamePause) restore() {
	s.leaving = true
	s.ctx.Nav.RestoreBackdrop()
}

func (s *InGamePause) choose() {
	switch s.menu.cursor {
	case pauseResume:
		s.resume()
	case pauseRetire:
		s.play(sound.CueConfirm)
		s.ctx.Sim.Input(simulation.ActionForfeit, true)
		s.restore()
	case pauseQuit:
		s.play(sound.CueConfirm)
		s.flow.Advance()
	}
}

// ButtonPressed implements display.State
func (s *InGamePause) ButtonPressed(b display.Button) {
	if s.leaving || s.flow.Phase() >= PhaseFadingOut {
		return
	}
	switch b {
	case display.ButtonPause, display.ButtonBack:
		s.resume()
		return
	}
	if s.flow.Skip() {
		return
	}
	switch b {
	case display.ButtonUp:
		if s.menu.move(-1) {
			s.play(sound.CueMenuMove)
		}
	case display.ButtonDown:
		if s.menu.move(1) {
			s.play(sound.CueMenuMove)
		}
	case display.ButtonConfirm:
		s.choose()
	}
}

// MouseMoved implements display.State
func (s *InGamePause) MouseMoved(_, y int) {
	if s.leaving || !s.flow.Interactive() {
		return
	}
	if i, ok := s.menu.hit(y); ok && i != s.menu.cursor {
		s.menu.setCursor(i)
		s.play(sound.CueMenuMove)
	}
}

// MousePressed implements display.State
func (s *InGamePause) MousePressed(b display.MouseButton, _, y int) {
	if b != display.MouseLeft || s.leaving || s.flow.Phase() >= PhaseFadingOut {
		return
	}
	s.flow.Skip()
	if i, ok := s.menu.hit(y); ok {
		s.menu.setCursor(i)
		s.choose()
	}
}

package screens

import (
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
	"github.com/younwookim/screenflow/internal/domain/asset"
	"github.com/younwookim/screenflow/internal/domain/sound"
)

const (
	mainPlay = iota
	mainCredits
	mainQuit
)

// MainMenu is the title screen
type MainMenu struct {
	base
	flow  *flow
	anim  *ticker.Choreography
	menu  *menu
	bg    asset.Handle
	title string
}

// NewMainMenu creates the title screen. Params: fade-in flag only.
func NewMainMenu(ctx *display.Context, params state.Params) *MainMenu {
	s := &MainMenu{base: newBase(ctx, state.KindMainMenu, params)}
	t := s.timings()

	s.bg = s.acquireTexture("textures/menu_bg.png")
	s.acquireFont(fontPath)
	s.title = s.text("title", nil)

	s.menu = newMenu([]string{
		s.text("menu_play", nil),
		s.text("menu_credits", nil),
		s.text("menu_quit", nil),
	}, float64(ctx.Height)/2)

	s.anim = ticker.NewChoreography().
		Add("items", ticker.NewFade(t.Menu.ItemPopIn*float64(len(s.menu.labels)))).
		Add("cursor", ticker.NewRepeating(0, 1, t.Menu.CursorPulse, ticker.WaveSine))
	s.flow = newFlow(fadeInFor(params, t.FadeIn), s.anim, t.FadeOut)

	s.chain = newMenuChain(ctx, s.drawBackground, s.drawContent)
	return s
}

func (s *MainMenu) drawBackground(dst render.Surface) {
	dst.Fill(colorMenuBg)
	s.drawTexture(dst, s.bg, 1, 0)
}

func (s *MainMenu) drawContent(dst render.Surface) {
	w, h := dst.Size()
	s.menu.top = float64(h) / 2
	dst.DrawText(s.title, centerX(w, s.title), float64(h)/4, colorAccent)
	s.menu.draw(dst, s.anim.Value("items"), s.anim.Value("cursor"))
}

// RenderFrame implements display.State
func (s *MainMenu) RenderFrame(dt float64, dst render.Surface) {
	s.flow.Tick(dt)
	s.chain.Render()
	s.present(dst, s.flow.Visibility())

	if s.flow.TakeReady() {
		switch s.menu.cursor {
		case mainPlay:
			s.ctx.Nav.Replace(state.KindWorldSelect, state.Params{})
		case mainCredits:
			s.ctx.Nav.Replace(state.KindCredits, state.Params{})
		case mainQuit:
			if s.ctx.Quit != nil {
				s.ctx.Quit()
			}
		}
	}
}

// ButtonPressed implements display.State
func (s *MainMenu) ButtonPressed(b display.Button) {
	if s.flow.Skip() {
		return
	}
	if !s.flow.Interactive() {
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
	case display.ButtonBack:
		if s.menu.setCursor(mainQuit) {
			s.play(sound.CueBack)
		}
	case display.ButtonConfirm:
		s.play(sound.CueConfirm)
		s.flow.Advance()
	}
}

// MouseMoved implements display.State
func (s *MainMenu) MouseMoved(_, y int) {
	if !s.flow.Interactive() {
		return
	}
	if i, ok := s.menu.hit(y); ok && i != s.menu.cursor {
		s.menu.setCursor(i)
		s.play(sound.CueMenuMove)
	}
}

// MousePressed implements display.State
func (s *MainMenu) MousePressed(b display.MouseButton, _, y int) {
	if b != display.MouseLeft {
		return
	}
	if s.flow.Skip() || !s.flow.Interactive() {
		return
	}
	if i, ok := s.menu.hit(y); ok {
		s.menu.setCursor(i)
		s.play(sound.CueConfirm)
		s.flow.Advance()
	}
}

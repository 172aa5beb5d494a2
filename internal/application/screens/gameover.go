package screens

import (
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
	"github.com/younwookim/screenflow/internal/domain/sound"
)

const (
	gameOverRetry = iota
	gameOverMenu
)

// GameOver offers a retry of the lost level or a return to the main menu
type GameOver struct {
	base
	flow  *flow
	anim  *ticker.Choreography
	menu  *menu
	world int
	level int
	title string
}

// NewGameOver creates the game over screen. Params: world and level
// (required, the level to retry), fade-in.
func NewGameOver(ctx *display.Context, params state.Params) *GameOver {
	s := &GameOver{base: newBase(ctx, state.KindGameOver, params)}
	t := s.timings()

	s.world, s.level = s.worldLevel()
	s.acquireFont(fontPath)
	s.title = s.text("gameover_title", nil)
	s.menu = newMenu([]string{
		s.text("gameover_retry", nil),
		s.text("gameover_menu", nil),
	}, float64(ctx.Height)/2+glyphH)

	s.anim = ticker.NewChoreography().
		Add("drop", ticker.NewLinear(-1, 0, t.GameOver.Drop, ticker.EaseOutBounce)).
		Add("cursor", ticker.NewRepeating(0, 1, t.Menu.CursorPulse, ticker.WaveSine))
	s.flow = newFlow(fadeInFor(params, t.FadeIn), s.anim, t.FadeOut)
	s.flow.onEnter = func(p Phase) {
		if p == PhasePrimary {
			s.play(sound.CueGameOver)
		}
	}
	if s.flow.Phase() == PhasePrimary {
		s.play(sound.CueGameOver)
	}

	s.chain = newMenuChain(ctx, func(dst render.Surface) { dst.Fill(colorBlack) }, s.drawContent)
	return s
}

func (s *GameOver) drawContent(dst render.Surface) {
	w, h := dst.Size()
	s.menu.top = float64(h)/2 + glyphH
	y := float64(h)/3 + s.anim.Value("drop")*float64(h)/3
	dst.DrawText(s.title, centerX(w, s.title), y, colorDanger)
	if s.flow.Phase() >= PhaseWaitingForInput {
		s.menu.draw(dst, 1, s.anim.Value("cursor"))
	}
}

// RenderFrame implements display.State
func (s *GameOver) RenderFrame(dt float64, dst render.Surface) {
	s.flow.Tick(dt)
	s.chain.Render()
	s.present(dst, s.flow.Visibility())

	if s.flow.TakeReady() {
		if s.menu.cursor == gameOverRetry {
			s.ctx.Nav.Replace(state.KindLevelStart, state.Params{}.WithWorld(s.world).WithLevel(s.level))
			return
		}
		s.ctx.Nav.Replace(state.KindMainMenu, state.Params{})
	}
}

// ButtonPressed implements display.State
func (s *GameOver) ButtonPressed(b display.Button) {
	if s.flow.Skip() || !s.flow.Interactive() {
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
		s.menu.setCursor(gameOverMenu)
		s.play(sound.CueBack)
		s.flow.Advance()
	case display.ButtonConfirm:
		s.play(sound.CueConfirm)
		s.flow.Advance()
	}
}

// MousePressed implements display.State
func (s *GameOver) MousePressed(b display.MouseButton, _, y int) {
	if b != display.MouseLeft || s.flow.Skip() || !s.flow.Interactive() {
		return
	}
	if i, ok := s.menu.hit(y); ok {
		s.menu.setCursor(i)
		s.play(sound.CueConfirm)
		s.flow.Advance()
	}
}

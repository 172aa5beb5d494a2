package screens

import (
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
	"github.com/younwookim/screenflow/internal/domain/sound"
)

// LevelStart is the title card shown before a level. It advances on its
// own once the title has been held; any input skips ahead.
type LevelStart struct {
	base
	flow  *flow
	anim  *ticker.Choreography
	world int
	level int
	boss  bool

	title    string
	subtitle string
}

// NewLevelStart creates the title card. Params: world and level (required).
func NewLevelStart(ctx *display.Context, params state.Params) *LevelStart {
	s := &LevelStart{base: newBase(ctx, state.KindLevelStart, params)}
	t := s.timings()

	s.world, s.level = s.worldLevel()
	s.boss = ctx.Catalog.IsBossLevel(s.world, s.level)
	s.acquireFont(fontPath)

	s.title = s.text(ctx.Catalog.Worlds[s.world].Name, nil)
	subtitle := "levelstart_level"
	if s.boss {
		subtitle = "levelstart_boss"
	}
	s.subtitle = s.text(subtitle, map[string]any{"N": s.level + 1})

	s.anim = ticker.NewChoreography().
		Add("title", ticker.NewSequence(
			ticker.NewLinear(-1, 0, t.LevelStart.TitleSlide, ticker.EaseOutBack),
			ticker.NewDelay(t.LevelStart.Hold),
		))
	s.flow = newFlow(fadeInFor(params, t.FadeIn), s.anim, t.FadeOut)
	s.flow.autoAdvance = true
	s.flow.onEnter = func(p Phase) {
		if p == PhasePrimary {
			s.play(sound.CueLevelStart)
		}
	}

	s.chain = newMenuChain(ctx, func(dst render.Surface) { dst.Fill(colorBlack) }, s.drawContent)
	return s
}

func (s *LevelStart) drawContent(dst render.Surface) {
	w, h := dst.Size()
	slide := s.anim.Value("title")
	y := float64(h)/2 - glyphH + slide*float64(h)/2
	dst.DrawText(s.title, centerX(w, s.title), y, colorAccent)
	dst.DrawText(s.subtitle, centerX(w, s.subtitle), y+2*glyphH, colorText)
}

// RenderFrame implements display.State
func (s *LevelStart) RenderFrame(dt float64, dst render.Surface) {
	s.flow.Tick(dt)
	s.chain.Render()
	s.present(dst, s.flow.Visibility())

	if s.flow.TakeReady() {
		next := state.KindInGame
		if s.boss {
			next = state.KindInGameBoss
		}
		s.ctx.Nav.Replace(next, state.Params{}.WithWorld(s.world).WithLevel(s.level))
	}
}

// ButtonPressed implements display.State
func (s *LevelStart) ButtonPressed(display.Button) {
	s.flow.Skip()
}

// MousePressed implements display.State
func (s *LevelStart) MousePressed(display.MouseButton, int, int) {
	s.flow.Skip()
}

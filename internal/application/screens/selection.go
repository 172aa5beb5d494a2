package screens

import (
	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
	"github.com/younwookim/screenflow/internal/domain/asset"
	"github.com/younwookim/screenflow/internal/domain/sound"
	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
)

// Selection is the world select and level select screen. Without a
// selection param the cursor starts on the furthest unlocked entry. With an
// unlocking param that entry fades in as newly unlocked.
type Selection struct {
	base
	flow *flow
	anim *ticker.Choreography
	menu *menu
	bg   asset.Handle

	world     int // level select only
	unlocking int // -1 when nothing is being unlocked
	heading   string

	next       state.Kind
	nextParams state.Params
}

// NewWorldSelect creates the world select screen.
// Params: world (cursor), unlocking (world index), fade-in.
func NewWorldSelect(ctx *display.Context, params state.Params) *Selection {
	s := &Selection{base: newBase(ctx, state.KindWorldSelect, params), unlocking: -1}

	labels := make([]string, ctx.Catalog.WorldCount())
	for i, w := range ctx.Catalog.Worlds {
		labels[i] = s.text(w.Name, nil)
	}
	s.menu = newMenu(labels, float64(ctx.Height)/3)
	for i := range labels {
		s.menu.enabled[i] = ctx.Progress.IsWorldUnlocked(i)
	}

	cursor, _ := ctx.Progress.FurthestUnlocked()
	if w, ok := params.World(); ok {
		cursor = w
	}
	if u, ok := params.Unlocking(); ok && u >= 0 && u < len(labels) {
		s.unlocking = u
		cursor = u
	}
	s.heading = s.text("select_world", nil)
	s.init(cursor)
	return s
}

// NewLevelSelect creates the level select screen.
// Params: world (required), level (cursor), unlocking (level index), fade-in.
func NewLevelSelect(ctx *display.Context, params state.Params) *Selection {
	s := &Selection{base: newBase(ctx, state.KindLevelSelect, params), unlocking: -1}

	world, ok := params.World()
	if !invariant.Check(ok && ctx.Catalog.Contains(world, 0), "level select needs a world", "params", params.String()) {
		world, _ = ctx.Progress.FurthestUnlocked()
	}
	s.world = world

	n := ctx.Catalog.LevelCount(world)
	labels := make([]string, n)
	for i := range labels {
		id := "select_level_n"
		if ctx.Catalog.IsBossLevel(world, i) {
			id = "select_level_boss"
		}
		labels[i] = s.text(id, map[string]any{"N": i + 1})
	}
	s.menu = newMenu(labels, float64(ctx.Height)/3)
	for i := range labels {
		s.menu.enabled[i] = ctx.Progress.IsUnlocked(world, i)
	}

	cursor := ctx.Progress.FurthestInWorld(world)
	if l, ok := params.Level(); ok {
		cursor = l
	}
	if u, ok := params.Unlocking(); ok && u >= 0 && u < n {
		s.unlocking = u
		cursor = u
	}
	s.heading = s.text(ctx.Catalog.Worlds[world].Name, nil)
	s.init(cursor)
	return s
}

func (s *Selection) init(cursor int) {
	t := s.timings()
	if !s.menu.setCursor(cursor) {
		s.menu.move(1)
	}

	s.bg = s.acquireTexture("textures/select_bg.png")
	s.acquireFont(fontPath)

	unlock := ticker.NewFade(t.Menu.UnlockFade)
	if s.unlocking < 0 {
		unlock.Finish()
	}
	s.anim = ticker.NewChoreography().
		Add("items", ticker.NewFade(t.Menu.ItemPopIn*float64(len(s.menu.labels)))).
		Add("unlock", unlock).
		Add("cursor", ticker.NewRepeating(0, 1, t.Menu.CursorPulse, ticker.WaveTriangle))
	s.flow = newFlow(fadeInFor(s.params, t.FadeIn), s.anim, t.FadeOut)
	s.flow.onEnter = func(p Phase) {
		if p == PhasePrimary && s.unlocking >= 0 {
			s.play(sound.CueUnlock)
		}
	}
	if s.flow.Phase() == PhasePrimary && s.unlocking >= 0 {
		s.play(sound.CueUnlock)
	}

	s.chain = newMenuChain(s.ctx, s.drawBackground, s.drawContent)
}

func (s *Selection) drawBackground(dst render.Surface) {
	dst.Fill(colorMenuBg)
	s.drawTexture(dst, s.bg, 0.8, 0)
}

func (s *Selection) drawContent(dst render.Surface) {
	w, h := dst.Size()
	s.menu.top = float64(h) / 3
	dst.DrawText(s.heading, centerX(w, s.heading), float64(h)/6, colorAccent)
	s.menu.draw(dst, s.anim.Value("items"), s.anim.Value("cursor"))
	if s.unlocking >= 0 {
		// newly unlocked entry flashes from white into place
		y := s.menu.top + float64(s.unlocking)*s.menu.lineHeight
		label := s.menu.labels[s.unlocking]
		dst.FillRect(0, y-2, float64(w), s.menu.lineHeight, render.Fade(colorAccent, 0.4*(1-s.anim.Value("unlock"))))
		dst.DrawText(label, centerX(w, label), y, render.Fade(colorText, s.anim.Value("unlock")))
	}
}

// Cursor returns the selected index
func (s *Selection) Cursor() int { return s.menu.cursor }

// RenderFrame implements display.State
func (s *Selection) RenderFrame(dt float64, dst render.Surface) {
	s.flow.Tick(dt)
	s.chain.Render()
	s.present(dst, s.flow.Visibility())

	if s.flow.TakeReady() {
		s.ctx.Nav.Replace(s.next, s.nextParams)
	}
}

func (s *Selection) choose() {
	s.play(sound.CueConfirm)
	if s.kind == state.KindWorldSelect {
		s.next = state.KindLevelSelect
		s.nextParams = state.Params{}.WithWorld(s.menu.cursor)
	} else {
		s.next = state.KindLevelStart
		s.nextParams = state.Params{}.WithWorld(s.world).WithLevel(s.menu.cursor)
	}
	s.flow.Advance()
}

func (s *Selection) back() {
	s.play(sound.CueBack)
	if s.kind == state.KindWorldSelect {
		s.next = state.KindMainMenu
		s.nextParams = state.Params{}
	} else {
		s.next = state.KindWorldSelect
		s.nextParams = state.Params{}.WithWorld(s.world)
	}
	s.flow.Advance()
}

// ButtonPressed implements display.State
func (s *Selection) ButtonPressed(b display.Button) {
	if s.flow.Skip() || !s.flow.Interactive() {
		return
	}
	switch b {
	case display.ButtonUp, display.ButtonLeft:
		if s.menu.move(-1) {
			s.play(sound.CueMenuMove)
		}
	case display.ButtonDown, display.ButtonRight:
		if s.menu.move(1) {
			s.play(sound.CueMenuMove)
		}
	case display.ButtonConfirm:
		s.choose()
	case display.ButtonBack:
		s.back()
	}
}

// MouseMoved implements display.State
func (s *Selection) MouseMoved(_, y int) {
	if !s.flow.Interactive() {
		return
	}
	if i, ok := s.menu.hit(y); ok && i != s.menu.cursor {
		s.menu.setCursor(i)
		s.play(sound.CueMenuMove)
	}
}

// MousePressed implements display.State
func (s *Selection) MousePressed(b display.MouseButton, _, y int) {
	if s.flow.Skip() || !s.flow.Interactive() {
		return
	}
	switch b {
	case display.MouseLeft:
		if i, ok := s.menu.hit(y); ok {
			s.menu.setCursor(i)
			s.choose()
		}
	case display.MouseRight:
		s.back()
	}
}

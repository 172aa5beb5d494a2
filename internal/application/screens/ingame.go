package screens

import (
	"fmt"

	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
	"github.com/younwookim/screenflow/internal/domain/asset"
	"github.com/younwookim/screenflow/internal/domain/simulation"
	"github.com/younwookim/screenflow/internal/domain/sound"
)

// parallax is the background scroll factor relative to the camera
const parallax = 0.3

// InGame runs a level. The simulation advances after every frame until the
// level is beaten or lost; the follow-up screen is then queued and a drain
// requested. InGameBoss adds the warning intro and the boss health bar.
type InGame struct {
	base
	anim  *ticker.Choreography
	world int
	level int
	boss  bool

	bg       asset.Handle
	bossTex  asset.Handle
	bossMesh asset.Handle

	ended          bool
	overlayPending bool
	warned         bool
	label          string
	warning        string
}

// NewInGame creates a normal level. Params: world and level (required).
func NewInGame(ctx *display.Context, params state.Params) *InGame {
	return newGameplay(ctx, state.KindInGame, params)
}

// NewInGameBoss creates a boss level. Params: world and level (required).
func NewInGameBoss(ctx *display.Context, params state.Params) *InGame {
	return newGameplay(ctx, state.KindInGameBoss, params)
}

func newGameplay(ctx *display.Context, kind state.Kind, params state.Params) *InGame {
	s := &InGame{base: newBase(ctx, kind, params), boss: kind == state.KindInGameBoss}
	t := s.timings()

	s.world, s.level = s.worldLevel()
	s.bg = s.acquireTexture("textures/game_bg.png")
	s.acquireFont(fontPath)
	if s.boss {
		s.bossTex = s.acquireTexture("textures/boss.png")
		s.bossMesh = s.acquireMesh("meshes/boss.mesh")
		s.warning = s.text("boss_warning", nil)
	}
	s.label = s.text("hud_level", map[string]any{"World": s.world + 1, "N": s.level + 1})

	fade := ticker.NewFade(t.FadeIn)
	if !params.FadeIn() {
		fade.Finish()
	}
	s.anim = ticker.NewChoreography().
		Add("fadeIn", fade).
		Add("shield", ticker.NewRepeating(0.2, 0.6, t.InGame.ShieldPulse, ticker.WaveTriangle))
	if s.boss {
		s.anim.
			Add("warning", ticker.NewDelay(t.InGame.BossIntro)).
			Add("flash", ticker.NewRepeating(0, 1, 0.25, ticker.WaveSquare))
	}

	ctx.Sim.Begin(s.world, s.level, s.boss)

	s.chain = newGameplayChain(ctx, s.drawBackground, s.drawScene, s.drawPost, s.drawGather)
	return s
}

// World returns the level's world index
func (s *InGame) World() int { return s.world }

// Level returns the level index
func (s *InGame) Level() int { return s.level }

func (s *InGame) drawBackground(dst render.Surface) {
	dst.Fill(colorSky)
	cx, _ := s.ctx.Sim.Camera()
	s.drawTexture(dst, s.bg, 1, -cx*parallax)
}

func (s *InGame) drawScene(dst render.Surface) {
	w, h := dst.Size()
	ground := float64(h) * 0.8
	dst.FillRect(0, ground, float64(w), float64(h)-ground, colorGround)
	dst.FillRect(float64(w)/3, ground-16, 10, 16, colorPlayer)
	if s.boss && !s.ctx.Sim.BossDefeated() {
		bx := float64(w) * 0.7
		dst.FillRect(bx, ground-48, 40, 48, colorBoss)
		if s.bossTex.Valid() {
			if tex := s.ctx.Resources.Texture(s.bossTex); tex != nil {
				dst.Composite(tex, render.CompositeOptions{Alpha: 1, OffsetX: bx, OffsetY: ground - 48})
			}
		}
	}
}

// drawPost draws effects that must see the composited scene
func (s *InGame) drawPost(dst render.Surface) {
	if !s.ctx.Sim.Paused() {
		return
	}
	w, h := dst.Size()
	ground := float64(h) * 0.8
	dst.FillRect(float64(w)/3-3, ground-19, 16, 22, render.Fade(colorShield, s.anim.Value("shield")))
}

// drawGather draws screen-space elements that skip world post-processing
func (s *InGame) drawGather(dst render.Surface) {
	w, _ := dst.Size()
	sparks := int(s.ctx.Sim.Elapsed()*4) % 8
	for i := 0; i < sparks; i++ {
		dst.FillRect(float64(w)-12-float64(i)*6, 4, 2, 2, colorAccent)
	}
}

func (s *InGame) drawHUD(dst render.Surface) {
	w, h := dst.Size()
	dst.DrawText(s.label, 4, 4, colorText)
	if !s.boss {
		return
	}
	bar := float64(w) - 40
	dst.FillRect(20, float64(h)-16, bar, 6, colorBar)
	dst.FillRect(20, float64(h)-16, bar*s.ctx.Sim.BossHealth(), 6, colorDanger)
	if !s.anim.Ticker("warning").Done() && s.anim.Value("flash") > 0.5 {
		dst.DrawText(s.warning, centerX(w, s.warning), float64(h)/3, colorDanger)
	}
}

// RenderFrame implements display.State
func (s *InGame) RenderFrame(dt float64, dst render.Surface) {
	// a pause requested this frame takes over before the outcome is judged
	paused := s.overlayPending
	s.overlayPending = false
	if s.boss && !s.warned {
		s.warned = true
		s.play(sound.CueBossWarning)
	}
	s.anim.Tick(dt)
	if !paused {
		s.checkOutcome()
	}

	cx, cy := s.ctx.Sim.Camera()
	s.ctx.Audio.SetListenerPosition(cx, cy)

	s.chain.Render()
	s.present(dst, 1)
	s.drawHUD(dst)
	s.fadeOver(dst, s.anim.Value("fadeIn"))
}

func (s *InGame) checkOutcome() {
	if s.ended {
		return
	}
	params := state.Params{}.WithWorld(s.world).WithLevel(s.level)
	switch {
	case s.ctx.Sim.PlayerDead():
		s.ctx.Nav.AddStateToQueue(state.KindGameOver, params)
	case s.boss && s.ctx.Sim.BossDefeated(), !s.boss && s.ctx.Sim.LevelComplete():
		s.ctx.Nav.AddStateToQueue(state.KindLevelEnd, params)
	default:
		return
	}
	s.ended = true
	s.anim.FastForward()
	s.log().Info("level ended",
		"world", s.world,
		"level", s.level,
		"dead", s.ctx.Sim.PlayerDead(),
		"time", fmt.Sprintf("%.2f", s.ctx.Sim.Elapsed()),
	)
	s.ctx.Nav.RequestQueueDrain()
}

// AllowsGameModelUpdates implements display.State
func (s *InGame) AllowsGameModelUpdates() bool { return !s.ended }

// LastFrame implements display.Snapshotter
func (s *InGame) LastFrame() render.Surface {
	return s.chain.Final().Surface()
}

func (s *InGame) openPause() {
	if s.ended || s.overlayPending {
		return
	}
	s.overlayPending = true
	s.releaseControls()
	s.play(sound.CuePause)
	s.ctx.Nav.Overlay(state.KindInGamePause, state.Params{}.WithWorld(s.world).WithLevel(s.level))
}

// releaseControls drops held inputs so nothing stays pressed under the overlay
func (s *InGame) releaseControls() {
	s.ctx.Sim.Input(simulation.ActionMoveLeft, false)
	s.ctx.Sim.Input(simulation.ActionMoveRight, false)
	s.ctx.Sim.Input(simulation.ActionFire, false)
}

func (s *InGame) control(b display.Button, pressed bool) {
	switch b {
	case display.ButtonLeft:
		s.ctx.Sim.Input(simulation.ActionMoveLeft, pressed)
	case display.ButtonRight:
		s.ctx.Sim.Input(simulation.ActionMoveRight, pressed)
	case display.ButtonConfirm:
		s.ctx.Sim.Input(simulation.ActionFire, pressed)
	}
}

// ButtonPressed implements display.State
func (s *InGame) ButtonPressed(b display.Button) {
	if s.ended {
		return
	}
	if b == display.ButtonPause || b == display.ButtonBack {
		s.openPause()
		return
	}
	s.control(b, true)
}

// ButtonReleased implements display.State
func (s *InGame) ButtonReleased(b display.Button) {
	s.control(b, false)
}

// MousePressed implements display.State
func (s *InGame) MousePressed(b display.MouseButton, _, _ int) {
	if b == display.MouseLeft && !s.ended {
		s.ctx.Sim.Input(simulation.ActionFire, true)
	}
}

// MouseReleased implements display.State
func (s *InGame) MouseReleased(b display.MouseButton, _, _ int) {
	if b == display.MouseLeft {
		s.ctx.Sim.Input(simulation.ActionFire, false)
	}
}

// WindowFocus implements display.State. Losing focus opens the pause menu.
func (s *InGame) WindowFocus(focused bool) {
	if !focused {
		s.openPause()
	}
}

// Close implements display.State
func (s *InGame) Close() {
	if s.boss {
		s.ctx.Audio.Stop(sound.CueBossWarning)
	}
	s.base.Close()
}

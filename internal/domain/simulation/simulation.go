// Package simulation is a scripted stand-in for the gameplay model.
//
// A level is beaten after its configured duration, the player dies at a
// scripted time or on forfeit, and a boss loses health while the player
// fires. It knows nothing about screens.
package simulation

import "math"

// Action is a player command forwarded from gameplay screens
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionFire
	ActionForfeit
)

// Level is the script for one level
type Level struct {
	Duration float64
	Boss     bool
	// DieAt kills the player at this time when > 0
	DieAt float64
}

// LevelSource looks up the script of (world, level)
type LevelSource func(world, level int) (Level, bool)

const (
	moveSpeed = 90.0 // camera pixels per second
	// extra boss health lost per second while firing; an idle player still
	// drains the boss over the level duration
	fireDamage = 0.25
)

// Scripted implements the simulation collaborator
type Scripted struct {
	levels LevelSource

	level   Level
	active  bool
	elapsed float64
	pending float64 // dt accumulated by Tick, applied by UpdateState

	moveLeft, moveRight bool
	firing              bool
	forfeit             bool

	cameraX   float64
	bossHP    float64
	complete  bool
	dead      bool
	defeated  bool
	pauseLeft float64
}

// New creates a simulation reading level scripts from levels
func New(levels LevelSource) *Scripted {
	return &Scripted{levels: levels}
}

// Begin resets the simulation for (world, level). Unknown levels fall back
// to a short default script.
func (s *Scripted) Begin(world, level int, boss bool) {
	lvl, ok := s.levels(world, level)
	if !ok {
		lvl = Level{Duration: 10, Boss: boss}
	}
	lvl.Boss = lvl.Boss || boss
	*s = Scripted{levels: s.levels, level: lvl, active: true, bossHP: 1}
	if lvl.Boss {
		// brief freeze while the boss warning plays
		s.pauseLeft = 0.5
	}
}

// Input records a player command
func (s *Scripted) Input(a Action, pressed bool) {
	switch a {
	case ActionMoveLeft:
		s.moveLeft = pressed
	case ActionMoveRight:
		s.moveRight = pressed
	case ActionFire:
		s.firing = pressed
	case ActionForfeit:
		if pressed {
			s.forfeit = true
		}
	}
}

// Tick accumulates frame time
func (s *Scripted) Tick(dt float64) {
	if dt > 0 {
		s.pending += dt
	}
}

// UpdateState applies the accumulated time to the script
func (s *Scripted) UpdateState() {
	dt := s.pending
	s.pending = 0
	if !s.active || s.complete || s.dead {
		return
	}
	if s.pauseLeft > 0 {
		s.pauseLeft = math.Max(0, s.pauseLeft-dt)
		return
	}

	s.elapsed += dt
	if s.moveLeft {
		s.cameraX -= moveSpeed * dt
	}
	if s.moveRight {
		s.cameraX += moveSpeed * dt
	}

	if s.forfeit || (s.level.DieAt > 0 && s.elapsed >= s.level.DieAt) {
		s.dead = true
		return
	}

	if s.level.Boss {
		drain := dt / s.level.Duration
		if s.firing {
			drain += fireDamage * dt
		}
		s.bossHP = math.Max(0, s.bossHP-drain)
		if s.bossHP <= 1e-9 {
			s.bossHP = 0
			s.defeated = true
			s.complete = true
		}
		return
	}

	if s.elapsed >= s.level.Duration {
		s.complete = true
	}
}

// Paused reports whether the script is frozen (boss intro)
func (s *Scripted) Paused() bool { return s.pauseLeft > 0 }

// LevelComplete reports whether the level was beaten
func (s *Scripted) LevelComplete() bool { return s.complete }

// PlayerDead reports whether the player died
func (s *Scripted) PlayerDead() bool { return s.dead }

// BossDefeated reports whether the boss reached zero health
func (s *Scripted) BossDefeated() bool { return s.defeated }

// BossHealth returns the boss health in [0,1]
func (s *Scripted) BossHealth() float64 { return s.bossHP }

// Camera returns the camera position
func (s *Scripted) Camera() (float64, float64) { return s.cameraX, 0 }

// Elapsed returns the level time
func (s *Scripted) Elapsed() float64 { return s.elapsed }

// Progress returns the level completion ratio in [0,1]
func (s *Scripted) Progress() float64 {
	if s.level.Boss {
		return 1 - s.bossHP
	}
	if s.level.Duration <= 0 {
		return 0
	}
	return math.Min(1, s.elapsed/s.level.Duration)
}

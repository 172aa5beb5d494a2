package state

import (
	"fmt"
	"strings"
)

// Params carries the optional arguments a screen needs at construction.
//
// The zero value has no fields set. Params is a value type; the With*
// methods return modified copies so a request can never be altered after
// it was queued.
type Params struct {
	world     int
	level     int
	unlocking int
	fadeIn    bool

	hasWorld     bool
	hasLevel     bool
	hasUnlocking bool
	hasFadeIn    bool
}

// WithWorld returns a copy with the world index set
func (p Params) WithWorld(world int) Params {
	p.world = world
	p.hasWorld = true
	return p
}

// WithLevel returns a copy with the level index set
func (p Params) WithLevel(level int) Params {
	p.level = level
	p.hasLevel = true
	return p
}

// WithUnlocking returns a copy with the index being unlocked set
func (p Params) WithUnlocking(index int) Params {
	p.unlocking = index
	p.hasUnlocking = true
	return p
}

// WithFadeIn returns a copy with the fade-in flag set
func (p Params) WithFadeIn(fade bool) Params {
	p.fadeIn = fade
	p.hasFadeIn = true
	return p
}

// World returns the world index and whether it was provided
func (p Params) World() (int, bool) { return p.world, p.hasWorld }

// Level returns the level index and whether it was provided
func (p Params) Level() (int, bool) { return p.level, p.hasLevel }

// Unlocking returns the index being unlocked and whether it was provided
func (p Params) Unlocking() (int, bool) { return p.unlocking, p.hasUnlocking }

// FadeIn returns the fade-in flag, defaulting to true when unset
func (p Params) FadeIn() bool {
	if !p.hasFadeIn {
		return true
	}
	return p.fadeIn
}

// String formats only the fields that were set
func (p Params) String() string {
	var parts []string
	if p.hasWorld {
		parts = append(parts, fmt.Sprintf("world=%d", p.world))
	}
	if p.hasLevel {
		parts = append(parts, fmt.Sprintf("level=%d", p.level))
	}
	if p.hasUnlocking {
		parts = append(parts, fmt.Sprintf("unlocking=%d", p.unlocking))
	}
	if p.hasFadeIn {
		parts = append(parts, fmt.Sprintf("fadeIn=%t", p.fadeIn))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

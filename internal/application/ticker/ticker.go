// Package ticker provides frame-stepped animation timers.
//
// A Ticker is advanced once per frame by the owning screen. Non-repeating
// tickers reach a terminal state and report done from then on; screens
// combine them in a Choreography to decide when a transition is allowed.
// Nothing here suspends: completion is always polled.
package ticker

import (
	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
)

// epsilon absorbs float drift when dt values are summed to a duration
const epsilon = 1e-9

// Ticker is a time-driven interpolator polled once per frame
type Ticker interface {
	// Tick advances elapsed time by dt and reports whether the ticker is done.
	// Once done, further ticks do not advance and keep returning true.
	Tick(dt float64) bool
	// Value returns the current interpolated output.
	Value() float64
	// Done reports whether the terminal value was reached.
	Done() bool
	// Reset rewinds to the start.
	Reset()
	// Finish jumps to the terminal value.
	Finish()
	// Repeats reports whether the ticker cycles forever. Repeating tickers
	// never report done and are excluded from completion checks.
	Repeats() bool
}

// Linear interpolates from one value to another over a fixed duration
type Linear struct {
	from, to float64
	duration float64
	ease     Easing
	elapsed  float64
	value    float64
	done     bool
}

// NewLinear creates a ticker moving from -> to over duration seconds.
// A nil easing means linear.
func NewLinear(from, to, duration float64, ease Easing) *Linear {
	if !invariant.Check(duration >= 0, "ticker duration must not be negative", "duration", duration) {
		duration = 0
	}
	if ease == nil {
		ease = EaseLinear
	}
	return &Linear{from: from, to: to, duration: duration, ease: ease, value: from}
}

// NewFade creates a 0 -> 1 ticker
func NewFade(duration float64) *Linear {
	return NewLinear(0, 1, duration, EaseLinear)
}

// NewDelay creates a ticker that only measures time
func NewDelay(duration float64) *Linear {
	return NewLinear(0, 0, duration, EaseLinear)
}

func (l *Linear) Tick(dt float64) bool {
	if l.done {
		return true
	}
	l.elapsed += clampDT(dt)
	if l.elapsed >= l.duration-epsilon {
		l.Finish()
		return true
	}
	l.value = l.from + (l.to-l.from)*l.ease(l.elapsed/l.duration)
	return false
}

func (l *Linear) Value() float64 { return l.value }

func (l *Linear) Done() bool { return l.done }

func (l *Linear) Repeats() bool { return false }

// Elapsed returns the time accumulated so far
func (l *Linear) Elapsed() float64 { return l.elapsed }

// Progress returns elapsed/duration in [0,1]
func (l *Linear) Progress() float64 {
	if l.duration == 0 {
		if l.done {
			return 1
		}
		return 0
	}
	return l.elapsed / l.duration
}

func (l *Linear) Reset() {
	l.elapsed = 0
	l.value = l.from
	l.done = false
}

func (l *Linear) Finish() {
	l.elapsed = l.duration
	l.value = l.to
	l.done = true
}

func clampDT(dt float64) float64 {
	if !invariant.Check(dt >= 0, "tick dt must not be negative", "dt", dt) {
		return 0
	}
	return dt
}

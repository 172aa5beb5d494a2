package screens

import (
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/application/ticker"
)

// Phase is the position of a scripted screen in its fade/choreography cycle
type Phase int

const (
	PhaseFadingIn Phase = iota
	PhasePrimary
	PhaseWaitingForInput
	PhaseFadingOut
	PhaseReadyToTransition
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseFadingIn:
		return "FadingIn"
	case PhasePrimary:
		return "PrimaryChoreography"
	case PhaseWaitingForInput:
		return "WaitingForInput"
	case PhaseFadingOut:
		return "FadingOut"
	case PhaseReadyToTransition:
		return "ReadyToTransition"
	default:
		return "Unknown"
	}
}

// flow steps a screen through
// FadingIn -> Primary -> WaitingForInput -> FadingOut -> ReadyToTransition.
//
// FadingIn ends on the tick the fade-in completes. Primary ends once the
// primary choreography is ready. WaitingForInput only ends on Advance,
// unless autoAdvance is set. ReadyToTransition is terminal.
type flow struct {
	phase       Phase
	fadeIn      *ticker.Linear
	primary     *ticker.Choreography
	fadeOut     *ticker.Linear
	autoAdvance bool

	// onEnter runs once for every phase entered after construction
	onEnter func(Phase)
	ready   bool
}

// newFlow creates a flow. A nil fade-in starts directly in Primary.
func newFlow(fadeIn *ticker.Linear, primary *ticker.Choreography, fadeOut float64) *flow {
	f := &flow{
		phase:   PhaseFadingIn,
		fadeIn:  fadeIn,
		primary: primary,
		fadeOut: ticker.NewFade(fadeOut),
	}
	if fadeIn == nil {
		f.fadeIn = ticker.NewFade(0)
		f.fadeIn.Finish()
		f.phase = PhasePrimary
	}
	return f
}

// Phase returns the current phase
func (f *flow) Phase() Phase { return f.phase }

func (f *flow) enter(p Phase) {
	f.phase = p
	if p == PhaseReadyToTransition {
		f.ready = true
	}
	if f.onEnter != nil {
		f.onEnter(p)
	}
}

// Tick advances the current phase's tickers by dt. At most one phase
// boundary is crossed per tick.
func (f *flow) Tick(dt float64) {
	switch f.phase {
	case PhaseFadingIn:
		if f.fadeIn.Tick(dt) {
			f.enter(PhasePrimary)
		}
	case PhasePrimary:
		if f.primary.Tick(dt) {
			f.enter(PhaseWaitingForInput)
		}
	case PhaseWaitingForInput:
		f.primary.Tick(dt)
		if f.autoAdvance {
			f.enter(PhaseFadingOut)
		}
	case PhaseFadingOut:
		f.primary.Tick(dt)
		if f.fadeOut.Tick(dt) {
			f.enter(PhaseReadyToTransition)
		}
	}
}

// Skip fast-forwards the fade-in and every primary ticker and moves to
// WaitingForInput. It reports whether the input was consumed.
func (f *flow) Skip() bool {
	if f.phase != PhaseFadingIn && f.phase != PhasePrimary {
		return false
	}
	f.fadeIn.Finish()
	f.primary.FastForward()
	if f.phase == PhaseFadingIn {
		f.enter(PhasePrimary)
	}
	f.enter(PhaseWaitingForInput)
	return true
}

// Advance starts the fade-out. Only valid while waiting for input.
func (f *flow) Advance() bool {
	if f.phase != PhaseWaitingForInput {
		return false
	}
	f.enter(PhaseFadingOut)
	return true
}

// Interactive reports whether the screen accepts menu input
func (f *flow) Interactive() bool { return f.phase == PhaseWaitingForInput }

// Visibility is the content opacity implied by the fades
func (f *flow) Visibility() float64 {
	switch f.phase {
	case PhaseFadingIn:
		return f.fadeIn.Value()
	case PhaseFadingOut:
		return 1 - f.fadeOut.Value()
	case PhaseReadyToTransition:
		return 0
	default:
		return 1
	}
}

// TakeReady reports ReadyToTransition exactly once
func (f *flow) TakeReady() bool {
	if !f.ready {
		return false
	}
	f.ready = false
	return true
}

// fadeInFor returns a fade-in of d seconds, or nil when params turn it off
func fadeInFor(params state.Params, d float64) *ticker.Linear {
	if !params.FadeIn() {
		return nil
	}
	return ticker.NewFade(d)
}

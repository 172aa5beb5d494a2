package ticker

import (
	"math"

	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
)

// Wave selects the shape of a repeating ticker
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSquare
)

// Repeating oscillates between min and max forever. It is used for ambient
// flashing and pulsing and never gates a transition.
type Repeating struct {
	min, max float64
	period   float64
	wave     Wave
	phase    float64
	value    float64
}

// NewRepeating creates an oscillator with the given period in seconds
func NewRepeating(min, max, period float64, wave Wave) *Repeating {
	if !invariant.Check(period > 0, "repeating ticker period must be positive", "period", period) {
		period = 1
	}
	r := &Repeating{min: min, max: max, period: period, wave: wave}
	r.value = r.sample()
	return r
}

// Tick advances the phase. It never reports done.
func (r *Repeating) Tick(dt float64) bool {
	r.phase = math.Mod(r.phase+clampDT(dt)/r.period, 1)
	r.value = r.sample()
	return false
}

func (r *Repeating) sample() float64 {
	var f float64
	switch r.wave {
	case WaveTriangle:
		f = 1 - math.Abs(2*r.phase-1)
	case WaveSquare:
		if r.phase < 0.5 {
			f = 1
		}
	default:
		f = 0.5 - 0.5*math.Cos(2*math.Pi*r.phase)
	}
	return r.min + (r.max-r.min)*f
}

func (r *Repeating) Value() float64 { return r.value }

func (r *Repeating) Done() bool { return false }

func (r *Repeating) Repeats() bool { return true }

func (r *Repeating) Reset() {
	r.phase = 0
	r.value = r.sample()
}

// Finish is a no-op: a repeating ticker has no terminal value
func (r *Repeating) Finish() {}

package ticker

import (
	"sort"

	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
)

// Key is one time/value breakpoint
type Key struct {
	Time  float64
	Value float64
}

// Keyframes interpolates through an ordered list of breakpoints.
// The ticker is done once elapsed time reaches the last key.
type Keyframes struct {
	keys    []Key
	ease    Easing
	elapsed float64
	value   float64
	done    bool
}

// NewKeyframes creates a keyframe ticker. Keys are sorted by time; at least
// one key is required.
func NewKeyframes(ease Easing, keys ...Key) *Keyframes {
	if !invariant.Check(len(keys) > 0, "keyframes need at least one key") {
		keys = []Key{{Time: 0, Value: 0}}
	}
	sorted := make([]Key, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	if ease == nil {
		ease = EaseLinear
	}
	return &Keyframes{keys: sorted, ease: ease, value: sorted[0].Value}
}

// Duration returns the time of the last key
func (k *Keyframes) Duration() float64 {
	return k.keys[len(k.keys)-1].Time
}

func (k *Keyframes) Tick(dt float64) bool {
	if k.done {
		return true
	}
	k.elapsed += clampDT(dt)
	if k.elapsed >= k.Duration()-epsilon {
		k.Finish()
		return true
	}
	k.value = k.sample(k.elapsed)
	return false
}

func (k *Keyframes) sample(t float64) float64 {
	if t <= k.keys[0].Time {
		return k.keys[0].Value
	}
	for i := 1; i < len(k.keys); i++ {
		a, b := k.keys[i-1], k.keys[i]
		if t > b.Time {
			continue
		}
		span := b.Time - a.Time
		if span <= 0 {
			return b.Value
		}
		return a.Value + (b.Value-a.Value)*k.ease((t-a.Time)/span)
	}
	return k.keys[len(k.keys)-1].Value
}

func (k *Keyframes) Value() float64 { return k.value }

// Elapsed returns the time accumulated so far
func (k *Keyframes) Elapsed() float64 { return k.elapsed }

func (k *Keyframes) Done() bool { return k.done }

func (k *Keyframes) Repeats() bool { return false }

func (k *Keyframes) Reset() {
	k.elapsed = 0
	k.value = k.keys[0].Value
	k.done = false
}

func (k *Keyframes) Finish() {
	k.elapsed = k.Duration()
	k.value = k.keys[len(k.keys)-1].Value
	k.done = true
}

package ticker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoreography_ReadyIffAllDone(t *testing.T) {
	c := NewChoreography().
		Add("drop", NewFade(1)).
		Add("fade", NewFade(2)).
		Add("unlock", NewFade(0.5))

	assert.False(t, c.Tick(0.5))
	assert.ElementsMatch(t, []string{"drop", "fade"}, c.Pending())
	assert.False(t, c.Tick(0.5))
	assert.Equal(t, []string{"fade"}, c.Pending())
	assert.True(t, c.Tick(1))
	assert.True(t, c.Ready())
	assert.Empty(t, c.Pending())
}

func TestChoreography_RepeatingExcluded(t *testing.T) {
	c := NewChoreography().
		Add("pulse", NewRepeating(0, 1, 0.3, WaveSine)).
		Add("fade", NewFade(1))

	assert.True(t, c.Tick(1))
	assert.NotZero(t, c.Value("pulse"))
}

func TestChoreography_Flags(t *testing.T) {
	c := NewChoreography().Add("fade", NewFade(1)).Flag("soundPlayed")

	assert.False(t, c.Tick(1))
	assert.Equal(t, []string{"soundPlayed"}, c.Pending())
	c.SetFlag("soundPlayed", true)
	assert.True(t, c.Ready())
	assert.True(t, c.FlagSet("soundPlayed"))
}

func TestChoreography_OrderIndependent(t *testing.T) {
	durations := []float64{0.7, 1.3, 2.0, 0.25}
	names := []string{"a", "b", "c", "d"}

	build := func() *Choreography {
		c := NewChoreography()
		for i, n := range names {
			c.Add(n, NewFade(durations[i]))
		}
		return c
	}

	// tick the individual tickers in shuffled interleavings that sum to the
	// same per-ticker totals
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		c := build()
		type slice struct {
			name string
			dt   float64
		}
		var slices []slice
		for i, n := range names {
			total := durations[i] + 0.5
			for total > 0 {
				dt := 0.1 + rng.Float64()*0.3
				if dt > total {
					dt = total
				}
				slices = append(slices, slice{n, dt})
				total -= dt
			}
		}
		rng.Shuffle(len(slices), func(i, j int) { slices[i], slices[j] = slices[j], slices[i] })
		for _, s := range slices {
			c.Ticker(s.name).Tick(s.dt)
		}
		assert.True(t, c.Ready(), "trial %d", trial)
	}

	// and the same per-ticker totals that fall short stay not ready
	c := build()
	for i, n := range names {
		short := durations[i]
		if n == "c" {
			short -= 0.1
		}
		c.Ticker(n).Tick(short)
	}
	assert.False(t, c.Ready())
	assert.Equal(t, []string{"c"}, c.Pending())
}

func TestChoreography_FastForward(t *testing.T) {
	c := NewChoreography().
		Add("drop", NewKeyframes(EaseOutBounce, Key{0, -50}, Key{1, 0})).
		Add("pulse", NewRepeating(0, 1, 1, WaveSine)).
		Flag("shown")

	c.Tick(0.1)
	c.FastForward()
	assert.True(t, c.Ready())
	assert.Equal(t, 0.0, c.Value("drop"))

	c.Reset()
	assert.False(t, c.Ready())
	assert.Equal(t, -50.0, c.Value("drop"))
}

func TestChoreography_Replace(t *testing.T) {
	c := NewChoreography().Add("fade", NewFade(1))
	c.Add("fade", NewFade(0))
	assert.True(t, c.Tick(0))
	assert.Nil(t, c.Ticker("missing"))
	assert.Equal(t, 0.0, c.Value("missing"))
}

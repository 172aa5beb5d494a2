package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/screenflow/internal/domain/sound"
)

func pull(m *Mixer, d time.Duration) [][2]float64 {
	buf := make([][2]float64, m.rate.N(d))
	n, ok := m.Stream(buf)
	if !ok {
		return nil
	}
	return buf[:n]
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = math.Max(p, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return p
}

func TestMixer_SilentWithoutCues(t *testing.T) {
	m := NewMixer(Options{})
	out := pull(m, 10*time.Millisecond)
	require.NotEmpty(t, out, "the mixer never drains")
	assert.Zero(t, peak(out))
}

func TestMixer_OneShotPlaysAndFinishes(t *testing.T) {
	m := NewMixer(Options{})
	m.Play(sound.CueConfirm)
	assert.Equal(t, 1, m.Active(sound.CueConfirm))

	out := pull(m, 100*time.Millisecond)
	assert.Greater(t, peak(out), 0.01)

	pull(m, 500*time.Millisecond)
	m.Tick(0.5)
	assert.Zero(t, m.Active(sound.CueConfirm))
}

func TestMixer_PlayForgetsFinishedVoicesWithoutTick(t *testing.T) {
	m := NewMixer(Options{})
	for i := 0; i < 10; i++ {
		m.Play(sound.CueMenuMove)
		pull(m, time.Second)
	}
	m.Play(sound.CueMenuMove)

	assert.Len(t, m.voices, 1)
	assert.Equal(t, 1, m.Active(sound.CueMenuMove))
}

func TestMixer_EveryCueHasASound(t *testing.T) {
	for c := sound.Cue(0); int(c) < sound.Count(); c++ {
		t.Run(c.String(), func(t *testing.T) {
			m := NewMixer(Options{})
			m.Play(c)
			out := pull(m, 30*time.Millisecond)
			assert.Greater(t, peak(out), 0.0)
			assert.LessOrEqual(t, peak(out), 1.0)
			m.StopAll()
		})
	}
}

func TestMixer_LoopPlaysUntilStopped(t *testing.T) {
	m := NewMixer(Options{})
	m.Play(sound.CueBossWarning)
	m.Play(sound.CueBossWarning)
	assert.Equal(t, 1, m.Active(sound.CueBossWarning), "a loop is never doubled")

	pull(m, 2*time.Second)
	m.Tick(2)
	assert.Equal(t, 1, m.Active(sound.CueBossWarning))

	m.Stop(sound.CueBossWarning)
	assert.Zero(t, m.Active(sound.CueBossWarning))
	pull(m, 10*time.Millisecond)
	assert.Zero(t, peak(pull(m, 50*time.Millisecond)))
}

func TestMixer_StopLeavesOtherCues(t *testing.T) {
	m := NewMixer(Options{})
	m.Play(sound.CueBossWarning)
	m.Play(sound.CueVictory)
	m.Stop(sound.CueBossWarning)
	assert.Equal(t, 1, m.Active(sound.CueVictory))

	m.StopAll()
	assert.Zero(t, m.Active(sound.CueVictory))
}

func TestMixer_ListenerPansSpatialCues(t *testing.T) {
	m := NewMixer(Options{PanRange: 100, Sources: map[sound.Cue]float64{sound.CueBossWarning: 200}})
	m.Play(sound.CueBossWarning)

	m.SetListenerPosition(200, 0)
	m.Tick(0.1)
	assert.InDelta(t, 0, m.Pan(sound.CueBossWarning), 1e-9)

	m.SetListenerPosition(150, 0)
	m.Tick(0.1)
	assert.InDelta(t, 0.5, m.Pan(sound.CueBossWarning), 1e-9)

	m.SetListenerPosition(1000, 0)
	assert.Equal(t, -1.0, m.Pan(sound.CueBossWarning))

	assert.Zero(t, m.Pan(sound.CueConfirm), "menu cues are not spatial")
}

func TestMixer_MasterVolume(t *testing.T) {
	loud := NewMixer(Options{})
	quiet := NewMixer(Options{Volume: 0.25})
	loud.Play(sound.CueUnlock)
	quiet.Play(sound.CueUnlock)

	lp := peak(pull(loud, 60*time.Millisecond))
	qp := peak(pull(quiet, 60*time.Millisecond))
	assert.InDelta(t, lp*0.25, qp, 1e-6)
}

func TestOscillator_RangeAndLength(t *testing.T) {
	for _, shape := range []wave{waveSine, waveSquare, waveTriangle} {
		osc := newOscillator(440, 10*time.Millisecond, shape, DefaultSampleRate)
		buf := make([][2]float64, 1000)
		n, ok := osc.Stream(buf)
		assert.True(t, ok)
		assert.Equal(t, DefaultSampleRate.N(10*time.Millisecond), n)
		for _, s := range buf[:n] {
			assert.LessOrEqual(t, math.Abs(s[0]), 1.0)
		}
		n, ok = osc.Stream(buf)
		assert.Zero(t, n)
		assert.False(t, ok)
	}
}

func TestEnvelope_StartsAndEndsQuiet(t *testing.T) {
	osc := newOscillator(100, 0, waveSquare, DefaultSampleRate)
	env := newEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, DefaultSampleRate)
	buf := make([][2]float64, DefaultSampleRate.N(100*time.Millisecond))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 1, math.Abs(buf[n/2][0]), 1e-9)
	assert.Less(t, math.Abs(buf[n-1][0]), 0.01)
}

func TestNull(t *testing.T) {
	var a Null
	a.Play(sound.CueVictory)
	a.Stop(sound.CueVictory)
	a.SetListenerPosition(1, 2)
	a.Tick(0.1)
	a.StopAll()
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/younwookim/screenflow/internal/domain/sound"
)

// wave is an oscillator shape
type wave int

const (
	waveSine wave = iota
	waveSquare
	waveTriangle
)

// oscillator produces a single tone. A non-positive length runs forever.
type oscillator struct {
	freq   float64
	phase  float64
	length int
	pos    int
	shape  wave
	rate   beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, shape wave, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, length: rate.N(d), shape: shape, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.length > 0 && o.pos >= o.length {
			return i, i > 0
		}
		var v float64
		switch o.shape {
		case waveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case waveTriangle:
			v = 1 - 4*math.Abs(o.phase-0.5)
		default:
			v = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a finite streamer with a linear attack and release
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// pulse modulates an endless streamer's amplitude at a fixed rate
type pulse struct {
	streamer beep.Streamer
	hz       float64
	pos      int
	rate     beep.SampleRate
}

func (p *pulse) Stream(samples [][2]float64) (int, bool) {
	n, ok := p.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(p.pos) / float64(p.rate)
		vol := 0.5 + 0.5*math.Sin(2*math.Pi*p.hz*t)
		samples[i][0] *= vol
		samples[i][1] *= vol
		p.pos++
	}
	return n, ok
}

func (p *pulse) Err() error { return p.streamer.Err() }

// note is one step of a cue's melody
type note struct {
	freq float64
	dur  time.Duration
}

// recipe describes how a cue is synthesized
type recipe struct {
	notes []note
	shape wave
	gain  float64
	// loop cues play until stopped
	loop bool
	// spatial cues are panned relative to the listener
	spatial bool
}

var recipes = map[sound.Cue]recipe{
	sound.CueMenuMove:    {notes: []note{{660, 40 * time.Millisecond}}, shape: waveSquare, gain: 0.15},
	sound.CueConfirm:     {notes: []note{{660, 60 * time.Millisecond}, {990, 90 * time.Millisecond}}, shape: waveSquare, gain: 0.2},
	sound.CueBack:        {notes: []note{{520, 60 * time.Millisecond}, {390, 90 * time.Millisecond}}, shape: waveSquare, gain: 0.2},
	sound.CuePause:       {notes: []note{{440, 80 * time.Millisecond}, {330, 80 * time.Millisecond}}, shape: waveTriangle, gain: 0.3},
	sound.CueLevelStart:  {notes: []note{{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 240 * time.Millisecond}}, shape: waveTriangle, gain: 0.3},
	sound.CueBossWarning: {notes: []note{{110, 0}}, shape: waveSquare, gain: 0.2, loop: true, spatial: true},
	sound.CueVictory:     {notes: []note{{523, 150 * time.Millisecond}, {659, 150 * time.Millisecond}, {784, 150 * time.Millisecond}, {1047, 400 * time.Millisecond}}, shape: waveTriangle, gain: 0.35},
	sound.CueUnlock:      {notes: []note{{880, 80 * time.Millisecond}, {1320, 160 * time.Millisecond}}, shape: waveSine, gain: 0.3},
	sound.CueGameOver:    {notes: []note{{392, 200 * time.Millisecond}, {330, 200 * time.Millisecond}, {262, 500 * time.Millisecond}}, shape: waveTriangle, gain: 0.35},
}

// synth builds the streamer for a cue
func synth(rc recipe, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	if rc.loop {
		s = &pulse{streamer: newOscillator(rc.notes[0].freq, 0, rc.shape, rate), hz: 2, rate: rate}
	} else {
		parts := make([]beep.Streamer, 0, len(rc.notes))
		for _, n := range rc.notes {
			osc := newOscillator(n.freq, n.dur, rc.shape, rate)
			parts = append(parts, newEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3, rate))
		}
		s = beep.Seq(parts...)
	}
	return gain(s, rc.gain)
}

// gain wraps s in a volume effect; zero or less is silent
func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

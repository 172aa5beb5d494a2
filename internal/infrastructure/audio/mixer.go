// Package audio plays the synthesized sound cues through a beep mixer.
package audio

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/younwookim/screenflow/internal/domain/sound"
)

// DefaultSampleRate is used when Options leaves it zero
const DefaultSampleRate = beep.SampleRate(44100)

// Options configures a Mixer
type Options struct {
	SampleRate beep.SampleRate
	// Volume is the master gain in [0,1]. Zero means 1.
	Volume float64
	// PanRange is the horizontal distance from the listener at which a
	// spatial cue is fully left or right. Zero means 320.
	PanRange float64
	// Sources places spatial cues in world coordinates
	Sources map[sound.Cue]float64
	Logger  *slog.Logger
}

// voice is one playing cue
type voice struct {
	cue  sound.Cue
	ctrl *beep.Ctrl
	pan  *effects.Pan
	done bool
}

// tracked marks its voice done when the wrapped streamer drains
type tracked struct {
	streamer beep.Streamer
	v        *voice
}

func (t *tracked) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.streamer.Stream(samples)
	if !ok {
		t.v.done = true
	}
	return n, ok
}

func (t *tracked) Err() error { return t.streamer.Err() }

// Mixer plays cues. It is itself a beep.Streamer so it can be handed to
// the speaker or pulled directly in tests.
type Mixer struct {
	mu        sync.Mutex
	rate      beep.SampleRate
	mixer     *beep.Mixer
	master    *effects.Volume
	voices    []*voice
	listenerX float64
	listenerY float64
	panRange  float64
	sources   map[sound.Cue]float64
	log       *slog.Logger
}

// NewMixer creates a mixer that is not attached to any device
func NewMixer(opts Options) *Mixer {
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Volume == 0 {
		opts.Volume = 1
	}
	if opts.PanRange <= 0 {
		opts.PanRange = 320
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	sources := map[sound.Cue]float64{sound.CueBossWarning: 480}
	for c, x := range opts.Sources {
		sources[c] = x
	}
	m := &Mixer{
		rate:     opts.SampleRate,
		mixer:    &beep.Mixer{},
		panRange: opts.PanRange,
		sources:  sources,
		log:      opts.Logger,
	}
	m.master = gain(m.mixer, math.Min(opts.Volume, 1)).(*effects.Volume)
	return m
}

// Open initialises the speaker and starts playing the mixer on it
func Open(opts Options) (*Mixer, error) {
	m := NewMixer(opts)
	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(m)
	return m, nil
}

// Stream implements beep.Streamer. It never drains.
func (m *Mixer) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.master.Stream(samples)
}

// Err implements beep.Streamer
func (m *Mixer) Err() error { return nil }

// Play starts a cue. Looping cues already playing are not restarted.
func (m *Mixer) Play(c sound.Cue) {
	rc, ok := recipes[c]
	if !ok {
		m.log.Warn("unknown sound cue", "cue", c.String())
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if rc.loop && m.activeLocked(c) > 0 {
		return
	}

	// menus play cues while Tick is frozen, so finished voices go here too
	m.prune()
	v := &voice{cue: c}
	var s beep.Streamer = &tracked{streamer: synth(rc, m.rate), v: v}
	if rc.spatial {
		v.pan = &effects.Pan{Streamer: s, Pan: m.panFor(c)}
		s = v.pan
	}
	v.ctrl = &beep.Ctrl{Streamer: s}
	m.voices = append(m.voices, v)
	m.mixer.Add(v.ctrl)
}

// Stop silences every voice of a cue
func (m *Mixer) Stop(c sound.Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.voices {
		if v.cue == c {
			m.silence(v)
		}
	}
	m.prune()
}

// StopAll silences everything
func (m *Mixer) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.voices {
		m.silence(v)
	}
	m.voices = nil
	m.mixer.Clear()
}

// SetListenerPosition moves the listener spatial cues are panned against
func (m *Mixer) SetListenerPosition(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listenerX, m.listenerY = x, y
}

// Tick updates pans and forgets finished voices
func (m *Mixer) Tick(float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.voices {
		if v.pan != nil {
			v.pan.Pan = m.panFor(v.cue)
		}
	}
	m.prune()
}

// Active returns the number of live voices of a cue
func (m *Mixer) Active(c sound.Cue) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeLocked(c)
}

// Pan returns the current pan of a spatial cue relative to the listener
func (m *Mixer) Pan(c sound.Cue) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.panFor(c)
}

func (m *Mixer) activeLocked(c sound.Cue) int {
	n := 0
	for _, v := range m.voices {
		if v.cue == c && !v.done {
			n++
		}
	}
	return n
}

func (m *Mixer) panFor(c sound.Cue) float64 {
	x, ok := m.sources[c]
	if !ok {
		return 0
	}
	return math.Max(-1, math.Min(1, (x-m.listenerX)/m.panRange))
}

func (m *Mixer) silence(v *voice) {
	v.ctrl.Streamer = nil
	v.done = true
}

func (m *Mixer) prune() {
	live := m.voices[:0]
	for _, v := range m.voices {
		if !v.done {
			live = append(live, v)
		}
	}
	for i := len(live); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = live
}

// Null discards every cue. Headless runs use it.
type Null struct{}

func (Null) Tick(float64)                     {}
func (Null) SetListenerPosition(_, _ float64) {}
func (Null) Play(sound.Cue)                   {}
func (Null) Stop(sound.Cue)                   {}
func (Null) StopAll()                         {}

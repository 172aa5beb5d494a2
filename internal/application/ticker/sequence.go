package ticker

import "github.com/younwookim/screenflow/internal/infrastructure/invariant"

// Sequence runs tickers one after another. Time left over when a step
// finishes is carried into the next step within the same Tick.
type Sequence struct {
	steps   []Ticker
	current int
}

// NewSequence creates a sequence of non-repeating tickers
func NewSequence(steps ...Ticker) *Sequence {
	kept := steps[:0:0]
	for _, s := range steps {
		if !invariant.Check(s != nil && !s.Repeats(), "sequence steps must be non-repeating") {
			continue
		}
		kept = append(kept, s)
	}
	return &Sequence{steps: kept}
}

func (s *Sequence) Tick(dt float64) bool {
	dt = clampDT(dt)
	for s.current < len(s.steps) {
		step := s.steps[s.current]
		before := elapsedOf(step)
		if !step.Tick(dt) {
			return false
		}
		// carry the unused part of dt forward
		used := elapsedOf(step) - before
		dt -= used
		if dt < 0 {
			dt = 0
		}
		s.current++
	}
	return true
}

// Elapsed returns the time consumed by all steps
func (s *Sequence) Elapsed() float64 {
	var total float64
	for _, step := range s.steps {
		total += elapsedOf(step)
	}
	return total
}

// Step returns the index of the running step (len when done)
func (s *Sequence) Step() int { return s.current }

func (s *Sequence) Value() float64 {
	if len(s.steps) == 0 {
		return 0
	}
	if s.current >= len(s.steps) {
		return s.steps[len(s.steps)-1].Value()
	}
	return s.steps[s.current].Value()
}

func (s *Sequence) Done() bool { return s.current >= len(s.steps) }

func (s *Sequence) Repeats() bool { return false }

func (s *Sequence) Reset() {
	for _, step := range s.steps {
		step.Reset()
	}
	s.current = 0
}

func (s *Sequence) Finish() {
	for _, step := range s.steps {
		step.Finish()
	}
	s.current = len(s.steps)
}

type elapsed interface {
	Elapsed() float64
}

// elapsedOf returns the step's elapsed time. Steps that do not expose it
// consume nothing, so the whole dt carries forward.
func elapsedOf(t Ticker) float64 {
	if e, ok := t.(elapsed); ok {
		return e.Elapsed()
	}
	return 0
}

package display

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
)

// ErrNilState is returned when a nil state is installed
var ErrNilState = errors.New("display: nil state")

// pendingTransition is one queued (kind, params) request
type pendingTransition struct {
	kind   state.Kind
	params state.Params
}

// Machine owns the single active State, an optional backdrop retained under
// an overlay, and the FIFO queue of pending transitions.
type Machine struct {
	ctx     *Context
	factory Factory
	log     *slog.Logger

	current  State
	backdrop State
	queue    []pendingTransition

	// depth > 0 while a state callback is running; replacements made in
	// that window are deferred until the frame's drawing is done.
	depth    int
	deferred []func()
	drain    bool
}

// NewMachine creates a machine that builds states with factory. The machine
// installs itself as ctx.Nav.
func NewMachine(ctx *Context, factory Factory) *Machine {
	log := ctx.Logger
	if log == nil {
		log = slog.Default()
	}
	m := &Machine{
		ctx:     ctx,
		factory: factory,
		log:     log,
	}
	ctx.Nav = m
	return m
}

// Start constructs the first state
func (m *Machine) Start(kind state.Kind, params state.Params) error {
	s, err := m.build(kind, params)
	if err != nil {
		return err
	}
	return m.SetCurrentState(s)
}

func (m *Machine) build(kind state.Kind, params state.Params) (State, error) {
	if !invariant.Check(kind.Valid(), "unknown display state kind", "kind", int(kind)) {
		return nil, fmt.Errorf("display: unknown kind %d", int(kind))
	}
	s, err := m.factory(kind, params, m.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to construct %s: %w", kind, err)
	}
	if s == nil {
		return nil, ErrNilState
	}
	return s, nil
}

// run applies fn now, or after the frame's drawing when called from inside
// a state callback.
func (m *Machine) run(fn func()) {
	if m.depth > 0 {
		m.deferred = append(m.deferred, fn)
		return
	}
	fn()
}

func (m *Machine) enter() { m.depth++ }

func (m *Machine) leave() { m.depth-- }

func (m *Machine) flush() {
	for len(m.deferred) > 0 {
		fn := m.deferred[0]
		m.deferred = m.deferred[1:]
		fn()
	}
}

// SetCurrentState destroys the active state and installs s
func (m *Machine) SetCurrentState(s State) error {
	if !invariant.Check(s != nil, "SetCurrentState with nil state") {
		return ErrNilState
	}
	m.run(func() { m.replace(s) })
	return nil
}

// replace destroys the active state. A backdrop retained under it goes too:
// once its overlay is gone nothing can restore it.
func (m *Machine) replace(s State) {
	old := m.current
	if old == s {
		return
	}
	m.current = s
	m.logTransition("replace", old, s)
	if old != nil {
		old.Close()
	}
	m.releaseBackdrop()
}

// SetCurrentStateNoDeletePreviousState installs s and retains the active
// state as the backdrop. Only one backdrop is held; an occupied slot is an
// invariant violation and its previous occupant is destroyed.
func (m *Machine) SetCurrentStateNoDeletePreviousState(s State) error {
	if !invariant.Check(s != nil, "SetCurrentStateNoDeletePreviousState with nil state") {
		return ErrNilState
	}
	m.run(func() { m.overlay(s) })
	return nil
}

func (m *Machine) overlay(s State) {
	if m.backdrop != nil {
		invariant.Fail("backdrop slot already occupied", "backdrop", m.backdrop.Type())
		m.backdrop.Close()
	}
	old := m.current
	m.backdrop = old
	m.current = s
	m.logTransition("overlay", old, s)
}

// AddStateToQueue appends a pending transition to the queue tail
func (m *Machine) AddStateToQueue(kind state.Kind, params state.Params) {
	m.queue = append(m.queue, pendingTransition{kind: kind, params: params})
	m.log.Debug("display state queued", "kind", kind.String(), "params", params.String(), "pending", len(m.queue))
}

// SetCurrentStateAsNextQueuedState pops the queue head and makes it the
// active state. It returns false only when the queue is empty. A state that
// fails to construct is logged and dropped; the pop still counts.
func (m *Machine) SetCurrentStateAsNextQueuedState() bool {
	if len(m.queue) == 0 {
		return false
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	m.run(func() {
		s, err := m.build(next.kind, next.params)
		if err != nil {
			m.log.Error("failed to build queued state", "kind", next.kind.String(), "err", err)
			return
		}
		m.replace(s)
	})
	return true
}

// Replace implements Navigator
func (m *Machine) Replace(kind state.Kind, params state.Params) {
	m.run(func() {
		s, err := m.build(kind, params)
		if err != nil {
			m.log.Error("failed to build state", "kind", kind.String(), "err", err)
			return
		}
		m.replace(s)
	})
}

// Overlay implements Navigator
func (m *Machine) Overlay(kind state.Kind, params state.Params) {
	m.run(func() {
		s, err := m.build(kind, params)
		if err != nil {
			m.log.Error("failed to build overlay", "kind", kind.String(), "err", err)
			return
		}
		m.overlay(s)
	})
}

// RestoreBackdrop implements Navigator
func (m *Machine) RestoreBackdrop() {
	m.run(func() {
		if !invariant.Check(m.backdrop != nil, "RestoreBackdrop without backdrop") {
			return
		}
		old := m.current
		m.current = m.backdrop
		m.backdrop = nil
		m.logTransition("restore", old, m.current)
		if old != nil {
			old.Close()
		}
	})
}

// ReleaseBackdrop implements Navigator
func (m *Machine) ReleaseBackdrop() {
	m.run(m.releaseBackdrop)
}

func (m *Machine) releaseBackdrop() {
	if m.backdrop == nil {
		return
	}
	m.log.Debug("display backdrop released", "kind", m.backdrop.Type().String())
	m.backdrop.Close()
	m.backdrop = nil
}

// Backdrop implements Navigator
func (m *Machine) Backdrop() State { return m.backdrop }

// Pending implements Navigator
func (m *Machine) Pending() int { return len(m.queue) }

// RequestQueueDrain implements Navigator
func (m *Machine) RequestQueueDrain() { m.drain = true }

// TakeDrainRequest reports and clears a pending drain request
func (m *Machine) TakeDrainRequest() bool {
	d := m.drain
	m.drain = false
	return d
}

// Current returns the active state, or nil before Start
func (m *Machine) Current() State { return m.current }

// GetCurrentDisplayState returns the active state's kind. The second result
// is false before Start.
func (m *Machine) GetCurrentDisplayState() (state.Kind, bool) {
	if m.current == nil {
		return 0, false
	}
	return m.current.Type(), true
}

// RenderFrame renders the active state into dst, then applies any
// replacement requested during input dispatch or drawing.
func (m *Machine) RenderFrame(dt float64, dst render.Surface) {
	if !invariant.Check(m.current != nil, "RenderFrame without active state") {
		dst.Clear()
		return
	}
	m.enter()
	m.current.RenderFrame(dt, dst)
	m.leave()
	m.flush()
}

// Dispatch delivers one input event to the active state. At most one state
// receives each event; a transition it requests is applied after the next
// RenderFrame, so the rest of this frame's events reach the same state.
func (m *Machine) Dispatch(e Event) {
	if m.current == nil {
		return
	}
	m.enter()
	e.Dispatch(m.current)
	m.leave()
}

// ButtonPressed forwards to the active state
func (m *Machine) ButtonPressed(b Button) { m.Dispatch(ButtonPress(b)) }

// ButtonReleased forwards to the active state
func (m *Machine) ButtonReleased(b Button) { m.Dispatch(ButtonRelease(b)) }

// MousePressed forwards to the active state
func (m *Machine) MousePressed(b MouseButton, x, y int) { m.Dispatch(MousePress(b, x, y)) }

// MouseReleased forwards to the active state
func (m *Machine) MouseReleased(b MouseButton, x, y int) { m.Dispatch(MouseRelease(b, x, y)) }

// MouseMoved forwards to the active state
func (m *Machine) MouseMoved(x, y int) { m.Dispatch(MouseMove(x, y)) }

// WindowFocus forwards to the active state
func (m *Machine) WindowFocus(focused bool) { m.Dispatch(Focus(focused)) }

// DisplaySizeChanged resizes the active state and the retained backdrop.
// States constructed afterwards are built at the new size.
func (m *Machine) DisplaySizeChanged(w, h int) {
	if w < 1 || h < 1 {
		invariant.Fail("display size must be positive", "w", w, "h", h)
		return
	}
	if w == m.ctx.Width && h == m.ctx.Height {
		return
	}
	m.ctx.Width, m.ctx.Height = w, h
	m.log.Debug("display size changed", "w", w, "h", h)
	if m.current != nil {
		m.current.DisplaySizeChanged(w, h)
	}
	if m.backdrop != nil {
		m.backdrop.DisplaySizeChanged(w, h)
	}
}

// AllowsGameModelUpdates reports whether the active state lets the
// simulation advance
func (m *Machine) AllowsGameModelUpdates() bool {
	return m.current != nil && m.current.AllowsGameModelUpdates()
}

// Close applies transitions still waiting for the end of a frame, then
// destroys the backdrop and the active state and drops the queue. States
// handed over in a callback are therefore closed like any other.
func (m *Machine) Close() {
	m.depth = 0
	m.flush()
	m.releaseBackdrop()
	if m.current != nil {
		m.current.Close()
		m.current = nil
	}
	m.queue = nil
}

func (m *Machine) logTransition(mode string, from, to State) {
	fromName := "none"
	if from != nil {
		fromName = from.Type().String()
	}
	m.log.Info("display state changed",
		"mode", mode,
		"from", fromName,
		"to", to.Type().String(),
		"queued", len(m.queue),
	)
}

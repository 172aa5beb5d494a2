package display

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/screenflow/internal/application/render"
	"github.com/younwookim/screenflow/internal/application/render/rendertest"
	"github.com/younwookim/screenflow/internal/application/state"
	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
	"github.com/younwookim/screenflow/internal/infrastructure/logging"
)

// mockState is a test double for the State interface
type mockState struct {
	kind   state.Kind
	params state.Params
	nav    Navigator

	renderCalled int
	closeCalled  int
	pressed      []Button
	focus        []bool
	w, h         int
	allowUpdates bool

	onPress  func(b Button)
	onRender func()
	log      *[]string
}

func (m *mockState) RenderFrame(dt float64, dst render.Surface) {
	m.renderCalled++
	if m.log != nil {
		*m.log = append(*m.log, "render "+m.kind.String())
	}
	if m.onRender != nil {
		m.onRender()
	}
}

func (m *mockState) ButtonPressed(b Button) {
	m.pressed = append(m.pressed, b)
	if m.onPress != nil {
		m.onPress(b)
	}
}

func (m *mockState) ButtonReleased(Button)               {}
func (m *mockState) MousePressed(MouseButton, int, int)  {}
func (m *mockState) MouseReleased(MouseButton, int, int) {}
func (m *mockState) MouseMoved(int, int)                 {}
func (m *mockState) WindowFocus(focused bool)            { m.focus = append(m.focus, focused) }
func (m *mockState) DisplaySizeChanged(w, h int)         { m.w, m.h = w, h }
func (m *mockState) AllowsGameModelUpdates() bool        { return m.allowUpdates }
func (m *mockState) Type() state.Kind                    { return m.kind }

func (m *mockState) Close() {
	m.closeCalled++
	if m.log != nil {
		*m.log = append(*m.log, "close "+m.kind.String())
	}
}

// mockFactory records every state it builds
type mockFactory struct {
	built []*mockState
	fail  map[state.Kind]bool
	log   []string
}

func (f *mockFactory) build(kind state.Kind, params state.Params, ctx *Context) (State, error) {
	if f.fail[kind] {
		return nil, errors.New("boom")
	}
	s := &mockState{kind: kind, params: params, nav: ctx.Nav, w: ctx.Width, h: ctx.Height, log: &f.log}
	f.built = append(f.built, s)
	return s, nil
}

func (f *mockFactory) last() *mockState {
	return f.built[len(f.built)-1]
}

func newTestMachine(t *testing.T) (*Machine, *mockFactory, *Context) {
	t.Helper()
	f := &mockFactory{fail: map[state.Kind]bool{}}
	ctx := &Context{Logger: logging.Discard(), Width: 320, Height: 240}
	m := NewMachine(ctx, f.build)
	return m, f, ctx
}

func kindOf(t *testing.T, m *Machine) state.Kind {
	t.Helper()
	k, ok := m.GetCurrentDisplayState()
	require.True(t, ok)
	return k
}

func TestNewMachine_InstallsNavigator(t *testing.T) {
	m, _, ctx := newTestMachine(t)
	assert.Same(t, m, ctx.Nav)

	_, ok := m.GetCurrentDisplayState()
	assert.False(t, ok, "no state before Start")
	assert.Nil(t, m.Current())
}

func TestMachine_Start(t *testing.T) {
	m, f, _ := newTestMachine(t)

	require.NoError(t, m.Start(state.KindMainMenu, state.Params{}))
	assert.Equal(t, state.KindMainMenu, kindOf(t, m))
	require.Len(t, f.built, 1)
	assert.Equal(t, 320, f.built[0].w)
}

func TestMachine_Start_FactoryError(t *testing.T) {
	m, f, _ := newTestMachine(t)
	f.fail[state.KindMainMenu] = true

	err := m.Start(state.KindMainMenu, state.Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to construct MainMenu")
}

func TestMachine_QueueIsFIFO(t *testing.T) {
	for n := 0; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m, f, _ := newTestMachine(t)
			require.NoError(t, m.Start(state.KindMainMenu, state.Params{}))

			kinds := state.Kinds()
			var want []state.Kind
			for i := 0; i < n; i++ {
				k := kinds[(i*5+1)%len(kinds)]
				want = append(want, k)
				m.AddStateToQueue(k, state.Params{}.WithLevel(i))
			}
			assert.Equal(t, n, m.Pending())

			for i := 0; i < n; i++ {
				require.True(t, m.SetCurrentStateAsNextQueuedState(), "pop %d", i)
				assert.Equal(t, want[i], kindOf(t, m))
				level, ok := f.last().params.Level()
				require.True(t, ok)
				assert.Equal(t, i, level)
			}
			assert.False(t, m.SetCurrentStateAsNextQueuedState(), "pop past the end")
			assert.Equal(t, 0, m.Pending())
		})
	}
}

func TestMachine_LevelStartThenInGame(t *testing.T) {
	m, _, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindLevelSelect, state.Params{}))

	m.AddStateToQueue(state.KindLevelStart, state.Params{})
	m.AddStateToQueue(state.KindInGame, state.Params{})

	require.True(t, m.SetCurrentStateAsNextQueuedState())
	assert.Equal(t, state.KindLevelStart, kindOf(t, m))

	require.True(t, m.SetCurrentStateAsNextQueuedState())
	assert.Equal(t, state.KindInGame, kindOf(t, m))

	assert.False(t, m.SetCurrentStateAsNextQueuedState())
	assert.Equal(t, state.KindInGame, kindOf(t, m))
}

func TestMachine_EmptyPopKeepsCurrent(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindCredits, state.Params{}))

	assert.False(t, m.SetCurrentStateAsNextQueuedState())
	assert.Equal(t, state.KindCredits, kindOf(t, m))
	assert.Equal(t, 0, f.built[0].closeCalled)
}

func TestMachine_SetCurrentState_DestroysPreviousOnce(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindMainMenu, state.Params{}))
	first := f.last()

	next := &mockState{kind: state.KindCredits}
	require.NoError(t, m.SetCurrentState(next))

	assert.Equal(t, 1, first.closeCalled)
	assert.Equal(t, 0, next.closeCalled)
	assert.Same(t, next, m.Current())

	// reinstalling the same state is a no-op
	require.NoError(t, m.SetCurrentState(next))
	assert.Equal(t, 0, next.closeCalled)
}

func TestMachine_SetCurrentState_Nil(t *testing.T) {
	m, _, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindMainMenu, state.Params{}))

	err := m.SetCurrentState(nil)
	assert.ErrorIs(t, err, ErrNilState)
	assert.Equal(t, state.KindMainMenu, kindOf(t, m))

	invariant.SetStrict(true)
	defer invariant.SetStrict(false)
	assert.Panics(t, func() { _ = m.SetCurrentState(nil) })
}

func TestMachine_QueuedFactoryErrorStillPops(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindMainMenu, state.Params{}))
	f.fail[state.KindCredits] = true

	m.AddStateToQueue(state.KindCredits, state.Params{})
	assert.True(t, m.SetCurrentStateAsNextQueuedState())
	assert.Equal(t, state.KindMainMenu, kindOf(t, m))
	assert.Equal(t, 0, m.Pending())
}

func TestMachine_OverlayRetainsBackdrop(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindInGame, state.Params{}))
	game := f.last()

	m.Overlay(state.KindInGamePause, state.Params{})
	pause := f.last()

	assert.Equal(t, state.KindInGamePause, kindOf(t, m))
	assert.Same(t, game, m.Backdrop())
	assert.Equal(t, 0, game.closeCalled, "backdrop must survive the overlay")

	m.RestoreBackdrop()
	assert.Same(t, game, m.Current())
	assert.Nil(t, m.Backdrop())
	assert.Equal(t, 1, pause.closeCalled)
	assert.Equal(t, 0, game.closeCalled)
}

func TestMachine_ReleaseBackdrop(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindInGame, state.Params{}))
	game := f.last()

	require.NoError(t, m.SetCurrentStateNoDeletePreviousState(&mockState{kind: state.KindInGamePause}))
	m.ReleaseBackdrop()
	assert.Equal(t, 1, game.closeCalled)
	assert.Nil(t, m.Backdrop())

	m.ReleaseBackdrop()
	assert.Equal(t, 1, game.closeCalled, "release is idempotent")
}

func TestMachine_SecondOverlayReleasesOldBackdrop(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindInGame, state.Params{}))
	game := f.last()

	m.Overlay(state.KindInGamePause, state.Params{})
	pause := f.last()
	m.Overlay(state.KindInGamePause, state.Params{})

	assert.Equal(t, 1, game.closeCalled)
	assert.Same(t, pause, m.Backdrop())
}

func TestMachine_RestoreWithoutBackdrop(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindMainMenu, state.Params{}))

	m.RestoreBackdrop()
	assert.Same(t, f.last(), m.Current())
	assert.Equal(t, 0, f.last().closeCalled)
}

func TestMachine_InputTransitionAppliedAfterDrawing(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindMainMenu, state.Params{}))
	menu := f.last()
	menu.onPress = func(b Button) {
		if b == ButtonConfirm {
			menu.nav.Replace(state.KindWorldSelect, state.Params{})
		}
	}

	m.ButtonPressed(ButtonConfirm)
	m.ButtonPressed(ButtonDown)

	assert.Same(t, menu, m.Current(), "old state keeps receiving this frame's input")
	assert.Equal(t, []Button{ButtonConfirm, ButtonDown}, menu.pressed)

	dst := rendertest.NewAllocator().NewSurface(320, 240)
	m.RenderFrame(1.0/60, dst)

	assert.Equal(t, state.KindWorldSelect, kindOf(t, m))
	assert.Equal(t, []string{"render MainMenu", "close MainMenu"}, f.log)
	assert.Equal(t, 0, f.last().renderCalled)
}

func TestMachine_RenderTransitionAppliedAfterDrawing(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindLevelStart, state.Params{}))
	start := f.last()
	start.onRender = func() {
		start.nav.Replace(state.KindInGame, state.Params{})
		assert.Same(t, start, m.Current(), "no replacement mid-draw")
	}

	dst := rendertest.NewAllocator().NewSurface(320, 240)
	m.RenderFrame(1.0/60, dst)

	assert.Equal(t, state.KindInGame, kindOf(t, m))
	assert.Equal(t, 1, start.closeCalled)
}

func TestMachine_DrainRequest(t *testing.T) {
	m, _, _ := newTestMachine(t)
	assert.False(t, m.TakeDrainRequest())

	m.RequestQueueDrain()
	assert.True(t, m.TakeDrainRequest())
	assert.False(t, m.TakeDrainRequest())
}

func TestMachine_DisplaySizeChanged(t *testing.T) {
	m, f, ctx := newTestMachine(t)
	require.NoError(t, m.Start(state.KindInGame, state.Params{}))
	game := f.last()
	m.Overlay(state.KindInGamePause, state.Params{})
	pause := f.last()

	m.DisplaySizeChanged(640, 360)

	assert.Equal(t, 640, pause.w)
	assert.Equal(t, 360, pause.h)
	assert.Equal(t, 640, game.w, "backdrop is resized too")
	assert.Equal(t, 640, ctx.Width)

	m.AddStateToQueue(state.KindMainMenu, state.Params{})
	m.SetCurrentStateAsNextQueuedState()
	assert.Equal(t, 640, f.last().w, "new states are built at the current size")

	m.DisplaySizeChanged(0, 10)
	assert.Equal(t, 640, ctx.Width, "invalid sizes are ignored")
}

func TestMachine_AllowsGameModelUpdates(t *testing.T) {
	m, _, _ := newTestMachine(t)
	assert.False(t, m.AllowsGameModelUpdates())

	s := &mockState{kind: state.KindInGame, allowUpdates: true}
	require.NoError(t, m.SetCurrentState(s))
	assert.True(t, m.AllowsGameModelUpdates())

	s.allowUpdates = false
	assert.False(t, m.AllowsGameModelUpdates())
}

func TestMachine_WindowFocusForwarded(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindInGame, state.Params{}))

	m.WindowFocus(false)
	m.Dispatch(Focus(true))
	assert.Equal(t, []bool{false, true}, f.last().focus)
}

func TestMachine_Close(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindInGame, state.Params{}))
	game := f.last()
	m.Overlay(state.KindInGamePause, state.Params{})
	pause := f.last()
	m.AddStateToQueue(state.KindMainMenu, state.Params{})

	m.Close()

	assert.Equal(t, 1, game.closeCalled)
	assert.Equal(t, 1, pause.closeCalled)
	assert.Nil(t, m.Current())
	assert.Equal(t, 0, m.Pending())
}

func TestMachine_CloseClosesStatesHandedOverMidFrame(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindMainMenu, state.Params{}))
	menu := f.last()
	next := &mockState{kind: state.KindCredits}
	menu.onPress = func(Button) {
		require.NoError(t, m.SetCurrentState(next))
	}

	m.ButtonPressed(ButtonConfirm)
	require.Same(t, menu, m.Current(), "still deferred")

	m.Close()
	assert.Equal(t, 1, menu.closeCalled)
	assert.Equal(t, 1, next.closeCalled)
	assert.Nil(t, m.Current())
}

func TestMachine_ReplacingOverlayReleasesBackdrop(t *testing.T) {
	m, f, _ := newTestMachine(t)
	require.NoError(t, m.Start(state.KindInGame, state.Params{}))
	game := f.last()
	m.Overlay(state.KindInGamePause, state.Params{})
	pause := f.last()

	m.AddStateToQueue(state.KindLevelEnd, state.Params{})
	require.True(t, m.SetCurrentStateAsNextQueuedState())

	assert.Equal(t, state.KindLevelEnd, kindOf(t, m))
	assert.Nil(t, m.Backdrop())
	assert.Equal(t, 1, pause.closeCalled)
	assert.Equal(t, 1, game.closeCalled)

	m.Overlay(state.KindInGamePause, state.Params{})
	assert.Equal(t, state.KindLevelEnd, m.Backdrop().Type(), "the slot is free for the next overlay")
}

func TestMachine_RenderWithoutState(t *testing.T) {
	m, _, _ := newTestMachine(t)
	alloc := rendertest.NewAllocator()
	dst := alloc.NewSurface(4, 4)

	m.RenderFrame(0.016, dst)
	require.Len(t, alloc.Ops, 1)
	assert.Equal(t, "clear", alloc.Ops[0].Kind)
}

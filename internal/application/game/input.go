package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/screenflow/internal/application/display"
)

// Keymap binds keyboard keys to logical buttons
type Keymap map[ebiten.Key]display.Button

// DefaultKeymap covers arrows/WASD, confirm, back, pause and skip
var DefaultKeymap = Keymap{
	ebiten.KeyArrowUp:    display.ButtonUp,
	ebiten.KeyW:          display.ButtonUp,
	ebiten.KeyArrowDown:  display.ButtonDown,
	ebiten.KeyS:          display.ButtonDown,
	ebiten.KeyArrowLeft:  display.ButtonLeft,
	ebiten.KeyA:          display.ButtonLeft,
	ebiten.KeyArrowRight: display.ButtonRight,
	ebiten.KeyD:          display.ButtonRight,
	ebiten.KeyEnter:      display.ButtonConfirm,
	ebiten.KeySpace:      display.ButtonConfirm,
	ebiten.KeyZ:          display.ButtonConfirm,
	ebiten.KeyEscape:     display.ButtonBack,
	ebiten.KeyBackspace:  display.ButtonBack,
	ebiten.KeyX:          display.ButtonBack,
	ebiten.KeyP:          display.ButtonPause,
	ebiten.KeyTab:        display.ButtonSkip,
}

var mouseButtons = map[ebiten.MouseButton]display.MouseButton{
	ebiten.MouseButtonLeft:   display.MouseLeft,
	ebiten.MouseButtonRight:  display.MouseRight,
	ebiten.MouseButtonMiddle: display.MouseMiddle,
}

// Poller turns ebiten's per-tick input state into discrete events
type Poller struct {
	keymap  Keymap
	keys    []ebiten.Key
	x, y    int
	focused bool
}

// NewPoller creates a poller. A nil keymap uses DefaultKeymap.
func NewPoller(keymap Keymap) *Poller {
	if keymap == nil {
		keymap = DefaultKeymap
	}
	return &Poller{keymap: keymap, focused: true}
}

// Poll returns this tick's events: focus first, then keys, then the mouse
func (p *Poller) Poll() []display.Event {
	var events []display.Event
	if f := ebiten.IsFocused(); f != p.focused {
		p.focused = f
		events = append(events, display.Focus(f))
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	events = p.keymap.translate(events, p.keys, true)
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	events = p.keymap.translate(events, p.keys, false)

	x, y := ebiten.CursorPosition()
	if x != p.x || y != p.y {
		p.x, p.y = x, y
		events = append(events, display.MouseMove(x, y))
	}
	for _, eb := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		b := mouseButtons[eb]
		if inpututil.IsMouseButtonJustPressed(eb) {
			events = append(events, display.MousePress(b, x, y))
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			events = append(events, display.MouseRelease(b, x, y))
		}
	}
	return events
}

// translate appends one event per bound key. A button bound to several
// keys fires once per tick.
func (k Keymap) translate(events []display.Event, keys []ebiten.Key, pressed bool) []display.Event {
	var seen [8]bool
	for _, key := range keys {
		b, ok := k[key]
		if !ok {
			continue
		}
		if int(b) < len(seen) {
			if seen[b] {
				continue
			}
			seen[b] = true
		}
		if pressed {
			events = append(events, display.ButtonPress(b))
		} else {
			events = append(events, display.ButtonRelease(b))
		}
	}
	return events
}

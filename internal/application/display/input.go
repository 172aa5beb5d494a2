package display

// Button is a logical controller button delivered by the input collaborator
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonConfirm
	ButtonBack
	ButtonPause
	ButtonSkip
)

// String returns the string representation of the button
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonConfirm:
		return "Confirm"
	case ButtonBack:
		return "Back"
	case ButtonPause:
		return "Pause"
	case ButtonSkip:
		return "Skip"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a mouse button
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// EventKind selects which State method an Event is delivered to
type EventKind int

const (
	EventButtonPressed EventKind = iota
	EventButtonReleased
	EventMousePressed
	EventMouseReleased
	EventMouseMoved
	EventWindowFocus
)

// Event is one discrete input event. Events are plain values so a frame's
// input can be recorded and replayed.
type Event struct {
	Kind    EventKind   `json:"k"`
	Button  Button      `json:"b,omitempty"`
	Mouse   MouseButton `json:"m,omitempty"`
	X       int         `json:"x,omitempty"`
	Y       int         `json:"y,omitempty"`
	Focused bool        `json:"f,omitempty"`
}

// ButtonPress creates a button press event
func ButtonPress(b Button) Event { return Event{Kind: EventButtonPressed, Button: b} }

// ButtonRelease creates a button release event
func ButtonRelease(b Button) Event { return Event{Kind: EventButtonReleased, Button: b} }

// MousePress creates a mouse press event
func MousePress(b MouseButton, x, y int) Event {
	return Event{Kind: EventMousePressed, Mouse: b, X: x, Y: y}
}

// MouseRelease creates a mouse release event
func MouseRelease(b MouseButton, x, y int) Event {
	return Event{Kind: EventMouseReleased, Mouse: b, X: x, Y: y}
}

// MouseMove creates a cursor move event
func MouseMove(x, y int) Event { return Event{Kind: EventMouseMoved, X: x, Y: y} }

// Focus creates a window focus change event
func Focus(focused bool) Event { return Event{Kind: EventWindowFocus, Focused: focused} }

// Dispatch delivers the event to s
func (e Event) Dispatch(s State) {
	switch e.Kind {
	case EventButtonPressed:
		s.ButtonPressed(e.Button)
	case EventButtonReleased:
		s.ButtonReleased(e.Button)
	case EventMousePressed:
		s.MousePressed(e.Mouse, e.X, e.Y)
	case EventMouseReleased:
		s.MouseReleased(e.Mouse, e.X, e.Y)
	case EventMouseMoved:
		s.MouseMoved(e.X, e.Y)
	case EventWindowFocus:
		s.WindowFocus(e.Focused)
	}
}

package input

// Key is a keyboard key code. Values for printable keys match their ASCII
// upper-case code points, which is also what GLFW reports.
type Key int

// Movement keys
const (
	KeyA Key = 65
	KeyD Key = 68
	KeyS Key = 83
	KeyW Key = 87
)

// Button identifies a pointer button using DOM-style ids.
type Button int

const (
	ButtonLeft   Button = 0
	ButtonMiddle Button = 1
	ButtonRight  Button = 2
)

// Kind is the type of an input event
type Kind uint8

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	KeyDown
	KeyUp
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	}
	return "unknown"
}

// Event is an immutable input record pushed by an event source.
// X and Y are page-space pointer coordinates and are only meaningful for pointer events.
type Event struct {
	Kind   Kind
	Button Button
	X, Y   float32
	Key    Key
}

// MoveTo returns a pointer-move event at page position (x, y)
func MoveTo(x, y float32) Event {
	return Event{Kind: PointerMove, X: x, Y: y}
}

// Press returns a pointer-down event for button b at page position (x, y)
func Press(b Button, x, y float32) Event {
	return Event{Kind: PointerDown, Button: b, X: x, Y: y}
}

// Release returns a pointer-up event for button b at page position (x, y)
func Release(b Button, x, y float32) Event {
	return Event{Kind: PointerUp, Button: b, X: x, Y: y}
}

// KeyPress returns a key-down event
func KeyPress(k Key) Event {
	return Event{Kind: KeyDown, Key: k}
}

// KeyRelease returns a key-up event
func KeyRelease(k Key) Event {
	return Event{Kind: KeyUp, Key: k}
}

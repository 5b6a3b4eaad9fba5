package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-maze/pkg/input"
)

// buttonEvent converts a GLFW mouse button callback into a pointer event.
// Buttons other than left, middle and right are dropped.
func buttonEvent(button glfw.MouseButton, action glfw.Action, x, y float64) (input.Event, bool) {
	var b input.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = input.ButtonLeft
	case glfw.MouseButtonMiddle:
		b = input.ButtonMiddle
	case glfw.MouseButtonRight:
		b = input.ButtonRight
	default:
		return input.Event{}, false
	}

	switch action {
	case glfw.Press:
		return input.Press(b, float32(x), float32(y)), true
	case glfw.Release:
		return input.Release(b, float32(x), float32(y)), true
	}
	return input.Event{}, false
}

// keyEvent converts a GLFW key callback into a key event.
// GLFW key codes for letters and digits are their ASCII values, as are input.Key codes.
// Repeats carry no new state and are dropped.
func keyEvent(key glfw.Key, action glfw.Action) (input.Event, bool) {
	if key == glfw.KeyUnknown {
		return input.Event{}, false
	}

	switch action {
	case glfw.Press:
		return input.KeyPress(input.Key(key)), true
	case glfw.Release:
		return input.KeyRelease(input.Key(key)), true
	}
	return input.Event{}, false
}

// cursorEvent converts a cursor position into a pointer move
func cursorEvent(x, y float64) input.Event {
	return input.MoveTo(float32(x), float32(y))
}

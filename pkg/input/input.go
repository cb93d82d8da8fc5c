// Package input defines the closed set of input events a host delivers to a
// scene, one event per call.
package input

import (
	"fmt"

	"github.com/go-glane/glane/pkg/graphics"
)

// Input is one event from the host's event pump. The set of implementations
// is closed; hosts construct the concrete types below.
type Input interface {
	isInput()
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonEx0
	MouseButtonEx1
)

// String returns a human-readable representation of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonEx0:
		return "ex0"
	case MouseButtonEx1:
		return "ex1"
	default:
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
}

// MouseButtons is the set of buttons held down.
type MouseButtons uint8

// ButtonsOf builds a set from the given buttons.
func ButtonsOf(buttons ...MouseButton) MouseButtons {
	var s MouseButtons
	for _, b := range buttons {
		s |= 1 << uint(b)
	}
	return s
}

// Contains reports whether b is held.
func (s MouseButtons) Contains(b MouseButton) bool {
	return s&(1<<uint(b)) != 0
}

// ButtonState is the transition carried by a button or key event.
type ButtonState int

const (
	Pressed ButtonState = iota
	Released
)

// String returns a human-readable representation of the state.
func (s ButtonState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// MouseState is the pointer position and held buttons at the time of an event.
type MouseState struct {
	Position graphics.Point
	Buttons  MouseButtons
}

// MouseInput is a pointer button press or release.
type MouseInput struct {
	Button      MouseButton
	ButtonState ButtonState
	MouseState  MouseState
}

// CursorMoved is a pointer move.
type CursorMoved struct {
	MouseState MouseState
}

// CursorLeft reports that the pointer left a region it was tracked in.
type CursorLeft struct {
	MouseState MouseState
}

// WheelAxis is the axis a wheel event scrolls.
type WheelAxis int

const (
	WheelVertical WheelAxis = iota
	WheelHorizontal
)

// MouseWheel is a wheel rotation in notches. Positive distance scrolls
// content toward the end of the axis.
type MouseWheel struct {
	Axis       WheelAxis
	Distance   int
	MouseState MouseState
}

// VirtualKey identifies a non-text key.
type VirtualKey int

const (
	KeyUnknown VirtualKey = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyInput is a key press or release.
type KeyInput struct {
	Key   VirtualKey
	State ButtonState
}

// CharInput is one character of typed text. Backspace arrives as '\b'.
type CharInput struct {
	Char rune
}

// Clause is a segment of an IME composition string.
type Clause struct {
	Start, End int // rune offsets into Composition.Chars
	Targeted   bool
}

// Composition is the in-progress IME string.
type Composition struct {
	Chars          []rune
	Clauses        []Clause
	CursorPosition int
}

// String returns the composed text.
func (c Composition) String() string {
	return string(c.Chars)
}

// ImeBeginComposition starts an IME composition session.
type ImeBeginComposition struct{}

// ImeUpdateComposition replaces the in-progress composition.
type ImeUpdateComposition struct {
	Composition Composition
}

// ImeEndComposition ends the session. Result is nil when the composition
// was cancelled.
type ImeEndComposition struct {
	Result *string
}

func (MouseInput) isInput()           {}
func (CursorMoved) isInput()          {}
func (CursorLeft) isInput()           {}
func (MouseWheel) isInput()           {}
func (KeyInput) isInput()             {}
func (CharInput) isInput()            {}
func (ImeBeginComposition) isInput()  {}
func (ImeUpdateComposition) isInput() {}
func (ImeEndComposition) isInput()    {}

// IsPress reports whether in is a pointer button press.
func IsPress(in Input) bool {
	m, ok := in.(MouseInput)
	return ok && m.ButtonState == Pressed
}

// Pointer returns the mouse state carried by pointer events.
func Pointer(in Input) (MouseState, bool) {
	switch v := in.(type) {
	case MouseInput:
		return v.MouseState, true
	case CursorMoved:
		return v.MouseState, true
	case CursorLeft:
		return v.MouseState, true
	case MouseWheel:
		return v.MouseState, true
	}
	return MouseState{}, false
}

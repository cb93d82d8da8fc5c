package testing

import (
	"fmt"

	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// sequence dispatches inputs in order and returns every event they
// produced, in order.
func (t *SceneTester) sequence(ins ...input.Input) (*core.Events, error) {
	all := core.NewEvents()
	for _, in := range ins {
		events, err := t.Input(in)
		if err != nil {
			return all, err
		}
		for _, e := range events.All() {
			all.PushEvent(e)
		}
	}
	return all, nil
}

// MoveTo moves the pointer to pos, keeping held buttons.
func (t *SceneTester) MoveTo(pos graphics.Point) (*core.Events, error) {
	t.mouse.Position = pos
	return t.Input(input.CursorMoved{MouseState: t.mouse})
}

// Leave reports that the pointer left the window.
func (t *SceneTester) Leave() (*core.Events, error) {
	return t.Input(input.CursorLeft{MouseState: t.mouse})
}

// Press moves the pointer to pos and presses button there.
func (t *SceneTester) Press(pos graphics.Point, button input.MouseButton) (*core.Events, error) {
	t.mouse.Position = pos
	t.mouse.Buttons |= input.ButtonsOf(button)
	return t.Input(input.MouseInput{Button: button, ButtonState: input.Pressed, MouseState: t.mouse})
}

// Release moves the pointer to pos and releases button there.
func (t *SceneTester) Release(pos graphics.Point, button input.MouseButton) (*core.Events, error) {
	t.mouse.Position = pos
	t.mouse.Buttons &^= input.ButtonsOf(button)
	return t.Input(input.MouseInput{Button: button, ButtonState: input.Released, MouseState: t.mouse})
}

// ClickAt presses and releases the left button at pos and returns the
// events of both.
func (t *SceneTester) ClickAt(pos graphics.Point) (*core.Events, error) {
	left := input.ButtonsOf(input.MouseButtonLeft)
	down := input.MouseState{Position: pos, Buttons: t.mouse.Buttons | left}
	up := input.MouseState{Position: pos, Buttons: t.mouse.Buttons &^ left}
	t.mouse = up
	return t.sequence(
		input.MouseInput{Button: input.MouseButtonLeft, ButtonState: input.Pressed, MouseState: down},
		input.MouseInput{Button: input.MouseButtonLeft, ButtonState: input.Released, MouseState: up},
	)
}

// Click clicks the center of the first element matched by finder.
func (t *SceneTester) Click(finder Finder) (*core.Events, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return t.events, fmt.Errorf("Click: finder matched no elements: %s", finder.Description())
	}
	return t.ClickAt(center(result.Rect()))
}

// Wheel scrolls vertically by notches with the pointer at pos.
func (t *SceneTester) Wheel(pos graphics.Point, notches int) (*core.Events, error) {
	t.mouse.Position = pos
	return t.Input(input.MouseWheel{Axis: input.WheelVertical, Distance: notches, MouseState: t.mouse})
}

// Type sends each rune of s as a CharInput.
func (t *SceneTester) Type(s string) (*core.Events, error) {
	ins := make([]input.Input, 0, len(s))
	for _, r := range s {
		ins = append(ins, input.CharInput{Char: r})
	}
	return t.sequence(ins...)
}

// Key presses and releases k.
func (t *SceneTester) Key(k input.VirtualKey) (*core.Events, error) {
	return t.sequence(
		input.KeyInput{Key: k, State: input.Pressed},
		input.KeyInput{Key: k, State: input.Released},
	)
}

// Compose sends an IME session: begin, one update per composition, and an
// end committing result. A nil result cancels.
func (t *SceneTester) Compose(result *string, updates ...input.Composition) (*core.Events, error) {
	ins := []input.Input{input.ImeBeginComposition{}}
	for _, c := range updates {
		ins = append(ins, input.ImeUpdateComposition{Composition: c})
	}
	ins = append(ins, input.ImeEndComposition{Result: result})
	return t.sequence(ins...)
}

func center(r graphics.Rect) graphics.Point {
	return graphics.Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

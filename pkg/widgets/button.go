package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
	"github.com/go-glane/glane/pkg/text"
)

// ButtonClicked is emitted when the left button is released over a button.
type ButtonClicked struct{}

// DefaultButtonPadding surrounds a button's label.
var DefaultButtonPadding = graphics.EdgeInsets{Left: 7, Top: 3, Right: 7, Bottom: 3}

// Button is a clickable label.
//
// Button pushes an Area for its frame and a Text for its label, both styled
// by its interaction state. It emits core.StateChanged as the pointer
// enters, presses and leaves, and ButtonClicked on release:
//
//	ok := core.NewHandle(btn)
//	scene.Input(in, events)
//	if _, _, clicked := core.FindMessage[widgets.ButtonClicked](events, ok); clicked {
//	    save()
//	}
type Button struct {
	core.Base
	// Label is the text on the button.
	Label string
	// Font overrides the scene's default font when set.
	Font *text.Font
	// Padding surrounds the label.
	Padding graphics.EdgeInsets

	state core.WidgetState
}

// ButtonOf creates a button with DefaultButtonPadding.
func ButtonOf(label string) *Button {
	return &Button{Base: core.NewBase(), Label: label, Padding: DefaultButtonPadding}
}

// WithFont sets the label font and returns b.
func (b *Button) WithFont(f *text.Font) *Button {
	b.Font = f
	return b
}

// WithPadding sets the padding and returns b.
func (b *Button) WithPadding(p graphics.EdgeInsets) *Button {
	b.Padding = p
	return b
}

// State returns the current interaction state.
func (b *Button) State() core.WidgetState {
	return b.state
}

// Input tracks hover and press against the frame from the last layout.
func (b *Button) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	rect, ok := frame(ctx, b)
	if !ok {
		return core.Continue
	}
	next, ok := hoverState(rect, in)
	if !ok {
		return core.Continue
	}
	if m, isMouse := in.(input.MouseInput); isMouse {
		if m.Button == input.MouseButtonLeft && m.ButtonState == input.Released && next == core.StateHover {
			events.PushMessage(b, ButtonClicked{})
		}
	}
	b.state = events.PushStateChanged(b, next, b.state)
	return core.Continue
}

// Apply implements core.Widget.
func (b *Button) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(b)
}

// Size is the label's extent plus padding.
func (b *Button) Size(lc *core.LayoutContext) graphics.Size {
	r := lc.Ctx.MeasureString(b.Font, b.Label)
	return graphics.Size{
		Width:  r.Right + b.Padding.Horizontal(),
		Height: r.Bottom + b.Padding.Vertical(),
	}
}

// SizeTypes implements core.Widget.
func (b *Button) SizeTypes() core.SizeTypes {
	return core.FixSize
}

// Layout implements core.Widget.
func (b *Button) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	rect := graphics.RectFromPointSize(lc.Rect.LeftTop(), b.Size(lc))
	out.Push(lc, core.NewArea(b, b.state, rect, false))
	out.Push(lc, core.NewText(b, b.state, deflate(rect, b.Padding), lc.Ctx.FontOr(b.Font), b.Label, false))
}

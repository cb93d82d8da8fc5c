package testbed

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// Pressed is emitted when a left press lands inside a LayoutBox.
type Pressed struct{}

// LayoutBox is a fixed-size leaf that pushes one Area and records input.
type LayoutBox struct {
	core.Base
	Width, Height float64
	// Focusable boxes request focus on press.
	Focusable bool

	Seen []input.Input
}

// NewLayoutBox creates a box of the given size.
func NewLayoutBox(width, height float64) *LayoutBox {
	return &LayoutBox{Base: core.NewBase(), Width: width, Height: height}
}

func (b *LayoutBox) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	b.Seen = append(b.Seen, in)
	m, ok := in.(input.MouseInput)
	if !ok || m.Button != input.MouseButtonLeft || m.ButtonState != input.Pressed {
		return core.Continue
	}
	area, ok := core.FirstOf[*core.Area](ctx.Layout(), b)
	if !ok || !area.Rect().Contains(m.MouseState.Position) {
		return core.Continue
	}
	events.PushMessage(b, Pressed{})
	if b.Focusable {
		events.Push(b, core.SetFocus{})
	}
	return core.Continue
}

func (b *LayoutBox) Apply(funcs *core.ApplyFuncs) { funcs.Apply(b) }

func (b *LayoutBox) Size(*core.LayoutContext) graphics.Size {
	return graphics.Size{Width: b.Width, Height: b.Height}
}

func (b *LayoutBox) SizeTypes() core.SizeTypes { return core.FixSize }

func (b *LayoutBox) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	rect := graphics.RectFromPointSize(lc.Rect.LeftTop(), b.Size(lc))
	out.Push(lc, core.NewArea(b, core.StateNone, rect, lc.Selected))
}

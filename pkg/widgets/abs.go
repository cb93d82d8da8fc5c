package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// Abs places its child at an absolute position. It takes no space in its
// parent; the child is offered the region from Position to the bottom-right
// corner of the parent's rectangle.
type Abs struct {
	core.Base
	Child    core.Widget
	Position graphics.Point
}

// AbsOf places child at pos.
func AbsOf(pos graphics.Point, child core.Widget) *Abs {
	return &Abs{Base: core.NewBase(), Child: child, Position: pos}
}

// Input forwards to the child.
func (a *Abs) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	return a.Child.Input(ctx, in, events)
}

// Apply implements core.Widget.
func (a *Abs) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(a)
	a.Child.Apply(funcs)
}

// Size is always zero.
func (a *Abs) Size(*core.LayoutContext) graphics.Size {
	return graphics.Size{}
}

// SizeTypes implements core.Widget.
func (a *Abs) SizeTypes() core.SizeTypes {
	return core.FixSize
}

// Layout implements core.Widget.
func (a *Abs) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	rb := lc.Rect.RightBottom()
	rb.X = max(rb.X, a.Position.X)
	rb.Y = max(rb.Y, a.Position.Y)
	rect := graphics.RectFromPoints(a.Position, rb)
	a.Child.Layout(lc.Next(a, rect, lc.Layer, lc.Selected), out)
}

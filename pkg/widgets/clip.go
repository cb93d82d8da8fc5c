package widgets

import (
	"math"

	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// Clip shows its child through a window the size of the offered rectangle
// and scrolls it vertically with the mouse wheel, one line of the default
// font per notch.
//
// Pointer input outside the window reaches the child as core.CursorLeft so
// content hidden by the clip cannot be hovered or clicked.
type Clip struct {
	core.Base
	Child core.Widget

	offset float64
}

// ClipOf wraps child in a scrolling clip region.
func ClipOf(child core.Widget) *Clip {
	return &Clip{Base: core.NewBase(), Child: child}
}

// Offset returns how far the content is scrolled.
func (c *Clip) Offset() float64 {
	return c.offset
}

// ScrollTo sets the scroll offset. The next layout clamps it to the
// content.
func (c *Clip) ScrollTo(y float64) {
	c.offset = max(0, y)
}

// Input implements core.Widget.
func (c *Clip) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	view, ok := core.FirstOf[*core.Collision](ctx.Layout(), c)
	if !ok {
		return c.Child.Input(ctx, in, events)
	}
	rect := view.Rect()
	ms, pointer := input.Pointer(in)
	if !pointer || rect.Contains(ms.Position) {
		if w, ok := in.(input.MouseWheel); ok && w.Axis == input.WheelVertical {
			c.scroll(ctx, rect, w.Distance)
		}
		return c.Child.Input(ctx, in, events)
	}
	return c.Child.Input(ctx, input.CursorLeft{MouseState: ms}, events)
}

func (c *Clip) scroll(ctx *core.Context, view graphics.Rect, notches int) {
	if notches > 0 {
		bottom := view.Top
		for e := range ctx.Layout().FindByAncestor(c) {
			bottom = max(bottom, e.Rect().Bottom)
		}
		if bottom <= view.Bottom {
			return
		}
	}
	line := ctx.FontBounds(nil).Height
	c.offset = max(0, c.offset+float64(notches)*line)
}

// Apply implements core.Widget.
func (c *Clip) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(c)
	c.Child.Apply(funcs)
}

// Size fills the offered rectangle.
func (c *Clip) Size(lc *core.LayoutContext) graphics.Size {
	return lc.Rect.Size()
}

// SizeTypes implements core.Widget.
func (c *Clip) SizeTypes() core.SizeTypes {
	return core.FlexibleSize
}

// Layout brackets the child, shifted up by the scroll offset, in a clip
// region. A Collision marks the window for hit testing.
func (c *Clip) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	view := lc.Rect
	height := max(c.contentHeight(lc), view.Height())
	offset := min(c.offset, height-view.Height())

	out.Push(lc, core.NewStartClipping(c, view))
	out.Push(lc, core.NewCollision(c, core.StateNone, view))
	rect := graphics.RectFromLTWH(view.Left, view.Top-offset, view.Width(), height)
	c.Child.Layout(lc.Next(c, rect, lc.Layer, lc.Selected), out)
	out.Push(lc, core.NewEndClipping(c, view))
}

// contentHeight measures a Fix-height child without a height limit. A
// Flexible child fills the window.
func (c *Clip) contentHeight(lc *core.LayoutContext) float64 {
	view := lc.Rect
	if c.Child.SizeTypes().Height == core.Flexible {
		return view.Height()
	}
	open := graphics.RectFromLTWH(view.Left, view.Top, view.Width(), math.Inf(1))
	return c.Child.Size(lc.WithRect(open)).Height
}

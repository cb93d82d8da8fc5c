package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// Padding adds empty space around its child.
//
// The child is measured and laid out against the offered rectangle minus
// the insets, so a Flexible child still fills what remains:
//
//	widgets.PaddingOf(graphics.Symmetric(8, 4), widgets.TextOf("label"))
type Padding struct {
	core.Base
	Child  core.Widget
	Insets graphics.EdgeInsets
}

// PaddingOf wraps child with insets.
func PaddingOf(insets graphics.EdgeInsets, child core.Widget) *Padding {
	return &Padding{Base: core.NewBase(), Child: child, Insets: insets}
}

// Input forwards to the child.
func (p *Padding) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	return p.Child.Input(ctx, in, events)
}

func (p *Padding) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(p)
	p.Child.Apply(funcs)
}

// Size is the child's size plus the insets.
func (p *Padding) Size(lc *core.LayoutContext) graphics.Size {
	s := p.Child.Size(lc.WithRect(deflate(lc.Rect, p.Insets)))
	return graphics.Size{
		Width:  s.Width + p.Insets.Horizontal(),
		Height: s.Height + p.Insets.Vertical(),
	}
}

func (p *Padding) SizeTypes() core.SizeTypes {
	return p.Child.SizeTypes()
}

func (p *Padding) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	rect := graphics.RectFromPointSize(lc.Rect.LeftTop(), p.Size(lc))
	p.Child.Layout(lc.Next(p, deflate(rect, p.Insets), lc.Layer, lc.Selected), out)
}

package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// MaxSize caps its child's size. A zero limit on an axis leaves that axis
// unbounded.
type MaxSize struct {
	core.Base
	Child  core.Widget
	Width  float64
	Height float64
}

// MaxSizeOf wraps child with the given limits.
func MaxSizeOf(width, height float64, child core.Widget) *MaxSize {
	return &MaxSize{Base: core.NewBase(), Child: child, Width: width, Height: height}
}

// Input forwards to the child.
func (m *MaxSize) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	return m.Child.Input(ctx, in, events)
}

// Apply implements core.Widget.
func (m *MaxSize) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(m)
	m.Child.Apply(funcs)
}

// Size is the child's size clamped to the limits.
func (m *MaxSize) Size(lc *core.LayoutContext) graphics.Size {
	s := m.Child.Size(lc)
	if m.Width > 0 {
		s.Width = min(s.Width, m.Width)
	}
	if m.Height > 0 {
		s.Height = min(s.Height, m.Height)
	}
	return s
}

// SizeTypes reports the child's size types.
func (m *MaxSize) SizeTypes() core.SizeTypes {
	return m.Child.SizeTypes()
}

// Layout lays the child out in the clamped rectangle at the offered origin.
func (m *MaxSize) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	rect := graphics.RectFromPointSize(lc.Rect.LeftTop(), m.Size(lc))
	m.Child.Layout(lc.Next(m, rect, lc.Layer, lc.Selected), out)
}

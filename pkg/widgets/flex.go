package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// DefaultSpace is the gap Row and Column leave between children.
const DefaultSpace = 10

// Row lays out its children left to right.
//
// Fix-width children keep their measured width; Flexible-width children
// share the rest equally. The row's height is that of its tallest Fix
// child.
type Row struct {
	core.Base
	core.Children
	// Space is the gap between adjacent children.
	Space float64
	// MaxWidth caps each child's width. Zero means no cap.
	MaxWidth float64
}

// RowOf creates a row with DefaultSpace holding children in order.
func RowOf(children ...core.Widget) *Row {
	r := &Row{Base: core.NewBase(), Space: DefaultSpace}
	for _, c := range children {
		r.Push(c)
	}
	return r
}

func (r *Row) flex() core.Flex {
	return core.Flex{Axis: core.Horizontal, Space: r.Space, MaxExtent: r.MaxWidth}
}

// Input dispatches to children in order.
func (r *Row) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	return core.DispatchInput(r.Items(), ctx, in, events)
}

// Apply runs queued mutations for the row, then for its children.
func (r *Row) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(r)
	core.ApplyEach(funcs, r.Items())
}

// Size implements core.Widget.
func (r *Row) Size(lc *core.LayoutContext) graphics.Size {
	return r.flex().Measure(lc, r.Items())
}

// SizeTypes is Flexible on an axis when any child is.
func (r *Row) SizeTypes() core.SizeTypes {
	return core.FoldSizeTypes(r.Items())
}

// Layout implements core.Widget.
func (r *Row) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	r.flex().LayoutChildren(r, lc, r.Items(), out)
}

// Column lays out its children top to bottom. It is the vertical
// counterpart of Row.
type Column struct {
	core.Base
	core.Children
	// Space is the gap between adjacent children.
	Space float64
	// MaxHeight caps each child's height. Zero means no cap.
	MaxHeight float64
}

// ColumnOf creates a column with DefaultSpace holding children in order.
func ColumnOf(children ...core.Widget) *Column {
	c := &Column{Base: core.NewBase(), Space: DefaultSpace}
	for _, child := range children {
		c.Push(child)
	}
	return c
}

func (c *Column) flex() core.Flex {
	return core.Flex{Axis: core.Vertical, Space: c.Space, MaxExtent: c.MaxHeight}
}

// Input dispatches to children in order.
func (c *Column) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	return core.DispatchInput(c.Items(), ctx, in, events)
}

// Apply runs queued mutations for the column, then for its children.
func (c *Column) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(c)
	core.ApplyEach(funcs, c.Items())
}

// Size implements core.Widget.
func (c *Column) Size(lc *core.LayoutContext) graphics.Size {
	return c.flex().Measure(lc, c.Items())
}

// SizeTypes is Flexible on an axis when any child is.
func (c *Column) SizeTypes() core.SizeTypes {
	return core.FoldSizeTypes(c.Items())
}

// Layout implements core.Widget.
func (c *Column) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	c.flex().LayoutChildren(c, lc, c.Items(), out)
}

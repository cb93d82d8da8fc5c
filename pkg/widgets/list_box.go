package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// ListSelected is emitted when a press selects the item at Index.
type ListSelected struct {
	Index int
}

// DefaultListPadding surrounds a list's items.
var DefaultListPadding = graphics.EdgeInsets{Left: 5, Top: 2, Right: 5, Bottom: 2}

// listItem wraps a ListBox child with a Collision covering its row, so a
// press can be mapped back to an index from the previous layout.
type listItem struct {
	core.Base
	child core.Widget
}

func (it *listItem) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	return it.child.Input(ctx, in, events)
}

func (it *listItem) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(it)
	it.child.Apply(funcs)
}

func (it *listItem) Size(lc *core.LayoutContext) graphics.Size {
	return it.child.Size(lc)
}

func (it *listItem) SizeTypes() core.SizeTypes {
	return it.child.SizeTypes()
}

func (it *listItem) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	out.Push(lc, core.NewCollision(it, core.StateNone, lc.Rect))
	it.child.Layout(lc.Next(it, lc.Rect, lc.Layer, lc.Selected), out)
}

// ListBox is a vertically scrolling list with single selection.
//
// Items are stacked at their measured heights and stretched to the list's
// width. A press on an item selects it and emits ListSelected; the wheel
// scrolls by the height of the shortest item.
type ListBox struct {
	core.Base
	// Padding surrounds the items.
	Padding graphics.EdgeInsets

	items    []*listItem
	selected int
	state    core.WidgetState
	offset   float64
}

// NewListBox creates an empty list with nothing selected.
func NewListBox() *ListBox {
	return &ListBox{Base: core.NewBase(), Padding: DefaultListPadding, selected: -1}
}

// Len implements core.HasChildren.
func (l *ListBox) Len() int {
	return len(l.items)
}

// Push appends an item.
func (l *ListBox) Push(child core.Widget) {
	l.items = append(l.items, &listItem{Base: core.NewBase(), child: child})
}

// Erase removes an item. The selection stays on the same item when it
// survives, and moves to the previous one when it is the item erased.
func (l *ListBox) Erase(child core.HasID) {
	for i, it := range l.items {
		if it.child.ID() != child.ID() {
			continue
		}
		l.items = append(l.items[:i], l.items[i+1:]...)
		switch {
		case len(l.items) == 0:
			l.selected = -1
		case l.selected > i || (l.selected == i && i > 0):
			l.selected--
		}
		return
	}
}

// Clear removes every item and resets selection and scroll.
func (l *ListBox) Clear() {
	l.items = nil
	l.selected = -1
	l.offset = 0
}

// Item returns the child at i.
func (l *ListBox) Item(i int) (core.Widget, bool) {
	if i < 0 || i >= len(l.items) {
		return nil, false
	}
	return l.items[i].child, true
}

// Selected returns the selected index.
func (l *ListBox) Selected() (int, bool) {
	return l.selected, l.selected >= 0
}

// SelectedItem returns the selected child.
func (l *ListBox) SelectedItem() (core.Widget, bool) {
	return l.Item(l.selected)
}

// Select selects the item at i; a negative i clears the selection.
// Out-of-range indexes are ignored.
func (l *ListBox) Select(i int) {
	if i >= len(l.items) {
		return
	}
	l.selected = max(i, -1)
}

// Input implements core.Widget.
func (l *ListBox) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	view, ok := frame(ctx, l)
	if !ok {
		return core.Continue
	}
	switch in := in.(type) {
	case input.MouseInput:
		if in.Button != input.MouseButtonLeft || in.ButtonState != input.Pressed || !view.Contains(in.MouseState.Position) {
			break
		}
		events.Push(l, core.SetFocus{})
		for i, it := range l.items {
			c, ok := core.FirstOf[*core.Collision](ctx.Layout(), it)
			if !ok {
				continue
			}
			if r := c.Rect().Intersect(view); !r.IsEmpty() && r.Contains(in.MouseState.Position) {
				l.selected = i
				events.PushMessage(l, ListSelected{Index: i})
				break
			}
		}
	case input.CursorMoved, input.CursorLeft:
		if next, ok := hoverState(view, in); ok {
			l.state = events.PushStateChanged(l, next, l.state)
		}
	case input.MouseWheel:
		if in.Axis == input.WheelVertical && view.Contains(in.MouseState.Position) {
			l.scroll(ctx, view, in.Distance)
		}
	}
	return core.Continue
}

func (l *ListBox) scroll(ctx *core.Context, view graphics.Rect, notches int) {
	step := 0.0
	bottom := view.Top
	for _, it := range l.items {
		c, ok := core.FirstOf[*core.Collision](ctx.Layout(), it)
		if !ok {
			continue
		}
		h := c.Rect().Height()
		if step == 0 || h < step {
			step = h
		}
		bottom = max(bottom, c.Rect().Bottom)
	}
	if notches > 0 && bottom <= view.Bottom-l.Padding.Bottom {
		return
	}
	l.offset = max(0, l.offset+float64(notches)*step)
}

// Apply implements core.Widget.
func (l *ListBox) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(l)
	for _, it := range l.items {
		it.Apply(funcs)
	}
}

// Size fills the offered rectangle.
func (l *ListBox) Size(lc *core.LayoutContext) graphics.Size {
	return lc.Rect.Size()
}

// SizeTypes implements core.Widget.
func (l *ListBox) SizeTypes() core.SizeTypes {
	return core.FlexibleSize
}

// Layout implements core.Widget.
func (l *ListBox) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	inner := deflate(lc.Rect, l.Padding)
	heights := make([]float64, len(l.items))
	var total float64
	for i, it := range l.items {
		heights[i] = it.Size(lc).Height
		total += heights[i]
	}
	offset := min(l.offset, max(0, total-inner.Height()))

	out.Push(lc, core.NewStartClipping(l, lc.Rect))
	out.Push(lc, core.NewArea(l, l.state, lc.Rect, false))
	y := inner.Top - offset
	for i, it := range l.items {
		row := graphics.RectFromLTWH(inner.Left, y, inner.Width(), heights[i])
		selected := i == l.selected
		if selected {
			out.Push(lc, core.NewArea(l, core.StateNone, row, true))
		}
		it.Layout(lc.Next(l, row, lc.Layer, selected), out)
		y += heights[i]
	}
	out.Push(lc, core.NewEndClipping(l, lc.Rect))
}

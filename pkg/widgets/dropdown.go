package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// DropdownSelected is emitted when an item is picked from the open list.
type DropdownSelected struct {
	Index int
}

// DropdownOpened is emitted when the list opens.
type DropdownOpened struct{}

// DropdownClosed is emitted when the list closes.
type DropdownClosed struct{}

// DefaultDropdownPadding surrounds the selected item in the box.
var DefaultDropdownPadding = graphics.EdgeInsets{Left: 5, Top: 3, Right: 5, Bottom: 3}

// DefaultDropdownListHeight is the open list's height when ListHeight is
// zero.
const DefaultDropdownListHeight = 100

// Dropdown shows its selected item in a box and opens a ListBox of all
// items below it on press.
//
// The open list is laid out one layer above the box so it paints over
// siblings. While open the dropdown claims input: it forwards to the list,
// replaces the list's ListSelected with its own DropdownSelected followed
// by DropdownClosed, and returns core.Break.
type Dropdown struct {
	core.Base
	// Padding surrounds the selected item in the box.
	Padding graphics.EdgeInsets
	// ListWidth and ListHeight size the open list. Zero width matches the
	// box; zero height uses DefaultDropdownListHeight.
	ListWidth  float64
	ListHeight float64

	list  *ListBox
	open  bool
	state core.WidgetState
}

// NewDropdown creates a dropdown with a Text item per string. The first
// item is selected.
func NewDropdown(items ...string) *Dropdown {
	d := &Dropdown{Base: core.NewBase(), Padding: DefaultDropdownPadding, list: NewListBox()}
	for _, s := range items {
		d.Push(TextOf(s))
	}
	return d
}

// Len implements core.HasChildren.
func (d *Dropdown) Len() int {
	return d.list.Len()
}

// Push appends an item. The first item pushed becomes selected.
func (d *Dropdown) Push(child core.Widget) {
	d.list.Push(child)
	if d.list.Len() == 1 {
		d.list.Select(0)
	}
}

// Erase removes an item.
func (d *Dropdown) Erase(child core.HasID) {
	d.list.Erase(child)
}

// Clear closes the list and removes every item.
func (d *Dropdown) Clear() {
	d.open = false
	d.list.Clear()
}

// Selected returns the selected index.
func (d *Dropdown) Selected() (int, bool) {
	return d.list.Selected()
}

// Select selects the item at i.
func (d *Dropdown) Select(i int) {
	d.list.Select(i)
}

// IsOpen reports whether the list is shown.
func (d *Dropdown) IsOpen() bool {
	return d.open
}

// Input implements core.Widget.
func (d *Dropdown) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	wasOpen := d.open
	if rect, ok := frame(ctx, d); ok {
		d.track(ctx, rect, in, events)
	}
	if d.open != wasOpen {
		if d.open {
			events.PushMessage(d, DropdownOpened{})
		} else {
			events.PushMessage(d, DropdownClosed{})
		}
	}
	if !wasOpen {
		return core.Continue
	}

	d.list.Input(ctx, in, events)
	if i, sel, ok := core.FindMessage[ListSelected](events, d.list); ok {
		events.Remove(i)
		d.open = false
		events.PushMessage(d, DropdownSelected{Index: sel.Index})
		events.PushMessage(d, DropdownClosed{})
	}
	return core.Break
}

func (d *Dropdown) track(ctx *core.Context, rect graphics.Rect, in input.Input, events *core.Events) {
	switch in := in.(type) {
	case input.CursorMoved:
		next := core.StateNone
		if rect.Contains(in.MouseState.Position) {
			next = core.StateHover
		}
		d.state = events.PushStateChanged(d, next, d.state)
	case input.MouseInput:
		p := in.MouseState.Position
		if !rect.Contains(p) {
			if list, ok := frame(ctx, d.list); ok && in.ButtonState == input.Pressed && !list.Contains(p) {
				d.open = false
			}
			return
		}
		if in.Button != input.MouseButtonLeft {
			return
		}
		if in.ButtonState == input.Pressed {
			d.state = events.PushStateChanged(d, core.StatePressed, d.state)
			d.open = !d.open
		} else {
			d.state = events.PushStateChanged(d, core.StateHover, d.state)
		}
	}
}

// Apply implements core.Widget.
func (d *Dropdown) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(d)
	d.list.Apply(funcs)
}

// Size fills the offered width; the height fits the selected item, or a
// line of the default font when nothing is selected, plus padding.
func (d *Dropdown) Size(lc *core.LayoutContext) graphics.Size {
	h := lc.Ctx.FontBounds(nil).Height
	if item, ok := d.list.SelectedItem(); ok {
		h = item.Size(lc).Height
	}
	return graphics.Size{Width: lc.Rect.Width(), Height: h + d.Padding.Vertical()}
}

// SizeTypes is Flexible in width.
func (d *Dropdown) SizeTypes() core.SizeTypes {
	return core.SizeTypes{Width: core.Flexible, Height: core.Fix}
}

// Layout pushes the box and the selected item and, when open, the list
// below the box on the next layer.
func (d *Dropdown) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	size := d.Size(lc)
	box := graphics.RectFromPointSize(lc.Rect.LeftTop(), size)
	out.Push(lc, core.NewArea(d, d.state, box, false))
	if item, ok := d.list.SelectedItem(); ok {
		item.Layout(lc.Next(d, deflate(box, d.Padding), lc.Layer, lc.Selected), out)
	}
	if !d.open {
		return
	}
	listSize := graphics.Size{Width: d.ListWidth, Height: d.ListHeight}
	if listSize.Width <= 0 {
		listSize.Width = size.Width
	}
	if listSize.Height <= 0 {
		listSize.Height = DefaultDropdownListHeight
	}
	rect := graphics.RectFromPointSize(box.LeftBottom(), listSize)
	d.list.Layout(lc.Next(d, rect, lc.Layer+1, lc.Selected), out)
}

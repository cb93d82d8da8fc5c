package core

import (
	"fmt"
	"slices"

	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// ControlFlow tells a container whether to keep dispatching input to the
// remaining children.
type ControlFlow int

const (
	// Continue lets dispatch proceed. It is the zero value.
	Continue ControlFlow = iota
	// Break stops dispatch to the remaining siblings in the current
	// container. Widgets owning a visible overlay return it to claim the
	// frame's input.
	Break
)

func (c ControlFlow) String() string {
	if c == Break {
		return "break"
	}
	return "continue"
}

// SizeType declares whether an extent is intrinsic or elastic.
type SizeType int

const (
	// Fix extents are content-derived and measured bottom-up.
	Fix SizeType = iota
	// Flexible extents share the space left over by Fix siblings.
	Flexible
)

func (s SizeType) String() string {
	switch s {
	case Fix:
		return "fix"
	case Flexible:
		return "flexible"
	default:
		return fmt.Sprintf("SizeType(%d)", int(s))
	}
}

// SizeTypes declares a SizeType per axis.
type SizeTypes struct {
	Width  SizeType
	Height SizeType
}

// FixSize is Fix on both axes.
var FixSize = SizeTypes{Width: Fix, Height: Fix}

// FlexibleSize is Flexible on both axes.
var FlexibleSize = SizeTypes{Width: Flexible, Height: Flexible}

// Widget is a node in the retained tree.
//
// Input and Layout receive the frame's shared state; neither may change the
// tree's structure. Structural changes go through the ApplyFuncs queue,
// which runs in Apply before any traversal starts.
type Widget interface {
	HasID

	// Input reacts to one input event. It may emit events and update the
	// widget's own non-structural state.
	Input(ctx *Context, in input.Input, events *Events) ControlFlow

	// Apply runs queued mutations targeting this widget, then recurses into
	// children.
	Apply(funcs *ApplyFuncs)

	// Size measures the widget against lc.Rect. It must be idempotent and
	// free of side effects; containers call it more than once per pass.
	Size(lc *LayoutContext) graphics.Size

	// SizeTypes declares per axis whether Size is intrinsic or elastic.
	SizeTypes() SizeTypes

	// Layout pushes the widget's elements, and its children's, into out.
	Layout(lc *LayoutContext, out *LayoutConstructor)
}

// HasChildren is implemented by containers. It is only called from apply
// closures, never during a traversal.
type HasChildren interface {
	Len() int
	Push(child Widget)
	Erase(child HasID)
}

// Children is an owned child list with the HasChildren operations.
// Containers embed it.
type Children struct {
	items []Widget
}

// Len returns the number of children.
func (c *Children) Len() int {
	return len(c.items)
}

// Push appends a child.
func (c *Children) Push(child Widget) {
	c.items = append(c.items, child)
}

// Erase removes the child with child's id. Unknown ids are ignored.
func (c *Children) Erase(child HasID) {
	for i, w := range c.items {
		if w.ID() == child.ID() {
			c.items = slices.Delete(c.items, i, i+1)
			return
		}
	}
}

// Items returns the children in order. The slice must not be modified.
func (c *Children) Items() []Widget {
	return c.items
}

// DispatchInput sends in to children in order, stopping at the first Break.
func DispatchInput(children []Widget, ctx *Context, in input.Input, events *Events) ControlFlow {
	for _, child := range children {
		if child.Input(ctx, in, events) == Break {
			return Break
		}
	}
	return Continue
}

// ApplyEach recurses the queue into children. Containers call it after
// funcs.Apply(self) and must read their child list only after that call,
// so children pushed by self's entries are reached in the same walk:
//
//	func (r *Row) Apply(funcs *core.ApplyFuncs) {
//	    funcs.Apply(r)
//	    core.ApplyEach(funcs, r.Items())
//	}
func ApplyEach(funcs *ApplyFuncs, children []Widget) {
	for _, child := range children {
		child.Apply(funcs)
	}
}

// FoldSizeTypes combines children's size types; Flexible dominates on each
// axis. An empty list folds to FixSize.
func FoldSizeTypes(children []Widget) SizeTypes {
	result := FixSize
	for _, child := range children {
		st := child.SizeTypes()
		if st.Width == Flexible {
			result.Width = Flexible
		}
		if st.Height == Flexible {
			result.Height = Flexible
		}
	}
	return result
}

// WidgetState is the pointer interaction state a renderer styles by.
type WidgetState int

const (
	StateNone WidgetState = iota
	StateHover
	StatePressed
)

func (s WidgetState) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateHover:
		return "hover"
	case StatePressed:
		return "pressed"
	default:
		return fmt.Sprintf("WidgetState(%d)", int(s))
	}
}

// CurrentState derives the interaction state of rect from the pointer.
func CurrentState(rect graphics.Rect, ms input.MouseState) WidgetState {
	if !rect.Contains(ms.Position) {
		return StateNone
	}
	if ms.Buttons.Contains(input.MouseButtonLeft) {
		return StatePressed
	}
	return StateHover
}

package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// deflate insets r, collapsing to an empty rectangle at the inset origin
// instead of going negative.
func deflate(r graphics.Rect, in graphics.EdgeInsets) graphics.Rect {
	d := r.Deflate(in)
	d.Right = max(d.Right, d.Left)
	d.Bottom = max(d.Bottom, d.Top)
	return d
}

// frame returns the first Area the widget pushed in the last layout.
func frame(ctx *core.Context, w core.HasID) (graphics.Rect, bool) {
	a, ok := core.FirstOf[*core.Area](ctx.Layout(), w)
	if !ok {
		return graphics.Rect{}, false
	}
	return a.Rect(), true
}

// hoverState derives the next interaction state of rect for pointer input.
// ok is false for input that carries no pointer.
func hoverState(rect graphics.Rect, in input.Input) (core.WidgetState, bool) {
	ms, ok := input.Pointer(in)
	if !ok {
		return core.StateNone, false
	}
	if _, left := in.(input.CursorLeft); left {
		return core.StateNone, true
	}
	return core.CurrentState(rect, ms), true
}

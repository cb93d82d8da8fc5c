// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// Counter displays a count and increments it on every left release inside
// its frame.
type Counter struct {
	core.Base
	Count int
}

// NewCounter creates a counter starting at initial.
func NewCounter(initial int) *Counter {
	return &Counter{Base: core.NewBase(), Count: initial}
}

func (c *Counter) Input(ctx *core.Context, in input.Input, _ *core.Events) core.ControlFlow {
	m, ok := in.(input.MouseInput)
	if !ok || m.Button != input.MouseButtonLeft || m.ButtonState != input.Released {
		return core.Continue
	}
	if area, ok := core.FirstOf[*core.Area](ctx.Layout(), c); ok && area.Rect().Contains(m.MouseState.Position) {
		c.Count++
	}
	return core.Continue
}

func (c *Counter) Apply(funcs *core.ApplyFuncs) { funcs.Apply(c) }

func (c *Counter) Size(lc *core.LayoutContext) graphics.Size {
	return lc.Ctx.MeasureString(nil, c.label()).Size()
}

func (c *Counter) SizeTypes() core.SizeTypes { return core.FixSize }

func (c *Counter) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	rect := graphics.RectFromPointSize(lc.Rect.LeftTop(), c.Size(lc))
	out.Push(lc, core.NewArea(c, core.StateNone, rect, false))
	out.Push(lc, core.NewText(c, core.StateNone, rect, nil, c.label(), false))
}

func (c *Counter) label() string {
	return "Count: " + strconv.Itoa(c.Count)
}

package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
	"github.com/go-glane/glane/pkg/text"
)

// CheckBoxClicked is emitted when a release over a check box toggles it.
// Checked is the value after the toggle.
type CheckBoxClicked struct {
	Checked bool
}

// DefaultCheckBoxSpacing separates the box from its label.
const DefaultCheckBoxSpacing = 10

// CheckMark owns the Area a CheckBox pushes over its box while checked.
// Renderers draw the mark by matching the element owner's tag against
// *CheckMark.
type CheckMark struct {
	core.Base
}

func (m *CheckMark) Input(*core.Context, input.Input, *core.Events) core.ControlFlow {
	return core.Continue
}

func (m *CheckMark) Apply(funcs *core.ApplyFuncs) { funcs.Apply(m) }

func (m *CheckMark) Size(*core.LayoutContext) graphics.Size { return graphics.Size{} }

func (m *CheckMark) SizeTypes() core.SizeTypes { return core.FixSize }

func (m *CheckMark) Layout(*core.LayoutContext, *core.LayoutConstructor) {}

// CheckBox is a square box followed by a label. A left release anywhere over
// the box or the label flips it and emits CheckBoxClicked.
//
// The box is as wide as the label is tall.
type CheckBox struct {
	core.Base
	Label   string
	Font    *text.Font
	Spacing float64

	checked bool
	mark    *CheckMark
	state   core.WidgetState
}

// CheckBoxOf creates a check box with DefaultCheckBoxSpacing.
func CheckBoxOf(label string, checked bool) *CheckBox {
	return &CheckBox{
		Base:    core.NewBase(),
		Label:   label,
		Spacing: DefaultCheckBoxSpacing,
		checked: checked,
		mark:    &CheckMark{Base: core.NewBase()},
	}
}

// Checked reports whether the box is checked.
func (c *CheckBox) Checked() bool {
	return c.checked
}

// SetChecked sets the value without emitting CheckBoxClicked.
func (c *CheckBox) SetChecked(checked bool) {
	c.checked = checked
}

// State returns the current interaction state.
func (c *CheckBox) State() core.WidgetState {
	return c.state
}

// Mark returns the widget that owns the checked mark's Area.
func (c *CheckBox) Mark() *CheckMark {
	return c.mark
}

// bounds spans the box and the label from the last layout.
func (c *CheckBox) bounds(ctx *core.Context) (graphics.Rect, bool) {
	box, ok := frame(ctx, c)
	if !ok {
		return graphics.Rect{}, false
	}
	if label, ok := core.FirstOf[*core.Text](ctx.Layout(), c); ok {
		box.Right = label.Rect().Right
	}
	return box, true
}

func (c *CheckBox) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	rect, ok := c.bounds(ctx)
	if !ok {
		return core.Continue
	}
	next, ok := hoverState(rect, in)
	if !ok {
		return core.Continue
	}
	if m, isMouse := in.(input.MouseInput); isMouse {
		if m.Button == input.MouseButtonLeft && m.ButtonState == input.Released && next == core.StateHover {
			c.checked = !c.checked
			events.PushMessage(c, CheckBoxClicked{Checked: c.checked})
		}
	}
	c.state = events.PushStateChanged(c, next, c.state)
	return core.Continue
}

func (c *CheckBox) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(c)
}

func (c *CheckBox) Size(lc *core.LayoutContext) graphics.Size {
	r := lc.Ctx.MeasureString(c.Font, c.Label)
	return graphics.Size{Width: r.Bottom + c.Spacing + r.Right, Height: r.Bottom}
}

func (c *CheckBox) SizeTypes() core.SizeTypes {
	return core.FixSize
}

func (c *CheckBox) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	r := lc.Ctx.MeasureString(c.Font, c.Label)
	side := r.Bottom
	origin := lc.Rect.LeftTop()
	box := graphics.RectFromLTWH(origin.X, origin.Y, side, side)
	out.Push(lc, core.NewArea(c, c.state, box, false))
	if c.checked {
		out.Push(lc, core.NewArea(c.mark, c.state, box, false))
	}
	label := graphics.RectFromLTWH(box.Right+c.Spacing, origin.Y, r.Right, side)
	out.Push(lc, core.NewText(c, c.state, label, lc.Ctx.FontOr(c.Font), c.Label, false))
}

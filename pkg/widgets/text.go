package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
	"github.com/go-glane/glane/pkg/text"
)

// Text displays a single run of text at its measured size.
type Text struct {
	core.Base
	// Content is the displayed string.
	Content string
	// Font overrides the scene's default font when set.
	Font *text.Font
}

// TextOf creates a text widget showing s.
func TextOf(s string) *Text {
	return &Text{Base: core.NewBase(), Content: s}
}

// WithFont sets the font and returns t.
func (t *Text) WithFont(f *text.Font) *Text {
	t.Font = f
	return t
}

// Input implements core.Widget. Text ignores input.
func (t *Text) Input(*core.Context, input.Input, *core.Events) core.ControlFlow {
	return core.Continue
}

// Apply implements core.Widget.
func (t *Text) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(t)
}

// Size is the measured extent of Content.
func (t *Text) Size(lc *core.LayoutContext) graphics.Size {
	return lc.Ctx.MeasureString(t.Font, t.Content).Size()
}

// SizeTypes implements core.Widget.
func (t *Text) SizeTypes() core.SizeTypes {
	return core.FixSize
}

// Layout pushes one Text element at the offered origin.
func (t *Text) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	rect := graphics.RectFromPointSize(lc.Rect.LeftTop(), t.Size(lc))
	out.Push(lc, core.NewText(t, core.StateNone, rect, lc.Ctx.FontOr(t.Font), t.Content, lc.Selected))
}

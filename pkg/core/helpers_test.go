package core

import (
	"testing"

	"github.com/go-glane/glane/pkg/errors"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// box is a leaf with a declared size. It pushes one Text element covering
// its rectangle and records every input it sees.
type box struct {
	Base
	w, h    float64
	types   SizeTypes
	label   string
	seen    []input.Input
	onInput func(ctx *Context, in input.Input, events *Events) ControlFlow
}

func newBox(w, h float64) *box {
	return &box{Base: NewBase(), w: w, h: h, types: FixSize}
}

func newFlexBox(types SizeTypes) *box {
	return &box{Base: NewBase(), types: types}
}

func (b *box) Input(ctx *Context, in input.Input, events *Events) ControlFlow {
	b.seen = append(b.seen, in)
	if b.onInput != nil {
		return b.onInput(ctx, in, events)
	}
	return Continue
}

func (b *box) Apply(funcs *ApplyFuncs) {
	funcs.Apply(b)
}

func (b *box) Size(lc *LayoutContext) graphics.Size {
	s := graphics.Size{Width: b.w, Height: b.h}
	if b.types.Width == Flexible {
		s.Width = lc.Rect.Width()
	}
	if b.types.Height == Flexible {
		s.Height = lc.Rect.Height()
	}
	return s
}

func (b *box) SizeTypes() SizeTypes {
	return b.types
}

func (b *box) Layout(lc *LayoutContext, out *LayoutConstructor) {
	rect := graphics.RectFromPointSize(lc.Rect.LeftTop(), lc.Rect.Size())
	out.Push(lc, NewText(b, StateNone, rect, nil, b.label, lc.Selected))
}

// otherBox is a distinct concrete type for downcast tests.
type otherBox struct {
	box
}

// row is a minimal horizontal flex container.
type row struct {
	Base
	Children
	flex Flex
}

func newRow(space float64, children ...Widget) *row {
	r := &row{Base: NewBase(), flex: Flex{Axis: Horizontal, Space: space}}
	for _, c := range children {
		r.Push(c)
	}
	return r
}

func (r *row) Input(ctx *Context, in input.Input, events *Events) ControlFlow {
	return DispatchInput(r.Items(), ctx, in, events)
}

func (r *row) Apply(funcs *ApplyFuncs) {
	funcs.Apply(r)
	ApplyEach(funcs, r.Items())
}

func (r *row) Size(lc *LayoutContext) graphics.Size {
	return r.flex.Measure(lc, r.Items())
}

func (r *row) SizeTypes() SizeTypes {
	return FoldSizeTypes(r.Items())
}

func (r *row) Layout(lc *LayoutContext, out *LayoutConstructor) {
	r.flex.LayoutChildren(r, lc, r.Items(), out)
}

// captureHandler collects reported errors for the duration of a test.
type captureHandler struct {
	errors []*errors.EngineError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.EngineError) {
	h.errors = append(h.errors, err)
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}

func captureErrors(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func rootContext(w, h float64) *LayoutContext {
	ctx := &Context{viewport: graphics.Size{Width: w, Height: h}, layout: EmptyLayout()}
	return RootLayoutContext(ctx)
}

func press(x, y float64) input.MouseInput {
	return input.MouseInput{
		Button:      input.MouseButtonLeft,
		ButtonState: input.Pressed,
		MouseState: input.MouseState{
			Position: graphics.Point{X: x, Y: y},
			Buttons:  input.ButtonsOf(input.MouseButtonLeft),
		},
	}
}

// label measures its string with the scene's measurer.
type label struct {
	Base
	text string
}

func newLabel(s string) *label {
	return &label{Base: NewBase(), text: s}
}

func (l *label) Input(*Context, input.Input, *Events) ControlFlow { return Continue }

func (l *label) Apply(funcs *ApplyFuncs) { funcs.Apply(l) }

func (l *label) Size(lc *LayoutContext) graphics.Size {
	return lc.Ctx.MeasureString(nil, l.text).Size()
}

func (l *label) SizeTypes() SizeTypes { return FixSize }

func (l *label) Layout(lc *LayoutContext, out *LayoutConstructor) {
	rect := graphics.RectFromPointSize(lc.Rect.LeftTop(), l.Size(lc))
	out.Push(lc, NewText(l, StateNone, rect, nil, l.text, lc.Selected))
}

package widgets

import (
	"slices"

	"golang.org/x/text/unicode/norm"

	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
	"github.com/go-glane/glane/pkg/text"
)

// TextBoxChanged carries the full text after an edit.
type TextBoxChanged struct {
	Text string
}

// TextBoxPositionNotify tells the host where to place the IME candidate
// window: the bottom-left corner of the caret.
type TextBoxPositionNotify struct {
	Position graphics.Point
}

// DefaultTextBoxPadding surrounds the edited text.
var DefaultTextBoxPadding = graphics.EdgeInsets{Left: 5, Top: 3, Right: 5, Bottom: 3}

// TextBox is a single-line text editor.
//
// A press inside the box requests focus. While focused it accepts typed
// characters, backspace ('\b'), Delete, Left, Right, Home and End, and
// renders an in-progress IME composition between the text before and after
// the caret. Typed text is kept in Unicode NFC, so a base letter followed
// by a combining mark is stored as one precomposed rune. Every edit emits
// TextBoxChanged.
type TextBox struct {
	core.Base
	// Font overrides the scene's default font when set.
	Font *text.Font
	// Padding surrounds the text.
	Padding graphics.EdgeInsets

	state       core.WidgetState
	front       []rune // before the caret
	back        []rune // after the caret
	composition *input.Composition
}

// NewTextBox creates an empty text box.
func NewTextBox() *TextBox {
	return &TextBox{Base: core.NewBase(), Padding: DefaultTextBoxPadding}
}

// Text returns the edited text.
func (t *TextBox) Text() string {
	return string(t.front) + string(t.back)
}

// SetText replaces the text and puts the caret at the end.
func (t *TextBox) SetText(s string) {
	t.front = []rune(norm.NFC.String(s))
	t.back = nil
}

// Clear empties the text.
func (t *TextBox) Clear() {
	t.front = nil
	t.back = nil
}

// Caret returns the caret position in runes.
func (t *TextBox) Caret() int {
	return len(t.front)
}

// Input implements core.Widget.
func (t *TextBox) Input(ctx *core.Context, in input.Input, events *core.Events) core.ControlFlow {
	focused := ctx.HasFocus(t)
	switch in := in.(type) {
	case input.MouseInput:
		if rect, ok := frame(ctx, t); ok && in.ButtonState == input.Pressed && rect.Contains(in.MouseState.Position) {
			events.Push(t, core.SetFocus{})
		}
	case input.CursorMoved, input.CursorLeft:
		if rect, ok := frame(ctx, t); ok {
			if next, ok := hoverState(rect, in); ok {
				t.state = events.PushStateChanged(t, next, t.state)
			}
		}
	case input.KeyInput:
		if focused && in.State == input.Pressed {
			t.key(in.Key, events)
		}
	case input.CharInput:
		if focused {
			t.char(in.Char, events)
		}
	case input.ImeBeginComposition:
		if c, ok := core.FirstOf[*core.Cursor](ctx.Layout(), t); ok {
			events.PushMessage(t, TextBoxPositionNotify{Position: c.Rect().LeftBottom()})
		}
	case input.ImeUpdateComposition:
		if focused {
			comp := in.Composition
			t.composition = &comp
		}
	case input.ImeEndComposition:
		if focused && in.Result != nil {
			t.front = []rune(norm.NFC.String(string(t.front) + *in.Result))
			t.changed(events)
		}
		t.composition = nil
	}
	return core.Continue
}

func (t *TextBox) key(k input.VirtualKey, events *core.Events) {
	switch k {
	case input.KeyLeft:
		if n := len(t.front); n > 0 {
			t.back = slices.Insert(t.back, 0, t.front[n-1])
			t.front = t.front[:n-1]
		}
	case input.KeyRight:
		if len(t.back) > 0 {
			t.front = append(t.front, t.back[0])
			t.back = t.back[1:]
		}
	case input.KeyHome:
		t.back = append(slices.Clone(t.front), t.back...)
		t.front = t.front[:0]
	case input.KeyEnd:
		t.front = append(t.front, t.back...)
		t.back = nil
	case input.KeyDelete:
		if len(t.back) > 0 {
			t.back = t.back[1:]
			t.changed(events)
		}
	}
}

func (t *TextBox) char(c rune, events *core.Events) {
	switch {
	case c == '\b':
		if len(t.front) == 0 {
			return
		}
		t.front = t.front[:len(t.front)-1]
	case c < 0x20 || c == 0x7f:
		return
	default:
		t.front = []rune(norm.NFC.String(string(t.front) + string(c)))
	}
	t.changed(events)
}

func (t *TextBox) changed(events *core.Events) {
	events.PushMessage(t, TextBoxChanged{Text: t.Text()})
}

// Apply implements core.Widget.
func (t *TextBox) Apply(funcs *core.ApplyFuncs) {
	funcs.Apply(t)
}

func (t *TextBox) displayed() string {
	s := string(t.front)
	if t.composition != nil {
		s += t.composition.String()
	}
	return s + string(t.back)
}

// Size fills the offered width; the height fits one line plus padding.
func (t *TextBox) Size(lc *core.LayoutContext) graphics.Size {
	h := max(lc.Ctx.MeasureString(t.Font, t.displayed()).Height(), lc.Ctx.FontBounds(t.Font).Height)
	return graphics.Size{Width: lc.Rect.Width(), Height: h + t.Padding.Vertical()}
}

// SizeTypes is Flexible in width.
func (t *TextBox) SizeTypes() core.SizeTypes {
	return core.SizeTypes{Width: core.Flexible, Height: core.Fix}
}

// Layout pushes, inside a clip region, the frame, the text before the
// caret, the composition and caret when focused, and the text after it.
func (t *TextBox) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
	font := lc.Ctx.FontOr(t.Font)
	box := graphics.RectFromPointSize(lc.Rect.LeftTop(), t.Size(lc))
	inner := deflate(box, t.Padding)
	measure := func(s string) graphics.Size { return lc.Ctx.MeasureString(font, s).Size() }

	out.Push(lc, core.NewStartClipping(t, box))
	out.Push(lc, core.NewArea(t, t.state, box, false))

	x := inner.Left
	if len(t.front) > 0 {
		s := string(t.front)
		sz := measure(s)
		out.Push(lc, core.NewText(t, t.state, graphics.RectFromLTWH(x, inner.Top, sz.Width, sz.Height), font, s, lc.Selected))
		x += sz.Width
	}

	if lc.Ctx.HasFocus(t) {
		var under rune
		hasChar := len(t.back) > 0
		caretWidth := measure("m").Width
		if hasChar {
			under = t.back[0]
			caretWidth = measure(string(under)).Width
		}
		caretX := x
		if c := t.composition; c != nil {
			start := x
			for _, cl := range c.Clauses {
				s := clauseText(c, cl)
				sz := measure(s)
				out.Push(lc, core.NewCompositionText(t, t.state, graphics.RectFromLTWH(x, inner.Top, sz.Width, sz.Height), font, s, cl.Targeted))
				x += sz.Width
			}
			caretX = start + measure(string(c.Chars[:compositionCaret(c)])).Width
		}
		out.Push(lc, core.NewCursor(t, t.state, graphics.RectFromLTWH(caretX, inner.Top, caretWidth, inner.Height()), under, hasChar))
	}

	if len(t.back) > 0 {
		s := string(t.back)
		sz := measure(s)
		out.Push(lc, core.NewText(t, t.state, graphics.RectFromLTWH(x, inner.Top, sz.Width, sz.Height), font, s, lc.Selected))
	}

	out.Push(lc, core.NewEndClipping(t, box))
}

// compositionCaret is the rune offset of the caret inside c: the end of the
// targeted clause, or the composition's own cursor position.
func compositionCaret(c *input.Composition) int {
	for _, cl := range c.Clauses {
		if cl.Targeted {
			return min(cl.End, len(c.Chars))
		}
	}
	return min(max(c.CursorPosition, 0), len(c.Chars))
}

func clauseText(c *input.Composition, cl input.Clause) string {
	start := min(max(cl.Start, 0), len(c.Chars))
	end := min(max(cl.End, start), len(c.Chars))
	return string(c.Chars[start:end])
}

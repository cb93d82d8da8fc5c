package core

import (
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/text"
)

// LayoutElement is one positioned, layered record in a layout snapshot.
// The concrete types are Area, Collision, Text, CompositionText, Cursor,
// StartClipping and EndClipping; the set is closed.
type LayoutElement interface {
	// Owner is the widget that pushed the element.
	Owner() AnyHandle
	// Rect is the element's geometry in logical pixels.
	Rect() graphics.Rect
	// Ancestors lists the owner's ancestors from the root to its parent.
	Ancestors() []AnyHandle
	// Layer is the paint order; higher layers paint later.
	Layer() uint32

	element() *ElementBase
}

// ElementBase holds the fields shared by every element. The builder stamps
// ancestors and layer from the LayoutContext at push time.
type ElementBase struct {
	owner     AnyHandle
	rect      graphics.Rect
	ancestors []AnyHandle
	layer     uint32
}

// Owner implements LayoutElement.
func (e *ElementBase) Owner() AnyHandle { return e.owner }

// Rect implements LayoutElement.
func (e *ElementBase) Rect() graphics.Rect { return e.rect }

// Ancestors implements LayoutElement.
func (e *ElementBase) Ancestors() []AnyHandle { return e.ancestors }

// Layer implements LayoutElement.
func (e *ElementBase) Layer() uint32 { return e.layer }

// HasAncestor reports whether h is among the owner's ancestors.
func (e *ElementBase) HasAncestor(h HasID) bool {
	for _, a := range e.ancestors {
		if a.ID() == h.ID() {
			return true
		}
	}
	return false
}

func (e *ElementBase) element() *ElementBase { return e }

func base(w Widget, rect graphics.Rect) ElementBase {
	return ElementBase{owner: AnyHandleOf(w), rect: rect}
}

// Area is a widget's background or frame.
type Area struct {
	ElementBase
	State    WidgetState
	Selected bool
}

// Collision is an invisible hit region.
type Collision struct {
	ElementBase
	State WidgetState
}

// Text is a run of text drawn with Font.
type Text struct {
	ElementBase
	State    WidgetState
	Font     *text.Font
	String   string
	Selected bool
}

// CompositionText is a clause of an in-progress IME composition.
type CompositionText struct {
	ElementBase
	State    WidgetState
	Font     *text.Font
	String   string
	Targeted bool
}

// Cursor is a text caret. Char is the rune under the caret, if any.
type Cursor struct {
	ElementBase
	State   WidgetState
	Char    rune
	HasChar bool
}

// StartClipping opens a clip region; renderers push it on a clip stack.
type StartClipping struct {
	ElementBase
}

// EndClipping closes the innermost open clip region.
type EndClipping struct {
	ElementBase
}

// NewArea creates an Area element owned by w.
func NewArea(w Widget, state WidgetState, rect graphics.Rect, selected bool) *Area {
	return &Area{ElementBase: base(w, rect), State: state, Selected: selected}
}

// NewCollision creates a Collision element owned by w.
func NewCollision(w Widget, state WidgetState, rect graphics.Rect) *Collision {
	return &Collision{ElementBase: base(w, rect), State: state}
}

// NewText creates a Text element owned by w.
func NewText(w Widget, state WidgetState, rect graphics.Rect, font *text.Font, s string, selected bool) *Text {
	return &Text{ElementBase: base(w, rect), State: state, Font: font, String: s, Selected: selected}
}

// NewCompositionText creates a CompositionText element owned by w.
func NewCompositionText(w Widget, state WidgetState, rect graphics.Rect, font *text.Font, s string, targeted bool) *CompositionText {
	return &CompositionText{ElementBase: base(w, rect), State: state, Font: font, String: s, Targeted: targeted}
}

// NewCursor creates a Cursor element owned by w. Pass hasChar=false when
// the caret is at the end of the text.
func NewCursor(w Widget, state WidgetState, rect graphics.Rect, c rune, hasChar bool) *Cursor {
	return &Cursor{ElementBase: base(w, rect), State: state, Char: c, HasChar: hasChar}
}

// NewStartClipping opens a clip region owned by w.
func NewStartClipping(w Widget, rect graphics.Rect) *StartClipping {
	return &StartClipping{ElementBase: base(w, rect)}
}

// NewEndClipping closes a clip region owned by w.
func NewEndClipping(w Widget, rect graphics.Rect) *EndClipping {
	return &EndClipping{ElementBase: base(w, rect)}
}

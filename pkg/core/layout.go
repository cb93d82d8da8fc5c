package core

import (
	"iter"
	"slices"

	"github.com/go-glane/glane/pkg/errors"
	"github.com/go-glane/glane/pkg/graphics"
)

// LayoutContext is what a widget is laid out against: the rectangle offered
// by its parent, its ancestor chain, the active layer and selection state.
type LayoutContext struct {
	Ctx       *Context
	Rect      graphics.Rect
	Ancestors []AnyHandle
	Layer     uint32
	Selected  bool
}

// RootLayoutContext covers the full viewport at layer 0, unselected.
func RootLayoutContext(ctx *Context) *LayoutContext {
	return &LayoutContext{
		Ctx:  ctx,
		Rect: graphics.RectFromPointSize(graphics.Point{}, ctx.Viewport()),
	}
}

// Next derives a child context: parent is appended to the ancestor chain.
func (lc *LayoutContext) Next(parent Widget, rect graphics.Rect, layer uint32, selected bool) *LayoutContext {
	ancestors := make([]AnyHandle, len(lc.Ancestors), len(lc.Ancestors)+1)
	copy(ancestors, lc.Ancestors)
	return &LayoutContext{
		Ctx:       lc.Ctx,
		Rect:      rect,
		Ancestors: append(ancestors, AnyHandleOf(parent)),
		Layer:     layer,
		Selected:  selected,
	}
}

// WithRect returns a copy of lc offering a different rectangle, keeping
// ancestors and layer. Containers use it to measure a child against the
// space they intend to give it.
func (lc *LayoutContext) WithRect(rect graphics.Rect) *LayoutContext {
	next := *lc
	next.Rect = rect
	return &next
}

// LayoutConstructor accumulates elements during one layout pass.
type LayoutConstructor struct {
	elems []LayoutElement
}

// NewLayoutConstructor returns an empty builder.
func NewLayoutConstructor() *LayoutConstructor {
	return &LayoutConstructor{}
}

// Push records e, stamping the ancestors and layer of lc.
func (c *LayoutConstructor) Push(lc *LayoutContext, e LayoutElement) {
	b := e.element()
	b.ancestors = lc.Ancestors
	b.layer = lc.Layer
	errors.Invariant("core.LayoutConstructor.Push", !b.rect.IsNegative(),
		"%s pushed negative extent %v", b.owner, b.rect)
	c.elems = append(c.elems, e)
}

// Append moves every element of other to the end of c.
func (c *LayoutConstructor) Append(other *LayoutConstructor) {
	c.elems = append(c.elems, other.elems...)
	other.elems = nil
}

// Retain keeps only the elements for which keep returns true.
func (c *LayoutConstructor) Retain(keep func(LayoutElement) bool) {
	c.elems = slices.DeleteFunc(c.elems, func(e LayoutElement) bool { return !keep(e) })
}

// Len returns the number of elements pushed so far.
func (c *LayoutConstructor) Len() int {
	return len(c.elems)
}

// All iterates the pushed elements in push order.
func (c *LayoutConstructor) All() iter.Seq2[int, LayoutElement] {
	return slices.All(c.elems)
}

// Clipping returns the innermost clip region open at the current end of the
// builder.
func (c *LayoutConstructor) Clipping() (graphics.Rect, bool) {
	return ClipAt(c.elems, len(c.elems))
}

// ClipAt resolves the clip region active just before position pos. It scans
// backward counting EndClipping markers; a StartClipping either closes one
// of them or, when none is outstanding, is the innermost open region.
func ClipAt(elems []LayoutElement, pos int) (graphics.Rect, bool) {
	ends := 0
	for i := min(pos, len(elems)) - 1; i >= 0; i-- {
		switch e := elems[i].(type) {
		case *EndClipping:
			ends++
		case *StartClipping:
			if ends == 0 {
				return e.rect, true
			}
			ends--
		}
	}
	return graphics.Rect{}, false
}

// Layout is the immutable snapshot of one layout pass, ordered by layer.
// Elements on the same layer keep their push order.
type Layout struct {
	elems []LayoutElement
}

// EmptyLayout returns a snapshot with no elements.
func EmptyLayout() *Layout {
	return &Layout{}
}

// NewLayout freezes c. The builder must not be used afterwards.
func NewLayout(c *LayoutConstructor) *Layout {
	checkClipBalance(c.elems)
	elems := c.elems
	c.elems = nil
	slices.SortStableFunc(elems, func(a, b LayoutElement) int {
		switch {
		case a.Layer() < b.Layer():
			return -1
		case a.Layer() > b.Layer():
			return 1
		}
		return 0
	})
	return &Layout{elems: elems}
}

func checkClipBalance(elems []LayoutElement) {
	depth := 0
	for _, e := range elems {
		switch e.(type) {
		case *StartClipping:
			depth++
		case *EndClipping:
			depth--
			if !errors.Invariant("core.NewLayout", depth >= 0,
				"EndClipping from %s without a matching StartClipping", e.Owner()) {
				return
			}
		}
	}
	errors.Invariant("core.NewLayout", depth == 0, "%d clip regions left open", depth)
}

// Len returns the number of elements.
func (l *Layout) Len() int {
	return len(l.elems)
}

// IsEmpty reports whether the snapshot has no elements.
func (l *Layout) IsEmpty() bool {
	return len(l.elems) == 0
}

// At returns the element at i.
func (l *Layout) At(i int) LayoutElement {
	return l.elems[i]
}

// All iterates the elements in paint order.
func (l *Layout) All() iter.Seq2[int, LayoutElement] {
	return slices.All(l.elems)
}

// FindByOwner iterates the elements pushed by the widget h refers to.
func (l *Layout) FindByOwner(h HasID) iter.Seq[LayoutElement] {
	id := h.ID()
	return func(yield func(LayoutElement) bool) {
		for _, e := range l.elems {
			if e.Owner().ID() == id && !yield(e) {
				return
			}
		}
	}
}

// FindByAncestor iterates the elements pushed by descendants of the widget
// h refers to.
func (l *Layout) FindByAncestor(h HasID) iter.Seq[LayoutElement] {
	return func(yield func(LayoutElement) bool) {
		for _, e := range l.elems {
			if e.element().HasAncestor(h) && !yield(e) {
				return
			}
		}
	}
}

// ClipAt returns the clip region active at element i.
func (l *Layout) ClipAt(i int) (graphics.Rect, bool) {
	return ClipAt(l.elems, i)
}

// HitTest returns the topmost Area or Collision containing p whose active
// clip region also contains p.
func (l *Layout) HitTest(p graphics.Point) (LayoutElement, bool) {
	for i := len(l.elems) - 1; i >= 0; i-- {
		e := l.elems[i]
		switch e.(type) {
		case *Area, *Collision:
		default:
			continue
		}
		if !e.Rect().Contains(p) {
			continue
		}
		if clip, ok := l.ClipAt(i); ok && !clip.Contains(p) {
			continue
		}
		return e, true
	}
	return nil, false
}

// FirstOf returns the first element of type E owned by h.
func FirstOf[E LayoutElement](l *Layout, h HasID) (E, bool) {
	for e := range l.FindByOwner(h) {
		if v, ok := e.(E); ok {
			return v, true
		}
	}
	var zero E
	return zero, false
}

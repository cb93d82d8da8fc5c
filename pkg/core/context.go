package core

import (
	"iter"

	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
	"github.com/go-glane/glane/pkg/text"
)

// Context is the frame-scoped state shared with every widget. The scene
// mutates it between phases only; widgets read it.
type Context struct {
	viewport    graphics.Size
	layout      *Layout
	focus       AnyHandle
	prevInput   input.Input
	defaultFont *text.Font
	measurer    text.Measurer
}

// Viewport returns the size of the root rectangle.
func (c *Context) Viewport() graphics.Size {
	return c.viewport
}

// Layout returns the last completed layout snapshot. During input dispatch
// this is the previous frame's layout, never a partial one.
func (c *Context) Layout() *Layout {
	return c.layout
}

// FindLayout iterates the elements the widget h refers to pushed in the
// last layout.
func (c *Context) FindLayout(h HasID) iter.Seq[LayoutElement] {
	return c.layout.FindByOwner(h)
}

// Focus returns the focused widget, if any.
func (c *Context) Focus() (AnyHandle, bool) {
	return c.focus, !c.focus.IsZero()
}

// HasFocus reports whether the widget h refers to has focus.
func (c *Context) HasFocus(h HasID) bool {
	return !c.focus.IsZero() && c.focus.ID() == h.ID()
}

// PrevInput returns the input dispatched before the current one, or nil.
func (c *Context) PrevInput() input.Input {
	return c.prevInput
}

// DefaultFont returns the scene's fallback font.
func (c *Context) DefaultFont() *text.Font {
	return c.defaultFont
}

// Measurer returns the measurement collaborator.
func (c *Context) Measurer() text.Measurer {
	return c.measurer
}

// FontOr returns f, or the default font when f is nil.
func (c *Context) FontOr(f *text.Font) *text.Font {
	if f != nil {
		return f
	}
	return c.defaultFont
}

// MeasureString returns the bounds of s in f (the default font when nil).
func (c *Context) MeasureString(f *text.Font, s string) graphics.Rect {
	return c.measurer.Bounds(c.FontOr(f), s)
}

// FontBounds returns the global bounding size of f (the default font when
// nil).
func (c *Context) FontBounds(f *text.Font) graphics.Size {
	return c.measurer.GlobalBounds(c.FontOr(f))
}

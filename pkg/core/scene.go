package core

import (
	"github.com/go-glane/glane/pkg/errors"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
	"github.com/go-glane/glane/pkg/text"
)

// DefaultViewport is the viewport a scene starts with.
var DefaultViewport = graphics.Size{Width: 1024, Height: 768}

// Option configures a Scene at construction.
type Option func(*Context)

// WithViewport sets the initial viewport size.
func WithViewport(size graphics.Size) Option {
	return func(c *Context) { c.viewport = size }
}

// WithDefaultFont sets the font widgets fall back to.
func WithDefaultFont(f *text.Font) Option {
	return func(c *Context) {
		if f != nil {
			c.defaultFont = f
		}
	}
}

// WithMeasurer sets the measurement collaborator.
func WithMeasurer(m text.Measurer) Option {
	return func(c *Context) {
		if m != nil {
			c.measurer = m
		}
	}
}

// Scene owns the widget tree and runs the per-frame cycle: Input dispatches
// one event, Layout produces a new snapshot. Both drain the apply queue
// first, so every mutation requested through Apply, PushChild or
// EraseChild lands one phase after the request.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	ctx       *Context
	root      Widget
	prevInput input.Input
	funcs     ApplyFuncs
}

// NewScene takes ownership of root and returns the scene plus a handle to
// the root.
func NewScene[T Widget](root T, opts ...Option) (*Scene, Handle[T]) {
	ctx := &Context{
		viewport:    DefaultViewport,
		layout:      EmptyLayout(),
		defaultFont: text.DefaultFont(),
		measurer:    text.NewDefaultMeasurer(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return &Scene{ctx: ctx, root: root}, NewHandle(root)
}

// Context returns the scene's shared state.
func (s *Scene) Context() *Context {
	return s.ctx
}

// SetViewport resizes the root rectangle for the next layout.
func (s *Scene) SetViewport(size graphics.Size) {
	s.ctx.viewport = size
}

// Blur clears focus. Hosts call it when their window loses activation.
func (s *Scene) Blur() {
	s.ctx.focus = AnyHandle{}
}

// Pending returns the number of queued mutations.
func (s *Scene) Pending() int {
	return s.funcs.Len()
}

// Input dispatches one input event. events is cleared first and then
// receives everything the tree emits; the caller owns it afterwards.
//
// When in is a pointer press and some widget emitted SetFocus, focus moves
// to the first such widget. Otherwise focus is unchanged.
func (s *Scene) Input(in input.Input, events *Events) {
	events.Clear()
	s.funcs.drain(s.root)
	s.ctx.prevInput = s.prevInput
	defer func() { s.prevInput = in }()
	defer errors.Recover("core.Scene.Input")

	s.root.Input(s.ctx, in, events)

	if !input.IsPress(in) {
		return
	}
	for _, e := range events.All() {
		if e.IsSetFocus() {
			s.ctx.focus = e.Producer()
			break
		}
	}
}

// Layout runs a layout pass over the whole tree, replaces the context's
// snapshot and returns it.
func (s *Scene) Layout() *Layout {
	s.funcs.drain(s.root)
	c := NewLayoutConstructor()
	func() {
		defer errors.Recover("core.Scene.Layout")
		s.root.Layout(RootLayoutContext(s.ctx), c)
	}()
	s.ctx.layout = NewLayout(c)
	return s.ctx.layout
}

// Apply queues f to run against the widget h refers to before the next
// Input or Layout. If the widget is gone by then, f is dropped.
func Apply[T Widget](s *Scene, h Handle[T], f func(T)) {
	Enqueue(&s.funcs, h, f)
}

// Container is a widget with child management.
type Container interface {
	Widget
	HasChildren
}

// PushChild queues child to be appended to the container parent refers to
// and returns a handle to it. The child is not part of the tree until the
// next Input or Layout.
func PushChild[P Container, C Widget](s *Scene, parent Handle[P], child C) Handle[C] {
	h := NewHandle(child)
	Apply(s, parent, func(p P) { p.Push(child) })
	return h
}

// EraseChild queues removal of child from the container parent refers to.
func EraseChild[P Container](s *Scene, parent Handle[P], child HasID) {
	id := child.ID()
	Apply(s, parent, func(p P) { p.Erase(id) })
}

// Package core provides the widget contract and the per-frame machinery of
// a retained-mode UI engine.
//
// A Scene owns a tree of widgets. The host drives it with two calls per
// frame: Input dispatches one input event through the tree and collects
// the Events widgets emit, and Layout walks the tree to produce a Layout, a
// flat list of positioned elements (Area, Collision, Text, CompositionText,
// Cursor and clip markers) ordered by layer for a renderer to draw.
//
// # Widgets
//
// A widget embeds Base for its identity and implements Widget:
//
//	type Swatch struct {
//	    core.Base
//	    Width, Height float64
//	}
//
//	func (s *Swatch) Layout(lc *core.LayoutContext, out *core.LayoutConstructor) {
//	    rect := graphics.RectFromPointSize(lc.Rect.LeftTop(), s.Size(lc))
//	    out.Push(lc, core.NewArea(s, core.StateNone, rect, false))
//	}
//
// Widgets change their own state in Input or through queued mutations,
// never in Layout. Anything they need from layout, such as their own
// rectangle, they read back from Context.Layout, which always holds the
// last completed snapshot.
//
// # Handles and deferred mutation
//
// The scene owns the tree, so code outside it refers to widgets through
// typed handles. Apply, PushChild and EraseChild queue work against a
// handle; the queue is drained at the start of the next Input or Layout.
// Work for a widget that is no longer in the tree is dropped.
//
// # Events
//
// Events carry their producer's id. Read widget messages with Message or
// FindMessage and the handle you kept:
//
//	scene.Input(in, events)
//	if _, msg, ok := core.FindMessage[widgets.ListSelected](events, list); ok {
//	    show(msg.Index)
//	}
package core

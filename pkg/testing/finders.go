package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
)

// Finder locates elements in a layout snapshot.
type Finder interface {
	// Evaluate returns all matching elements in paint order.
	Evaluate(l *core.Layout) []core.LayoutElement
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []core.LayoutElement
	finder   Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.LayoutElement {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.description()))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.LayoutElement {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.LayoutElement {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.description()))
	}
	return r.elements[index]
}

// All returns all matches in paint order.
func (r FinderResult) All() []core.LayoutElement {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Rect returns the rectangle of the first match. Panics if no matches.
func (r FinderResult) Rect() graphics.Rect {
	return r.First().Rect()
}

// --- Concrete finders ---

type ownerFinder struct {
	id core.ID
}

func (f *ownerFinder) Evaluate(l *core.Layout) []core.LayoutElement {
	return collectMatches(l, func(e core.LayoutElement) bool {
		return e.Owner().ID() == f.id
	})
}

func (f *ownerFinder) Description() string {
	return fmt.Sprintf("ByOwner(%s)", f.id)
}

// ByOwner returns a finder that matches elements pushed by the widget h
// refers to.
func ByOwner(h core.HasID) Finder {
	return &ownerFinder{id: h.ID()}
}

type typeFinder struct {
	widgetType reflect.Type
}

func (f *typeFinder) Evaluate(l *core.Layout) []core.LayoutElement {
	return collectMatches(l, func(e core.LayoutElement) bool {
		return e.Owner().Tag() == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.widgetType)
}

// ByType returns a finder that matches elements pushed by widgets of type
// T.
func ByType[T core.Widget]() Finder {
	return &typeFinder{widgetType: reflect.TypeFor[T]()}
}

type elementFinder struct {
	match func(core.LayoutElement) bool
	name  string
}

func (f *elementFinder) Evaluate(l *core.Layout) []core.LayoutElement {
	return collectMatches(l, f.match)
}

func (f *elementFinder) Description() string {
	return fmt.Sprintf("ByElement(%s)", f.name)
}

// ByElement returns a finder that matches elements of concrete type E,
// such as *core.Cursor.
func ByElement[E core.LayoutElement]() Finder {
	return &elementFinder{
		match: func(e core.LayoutElement) bool {
			_, ok := e.(E)
			return ok
		},
		name: reflect.TypeFor[E]().String(),
	}
}

type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(l *core.Layout) []core.LayoutElement {
	return collectMatches(l, func(e core.LayoutElement) bool {
		t, ok := e.(*core.Text)
		return ok && t.String == f.text
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches Text elements with exact content.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

type textContainingFinder struct {
	substring string
}

func (f *textContainingFinder) Evaluate(l *core.Layout) []core.LayoutElement {
	return collectMatches(l, func(e core.LayoutElement) bool {
		t, ok := e.(*core.Text)
		return ok && strings.Contains(t.String, f.substring)
	})
}

func (f *textContainingFinder) Description() string {
	return fmt.Sprintf("ByTextContaining(%q)", f.substring)
}

// ByTextContaining returns a finder that matches Text elements containing
// substring.
func ByTextContaining(substring string) Finder {
	return &textContainingFinder{substring: substring}
}

type predicateFinder struct {
	fn   func(core.LayoutElement) bool
	desc string
}

func (f *predicateFinder) Evaluate(l *core.Layout) []core.LayoutElement {
	return collectMatches(l, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches elements satisfying fn.
func ByPredicate(fn func(core.LayoutElement) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(l *core.Layout) []core.LayoutElement {
	owners := make(map[core.ID]bool)
	for _, e := range f.of.Evaluate(l) {
		owners[e.Owner().ID()] = true
	}
	if len(owners) == 0 {
		return nil
	}
	var results []core.LayoutElement
	for _, e := range f.matching.Evaluate(l) {
		for _, a := range e.Ancestors() {
			if owners[a.ID()] {
				results = append(results, e)
				break
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches elements satisfying matching
// whose owner descends from a widget that pushed an element matching of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(l *core.Layout, match func(core.LayoutElement) bool) []core.LayoutElement {
	var out []core.LayoutElement
	for _, e := range l.All() {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

package core

import (
	"testing"

	"github.com/go-glane/glane/pkg/errors"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutOrdersByLayerStably(t *testing.T) {
	lc := rootContext(100, 100)
	c := NewLayoutConstructor()
	owners := []*box{newBox(1, 1), newBox(1, 1), newBox(1, 1), newBox(1, 1)}
	layers := []uint32{2, 0, 1, 0}
	for i, w := range owners {
		at := *lc
		at.Layer = layers[i]
		c.Push(&at, NewArea(w, StateNone, graphics.RectFromLTWH(0, 0, 1, 1), false))
	}

	l := NewLayout(c)
	require.Equal(t, 4, l.Len())
	var got []*box
	for _, e := range l.All() {
		for _, w := range owners {
			if e.Owner().Is(w) {
				got = append(got, w)
			}
		}
	}
	assert.Equal(t, []*box{owners[1], owners[3], owners[2], owners[0]}, got)
}

func TestPushStampsAncestorsAndLayer(t *testing.T) {
	parent := newBox(1, 1)
	child := newBox(1, 1)
	lc := rootContext(100, 100).Next(parent, graphics.RectFromLTWH(0, 0, 10, 10), 3, true)

	c := NewLayoutConstructor()
	c.Push(lc, NewArea(child, StateNone, lc.Rect, lc.Selected))

	l := NewLayout(c)
	area, ok := FirstOf[*Area](l, child)
	require.True(t, ok)
	assert.Equal(t, uint32(3), area.Layer())
	assert.True(t, area.Selected)
	assert.True(t, area.HasAncestor(parent))
	assert.False(t, area.HasAncestor(child))
}

func TestNextCopiesAncestors(t *testing.T) {
	root := rootContext(100, 100)
	a := root.Next(newBox(1, 1), root.Rect, 0, false)
	b := a.Next(newBox(1, 1), root.Rect, 0, false)
	c := a.Next(newBox(1, 1), root.Rect, 0, false)

	require.Len(t, b.Ancestors, 2)
	require.Len(t, c.Ancestors, 2)
	assert.NotEqual(t, b.Ancestors[1], c.Ancestors[1])
}

func TestClipAtResolvesInnermostOpenRegion(t *testing.T) {
	a := newBox(1, 1)
	b := newBox(1, 1)
	x := newBox(1, 1)
	rectA := graphics.RectFromLTWH(0, 0, 100, 100)
	rectB := graphics.RectFromLTWH(10, 10, 20, 20)

	elems := []LayoutElement{
		NewStartClipping(a, rectA),
		NewStartClipping(b, rectB),
		NewEndClipping(b, rectB),
		NewArea(x, StateNone, graphics.RectFromLTWH(0, 0, 5, 5), false),
		NewEndClipping(a, rectA),
	}

	clip, ok := ClipAt(elems, 3)
	require.True(t, ok)
	assert.Equal(t, rectA, clip)

	clip, ok = ClipAt(elems, 2)
	require.True(t, ok)
	assert.Equal(t, rectB, clip)

	_, ok = ClipAt(elems, 0)
	assert.False(t, ok)
	_, ok = ClipAt(elems, len(elems))
	assert.False(t, ok)
}

func TestConstructorClipping(t *testing.T) {
	lc := rootContext(100, 100)
	w := newBox(1, 1)
	c := NewLayoutConstructor()

	_, ok := c.Clipping()
	assert.False(t, ok)

	c.Push(lc, NewStartClipping(w, graphics.RectFromLTWH(0, 0, 50, 50)))
	clip, ok := c.Clipping()
	require.True(t, ok)
	assert.Equal(t, 50.0, clip.Width())

	c.Push(lc, NewEndClipping(w, graphics.RectFromLTWH(0, 0, 50, 50)))
	_, ok = c.Clipping()
	assert.False(t, ok)
}

func TestConstructorAppendAndRetain(t *testing.T) {
	lc := rootContext(100, 100)
	keep := newBox(1, 1)
	drop := newBox(1, 1)

	c := NewLayoutConstructor()
	c.Push(lc, NewArea(keep, StateNone, graphics.Rect{}, false))
	other := NewLayoutConstructor()
	other.Push(lc, NewArea(drop, StateNone, graphics.Rect{}, false))
	other.Push(lc, NewText(keep, StateNone, graphics.Rect{}, nil, "k", false))

	c.Append(other)
	assert.Equal(t, 0, other.Len())
	assert.Equal(t, 3, c.Len())

	c.Retain(func(e LayoutElement) bool { return e.Owner().Is(keep) })
	assert.Equal(t, 2, c.Len())
}

func TestNegativeExtentReported(t *testing.T) {
	h := captureErrors(t)
	lc := rootContext(100, 100)
	c := NewLayoutConstructor()

	c.Push(lc, NewArea(newBox(1, 1), StateNone, graphics.Rect{Left: 10, Right: 5}, false))

	require.Len(t, h.errors, 1)
	assert.Equal(t, errors.KindInvariant, h.errors[0].Kind)
}

func TestUnbalancedClippingReported(t *testing.T) {
	h := captureErrors(t)
	lc := rootContext(100, 100)
	w := newBox(1, 1)
	c := NewLayoutConstructor()
	c.Push(lc, NewStartClipping(w, graphics.RectFromLTWH(0, 0, 10, 10)))

	l := NewLayout(c)

	assert.Equal(t, 1, l.Len())
	require.Len(t, h.errors, 1)
	assert.Equal(t, errors.KindInvariant, h.errors[0].Kind)
}

func TestHitTestTopmostAndClipped(t *testing.T) {
	lc := rootContext(100, 100)
	bottom := newBox(1, 1)
	top := newBox(1, 1)
	clipper := newBox(1, 1)
	hidden := newBox(1, 1)

	c := NewLayoutConstructor()
	c.Push(lc, NewArea(bottom, StateNone, graphics.RectFromLTWH(0, 0, 100, 100), false))
	c.Push(lc, NewCollision(top, StateNone, graphics.RectFromLTWH(0, 0, 20, 20)))
	c.Push(lc, NewStartClipping(clipper, graphics.RectFromLTWH(50, 50, 10, 10)))
	c.Push(lc, NewArea(hidden, StateNone, graphics.RectFromLTWH(50, 50, 40, 40), false))
	c.Push(lc, NewEndClipping(clipper, graphics.RectFromLTWH(50, 50, 10, 10)))
	l := NewLayout(c)

	e, ok := l.HitTest(graphics.Point{X: 10, Y: 10})
	require.True(t, ok)
	assert.True(t, e.Owner().Is(top))

	e, ok = l.HitTest(graphics.Point{X: 55, Y: 55})
	require.True(t, ok)
	assert.True(t, e.Owner().Is(hidden))

	e, ok = l.HitTest(graphics.Point{X: 80, Y: 80})
	require.True(t, ok)
	assert.True(t, e.Owner().Is(bottom), "area outside its clip region is not hit")

	_, ok = l.HitTest(graphics.Point{X: 200, Y: 200})
	assert.False(t, ok)
}

func TestFindByOwner(t *testing.T) {
	lc := rootContext(100, 100)
	w := newBox(1, 1)
	other := newBox(1, 1)
	c := NewLayoutConstructor()
	c.Push(lc, NewArea(w, StateNone, graphics.Rect{}, false))
	c.Push(lc, NewArea(other, StateNone, graphics.Rect{}, false))
	c.Push(lc, NewText(w, StateNone, graphics.Rect{}, nil, "w", false))
	l := NewLayout(c)

	n := 0
	for range l.FindByOwner(NewHandle(w)) {
		n++
	}
	assert.Equal(t, 2, n)

	txt, ok := FirstOf[*Text](l, w)
	require.True(t, ok)
	assert.Equal(t, "w", txt.String)

	_, ok = FirstOf[*Cursor](l, w)
	assert.False(t, ok)
	assert.True(t, EmptyLayout().IsEmpty())
}

func TestFindByAncestor(t *testing.T) {
	parent := newBox(1, 1)
	child := newBox(1, 1)
	root := rootContext(100, 100)
	c := NewLayoutConstructor()
	c.Push(root, NewArea(parent, StateNone, graphics.Rect{}, false))
	c.Push(root.Next(parent, root.Rect, 0, false), NewArea(child, StateNone, graphics.Rect{}, false))
	l := NewLayout(c)

	var owners []AnyHandle
	for e := range l.FindByAncestor(parent) {
		owners = append(owners, e.Owner())
	}
	require.Len(t, owners, 1)
	assert.True(t, owners[0].Is(child))
}

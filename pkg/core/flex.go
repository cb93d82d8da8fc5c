package core

import (
	"fmt"

	"github.com/go-glane/glane/pkg/graphics"
)

// Axis is the direction a flex container lays its children along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Flex is the one-dimensional size negotiation shared by Row and Column.
//
// Fix children get their measured main-axis extent. Flexible children split
// whatever is left equally. Space separates every adjacent pair of children
// that is laid out; a Fix child that no longer fits in the remaining budget
// is truncated, or skipped when nothing is left. A Flexible child whose gap
// alone overflows is skipped.
type Flex struct {
	Axis Axis
	// Space is the gap between adjacent children.
	Space float64
	// MaxExtent caps each child's main-axis extent. Zero means no cap.
	MaxExtent float64
}

// Slot is a child's allotted rectangle. Skipped children get no rectangle
// and must not be laid out.
type Slot struct {
	Child   Widget
	Rect    graphics.Rect
	Skipped bool
}

func (f Flex) main(s graphics.Size) float64 {
	if f.Axis == Horizontal {
		return s.Width
	}
	return s.Height
}

func (f Flex) cross(s graphics.Size) float64 {
	if f.Axis == Horizontal {
		return s.Height
	}
	return s.Width
}

func (f Flex) start(r graphics.Rect) float64 {
	if f.Axis == Horizontal {
		return r.Left
	}
	return r.Top
}

func (f Flex) mainType(w Widget) SizeType {
	if f.Axis == Horizontal {
		return w.SizeTypes().Width
	}
	return w.SizeTypes().Height
}

func (f Flex) clamp(v float64) float64 {
	if f.MaxExtent > 0 && v > f.MaxExtent {
		return f.MaxExtent
	}
	return v
}

func (f Flex) size(main, cross float64) graphics.Size {
	if f.Axis == Horizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f Flex) rect(origin graphics.Rect, cursor, main, cross float64) graphics.Rect {
	if f.Axis == Horizontal {
		return graphics.RectFromLTWH(cursor, origin.Top, main, cross)
	}
	return graphics.RectFromLTWH(origin.Left, cursor, cross, main)
}

// Measure returns the container's size. Without Flexible children the main
// extent is the Fix extents plus gaps; with any, the container fills the
// available main extent. The cross extent is the largest Fix child's.
func (f Flex) Measure(lc *LayoutContext, children []Widget) graphics.Size {
	avail := f.main(lc.Rect.Size())
	var fixed, cross float64
	fixCount, flexCount := 0, 0
	for _, child := range children {
		if f.mainType(child) == Flexible {
			flexCount++
			continue
		}
		s := child.Size(lc)
		fixed += f.clamp(f.main(s))
		cross = max(cross, f.cross(s))
		fixCount++
	}
	main := fixed
	if fixCount > 1 {
		main += f.Space * float64(fixCount-1)
	}
	if flexCount > 0 {
		main = avail
	}
	return f.size(max(0, min(main, avail)), cross)
}

// Arrange allots each child a rectangle inside lc.Rect, in child order.
func (f Flex) Arrange(lc *LayoutContext, children []Widget) []Slot {
	main := f.main(f.Measure(lc, children))
	slots := make([]Slot, len(children))
	extents := make([]float64, len(children))
	crosses := make([]float64, len(children))

	var used, maxCross float64
	laidOut, flexCount := 0, 0
	for i, child := range children {
		slots[i].Child = child
		gap := 0.0
		if laidOut > 0 {
			gap = f.Space
		}
		if f.mainType(child) == Flexible {
			if used+gap > main {
				slots[i].Skipped = true
				continue
			}
			flexCount++
			laidOut++
			used += gap
			continue
		}
		s := child.Size(lc)
		m := f.clamp(f.main(s))
		switch {
		case used+gap+m <= main:
			extents[i] = m
			used += gap + m
		case main-used-gap > 0:
			extents[i] = main - used - gap
			used = main
		default:
			slots[i].Skipped = true
			continue
		}
		crosses[i] = f.cross(s)
		maxCross = max(maxCross, crosses[i])
		laidOut++
	}

	var flexExtent float64
	if flexCount > 0 {
		flexExtent = f.clamp(max(0, (main-used)/float64(flexCount)))
	}

	cursor := f.start(lc.Rect)
	placed := 0
	for i, child := range children {
		if slots[i].Skipped {
			continue
		}
		if placed > 0 {
			cursor += f.Space
		}
		placed++
		ext, cr := extents[i], crosses[i]
		if f.mainType(child) == Flexible {
			ext = flexExtent
			cr = max(maxCross, f.cross(child.Size(lc)))
		}
		slots[i].Rect = f.rect(lc.Rect, cursor, ext, cr)
		cursor += ext
	}
	return slots
}

// LayoutChildren arranges children and lays out every slot that was not
// skipped, with parent appended to the ancestor chain.
func (f Flex) LayoutChildren(parent Widget, lc *LayoutContext, children []Widget, out *LayoutConstructor) {
	for _, slot := range f.Arrange(lc, children) {
		if slot.Skipped {
			continue
		}
		slot.Child.Layout(lc.Next(parent, slot.Rect, lc.Layer, lc.Selected), out)
	}
}

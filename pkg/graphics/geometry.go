// Package graphics provides the logical-pixel geometry shared by layout,
// input and measurement.
package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Point is a position in logical pixels.
type Point struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromPointSize constructs a Rect with its top-left corner at p.
func RectFromPointSize(p Point, size Size) Rect {
	return RectFromLTWH(p.X, p.Y, size.Width, size.Height)
}

// RectFromPoints constructs a Rect spanning two corners.
func RectFromPoints(leftTop, rightBottom Point) Rect {
	return Rect{Left: leftTop.X, Top: leftTop.Y, Right: rightBottom.X, Bottom: rightBottom.Y}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// LeftTop returns the top-left corner.
func (r Rect) LeftTop() Point {
	return Point{X: r.Left, Y: r.Top}
}

// LeftBottom returns the bottom-left corner.
func (r Rect) LeftBottom() Point {
	return Point{X: r.Left, Y: r.Bottom}
}

// RightBottom returns the bottom-right corner.
func (r Rect) RightBottom() Point {
	return Point{X: r.Right, Y: r.Bottom}
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// IsNegative reports whether either extent is below zero.
func (r Rect) IsNegative() bool {
	return r.Width() < -epsilon || r.Height() < -epsilon
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Deflate shrinks the rect by the given insets.
func (r Rect) Deflate(in EdgeInsets) Rect {
	return Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
}

// EdgeInsets describes padding on each side of a rectangle.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// Symmetric returns insets with equal horizontal and vertical padding.
func Symmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the sum of left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// NearlyEqual reports whether a and b differ by less than epsilon.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

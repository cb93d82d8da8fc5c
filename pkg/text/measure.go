package text

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-glane/glane/pkg/errors"
	"github.com/go-glane/glane/pkg/graphics"
)

// DefaultCacheSize is the number of (font, string) measurements kept by
// NewCachedMeasurer when no size is configured.
const DefaultCacheSize = 1024

// Measurer reports text geometry. Implementations must be pure.
type Measurer interface {
	// Bounds returns the bounding rectangle of s laid out on one line with
	// its origin at (0, 0). An empty string has zero width and the font's
	// full line height.
	Bounds(f *Font, s string) graphics.Rect
	// GlobalBounds returns the size of the font's largest glyph box.
	GlobalBounds(f *Font) graphics.Size
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// FaceMeasurer measures with the x/image font.Face carried by each Font.
type FaceMeasurer struct{}

// Bounds implements Measurer.
func (FaceMeasurer) Bounds(f *Font, s string) graphics.Rect {
	face := f.face()
	m := face.Metrics()
	height := toFloat(m.Ascent + m.Descent)
	if s == "" {
		return graphics.Rect{Bottom: height}
	}
	return graphics.Rect{Right: toFloat(font.MeasureString(face, s)), Bottom: height}
}

// GlobalBounds implements Measurer.
func (FaceMeasurer) GlobalBounds(f *Font) graphics.Size {
	face := f.face()
	m := face.Metrics()
	width, ok := face.GlyphAdvance('M')
	if !ok {
		width = m.Height
	}
	return graphics.Size{Width: toFloat(width), Height: toFloat(m.Ascent + m.Descent)}
}

// CellMeasurer measures in terminal cells: each rune occupies its East
// Asian display width times CellWidth. Fonts are ignored.
type CellMeasurer struct {
	CellWidth  float64
	CellHeight float64
}

// Bounds implements Measurer.
func (c CellMeasurer) Bounds(_ *Font, s string) graphics.Rect {
	return graphics.Rect{
		Right:  float64(runewidth.StringWidth(s)) * c.CellWidth,
		Bottom: c.CellHeight,
	}
}

// GlobalBounds implements Measurer.
func (c CellMeasurer) GlobalBounds(*Font) graphics.Size {
	return graphics.Size{Width: c.CellWidth, Height: c.CellHeight}
}

type measureKey struct {
	font *Font
	s    string
}

// CachedMeasurer memoizes another Measurer with an LRU of bounded size.
type CachedMeasurer struct {
	inner  Measurer
	bounds *lru.Cache[measureKey, graphics.Rect]
	global *lru.Cache[*Font, graphics.Size]
}

// NewCachedMeasurer wraps inner with an LRU holding size entries.
func NewCachedMeasurer(inner Measurer, size int) (*CachedMeasurer, error) {
	bounds, err := lru.New[measureKey, graphics.Rect](size)
	if err != nil {
		return nil, errors.New("text.NewCachedMeasurer", errors.KindInit, fmt.Errorf("cache size %d: %w", size, err))
	}
	global, err := lru.New[*Font, graphics.Size](64)
	if err != nil {
		return nil, errors.New("text.NewCachedMeasurer", errors.KindInit, err)
	}
	return &CachedMeasurer{inner: inner, bounds: bounds, global: global}, nil
}

// Bounds implements Measurer.
func (c *CachedMeasurer) Bounds(f *Font, s string) graphics.Rect {
	key := measureKey{font: f, s: s}
	if r, ok := c.bounds.Get(key); ok {
		return r
	}
	r := c.inner.Bounds(f, s)
	c.bounds.Add(key, r)
	return r
}

// GlobalBounds implements Measurer.
func (c *CachedMeasurer) GlobalBounds(f *Font) graphics.Size {
	if sz, ok := c.global.Get(f); ok {
		return sz
	}
	sz := c.inner.GlobalBounds(f)
	c.global.Add(f, sz)
	return sz
}

// Len returns the number of cached string measurements.
func (c *CachedMeasurer) Len() int {
	return c.bounds.Len()
}

// NewDefaultMeasurer returns a cached FaceMeasurer of DefaultCacheSize.
func NewDefaultMeasurer() Measurer {
	m, err := NewCachedMeasurer(FaceMeasurer{}, DefaultCacheSize)
	if err != nil {
		// Unreachable: DefaultCacheSize is positive.
		return FaceMeasurer{}
	}
	return m
}

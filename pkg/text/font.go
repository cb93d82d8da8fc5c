// Package text is the boundary to the font and measurement collaborator.
//
// Widgets never shape text themselves; they ask a Measurer for the bounding
// rectangle of a string in a font, and for a font's global bounding size.
// Measurers are pure functions of their arguments, which is what lets
// CachedMeasurer memoize them.
package text

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/go-glane/glane/pkg/errors"
)

// screenDPI converts point sizes to logical pixels.
const screenDPI = 96

// Font is a face at a fixed size. Fonts are shared by pointer; the pointer
// is the cache identity.
type Font struct {
	// Name identifies the font in logs and layout dumps.
	Name string
	// Size is the point size the face was built for.
	Size float64
	// Face provides glyph metrics. Nil means the built-in fixed face.
	Face font.Face
}

func (f *Font) String() string {
	if f == nil {
		return "<nil font>"
	}
	return fmt.Sprintf("%s@%gpt", f.Name, f.Size)
}

func (f *Font) face() font.Face {
	if f == nil || f.Face == nil {
		return basicfont.Face7x13
	}
	return f.Face
}

var defaultFont = sync.OnceValue(func() *Font {
	return &Font{Name: "basic-7x13", Size: 13, Face: basicfont.Face7x13}
})

// DefaultFont returns the built-in 7x13 bitmap font. It needs no font files,
// so every scene has a usable default.
func DefaultFont() *Font {
	return defaultFont()
}

// LoadFont reads an OpenType/TrueType file and returns a face at size
// points.
func LoadFont(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("text.LoadFont", errors.KindInit, fmt.Errorf("failed to read font %s: %w", path, err))
	}
	return ParseFont(filepath.Base(path), data, size)
}

// ParseFont builds a Font from OpenType/TrueType data.
func ParseFont(name string, data []byte, size float64) (*Font, error) {
	if size <= 0 {
		return nil, errors.New("text.ParseFont", errors.KindInit, fmt.Errorf("font size must be positive, got %g", size))
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.New("text.ParseFont", errors.KindInit, fmt.Errorf("failed to parse font %s: %w", name, err))
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     screenDPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.New("text.ParseFont", errors.KindInit, fmt.Errorf("failed to create face for %s: %w", name, err))
	}
	return &Font{Name: name, Size: size, Face: face}, nil
}

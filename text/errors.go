package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilFontSource is returned when Bake is called without a source.
	ErrNilFontSource = errors.New("text: nil font source")

	// ErrInvalidPixelSize is returned when the bake size is not positive.
	ErrInvalidPixelSize = errors.New("text: pixel size must be positive")

	// ErrInvalidBitmapSize is returned when an explicit bitmap size is not positive.
	ErrInvalidBitmapSize = errors.New("text: bitmap size must be positive")

	// ErrNoMetrics is returned when a font carries no horizontal header metrics.
	ErrNoMetrics = errors.New("text: font has no horizontal metrics")
)

// LoadError is returned when a font resource cannot be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "text: couldn't load font " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// OverflowError is returned by a strict bake when a glyph does not fit
// into the atlas bitmap.
type OverflowError struct {
	// Char is the first character that did not fit.
	Char rune
	// Placed is the number of glyphs placed before Char.
	Placed int
	// Size is the bitmap side length.
	Size int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("text: glyph %q does not fit in %dx%d atlas after %d glyphs", e.Char, e.Size, e.Size, e.Placed)
}

package text

import (
	"maps"
	"slices"
	"sync"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/sfnt or github.com/go-text/typesetting).
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// All metrics are in font units.
type ParsedFont interface {
	// Name returns the font family name, or empty string if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// VMetrics returns the horizontal header line metrics.
	VMetrics() VMetrics

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 (the .notdef glyph) if the rune is not mapped.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance width of a glyph.
	GlyphAdvance(gid GlyphID) float64

	// GlyphOutline returns the glyph outline with the Y axis pointing up.
	// Glyphs without contours return an empty outline.
	GlyphOutline(gid GlyphID) (Outline, error)
}

// VMetrics holds the vertical line metrics of a font, in font units.
type VMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m VMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

// parserRegistry holds registered font parsers.
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the registered parser names in sorted order.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	return slices.Sorted(maps.Keys(parserRegistry))
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}

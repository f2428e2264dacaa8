package text

const (
	// FirstChar is the first character code baked into an atlas.
	FirstChar = 32

	// GlyphCount is the number of consecutive character codes baked,
	// covering [FirstChar, FirstChar+GlyphCount).
	GlyphCount = 96
)

// InRange reports whether r has a glyph in a baked atlas.
func InRange(r rune) bool {
	return r >= FirstChar && r < FirstChar+GlyphCount
}

// BakedGlyph locates one glyph inside an atlas bitmap.
type BakedGlyph struct {
	// X0, Y0, X1, Y1 is the glyph rectangle in bitmap pixels.
	X0, Y0, X1, Y1 uint16

	// XOff and YOff offset the rectangle from the pen position.
	// The Y axis increases down.
	XOff, YOff float32

	// XAdvance is the pen advance in pixels at bake resolution.
	XAdvance float32
}

// Width returns the glyph rectangle width.
func (g BakedGlyph) Width() int { return int(g.X1) - int(g.X0) }

// Height returns the glyph rectangle height.
func (g BakedGlyph) Height() int { return int(g.Y1) - int(g.Y0) }

// Empty reports whether the glyph has no pixels in the bitmap.
func (g BakedGlyph) Empty() bool { return g.Width() <= 0 || g.Height() <= 0 }

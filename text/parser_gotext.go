package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	ext, ok := face.FontHExtents()
	if !ok {
		return nil, ErrNoMetrics
	}

	return &gotextParsedFont{
		face: face,
		name: face.Describe().Family,
		metrics: VMetrics{
			Ascent:  float64(ext.Ascender),
			Descent: float64(ext.Descender),
			LineGap: float64(ext.LineGap),
		},
	}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Face.
// font.Face caches lookups and is NOT safe for concurrent use.
type gotextParsedFont struct {
	mu      sync.Mutex
	face    *font.Face
	name    string
	metrics VMetrics
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.name
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// VMetrics implements ParsedFont.VMetrics.
func (f *gotextParsedFont) VMetrics() VMetrics {
	return f.metrics
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) GlyphID {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphID(gid)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(gid GlyphID) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return float64(f.face.HorizontalAdvance(font.GID(gid)))
}

// GlyphOutline implements ParsedFont.GlyphOutline.
// Color, bitmap and SVG glyphs fall back to their outline when present.
func (f *gotextParsedFont) GlyphOutline(gid GlyphID) (Outline, error) {
	f.mu.Lock()
	data := f.face.GlyphData(font.GID(gid))
	f.mu.Unlock()

	var src font.GlyphOutline
	switch g := data.(type) {
	case font.GlyphOutline:
		src = g
	case font.GlyphSVG:
		src = g.Outline
	case nil:
		return Outline{}, fmt.Errorf("text: glyph %d: no glyph data", gid)
	default:
		return Outline{}, fmt.Errorf("text: glyph %d: unsupported glyph data %T", gid, data)
	}

	out := Outline{Segments: make([]OutlineSegment, 0, len(src.Segments))}
	for _, seg := range src.Segments {
		var s OutlineSegment
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			s.Op = OutlineOpMoveTo
		case ot.SegmentOpLineTo:
			s.Op = OutlineOpLineTo
		case ot.SegmentOpQuadTo:
			s.Op = OutlineOpQuadTo
		case ot.SegmentOpCubeTo:
			s.Op = OutlineOpCubicTo
		default:
			continue
		}
		for i := range s.Op.points() {
			s.Points[i] = OutlinePoint{X: seg.Args[i].X, Y: seg.Args[i].Y}
		}
		out.Segments = append(out.Segments, s)
	}
	return out, nil
}

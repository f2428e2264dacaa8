package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	pf := &ximageParsedFont{
		font: f,
		upem: int(f.UnitsPerEm()),
	}
	// A ppem numerically equal to the units per em makes every 26.6 value
	// returned by sfnt an exact count of font units.
	pf.ppem = fixed.Int26_6(pf.upem)

	m, err := f.Metrics(&pf.buf, pf.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read metrics: %w", err)
	}
	if m.Ascent == 0 && m.Descent == 0 {
		return nil, ErrNoMetrics
	}
	pf.metrics = VMetrics{
		Ascent:  float64(m.Ascent),
		Descent: -float64(m.Descent),
		LineGap: float64(m.Height - m.Ascent - m.Descent),
	}
	return pf, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Buffer is not safe for concurrent use, so access is serialized.
type ximageParsedFont struct {
	font    *opentype.Font
	upem    int
	ppem    fixed.Int26_6
	metrics VMetrics

	mu  sync.Mutex
	buf sfnt.Buffer
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return f.upem
}

// VMetrics implements ParsedFont.VMetrics.
func (f *ximageParsedFont) VMetrics() VMetrics {
	return f.metrics
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	advance, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return float64(advance)
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *ximageParsedFont) GlyphOutline(gid GlyphID) (Outline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	segments, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil {
		return Outline{}, fmt.Errorf("text: glyph %d: %w", gid, err)
	}

	out := Outline{Segments: make([]OutlineSegment, 0, len(segments))}
	for _, seg := range segments {
		var s OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			s.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			s.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			s.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			s.Op = OutlineOpCubicTo
		default:
			continue
		}
		for i := range s.Op.points() {
			s.Points[i] = sfntPoint(seg.Args[i])
		}
		out.Segments = append(out.Segments, s)
	}
	return out, nil
}

// sfntPoint converts a y-down sfnt point to a y-up outline point.
func sfntPoint(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{X: float32(p.X), Y: -float32(p.Y)}
}

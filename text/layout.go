package text

import "math"

// Quad is one positioned glyph ready for submission to a renderer.
type Quad struct {
	// X0, Y0, X1, Y1 is the destination rectangle in layout space:
	// target pixels, origin at the horizontal center of the string on the
	// font's descent line, Y axis pointing up. Y0 is the bottom edge.
	X0, Y0, X1, Y1 float32

	// S0, T0, S1, T1 is the source rectangle in normalized atlas
	// coordinates. T0 is the glyph's top row and T1 its bottom row.
	S0, T0, S1, T1 float32
}

// Layout is the result of laying out one string against an atlas.
type Layout struct {
	// Quads holds one quad per baked character, in string order.
	// Characters outside the baked range produce no quad.
	Quads []Quad

	// Advance is the summed advance of all baked characters at bake
	// resolution.
	Advance float32

	// Ratio is the target size divided by the bake size.
	Ratio float32
}

// Width returns the laid-out width in target pixels.
func (l Layout) Width() float32 {
	return l.Advance * l.Ratio
}

// Len returns the number of quads.
func (l Layout) Len() int {
	return len(l.Quads)
}

// originQuad is a glyph quad computed with the pen at the origin,
// in bake pixels with the Y axis pointing down.
type originQuad struct {
	x0, y0, x1, y1 float32
	s0, t0, s1, t1 float32
}

// bakedQuad computes a glyph's quad at the origin using the OpenGL fill
// rule (no half-pixel bias).
func bakedQuad(g BakedGlyph, size int) originQuad {
	inv := 1 / float32(size)
	rx := float32(math.Floor(float64(g.XOff) + 0.5))
	ry := float32(math.Floor(float64(g.YOff) + 0.5))
	return originQuad{
		x0: rx,
		y0: ry,
		x1: rx + float32(g.Width()),
		y1: ry + float32(g.Height()),
		s0: float32(g.X0) * inv,
		t0: float32(g.Y0) * inv,
		s1: float32(g.X1) * inv,
		t1: float32(g.Y1) * inv,
	}
}

// LayoutString lays s out as a single line centered on x = 0 at
// targetSize pixels.
//
// Runes outside [FirstChar, FirstChar+GlyphCount) are skipped: they take
// no space and produce no quad. LayoutString never fails; an empty string
// or a nil atlas yields an empty layout.
func LayoutString(a *Atlas, s string, targetSize float32) Layout {
	if a == nil || a.PixelSize <= 0 {
		return Layout{}
	}
	l := Layout{Ratio: targetSize / float32(a.PixelSize)}
	if s == "" {
		return l
	}

	type pending struct {
		q       originQuad
		advance float32
	}
	glyphs := make([]pending, 0, len(s))
	for _, r := range s {
		g, ok := a.Glyph(r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, pending{q: bakedQuad(g, a.Size), advance: g.XAdvance})
		l.Advance += g.XAdvance
	}
	if len(glyphs) == 0 {
		return l
	}

	// Advances accumulate at bake resolution; the ratio scales the whole
	// line at the end.
	x := -l.Advance / 2
	y := a.Descent
	ratio := l.Ratio
	l.Quads = make([]Quad, 0, len(glyphs))
	for _, p := range glyphs {
		q := p.q
		l.Quads = append(l.Quads, Quad{
			X0: (x + q.x0) * ratio,
			Y0: (y - q.y1) * ratio,
			X1: (x + q.x1) * ratio,
			Y1: (y - q.y0) * ratio,
			S0: q.s0,
			T0: q.t0,
			S1: q.s1,
			T1: q.t1,
		})
		x += p.advance
	}
	return l
}

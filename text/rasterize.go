package text

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// GlyphMask is a rasterized glyph.
type GlyphMask struct {
	// Mask is the anti-aliased coverage, or nil for an empty glyph.
	Mask *image.Alpha

	// X0 and Y0 offset the mask's top-left corner from the pen position.
	// The Y axis increases down, so Y0 is negative above the baseline.
	X0, Y0 int
}

// Width returns the mask width in pixels.
func (g GlyphMask) Width() int {
	if g.Mask == nil {
		return 0
	}
	return g.Mask.Rect.Dx()
}

// Height returns the mask height in pixels.
func (g GlyphMask) Height() int {
	if g.Mask == nil {
		return 0
	}
	return g.Mask.Rect.Dy()
}

// GlyphBox returns the pixel box covering an outline drawn at scale,
// relative to the pen position with the Y axis pointing down.
func GlyphBox(o Outline, scale float64) image.Rectangle {
	minX, minY, maxX, maxY, ok := o.Bounds()
	if !ok {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(float64(minX)*scale)),
		int(math.Floor(float64(-maxY)*scale)),
		int(math.Ceil(float64(maxX)*scale)),
		int(math.Ceil(float64(-minY)*scale)),
	)
}

// RasterizeOutline renders an outline into an alpha mask.
// scale converts font units to pixels.
func RasterizeOutline(o Outline, scale float64) GlyphMask {
	box := GlyphBox(o, scale)
	if box.Empty() {
		return GlyphMask{X0: box.Min.X, Y0: box.Min.Y}
	}

	w, h := box.Dx(), box.Dy()
	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	s := float32(scale)
	px := func(p OutlinePoint) float32 { return p.X*s - ox }
	py := func(p OutlinePoint) float32 { return -p.Y*s - oy }

	z := vector.NewRasterizer(w, h)
	open := false
	for _, seg := range o.Segments {
		p := seg.Points
		switch seg.Op {
		case OutlineOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(px(p[0]), py(p[0]))
			open = true
		case OutlineOpLineTo:
			z.LineTo(px(p[0]), py(p[0]))
		case OutlineOpQuadTo:
			z.QuadTo(px(p[0]), py(p[0]), px(p[1]), py(p[1]))
		case OutlineOpCubicTo:
			z.CubeTo(px(p[0]), py(p[0]), px(p[1]), py(p[1]), px(p[2]), py(p[2]))
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return GlyphMask{Mask: mask, X0: box.Min.X, Y0: box.Min.Y}
}

package text

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/gogpu/spintext"
	"github.com/gogpu/spintext/internal/parallel"
)

// Atlas is a baked font: one square alpha bitmap holding the glyphs of
// [FirstChar, FirstChar+GlyphCount) and the records that locate them.
//
// An Atlas is immutable after Bake and safe to share between the layout
// code and the renderer.
type Atlas struct {
	// Bitmap is the single-channel glyph image, Size x Size pixels.
	Bitmap *image.Alpha

	// Size is the bitmap side length in pixels.
	Size int

	// PixelSize is the pixel height the font was baked at.
	PixelSize int

	// Descent is the font's descent at bake resolution (negative).
	Descent float32

	// Glyphs holds one record per character code, indexed by code-FirstChar.
	Glyphs [GlyphCount]BakedGlyph

	// Name is the font family name.
	Name string

	// Dropped counts glyphs that did not fit into the bitmap.
	// Dropped glyphs keep their advance but have an empty rectangle.
	Dropped int
}

// BakeFont parses data with the default parser and bakes it.
func BakeFont(data []byte, pixelSize int, opts ...BakeOption) (*Atlas, error) {
	src, err := NewFontSource(data)
	if err != nil {
		return nil, err
	}
	return Bake(src, pixelSize, opts...)
}

// Bake renders the printable ASCII glyphs of src at pixelSize into a new
// atlas. The bitmap side is 8x pixelSize unless WithBitmapSize is given.
//
// Glyphs that do not fit are left out of the bitmap and counted in
// Atlas.Dropped; with WithStrictFit they make Bake return *OverflowError.
func Bake(src *FontSource, pixelSize int, opts ...BakeOption) (*Atlas, error) {
	if src == nil {
		return nil, ErrNilFontSource
	}
	if pixelSize <= 0 {
		return nil, ErrInvalidPixelSize
	}

	var cfg bakeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	side := cfg.bitmapSize
	switch {
	case side < 0:
		return nil, ErrInvalidBitmapSize
	case side == 0:
		side = pixelSize * bitmapScale
	}

	parsed := src.Parsed()
	scale := src.ScaleForPixelHeight(float64(pixelSize))

	a := &Atlas{
		Bitmap:    image.NewAlpha(image.Rect(0, 0, side, side)),
		Size:      side,
		PixelSize: pixelSize,
		Descent:   float32(src.VMetrics().Descent * scale),
		Name:      src.Name(),
	}

	log := spintext.Logger()

	// Outlines are read serially; parsers are not required to be safe for
	// concurrent use.
	outlines := make([]Outline, GlyphCount)
	advances := make([]float32, GlyphCount)
	for i := range GlyphCount {
		r := rune(FirstChar + i)
		gid := parsed.GlyphIndex(r)

		outline, err := parsed.GlyphOutline(gid)
		if err != nil {
			log.Debug("text: glyph without outline", "char", string(r), "err", err)
			outline = Outline{}
		}
		outlines[i] = outline
		advances[i] = float32(parsed.GlyphAdvance(gid) * scale)
	}

	masks := rasterizeAll(outlines, scale, cfg.workers)

	packer := NewRowPacker(side, side)
	for i, gm := range masks {
		g := BakedGlyph{
			XOff:     float32(gm.X0),
			YOff:     float32(gm.Y0),
			XAdvance: advances[i],
		}

		w, h := gm.Width(), gm.Height()
		x, y, ok := packer.Allocate(w, h)
		if !ok {
			if cfg.strictFit {
				return nil, &OverflowError{Char: rune(FirstChar + i), Placed: i, Size: side}
			}
			a.Dropped++
			a.Glyphs[i] = g
			continue
		}

		if gm.Mask != nil {
			draw.Draw(a.Bitmap, image.Rect(x, y, x+w, y+h), gm.Mask, image.Point{}, draw.Src)
		}
		g.X0, g.Y0 = uint16(x), uint16(y)
		g.X1, g.Y1 = uint16(x+w), uint16(y+h)
		a.Glyphs[i] = g
	}

	if a.Dropped > 0 {
		log.Warn("text: atlas overflow, glyphs left out",
			"font", a.Name, "size", side, "dropped", a.Dropped)
	}
	log.Debug("text: baked atlas",
		"font", a.Name,
		"pixelSize", pixelSize,
		"size", side,
		"descent", a.Descent,
		"rows", packer.Bottom(),
		"utilization", packer.Utilization())

	return a, nil
}

// rasterizeAll renders every outline, spreading the work over workers
// goroutines.
func rasterizeAll(outlines []Outline, scale float64, workers int) []GlyphMask {
	masks := make([]GlyphMask, len(outlines))
	if workers == 1 {
		for i, o := range outlines {
			masks[i] = RasterizeOutline(o, scale)
		}
		return masks
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	work := make([]func(), len(outlines))
	for i, o := range outlines {
		work[i] = func() { masks[i] = RasterizeOutline(o, scale) }
	}
	pool.ExecuteAll(work)
	return masks
}

// Glyph returns the baked record for r.
// ok is false when r is outside the baked range.
func (a *Atlas) Glyph(r rune) (g BakedGlyph, ok bool) {
	if !InRange(r) {
		return BakedGlyph{}, false
	}
	return a.Glyphs[r-FirstChar], true
}

// Image returns the atlas bitmap as an image.Image.
func (a *Atlas) Image() image.Image {
	return a.Bitmap
}

// WritePNG encodes the atlas bitmap as a grayscale PNG.
func (a *Atlas) WritePNG(w io.Writer) error {
	gray := image.NewGray(a.Bitmap.Rect)
	copy(gray.Pix, a.Bitmap.Pix)
	return png.Encode(w, gray)
}

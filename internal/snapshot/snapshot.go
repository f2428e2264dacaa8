// Package snapshot renders a laid-out line into an image without a window.
package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/spintext/text"
)

// Render draws l flat, unrotated, white on black into a w x h image.
// The layout origin lands on the image center with Y pointing up.
func Render(a *text.Atlas, l text.Layout, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	if a == nil || a.Bitmap == nil {
		return dst
	}

	src := whiteAtlas(a.Bitmap)
	size := float64(a.Size)
	cx, cy := float64(w)/2, float64(h)/2

	for _, q := range l.Quads {
		if q.X1 <= q.X0 || q.Y1 <= q.Y0 {
			continue
		}
		dr := image.Rect(
			int(math.Floor(cx+float64(q.X0))),
			int(math.Floor(cy-float64(q.Y1))),
			int(math.Ceil(cx+float64(q.X1))),
			int(math.Ceil(cy-float64(q.Y0))),
		)
		sr := image.Rect(
			int(math.Round(float64(q.S0)*size)),
			int(math.Round(float64(q.T0)*size)),
			int(math.Round(float64(q.S1)*size)),
			int(math.Round(float64(q.T1)*size)),
		)
		if dr.Empty() || sr.Empty() {
			continue
		}
		draw.BiLinear.Scale(dst, dr, src, sr, draw.Over, nil)
	}
	return dst
}

// whiteAtlas turns coverage into white with matching alpha.
func whiteAtlas(m *image.Alpha) *image.NRGBA {
	out := image.NewNRGBA(m.Rect)
	for i, a := range m.Pix {
		o := out.Pix[i*4 : i*4+4 : i*4+4]
		o[0], o[1], o[2], o[3] = 0xff, 0xff, 0xff, a
	}
	return out
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

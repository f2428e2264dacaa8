package text

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// testAtlas bakes Go Regular at 16 pixels with the default parser.
func testAtlas(t testing.TB) *Atlas {
	t.Helper()

	atlas, err := BakeFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("BakeFont() error = %v", err)
	}
	return atlas
}

func TestBake_Size16(t *testing.T) {
	for _, parser := range Parsers() {
		t.Run(parser, func(t *testing.T) {
			atlas, err := Bake(testSource(t, parser), 16)
			if err != nil {
				t.Fatalf("Bake() error = %v", err)
			}

			if atlas.Size != 128 {
				t.Errorf("Size = %d, want 128", atlas.Size)
			}
			if b := atlas.Bitmap.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
				t.Errorf("Bitmap bounds = %v, want 128x128", b)
			}
			if len(atlas.Glyphs) != 96 {
				t.Errorf("len(Glyphs) = %d, want 96", len(atlas.Glyphs))
			}
			if atlas.PixelSize != 16 {
				t.Errorf("PixelSize = %d, want 16", atlas.PixelSize)
			}
			if atlas.Dropped != 0 {
				t.Errorf("Dropped = %d, want 0", atlas.Dropped)
			}

			want := goRegularDescent * 16.0 / (goRegularAscent - goRegularDescent)
			if math.Abs(float64(atlas.Descent)-want) > 1e-5 {
				t.Errorf("Descent = %v, want %v", atlas.Descent, want)
			}
		})
	}
}

func TestBake_GlyphH(t *testing.T) {
	atlas := testAtlas(t)

	g, ok := atlas.Glyph('H')
	if !ok {
		t.Fatal("Glyph('H') not found")
	}

	// 'H' is 1479 units wide in Go Regular.
	wantAdvance := 1479.0 * 16 / (goRegularAscent - goRegularDescent)
	if math.Abs(float64(g.XAdvance)-wantAdvance) > 1e-4 {
		t.Errorf("XAdvance = %v, want %v", g.XAdvance, wantAdvance)
	}
	if g.XOff != 1 || g.YOff != -11 {
		t.Errorf("offset = (%v, %v), want (1, -11)", g.XOff, g.YOff)
	}
	if g.Width() != 8 || g.Height() != 11 {
		t.Errorf("size = %dx%d, want 8x11", g.Width(), g.Height())
	}

	var ink int
	for y := int(g.Y0); y < int(g.Y1); y++ {
		for x := int(g.X0); x < int(g.X1); x++ {
			ink += int(atlas.Bitmap.AlphaAt(x, y).A)
		}
	}
	if ink == 0 {
		t.Error("glyph rectangle of 'H' has no coverage")
	}
}

func TestBake_Space(t *testing.T) {
	atlas := testAtlas(t)

	g, _ := atlas.Glyph(' ')
	if !g.Empty() {
		t.Errorf("space glyph should be empty, got %dx%d", g.Width(), g.Height())
	}
	if g.XAdvance <= 0 {
		t.Errorf("space XAdvance = %v, want > 0", g.XAdvance)
	}
}

func TestBake_GlyphsInsideBitmap(t *testing.T) {
	atlas := testAtlas(t)

	for i, g := range atlas.Glyphs {
		if int(g.X1) > atlas.Size || int(g.Y1) > atlas.Size {
			t.Errorf("glyph %q rect (%d,%d)-(%d,%d) exceeds %d", rune(FirstChar+i), g.X0, g.Y0, g.X1, g.Y1, atlas.Size)
		}
		if g.Empty() {
			continue
		}
		if g.X0 == 0 || g.Y0 == 0 {
			t.Errorf("glyph %q placed on the border at (%d,%d)", rune(FirstChar+i), g.X0, g.Y0)
		}
	}
}

func TestBake_ParsersAgreeOnLayout(t *testing.T) {
	x, err := Bake(testSource(t, "ximage"), 16)
	if err != nil {
		t.Fatal(err)
	}
	g, err := Bake(testSource(t, "gotext"), 16)
	if err != nil {
		t.Fatal(err)
	}

	for i := range GlyphCount {
		if x.Glyphs[i] != g.Glyphs[i] {
			t.Errorf("glyph %q: ximage %+v, gotext %+v", rune(FirstChar+i), x.Glyphs[i], g.Glyphs[i])
		}
	}
}

func TestBake_Errors(t *testing.T) {
	source := testSource(t, "ximage")

	tests := []struct {
		name string
		bake func() error
		want error
	}{
		{"nil source", func() error { _, err := Bake(nil, 16); return err }, ErrNilFontSource},
		{"zero size", func() error { _, err := Bake(source, 0); return err }, ErrInvalidPixelSize},
		{"negative size", func() error { _, err := Bake(source, -4); return err }, ErrInvalidPixelSize},
		{"zero bitmap", func() error { _, err := Bake(source, 16, WithBitmapSize(0)); return err }, ErrInvalidBitmapSize},
		{"empty data", func() error { _, err := BakeFont(nil, 16); return err }, ErrEmptyFontData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.bake(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBake_OverflowStrict(t *testing.T) {
	_, err := Bake(testSource(t, "ximage"), 16, WithBitmapSize(32), WithStrictFit())

	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("error = %v, want *OverflowError", err)
	}
	if overflow.Size != 32 {
		t.Errorf("OverflowError.Size = %d, want 32", overflow.Size)
	}
	if !InRange(overflow.Char) || overflow.Placed != int(overflow.Char)-FirstChar {
		t.Errorf("OverflowError = %+v, inconsistent char/placed", overflow)
	}
}

func TestBake_OverflowLenient(t *testing.T) {
	atlas, err := Bake(testSource(t, "ximage"), 16, WithBitmapSize(32))
	if err != nil {
		t.Fatalf("Bake() error = %v", err)
	}
	if atlas.Dropped == 0 {
		t.Fatal("Dropped = 0, want glyphs left out of a 32x32 atlas")
	}

	g, _ := atlas.Glyph('H')
	if !g.Empty() {
		t.Errorf("'H' should not fit into a 32x32 atlas, got rect (%d,%d)-(%d,%d)", g.X0, g.Y0, g.X1, g.Y1)
	}
	if g.XAdvance <= 0 {
		t.Error("dropped glyph should keep its advance")
	}
}

func TestBake_CustomBitmapSize(t *testing.T) {
	atlas, err := Bake(testSource(t, "ximage"), 16, WithBitmapSize(256))
	if err != nil {
		t.Fatal(err)
	}
	if atlas.Size != 256 {
		t.Errorf("Size = %d, want 256", atlas.Size)
	}
}

func TestAtlas_Glyph(t *testing.T) {
	atlas := testAtlas(t)

	tests := []struct {
		r  rune
		ok bool
	}{
		{31, false},
		{' ', true},
		{'~', true},
		{127, true},
		{128, false},
		{'é', false},
		{-1, false},
	}
	for _, tt := range tests {
		if _, ok := atlas.Glyph(tt.r); ok != tt.ok {
			t.Errorf("Glyph(%U) ok = %v, want %v", tt.r, ok, tt.ok)
		}
	}
}

func TestAtlas_WritePNG(t *testing.T) {
	atlas := testAtlas(t)

	var buf bytes.Buffer
	if err := atlas.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != atlas.Bitmap.Bounds() {
		t.Errorf("PNG bounds = %v, want %v", img.Bounds(), atlas.Bitmap.Bounds())
	}

	g, _ := atlas.Glyph('H')
	var found bool
	for y := int(g.Y0); y < int(g.Y1) && !found; y++ {
		for x := int(g.X0); x < int(g.X1); x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("PNG has no ink inside the 'H' rectangle")
	}
}

func TestBake_WorkersDeterministic(t *testing.T) {
	source := testSource(t, "ximage")

	serial, err := Bake(source, 24, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{0, 3, 8} {
		got, err := Bake(source, 24, WithWorkers(n))
		if err != nil {
			t.Fatalf("WithWorkers(%d): %v", n, err)
		}
		if got.Glyphs != serial.Glyphs {
			t.Errorf("WithWorkers(%d): glyph records differ from serial bake", n)
		}
		if !bytes.Equal(got.Bitmap.Pix, serial.Bitmap.Pix) {
			t.Errorf("WithWorkers(%d): bitmap differs from serial bake", n)
		}
	}
}

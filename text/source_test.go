package text

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// Go Regular line metrics from its hhea table.
const (
	goRegularAscent  = 1935
	goRegularDescent = -432
	goRegularUPEM    = 2048
)

// testSource parses Go Regular with the named parser backend.
func testSource(t *testing.T, parser string) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF, WithParser(parser))
	if err != nil {
		t.Fatalf("failed to create font source (%s): %v", parser, err)
	}
	return source
}

func TestNewFontSource_Empty(t *testing.T) {
	_, err := NewFontSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSource_Garbage(t *testing.T) {
	for _, parser := range Parsers() {
		t.Run(parser, func(t *testing.T) {
			_, err := NewFontSource([]byte("definitely not a font"), WithParser(parser))
			if err == nil {
				t.Error("expected parse error for garbage data")
			}
		})
	}
}

func TestNewFontSource_CopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	for i := range data {
		data[i] = 0
	}

	if _, err := Bake(source, 16); err != nil {
		t.Errorf("Bake after caller reused data: %v", err)
	}
}

func TestFontSource_Metrics(t *testing.T) {
	for _, parser := range Parsers() {
		t.Run(parser, func(t *testing.T) {
			source := testSource(t, parser)

			if got := source.Parsed().UnitsPerEm(); got != goRegularUPEM {
				t.Errorf("UnitsPerEm() = %d, want %d", got, goRegularUPEM)
			}
			m := source.VMetrics()
			if m.Ascent != goRegularAscent {
				t.Errorf("Ascent = %v, want %v", m.Ascent, goRegularAscent)
			}
			if m.Descent != goRegularDescent {
				t.Errorf("Descent = %v, want %v", m.Descent, goRegularDescent)
			}
			if source.Name() == "" {
				t.Error("Name() should not be empty")
			}
			if source.ParserName() != parser {
				t.Errorf("ParserName() = %q, want %q", source.ParserName(), parser)
			}
		})
	}
}

func TestFontSource_ScaleForPixelHeight(t *testing.T) {
	source := testSource(t, "ximage")

	got := source.ScaleForPixelHeight(16)
	want := 16.0 / (goRegularAscent - goRegularDescent)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ScaleForPixelHeight(16) = %v, want %v", got, want)
	}
}

func TestLoadFontSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := LoadFontSource(path)
	if err != nil {
		t.Fatalf("LoadFontSource() error = %v", err)
	}
	if source.VMetrics().Descent != goRegularDescent {
		t.Errorf("Descent = %v, want %v", source.VMetrics().Descent, goRegularDescent)
	}
}

func TestLoadFontSource_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Ldfcomicsans.ttf")

	_, err := LoadFontSource(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("LoadFontSource(missing) error = %v, want *LoadError", err)
	}
	if loadErr.Path != path {
		t.Errorf("LoadError.Path = %q, want %q", loadErr.Path, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadError should unwrap to fs.ErrNotExist, got %v", err)
	}
}

func TestLoadFontSource_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ttf")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFontSource(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("LoadFontSource(empty) error = %v, want *LoadError", err)
	}
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("error should wrap ErrEmptyFontData, got %v", err)
	}
}

func TestFontSource_CopyCheck(t *testing.T) {
	source := testSource(t, "ximage")
	copied := *source //nolint:govet // intentional copy

	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a copied FontSource")
		}
	}()
	_ = copied.Name()
}

package text

import (
	"os"
)

// FontSource represents a loaded font file.
// One FontSource can be baked at several pixel sizes.
//
// FontSource is immutable after creation and safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data    []byte
	parsed  ParsedFont
	name    string
	metrics VMetrics

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Parsers keep referencing the bytes they were given.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := getParser(config.parserName).Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	m := parsed.VMetrics()
	if m.Ascent-m.Descent <= 0 {
		return nil, ErrNoMetrics
	}

	s := &FontSource{
		data:    dataCopy,
		parsed:  parsed,
		name:    parsed.Name(),
		metrics: m,
		config:  config,
	}
	s.addr = s
	if s.name == "" {
		s.name = "Unknown Font"
	}
	return s, nil
}

// LoadFontSource loads a FontSource from a font file path.
// Read failures are reported as *LoadError.
func LoadFontSource(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(data) == 0 {
		return nil, &LoadError{Path: path, Err: ErrEmptyFontData}
	}
	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// ParserName returns the name of the parser backend that was requested.
func (s *FontSource) ParserName() string {
	s.copyCheck()
	return s.config.parserName
}

// VMetrics returns the font's line metrics in font units.
func (s *FontSource) VMetrics() VMetrics {
	s.copyCheck()
	return s.metrics
}

// ScaleForPixelHeight returns the scale that maps the distance between the
// font's ascent and descent onto height pixels.
func (s *FontSource) ScaleForPixelHeight(height float64) float64 {
	s.copyCheck()
	return height / (s.metrics.Ascent - s.metrics.Descent)
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

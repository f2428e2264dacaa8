package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/sfnt;
// "gotext" selects github.com/go-text/typesetting.
//
// Custom parsers can be registered with RegisterParser.
// Unknown names fall back to the default parser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// BakeOption configures Bake.
type BakeOption func(*bakeConfig)

// bakeConfig holds configuration for Bake.
type bakeConfig struct {
	bitmapSize int // 0 means 8x the pixel size
	strictFit  bool
	workers    int
}

// bitmapScale is the heuristic ratio between atlas side and bake size.
const bitmapScale = 8

// WithBitmapSize overrides the atlas side length.
// By default the side is 8x the bake pixel size.
func WithBitmapSize(n int) BakeOption {
	return func(c *bakeConfig) {
		c.bitmapSize = n
		if n <= 0 {
			c.bitmapSize = -1
		}
	}
}

// WithStrictFit makes Bake fail with *OverflowError when a glyph does not
// fit instead of leaving it out of the bitmap.
func WithStrictFit() BakeOption {
	return func(c *bakeConfig) {
		c.strictFit = true
	}
}

// WithWorkers sets how many goroutines rasterize glyphs during Bake.
// n <= 0 selects GOMAXPROCS; 1 rasterizes on the calling goroutine.
// Packing always runs in character order, so the atlas does not depend
// on n.
func WithWorkers(n int) BakeOption {
	return func(c *bakeConfig) {
		c.workers = n
	}
}

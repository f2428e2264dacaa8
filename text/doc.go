// Package text bakes fonts into alpha atlases and lays strings out as
// textured quads.
//
// The pipeline has two stages:
//
//   - Bake: parse a TTF/OTF font once and render the printable ASCII range
//     [32, 128) into a square single-channel bitmap, recording where each
//     glyph landed and how far it advances the pen.
//   - LayoutString: turn a string into quads (destination rectangle plus
//     normalized atlas rectangle), centered horizontally on x = 0.
//
// # Example usage
//
//	// Load and bake once, share the atlas with the renderer.
//	source, err := text.LoadFontSource("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	atlas, err := text.Bake(source, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Lay out per frame (or once per distinct string).
//	l := text.LayoutString(atlas, "Hello World!", 256)
//	for _, q := range l.Quads {
//	    // submit q.X0..q.Y1 with texture coords q.S0..q.T1
//	}
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface. Two
// backends are registered: "ximage" (golang.org/x/image/font/sfnt, the
// default) and "gotext" (github.com/go-text/typesetting):
//
//	source, err := text.NewFontSource(data, text.WithParser("gotext"))
//
// # Unsupported characters
//
// Characters outside the baked range are skipped silently. They take no
// space and produce no quad; layout never fails.
package text

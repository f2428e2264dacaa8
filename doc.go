// Package spintext bakes a TrueType font into a texture atlas and renders
// spinning 3D text with it.
//
// # Overview
//
// The library part lives in the text sub-package: a font baker that packs
// the printable ASCII glyphs into one alpha bitmap, and a layout function
// that turns strings into centered, textured quads. The spintext command
// wires both into an ebiten window, rotates the text with a perspective
// camera and plays a background track.
//
// # Quick Start
//
//	import "github.com/gogpu/spintext/text"
//
//	atlas, err := text.BakeFont(goregular.TTF, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout := text.LayoutString(atlas, "Hello World!", 256)
//
// # Logging
//
// The packages are silent by default. Call SetLogger to see bake
// summaries, atlas overflow warnings and window lifecycle events.
package spintext

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

// Package config holds the settings of the spinning text demo.
package config

import (
	"path/filepath"
	"slices"

	"golang.org/x/text/width"

	"github.com/gogpu/spintext/text"
)

// Bake sizes for the two quality levels.
const (
	HighBakeSize = 64
	LowBakeSize  = 16
)

// Music files for the two quality levels, looked up in AssetsDir.
const (
	HighMusicFile = "funky-town-cut.mp3"
	LowMusicFile  = "funky-town-low-quality.mp3"
)

// Config is the resolved program configuration.
type Config struct {
	// HighQuality selects the larger bake size and the better music file.
	HighQuality bool

	// FontPath is a TTF/OTF file. Empty selects the embedded Go Regular.
	FontPath string

	// Parser is the font parser backend name.
	Parser string

	// AssetsDir is searched for the music file.
	AssetsDir string

	// Music overrides the music file path when set.
	Music string

	// Mute disables music playback.
	Mute bool

	// Text is the string shown on screen.
	Text string

	// FoldWidth maps fullwidth and halfwidth runes to their ASCII
	// counterparts before layout.
	FoldWidth bool

	// DisplaySize is the target text height in pixels.
	DisplaySize float64

	// Width and Height are the window size in pixels.
	Width, Height int

	// AtlasPNG, when set, receives the baked atlas as a PNG and the
	// program exits without opening a window.
	AtlasPNG string

	// Snapshot, when set, receives a flat render of the text as a PNG
	// instead of opening a window.
	Snapshot string

	// Verbose enables debug logging.
	Verbose bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Parser:      "ximage",
		AssetsDir:   "assets",
		Text:        "Hello World!",
		DisplaySize: 256,
		Width:       800,
		Height:      800,
	}
}

// Validate checks c and returns *Error for the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.DisplaySize <= 0:
		return &Error{Field: "DisplaySize", Reason: "must be positive"}
	case c.Width <= 0:
		return &Error{Field: "Width", Reason: "must be positive"}
	case c.Height <= 0:
		return &Error{Field: "Height", Reason: "must be positive"}
	case !slices.Contains(text.Parsers(), c.Parser):
		return &Error{Field: "Parser", Reason: "unknown parser " + c.Parser}
	case !c.Mute && !c.DumpOnly() && c.Music == "" && c.AssetsDir == "":
		return &Error{Field: "AssetsDir", Reason: "required when music is enabled"}
	}
	return nil
}

// DumpOnly reports whether the run writes PNG files and exits instead of
// opening the window and playing music.
func (c Config) DumpOnly() bool {
	return c.AtlasPNG != "" || c.Snapshot != ""
}

// BakeSize returns the pixel height the font is baked at.
func (c Config) BakeSize() int {
	if c.HighQuality {
		return HighBakeSize
	}
	return LowBakeSize
}

// MusicFile returns the music file name for the quality level.
func (c Config) MusicFile() string {
	if c.HighQuality {
		return HighMusicFile
	}
	return LowMusicFile
}

// MusicPath returns the music file to play.
func (c Config) MusicPath() string {
	if c.Music != "" {
		return c.Music
	}
	return filepath.Join(c.AssetsDir, c.MusicFile())
}

// DisplayText returns the line to draw. With FoldWidth, fullwidth forms
// such as "Ｈｅｌｌｏ" become their ASCII counterparts so the atlas has
// glyphs for them.
func (c Config) DisplayText() string {
	if c.FoldWidth {
		return width.Fold.String(c.Text)
	}
	return c.Text
}

// Error reports an invalid configuration field.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return "config: invalid " + e.Field + ": " + e.Reason
}

// Command spintext bakes a font and spins a line of text in a window
// while music plays.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/spintext"
	"github.com/gogpu/spintext/internal/audio"
	"github.com/gogpu/spintext/internal/config"
	"github.com/gogpu/spintext/internal/snapshot"
	"github.com/gogpu/spintext/internal/view"
	"github.com/gogpu/spintext/text"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config.Config, error) {
	cfg := config.Default()

	fs := flag.NewFlagSet("spintext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.HighQuality, "high", cfg.HighQuality, "bake at 64px and play the high quality music")
	fs.StringVar(&cfg.FontPath, "font", cfg.FontPath, "TTF/OTF font file (default: embedded Go Regular)")
	fs.StringVar(&cfg.Parser, "parser", cfg.Parser, "font parser backend: ximage or gotext")
	fs.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "directory holding the music files")
	fs.StringVar(&cfg.Music, "music", cfg.Music, "music file, overrides -assets")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "do not play music")
	fs.StringVar(&cfg.Text, "text", cfg.Text, "text to display")
	fs.BoolVar(&cfg.FoldWidth, "fold", cfg.FoldWidth, "map fullwidth characters to ASCII before layout")
	fs.Float64Var(&cfg.DisplaySize, "size", cfg.DisplaySize, "display text size in pixels")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	fs.StringVar(&cfg.AtlasPNG, "atlas-png", cfg.AtlasPNG, "write the baked atlas to this PNG file and exit")
	fs.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "render the text flat into this PNG file instead of opening a window")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	spintext.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer spintext.SetLogger(nil)

	atlas, err := bake(cfg)
	if err != nil {
		return err
	}
	line := cfg.DisplayText()

	if cfg.AtlasPNG != "" {
		if err := writeAtlas(cfg.AtlasPNG, atlas); err != nil {
			return err
		}
	}
	if cfg.Snapshot != "" {
		layout := text.LayoutString(atlas, line, float32(cfg.DisplaySize))
		img := snapshot.Render(atlas, layout, cfg.Width, cfg.Height)
		if err := snapshot.SavePNG(cfg.Snapshot, img); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	if cfg.DumpOnly() {
		fmt.Fprintln(stdout, "Successful program exit")
		return nil
	}

	if !cfg.Mute {
		track, err := audio.Open(cfg.MusicPath())
		if err != nil {
			return err
		}
		player, err := audio.Play(track, false)
		if err != nil {
			return err
		}
		defer func() { _ = player.Close() }()
	}

	if err := view.Run(atlas, view.Options{
		Text:   line,
		Size:   float32(cfg.DisplaySize),
		Width:  cfg.Width,
		Height: cfg.Height,
	}); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Successful program exit")
	return nil
}

// bake loads the configured font and bakes it at the quality's size.
func bake(cfg config.Config) (*text.Atlas, error) {
	var (
		src *text.FontSource
		err error
	)
	if cfg.FontPath == "" {
		src, err = text.NewFontSource(goregular.TTF, text.WithParser(cfg.Parser))
	} else {
		src, err = text.LoadFontSource(cfg.FontPath, text.WithParser(cfg.Parser))
	}
	if err != nil {
		return nil, err
	}
	return text.Bake(src, cfg.BakeSize())
}

func writeAtlas(path string, a *text.Atlas) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("atlas png: %w", err)
	}
	if err := a.WritePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("atlas png: %w", err)
	}
	return f.Close()
}

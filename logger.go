package spintext

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so callers never
// build the attributes of a disabled message.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	silent = slog.New(discard{})
	active atomic.Pointer[slog.Logger]
)

func init() {
	active.Store(silent)
}

// SetLogger routes the log output of the baker, the audio player and the
// window to l. A nil l silences them again, which is also the state
// before the first call. It may be called while other goroutines log.
//
// Records carry a "text:", "audio:" or "view:" prefix naming the package:
//   - Debug: atlas size, utilization and glyphs without outlines
//   - Info: window opened or closed, music started
//   - Warn: glyphs left out of an atlas that is too small
//
// The command wires it to its -v flag:
//
//	level := slog.LevelInfo
//	if verbose {
//		level = slog.LevelDebug
//	}
//	spintext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: level})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return active.Load()
}

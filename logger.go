package tracer

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Reporting every level as disabled lets
// the hot gesture and sampling paths skip building attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// current is read by the gesture engine on the caller's goroutine and by
// a Sampler inside Run, possibly while an application swaps it.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the package's diagnostics to l. Tracing is silent
// until a logger is set, and SetLogger(nil) silences it again. It may be
// called at any time, including while a Sampler is running.
//
// What gets logged:
//   - [slog.LevelDebug]: gesture mode changes, moves for unknown
//     contacts, rejected scale, rotation and translation overrides, the
//     format of each decoded reference image, sampler start and stop
//   - [slog.LevelWarn]: a sampled frame that could not be composited;
//     the previous output stays on screen
//
// A command-line tool would typically do:
//
//	if *verbose {
//		tracer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//			&slog.HandlerOptions{Level: slog.LevelDebug})))
//	}
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger the package writes to.
func Logger() *slog.Logger {
	return current.Load()
}

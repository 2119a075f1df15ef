package editor

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger shared by the editor, the tool session and
// the CLI. Until it is called nothing is logged; nil restores that.
//
// Events by level:
//   - [slog.LevelDebug]: "checkpoint" (op, entries, cursor), "history full,
//     evicted oldest", "flood fill" (x, y, filled, visited), "import scaled",
//     "text draw failed"
//   - [slog.LevelInfo]: "document replaced" (reason, size, layers),
//     "project saved" and "project loaded" (key)
//   - [slog.LevelWarn]: "flood fill truncated" (limit), "layer image does not
//     match canvas" on load, "stroke dropped" when a pointer leave cannot
//     commit a stroke
//
// Example:
//
//	editor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

package nativegfx

import (
	"log/slog"

	"github.com/gogpu/nativegfx/internal/logging"
)

// SetLogger configures the logger for nativegfx and all its sub-packages.
// By default nativegfx produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used by nativegfx:
//   - [slog.LevelDebug]: object lifecycle (context ready, render target
//     created, object destroyed)
//   - [slog.LevelWarn]: failed context construction, a context released
//     while render targets still reference it
//
// Example:
//
//	nativegfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger. It never returns nil.
func Logger() *slog.Logger {
	return logging.L()
}

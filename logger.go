package eriplots

import (
	"log/slog"

	"github.com/eriplots/eriplots/internal/logger"
)

// SetLogger configures the logger for eriplots and all its sub-packages.
// By default, eriplots produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by eriplots:
//   - [slog.LevelDebug]: each file written, style fallbacks
//   - [slog.LevelWarn]: the PNG optimizer being unavailable, unknown font
//     families
//
// Example:
//
//	eriplots.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger used by eriplots.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logger.Get()
}

package gui

import (
	"log/slog"

	"github.com/grindlemire/go-gui/internal/debug"
)

// SetLogger sets the logger for the whole toolkit. By default nothing is
// logged unless GUI_DEBUG names a log file. Pass nil to silence logging
// again.
//
// Levels: Debug per frame statistics, Warn recovered style and layout
// errors and duplicate keys, Error failed frames.
func SetLogger(l *slog.Logger) {
	debug.SetLogger(l)
}

// Logger returns the toolkit's logger.
func Logger() *slog.Logger {
	return debug.Logger()
}

package guihost

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/go-theft-auto/guihost/imgui"
)

// logLevel is shared by the default logger. SetVerbose switches it.
var logLevel = new(slog.LevelVar)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

// SetVerbose enables or disables debug logging for the bridge and toolkit.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
	imgui.SetVerbose(v)
}

// SetLogger replaces the bridge logger. Passing nil restores the default
// stderr logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}
	loggerPtr.Store(l)
}

func logger() *slog.Logger {
	return loggerPtr.Load()
}

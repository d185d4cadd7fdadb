package gui

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for gui debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// guiLogger is the package logger used when no logger is injected.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// Logger returns the package logger. Its level follows SetVerbose, so
// companion packages such as fontatlas and the backends default to it.
func Logger() *slog.Logger {
	return guiLogger
}

package cmd

import (
	"log/slog"
	"os"
)

// setupLogging installs the process-wide logger: text on stderr, level
// from the --verbosity flag.
func setupLogging(verbosity string) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(verbosity)})
	slog.SetDefault(slog.New(handler))
}

// logLevel maps a verbosity name to a slog level. Unknown names mean info.
func logLevel(verbosity string) slog.Level {
	switch verbosity {
	case "quiet":
		return slog.LevelError
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

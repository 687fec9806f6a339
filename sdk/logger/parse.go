package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logs default to stderr so they never interleave with command responses on
// stdout.
func parseOutput(o string) io.Writer {
	switch strings.ToUpper(o) {
	case "STDOUT":
		return os.Stdout
	case "DISCARD", "NONE":
		return io.Discard
	default:
		return os.Stderr
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package logger

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// New fans records out to a human-readable text handler and a JSON handler
// that only receives errors.
func New(out, errOut io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(errOut, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(slogmulti.Fanout(textHandler, jsonHandler))
}

package main

import (
	"io"
	"log/slog"
	"time"
)

// NewLogger returns a JSON slog.Logger writing to w. At debug level records
// carry their source location. Durations are rendered as milliseconds.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: durationMillis,
	})
	return slog.New(h).With("app", "circle-shot")
}

func durationMillis(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindDuration {
		return slog.Float64(a.Key, float64(a.Value.Duration())/float64(time.Millisecond))
	}
	return a
}

// Package logging provides minimal logger construction helpers.
package logging

import (
	"io"
	"log/slog"
)

// New creates a deterministic text logger at the provided level.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	})

	return slog.New(handler)
}

// ForVerbose creates the diagnostics logger for a CLI run. Verbose runs log
// at debug level; otherwise diagnostics are suppressed entirely.
func ForVerbose(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return New(io.Discard, slog.LevelInfo)
	}
	return New(w, slog.LevelDebug)
}

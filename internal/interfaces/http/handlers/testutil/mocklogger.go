// Package testutil provides shared helpers for handler tests.
package testutil

import (
	"log/slog"

	"ringgate/internal/shared/logger"
)

// NewMockLogger returns a logger that discards all output.
func NewMockLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

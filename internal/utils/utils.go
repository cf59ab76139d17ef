package utils

import (
	"io"
	"log/slog"
	"os"

	"github.com/adventsim/advent-calendar-go/internal/types"
)

// DefaultUtils provides a default implementation for the types.Utils interface.

type DefaultUtils struct {
	logger *slog.Logger
}

var _ types.Utils = (*DefaultUtils)(nil)

// NewDefaultUtils creates a new DefaultUtils writing log output to writer.
// A nil writer defaults to stdout.
func NewDefaultUtils(logLevel slog.Level, writer io.Writer) *DefaultUtils {
	if writer == nil {
		writer = os.Stdout
	}
	return &DefaultUtils{
		logger: slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})),
	}
}

// GetLogger returns the logger instance.
func (u *DefaultUtils) GetLogger() *slog.Logger {
	return u.logger
}

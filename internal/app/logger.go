package app

import (
	"log/slog"
	"os"

	"workout-api/internal/logx"
)

// NewLogger returns the service-wide JSON logger.
func NewLogger() logx.Logger {
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logx.NewSlogAdapter(base)
}

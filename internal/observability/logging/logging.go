package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON slog handler as the process default and returns it.
func Setup(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

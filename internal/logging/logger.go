package logging

import (
	"log/slog"
	"os"
)

// Init configures slog with a text handler on stdout and installs it as the
// default logger. Level defaults to info; LOG_LEVEL=debug lowers it.
func Init() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

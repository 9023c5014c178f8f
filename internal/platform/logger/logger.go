package logger

import (
	"log/slog"
	"os"
	"strings"
)

// serviceName tags every line so aggregated logs from the dashboard stack
// stay filterable.
const serviceName = "petitionpay"

// New returns the process-wide structured JSON logger. The level comes from
// LOG_LEVEL (debug, info, warn, error); unset or unrecognized values mean info.
func New() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: LevelFromEnv(),
	}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler).With("service", serviceName)
}

// LevelFromEnv resolves the LOG_LEVEL environment variable to a slog level.
func LevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

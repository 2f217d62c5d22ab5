package logger

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New builds the run logger. Log lines go to stderr so stdout stays clean
// for the final report. Every line carries a run_id for the lifetime of
// the process.
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("run_id", uuid.New().String()).
		Logger()

	return logger.Level(level)
}

var Module = fx.Provide(New)

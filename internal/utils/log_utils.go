package utils

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LoggerConfig struct {
	Level string
	Json  bool
}

// InitLogger configures the global zerolog logger with the provided level
// and output format.
func InitLogger(cfg LoggerConfig) {
	zerolog.SetGlobalLevel(ParseLogLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	baseLogger := log.With().Timestamp().Caller().Logger()

	if !cfg.Json {
		baseLogger = baseLogger.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	log.Logger = baseLogger
}

// ParseLogLevel parses a log level string, defaulting to info
func ParseLogLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warn().Err(err).Str("level", level).Msg("Invalid log level, defaulting to info")
		parsedLevel = zerolog.InfoLevel
	}
	return parsedLevel
}

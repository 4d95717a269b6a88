// Package logger provides leveled logging for ramfs on top of zerolog.
//
// The package keeps a printf-style call surface (Debug/Info/Warn/Error)
// so call sites stay terse, while Setup selects structured JSON or
// human-readable console output.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// Setup configures the package logger.
//
// level is one of DEBUG, INFO, WARN, ERROR (case-insensitive).
// format is "text" (console writer) or "json".
// output is "stdout", "stderr", or a file path (created/appended).
func Setup(level, format, output string) error {
	var w io.Writer
	switch output {
	case "", "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log output: %w", err)
		}
		w = f
	}

	if format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	log = zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
	return nil
}

// SetLevel changes the minimum level without touching the output settings.
func SetLevel(level string) {
	log = log.Level(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Component returns a zerolog sub-logger tagged with a component name, for
// code that wants structured fields instead of the printf helpers.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func Debug(format string, v ...any) {
	log.Debug().Msgf(format, v...)
}

func Info(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func Warn(format string, v ...any) {
	log.Warn().Msgf(format, v...)
}

func Error(format string, v ...any) {
	log.Error().Msgf(format, v...)
}

// Package logme is the project-wide logging façade. It writes
// human-readable output to stderr via zerolog; setting DEBUG=1 in the
// environment enables debug-level messages.
package logme

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger = newLogger()

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("DEBUG") == "1" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(level)
}

func Debugln(args ...interface{}) {
	logger.Debug().Msg(sprintln(args...))
}

func DebugFln(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}

func Infoln(args ...interface{}) {
	logger.Info().Msg(sprintln(args...))
}

func InfoFln(format string, args ...interface{}) {
	logger.Info().Msgf(format, args...)
}

func Errorln(args ...interface{}) {
	logger.Error().Msg(sprintln(args...))
}

func ErrorFln(format string, args ...interface{}) {
	logger.Error().Msgf(format, args...)
}

func sprintln(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

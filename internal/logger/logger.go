// Package logger builds the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human readable debug logger for dev and a JSON info logger otherwise
func New(env string) zerolog.Logger {
	if env == "dev" {
		return NewWithWriter(env, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter is New with the output redirected to w
func NewWithWriter(env string, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if env == "dev" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("env", env).Logger()
}

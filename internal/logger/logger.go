package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the configured level cannot be parsed.
const DefaultLevel = zerolog.WarnLevel

// New returns a console logger writing to w at the given level.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = DefaultLevel
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

// ErrorWithStack logs err with its stack trace when it carries one.
func ErrorWithStack(l zerolog.Logger, err error, msg string) {
	l.Error().Msgf("%s: %+v", msg, err)
}

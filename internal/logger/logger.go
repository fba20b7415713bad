package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger writing to w at the given level.
// Console output is used for debug so request traces stay readable in a terminal,
// json otherwise.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	var out io.Writer = w
	if level <= zerolog.DebugLevel {
		out = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to a zerolog level.
// Empty or unknown names fall back to warn; the bool reports whether the name was recognised.
func ParseLevel(level string) (zerolog.Level, bool) {
	if level == "" {
		return zerolog.WarnLevel, false
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.WarnLevel, false
	}
	return l, true
}

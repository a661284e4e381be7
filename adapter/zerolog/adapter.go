package zerologadapter

import (
	"github.com/rs/zerolog"

	"github.com/trickstertwo/toylog"
)

// Console returns a console table that emits each rendered line as the
// message of a zerolog event at the mapped level.
func Console(l zerolog.Logger) toylog.Console {
	var c toylog.Console
	for _, level := range toylog.Levels() {
		c[level] = write(l, mapLevel(level))
	}
	return c
}

// Callback returns a callback that forwards every line to l at level.
func Callback(l zerolog.Logger, level toylog.Level) toylog.Callback {
	return toylog.Callback(write(l, mapLevel(level)))
}

func write(l zerolog.Logger, lvl zerolog.Level) toylog.ConsoleFunc {
	return func(line string) error {
		// WithLevel returns nil when lvl is disabled; Msg on nil is a no-op.
		l.WithLevel(lvl).Msg(line)
		return nil
	}
}

func mapLevel(l toylog.Level) zerolog.Level {
	switch l {
	case toylog.LevelDebug:
		return zerolog.DebugLevel
	case toylog.LevelInfo, toylog.LevelLog:
		return zerolog.InfoLevel
	case toylog.LevelWarn:
		return zerolog.WarnLevel
	case toylog.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

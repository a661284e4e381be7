package zapadapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/toylog"
)

// Console returns a console table that writes each rendered line as the
// message of a zap entry at the mapped level. A nil logger falls back to
// zap.L().
func Console(l *zap.Logger) toylog.Console {
	if l == nil {
		l = zap.L()
	}
	var c toylog.Console
	for _, level := range toylog.Levels() {
		c[level] = write(l, toZapLevel(level))
	}
	return c
}

// Callback returns a callback that forwards every line to l at level.
func Callback(l *zap.Logger, level toylog.Level) toylog.Callback {
	if l == nil {
		l = zap.L()
	}
	return toylog.Callback(write(l, toZapLevel(level)))
}

func write(l *zap.Logger, lvl zapcore.Level) toylog.ConsoleFunc {
	return func(line string) error {
		if ce := l.Check(lvl, line); ce != nil {
			ce.Write()
		}
		return nil
	}
}

// LOG has no zap counterpart and is written at info.
func toZapLevel(l toylog.Level) zapcore.Level {
	switch l {
	case toylog.LevelDebug:
		return zapcore.DebugLevel
	case toylog.LevelInfo, toylog.LevelLog:
		return zapcore.InfoLevel
	case toylog.LevelWarn:
		return zapcore.WarnLevel
	case toylog.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

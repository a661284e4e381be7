package slogadapter

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/toylog"
)

// LevelLog sits between slog's info and warn so handlers can tell LOG lines
// apart from INFO ones.
const LevelLog = slog.LevelInfo + 2

func toSlog(l toylog.Level) slog.Level {
	switch l {
	case toylog.LevelDebug:
		return slog.LevelDebug
	case toylog.LevelInfo:
		return slog.LevelInfo
	case toylog.LevelLog:
		return LevelLog
	case toylog.LevelWarn:
		return slog.LevelWarn
	case toylog.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Console returns a console table backed by l. A nil logger falls back to
// slog.Default().
func Console(l *slog.Logger) toylog.Console {
	if l == nil {
		l = slog.Default()
	}
	var c toylog.Console
	for _, level := range toylog.Levels() {
		c[level] = write(l, toSlog(level))
	}
	return c
}

// Callback returns a callback that forwards every line to l at level.
func Callback(l *slog.Logger, level toylog.Level) toylog.Callback {
	if l == nil {
		l = slog.Default()
	}
	return toylog.Callback(write(l, toSlog(level)))
}

func write(l *slog.Logger, lvl slog.Level) toylog.ConsoleFunc {
	return func(line string) error {
		l.LogAttrs(context.Background(), lvl, line)
		return nil
	}
}

// ReplaceLevel names LevelLog "LOG" in handler output. Use it as
// slog.HandlerOptions.ReplaceAttr.
func ReplaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelLog {
			a.Value = slog.StringValue(toylog.LevelLog.String())
		}
	}
	return a
}

func handlerOptions(w io.Writer, minLevel toylog.Level, opts *slog.HandlerOptions) (io.Writer, *slog.HandlerOptions) {
	if w == nil {
		w = os.Stdout
	}
	o := slog.HandlerOptions{}
	if opts != nil {
		o = *opts
	}
	o.Level = toSlog(minLevel)
	if o.ReplaceAttr == nil {
		o.ReplaceAttr = ReplaceLevel
	}
	// Rendered lines already carry their timestamp.
	next := o.ReplaceAttr
	o.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return next(groups, a)
	}
	return w, &o
}

// NewJSONLogger builds a toylog.Logger whose console is a slog JSON handler.
func NewJSONLogger(w io.Writer, minLevel toylog.Level, opts *slog.HandlerOptions, cfg toylog.Config) (*toylog.Logger, error) {
	w, o := handlerOptions(w, minLevel, opts)
	cfg.Console = Console(slog.New(slog.NewJSONHandler(w, o)))
	return toylog.New(cfg)
}

// NewTextLogger builds a toylog.Logger whose console is a slog text handler.
func NewTextLogger(w io.Writer, minLevel toylog.Level, opts *slog.HandlerOptions, cfg toylog.Config) (*toylog.Logger, error) {
	w, o := handlerOptions(w, minLevel, opts)
	cfg.Console = Console(slog.New(slog.NewTextHandler(w, o)))
	return toylog.New(cfg)
}

package toylog

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Level identifies one of the five logging entry points. The numeric value is
// the index into per-level lookup tables (settings, callbacks, console).
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelLog
	LevelWarn
	LevelError
)

// levelCount sizes the per-level tables.
const levelCount = int(LevelError) + 1

var levelNames = [levelCount]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelLog:   "LOG",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// Levels returns all levels in ascending order.
func Levels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelLog, LevelWarn, LevelError}
}

// Valid reports whether l is one of the five known levels.
func (l Level) Valid() bool { return int(l) < levelCount }

// String returns the canonical upper-case name rendered for the LEVEL token.
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel converts a case-insensitive level name into a Level.
// "WARNING" is accepted as an alias of WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "LOG":
		return LevelLog, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return 0, errors.Wrapf(ErrUnknownLevel, "%q", s)
	}
}

// MarshalText encodes l as its canonical name.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, errors.Wrapf(ErrUnknownLevel, "%d", uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText accepts any name ParseLevel accepts.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

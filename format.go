package toylog

import (
	"strings"
	"time"
)

// Template tokens recognised by Render.
const (
	TokenLevel     = "LEVEL"
	TokenTimestamp = "TIMESTAMP"
	TokenMessage   = "MESSAGE"
)

// TimestampLayout is ISO-8601 with millisecond precision. Timestamp always
// formats in UTC, so the zone renders as "Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp renders t for the TIMESTAMP token.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Render substitutes the first LEVEL, then the first TIMESTAMP, then the
// first MESSAGE in template. Later occurrences are left verbatim and nothing
// is escaped.
func Render(template string, level Level, timestamp, message string) string {
	out := strings.Replace(template, TokenLevel, level.String(), 1)
	out = strings.Replace(out, TokenTimestamp, timestamp, 1)
	return strings.Replace(out, TokenMessage, message, 1)
}

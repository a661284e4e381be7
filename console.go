package toylog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ConsoleFunc writes one rendered line to a console-like sink.
type ConsoleFunc func(line string) error

// Console is the per-level lookup table of console functions. A nil entry
// makes console output a no-op for that level.
type Console [levelCount]ConsoleFunc

// For returns the console function of level l, or nil.
func (c Console) For(l Level) ConsoleFunc {
	if !l.Valid() {
		return nil
	}
	return c[l]
}

// IsZero reports whether no level has a console function.
func (c Console) IsZero() bool {
	for _, fn := range c {
		if fn != nil {
			return false
		}
	}
	return true
}

// NewConsole routes DEBUG, INFO and LOG to stdout and WARN, ERROR to stderr.
// Lines are colorized per level when the destination is a terminal and
// NO_COLOR is unset. Writes across all levels share one mutex.
func NewConsole(stdout, stderr io.Writer) Console {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	mu := &sync.Mutex{}
	var c Console
	for _, l := range Levels() {
		w := stdout
		if l >= LevelWarn {
			w = stderr
		}
		c[l] = newWriterConsole(mu, w, levelColor(l, w))
	}
	return c
}

// DiscardConsole returns a table that accepts and drops every line.
func DiscardConsole() Console {
	var c Console
	for _, l := range Levels() {
		c[l] = func(string) error { return nil }
	}
	return c
}

func newWriterConsole(mu *sync.Mutex, w io.Writer, c *color.Color) ConsoleFunc {
	return func(line string) error {
		mu.Lock()
		defer mu.Unlock()
		var err error
		if c != nil {
			_, err = c.Fprintln(w, line)
		} else {
			_, err = fmt.Fprintln(w, line)
		}
		return err
	}
}

// levelColor returns nil when w should receive plain text.
func levelColor(l Level, w io.Writer) *color.Color {
	if !SupportsColor(w) {
		return nil
	}
	var c *color.Color
	switch l {
	case LevelDebug:
		c = color.New(color.FgMagenta)
	case LevelInfo:
		c = color.New(color.FgGreen)
	case LevelLog:
		c = color.New(color.FgHiBlack)
	case LevelWarn:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed, color.Bold)
	}
	c.EnableColor()
	return c
}

// IsTTY reports whether w is a terminal. It supports *os.File and any writer
// exposing Fd().
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether ANSI colors should be written to w:
// w is a TTY, NO_COLOR is unset and TERM is not "dumb".
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}

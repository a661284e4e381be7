package toylog

import "sync/atomic"

// Default creates a logger with default settings, no callbacks and the
// console on os.Stdout/os.Stderr. Timestamps follow xclock's process default.
func Default() *Logger {
	l, err := New(Config{})
	if err != nil {
		// The zero Config cannot fail validation.
		panic(err)
	}
	return l
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter). A nil l resets the
// global to a fresh Default on next use.
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger, installing Default on first use.
func L() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	global.CompareAndSwap(nil, Default())
	return global.Load()
}

package toylog

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownLevel is returned when a Level outside the five known levels
	// (or an unparsable level name) reaches a public entry point.
	ErrUnknownLevel = errors.New("toylog: unknown level")

	// ErrNilCallback is returned when a nil Callback is registered.
	ErrNilCallback = errors.New("toylog: nil callback")

	// ErrCallbackPanic marks errors recovered from a panicking callback.
	ErrCallbackPanic = errors.New("toylog: callback panicked")
)

package toylog

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Callback receives one rendered line. Callbacks of a dispatch run
// concurrently and are awaited together; a returned error fails the dispatch
// without stopping the other callbacks.
type Callback func(line string) error

// Sync adapts a callback that reports nothing.
func Sync(fn func(line string)) Callback {
	return func(line string) error {
		fn(line)
		return nil
	}
}

// Async adapts a callback that hands back a completion signal. The dispatch
// waits for one value (or close) on the returned channel. A nil channel means
// the callback completed synchronously.
func Async(fn func(line string) <-chan error) Callback {
	return func(line string) error {
		done := fn(line)
		if done == nil {
			return nil
		}
		return <-done
	}
}

// WriterCallback writes each line, newline terminated, to w. Writes are not
// serialized; wrap w if it is not safe for concurrent use.
func WriterCallback(w io.Writer) Callback {
	return func(line string) error {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return errors.Wrap(err, "write line")
		}
		return nil
	}
}

// invoke runs cb and converts a panic into an ErrCallbackPanic error.
func invoke(cb Callback, line string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrCallbackPanic, "%v", r)
		}
	}()
	return cb(line)
}

// normalizeCallbacks copies cbs, rejecting nil entries.
func normalizeCallbacks(cbs []Callback) ([]Callback, error) {
	if len(cbs) == 0 {
		return nil, nil
	}
	out := make([]Callback, 0, len(cbs))
	for i, cb := range cbs {
		if cb == nil {
			return nil, errors.Wrapf(ErrNilCallback, "index %d", i)
		}
		out = append(out, cb)
	}
	return out, nil
}

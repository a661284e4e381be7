package toylog

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// StackUnavailable replaces the stack trace line when capture yields nothing.
const StackUnavailable = "the stack trace is not available"

// captureStack returns the goroutine stack, omitting its own frame and skip
// more. Replaced in tests to simulate platforms without stack support.
var captureStack = func(skip int) string {
	return zap.StackSkip("", skip+1).String
}

// dispatch is one expanded fan-out: everything output needs besides the
// message itself.
type dispatch struct {
	settings  Settings
	callbacks []Callback
	level     Level // rendered into LEVEL
	console   ConsoleFunc
	now       func() string
}

// expand turns the message parts into the lines to render. The result never
// aliases parts.
func expand(s Settings, parts []string) []string {
	if len(parts) == 0 {
		return nil
	}
	if s.SingleLine {
		return []string{strings.Join(parts, s.Separator)}
	}
	lines := make([]string, len(parts))
	copy(lines, parts)
	return lines
}

// output renders every line, writes the console synchronously in line order,
// starts every callback for every line in line then registration order, then
// waits for all of them. A slow callback does not delay the next start.
// stackSkip counts the frames strictly between output and the user's call
// site.
func (d dispatch) output(parts []string, stackSkip int) (int, error) {
	lines := expand(d.settings, parts)
	if d.settings.UseStackTrace {
		st := captureStack(stackSkip + 1)
		if st == "" {
			st = StackUnavailable
		}
		lines = append(lines, st)
	}
	if len(lines) == 0 {
		return 0, nil
	}

	var errs error
	p := pool.New().WithErrors()
	for i, line := range lines {
		formatted := Render(d.settings.Format, d.level, d.now(), line)

		if d.settings.UseConsole && d.console != nil {
			if err := d.console(formatted); err != nil {
				errs = multierr.Append(errs, errors.Wrapf(err, "%s console line %d", d.level, i))
			}
		}

		for j, cb := range d.callbacks {
			// Start in (line, registration) order; completion order is free.
			started := make(chan struct{})
			p.Go(func() error {
				close(started)
				if err := invoke(cb, formatted); err != nil {
					return errors.Wrapf(err, "%s callback %d line %d", d.level, j, i)
				}
				return nil
			})
			<-started
		}
	}
	errs = multierr.Append(errs, p.Wait())
	return len(lines), errs
}

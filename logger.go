package toylog

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/trickstertwo/xclock"
)

// Frames between dispatch.output and the caller of a Logger level method:
// emit and the level method itself.
const methodSkip = 2

type levelState struct {
	override Override
	// Callbacks: lock-free reads via atomic.Pointer; appends under Logger.mu.
	// The stored slice MUST be treated as immutable by readers.
	callbacks atomic.Pointer[[]Callback]
}

// Logger owns per-level configuration and is safe for concurrent use.
// Settings other than the callback lists are fixed at construction.
type Logger struct {
	defaults  Settings
	levels    [levelCount]levelState
	console   Console
	clock     xclock.Clock
	metrics   MetricsCollector
	legacyTag bool
	stats     stats

	mu sync.Mutex // serializes AddCallback
}

// Factory: internal constructor. cfg has been validated.
func newLogger(cfg Config, levels [levelCount]LevelConfig) *Logger {
	l := &Logger{
		defaults:  Resolve(DefaultSettings(), cfg.Defaults),
		console:   cfg.Console,
		clock:     cfg.Clock,
		metrics:   cfg.Metrics,
		legacyTag: cfg.LegacyLevelTag,
	}
	if l.console.IsZero() {
		l.console = NewConsole(nil, nil)
	}
	if l.metrics == nil {
		l.metrics = NoopMetricsCollector{}
	}
	for i := range levels {
		l.levels[i].override = levels[i].Override
		cbs := levels[i].Callbacks
		l.levels[i].callbacks.Store(&cbs)
	}
	return l
}

// AddCallback appends cbs to the callback list of level. Dispatches already
// in flight keep the list they started with.
func (l *Logger) AddCallback(level Level, cbs ...Callback) error {
	if !level.Valid() {
		return errors.Wrapf(ErrUnknownLevel, "%d", uint8(level))
	}
	add, err := normalizeCallbacks(cbs)
	if err != nil {
		return err
	}
	if len(add) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	st := &l.levels[level]
	cur := l.snapshotCallbacks(level)
	next := make([]Callback, 0, len(cur)+len(add))
	next = append(next, cur...)
	next = append(next, add...)
	st.callbacks.Store(&next)
	return nil
}

func (l *Logger) snapshotCallbacks(level Level) []Callback {
	p := l.levels[level].callbacks.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Settings returns the effective settings of level.
func (l *Logger) Settings(level Level) Settings {
	if !level.Valid() {
		return l.defaults
	}
	return Resolve(l.defaults, l.levels[level].override)
}

// Callbacks returns the number of callbacks registered for level.
func (l *Logger) Callbacks(level Level) int {
	if !level.Valid() {
		return 0
	}
	return len(l.snapshotCallbacks(level))
}

// Stats returns a snapshot of the dispatch counters.
func (l *Logger) Stats() StatsSnapshot { return l.stats.snapshot() }

// Level entry points. Each part of msg is one line unless the level's
// settings join them; no parts means nothing is written.

func (l *Logger) Debug(msg ...string) error { return l.emit(LevelDebug, msg) }
func (l *Logger) Info(msg ...string) error  { return l.emit(LevelInfo, msg) }
func (l *Logger) Log(msg ...string) error   { return l.emit(LevelLog, msg) }
func (l *Logger) Warn(msg ...string) error  { return l.emit(LevelWarn, msg) }
func (l *Logger) Error(msg ...string) error { return l.emit(LevelError, msg) }

// Dispatch logs msg at level. It is the generic form of the level methods.
func (l *Logger) Dispatch(level Level, msg ...string) error {
	if !level.Valid() {
		return errors.Wrapf(ErrUnknownLevel, "%d", uint8(level))
	}
	return l.emit(level, msg)
}

// emit resolves the level's settings and callback snapshot, then blocks until
// the whole fan-out settled. Callers must be exactly one frame below the
// user's call site for stack traces to start there.
func (l *Logger) emit(level Level, msg []string) error {
	start := time.Now()
	tag := level
	if l.legacyTag {
		tag = LevelLog
	}
	d := dispatch{
		settings:  l.Settings(level),
		callbacks: l.snapshotCallbacks(level),
		level:     tag,
		console:   l.console.For(level),
		now:       l.timestamp,
	}
	lines, err := d.output(msg, methodSkip)

	l.stats.record(lines, err)
	l.metrics.Dispatched(level, float64(time.Since(start).Microseconds())/1000, lines, err)
	return err
}

func (l *Logger) timestamp() string {
	if l.clock != nil {
		return Timestamp(l.clock.Now())
	}
	return Timestamp(xclock.Now())
}

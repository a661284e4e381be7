package toylog

import (
	"github.com/cockroachdb/errors"
	"github.com/trickstertwo/xclock"
)

// LevelConfig is the construction-time configuration of one level: a partial
// settings override plus the initial callbacks.
type LevelConfig struct {
	Override
	Callbacks []Callback
}

// Config for constructing a Logger (Factory data structure). The zero value
// is valid: default settings, no callbacks, console on stdout/stderr.
type Config struct {
	// Defaults is layered over DefaultSettings() for every level.
	Defaults Override
	// Levels holds the per-level overrides; absent levels use Defaults.
	Levels map[Level]LevelConfig
	// Console is the per-level console table; zero means NewConsole(os.Stdout, os.Stderr).
	Console Console
	// Clock is optional; defaults to xclock's process clock.
	Clock xclock.Clock
	// Metrics is optional; defaults to NoopMetricsCollector.
	Metrics MetricsCollector
	// LegacyLevelTag renders LOG into the LEVEL token for every level method.
	LegacyLevelTag bool
}

// New validates cfg and constructs a Logger.
func New(cfg Config) (*Logger, error) {
	var levels [levelCount]LevelConfig
	for level, lc := range cfg.Levels {
		if !level.Valid() {
			return nil, errors.Wrapf(ErrUnknownLevel, "config key %d", uint8(level))
		}
		cbs, err := normalizeCallbacks(lc.Callbacks)
		if err != nil {
			return nil, errors.Wrapf(err, "%s callbacks", level)
		}
		levels[level] = LevelConfig{Override: lc.Override, Callbacks: cbs}
	}
	return newLogger(cfg, levels), nil
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
	err error
}

// NewBuilder starts from the zero Config.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{Levels: make(map[Level]LevelConfig)}}
}

// WithDefaults layers o over the defaults collected so far.
func (b *Builder) WithDefaults(o Override) *Builder {
	b.cfg.Defaults = b.cfg.Defaults.Merge(o)
	return b
}

// WithLevel layers o over the override collected so far for level.
func (b *Builder) WithLevel(level Level, o Override) *Builder {
	if !b.checkLevel(level) {
		return b
	}
	lc := b.cfg.Levels[level]
	lc.Override = lc.Override.Merge(o)
	b.cfg.Levels[level] = lc
	return b
}

// AddCallback appends cbs to the initial callbacks of level. Nil entries
// are reported by Build.
func (b *Builder) AddCallback(level Level, cbs ...Callback) *Builder {
	if !b.checkLevel(level) {
		return b
	}
	lc := b.cfg.Levels[level]
	lc.Callbacks = append(lc.Callbacks, cbs...)
	b.cfg.Levels[level] = lc
	return b
}

// WithConsole sets the per-level console table.
func (b *Builder) WithConsole(c Console) *Builder {
	b.cfg.Console = c
	return b
}

// WithClock pins the timestamp source.
func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// WithMetrics sets the collector notified after every dispatch.
func (b *Builder) WithMetrics(m MetricsCollector) *Builder {
	b.cfg.Metrics = m
	return b
}

// WithLegacyLevelTag renders LOG into the LEVEL token for every level.
func (b *Builder) WithLegacyLevelTag(enabled bool) *Builder {
	b.cfg.LegacyLevelTag = enabled
	return b
}

// Build constructs the Logger (Factory + Builder). The first invalid level
// passed to the builder is reported here.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.cfg)
}

func (b *Builder) checkLevel(level Level) bool {
	if level.Valid() {
		return true
	}
	if b.err == nil {
		b.err = errors.Wrapf(ErrUnknownLevel, "builder level %d", uint8(level))
	}
	return false
}

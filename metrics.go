package toylog

import "sync/atomic"

// MetricsCollector observes completed dispatches. Implementations must be
// safe for concurrent use.
type MetricsCollector interface {
	// Dispatched is called once per level-method call after every callback
	// settled. lines counts rendered lines (stack trace included), err is the
	// aggregate dispatch error.
	Dispatched(level Level, durMS float64, lines int, err error)
}

// NoopMetricsCollector discards every observation. It is the default.
type NoopMetricsCollector struct{}

// Dispatched does nothing.
func (NoopMetricsCollector) Dispatched(Level, float64, int, error) {}

type stats struct {
	dispatches atomic.Uint64
	lines      atomic.Uint64
	failures   atomic.Uint64
}

// StatsSnapshot is a point-in-time copy of a Logger's counters.
type StatsSnapshot struct {
	Dispatches uint64
	Lines      uint64
	Failures   uint64
}

func (s *stats) record(lines int, err error) {
	s.dispatches.Add(1)
	s.lines.Add(uint64(lines))
	if err != nil {
		s.failures.Add(1)
	}
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Dispatches: s.dispatches.Load(),
		Lines:      s.lines.Load(),
		Failures:   s.failures.Load(),
	}
}

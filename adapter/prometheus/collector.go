// Package promadapter exports toylog dispatch metrics to Prometheus.
package promadapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/trickstertwo/toylog"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Collector implements toylog.MetricsCollector.
type Collector struct {
	dispatches *prometheus.CounterVec
	lines      *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

var _ toylog.MetricsCollector = (*Collector)(nil)

// New registers the toylog metrics on reg. A nil reg uses
// prometheus.DefaultRegisterer. namespace may be empty.
func New(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Collector{
		dispatches: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "toylog_dispatches_total",
				Help:      "Total number of level method calls",
			},
			[]string{"level", "status"},
		),
		lines: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "toylog_lines_total",
				Help:      "Total number of rendered lines, stack trace lines included",
			},
			[]string{"level"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "toylog_dispatch_duration_seconds",
				Help:      "Time from level method call until every callback settled",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"level"},
		),
	}
}

func (c *Collector) Dispatched(level toylog.Level, durMS float64, lines int, err error) {
	lv := level.String()
	status := statusOK
	if err != nil {
		status = statusError
	}
	c.dispatches.WithLabelValues(lv, status).Inc()
	c.lines.WithLabelValues(lv).Add(float64(lines))
	c.duration.WithLabelValues(lv).Observe(durMS / 1000)
}

package batch

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts batch lines on a private registry. The command writes it
// out in the node_exporter textfile format.
type Metrics struct {
	registry *prometheus.Registry
	lines    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the batch collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "numwords",
			Subsystem: "batch",
			Name:      "lines_total",
			Help:      "Batch lines processed, by direction and status.",
		}, []string{"direction", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "numwords",
			Subsystem: "batch",
			Name:      "line_duration_seconds",
			Help:      "Time spent converting one batch line.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"direction"}),
	}
	m.registry.MustRegister(m.lines, m.duration)
	return m
}

func (m *Metrics) observe(direction string, ok bool, seconds float64) {
	status := "ok"
	if !ok {
		status = "error"
	}
	m.lines.WithLabelValues(direction, status).Inc()
	m.duration.WithLabelValues(direction).Observe(seconds)
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteFile writes all metrics to path atomically.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("batch: write metrics: %w", err)
	}
	return nil
}

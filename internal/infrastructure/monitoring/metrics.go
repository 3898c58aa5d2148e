package monitoring

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the file manager's Prometheus collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	// Command metrics
	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec

	// Streaming task metrics
	TasksInFlight prometheus.Gauge
	TasksTotal    *prometheus.CounterVec
	TaskBytes     *prometheus.CounterVec

	// Session metrics
	Uptime    prometheus.GaugeFunc
	startTime time.Time

	snapshot MetricsSnapshot
	mu       sync.RWMutex
}

// MetricsSnapshot holds running totals for quick inspection
type MetricsSnapshot struct {
	Commands      int64
	InvalidInputs int64
	Failures      int64
	TasksStarted  int64
	TasksFailed   int64
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		registry:  prometheus.NewRegistry(),
		startTime: time.Now(),

		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filemanager_commands_total",
				Help: "Total number of dispatched commands by verb and outcome",
			},
			[]string{"verb", "outcome"},
		),
		CommandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "filemanager_command_duration_seconds",
				Help:    "Time spent in dispatch, excluding streaming completion",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"verb"},
		),
		TasksInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "filemanager_tasks_in_flight",
				Help: "Number of streaming operations currently running",
			},
		),
		TasksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filemanager_tasks_total",
				Help: "Total number of completed streaming operations by verb and outcome",
			},
			[]string{"verb", "outcome"},
		),
		TaskBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filemanager_task_bytes_total",
				Help: "Bytes read by streaming operations",
			},
			[]string{"verb"},
		),
	}

	m.Uptime = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "filemanager_uptime_seconds",
			Help: "Session uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	m.registry.MustRegister(
		m.CommandsTotal,
		m.CommandDuration,
		m.TasksInFlight,
		m.TasksTotal,
		m.TaskBytes,
		m.Uptime,
	)

	return m
}

// RecordCommand records one dispatched command
func (m *Metrics) RecordCommand(verb, outcome string, duration time.Duration) {
	m.CommandsTotal.WithLabelValues(metricVerb(verb), outcome).Inc()
	m.CommandDuration.WithLabelValues(metricVerb(verb)).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.Commands++
	switch outcome {
	case "invalid_input":
		m.snapshot.InvalidInputs++
	case "failed":
		m.snapshot.Failures++
	}
}

// TaskStarted records a streaming operation being launched
func (m *Metrics) TaskStarted() {
	m.TasksInFlight.Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.TasksStarted++
}

// TaskFinished records a streaming operation reporting its completion
func (m *Metrics) TaskFinished(verb string, bytes int64, err error) {
	m.TasksInFlight.Dec()

	outcome := "success"
	if err != nil {
		outcome = "failed"
	}
	m.TasksTotal.WithLabelValues(metricVerb(verb), outcome).Inc()
	if bytes > 0 {
		m.TaskBytes.WithLabelValues(metricVerb(verb)).Add(float64(bytes))
	}

	if err != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.snapshot.TasksFailed++
	}
}

// GetSnapshot returns a copy of the running totals
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// WriteTextfile writes all metrics in Prometheus text format, for pickup by a
// node_exporter textfile collector
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// metricVerb bounds label cardinality: arbitrary unknown input collapses to one label
func metricVerb(verb string) string {
	if verb == "" || len(verb) > 16 {
		return "unknown"
	}
	return verb
}

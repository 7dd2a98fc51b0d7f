package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides Prometheus metrics for the assistant session.
type Metrics struct {
	config MetricsConfig

	// Command metrics
	commandsHandled *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec

	// Validation metrics
	validationFailures *prometheus.CounterVec

	// Book metrics
	contacts       prometheus.Gauge
	upcomingWindow prometheus.Histogram

	registry *prometheus.Registry
	server   *http.Server
}

// NewMetrics creates a new metrics collector with the given configuration.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		// Return a no-op metrics instance
		return &Metrics{config: cfg}, nil
	}

	namespace := cfg.Namespace
	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		commandsHandled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_handled_total",
				Help:      "Total number of shell commands handled",
			},
			[]string{"command", "status"},
		),
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "Duration of command handling in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"command"},
		),

		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Total number of field validation failures",
			},
			[]string{"field"},
		),

		contacts: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "contacts",
				Help:      "Current number of contacts in the address book",
			},
		),
		upcomingWindow: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upcoming_window_days",
				Help:      "Day windows requested by birthday queries",
				Buckets:   []float64{0, 1, 7, 14, 30, 90, 365},
			},
		),
	}

	registry.MustRegister(
		m.commandsHandled,
		m.commandDuration,
		m.validationFailures,
		m.contacts,
		m.upcomingWindow,
	)

	return m, nil
}

// RecordCommand records a handled command with its status and duration.
func (m *Metrics) RecordCommand(command, status string, duration time.Duration) {
	if m.commandsHandled == nil {
		return
	}
	m.commandsHandled.WithLabelValues(command, status).Inc()
	m.commandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordValidationFailure records a field validation failure.
func (m *Metrics) RecordValidationFailure(field string) {
	if m.validationFailures == nil {
		return
	}
	m.validationFailures.WithLabelValues(field).Inc()
}

// SetContacts sets the current contact count.
func (m *Metrics) SetContacts(count int) {
	if m.contacts == nil {
		return
	}
	m.contacts.Set(float64(count))
}

// RecordUpcomingQuery records the window size of a birthday query.
func (m *Metrics) RecordUpcomingQuery(days int) {
	if m.upcomingWindow == nil {
		return
	}
	m.upcomingWindow.Observe(float64(days))
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// StartServer starts an HTTP server to expose metrics. It is a no-op
// when metrics are disabled.
func (m *Metrics) StartServer(logger *Logger) error {
	if !m.config.Enabled {
		return nil
	}

	path := m.config.Path
	if path == "" {
		path = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())

	m.server = &http.Server{
		Addr:              m.config.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Metrics server failed")
		}
	}()

	logger.Infof("Metrics exposed on http://%s%s", m.config.ListenAddress, path)
	return nil
}

// Shutdown stops the metrics server if one is running.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m.server == nil {
		return nil
	}
	return m.server.Shutdown(ctx)
}

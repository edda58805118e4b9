package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetricsCollector handles mediator command/query execution metrics
type RequestMetricsCollector struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
}

// NewRequestMetricsCollector creates a new request metrics collector
func NewRequestMetricsCollector() *RequestMetricsCollector {
	return &RequestMetricsCollector{
		// Session requests are in-memory, so buckets start in the microseconds
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "Command and query execution duration distribution",
				Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"request", "status"},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Total number of commands and queries executed by type and status",
			},
			[]string{"request", "status"},
		),
	}
}

// Register registers all request metrics with the Prometheus registry
func (c *RequestMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.requestDuration,
		c.requestsTotal,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordRequestExecution records one command or query execution
func (c *RequestMetricsCollector) RecordRequestExecution(
	requestName string,
	duration float64,
	success bool,
) {
	status := "success"
	if !success {
		status = "error"
	}

	c.requestDuration.WithLabelValues(requestName, status).Observe(duration)
	c.requestsTotal.WithLabelValues(requestName, status).Inc()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "spaceempire"
	// Subsystem for session metrics
	subsystem = "game"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalGameCollector is the singleton game metrics collector
	// Set by SetGlobalGameCollector() when metrics are enabled
	globalGameCollector GameMetricsRecorder
)

// GameMetricsRecorder defines the interface for recording per-step game metrics
type GameMetricsRecorder interface {
	RecordPlayerResources(playerID uint32, food, technology, gold int32)
	RecordStep(sequence uint64, unixSeconds float64)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// ResetRegistry drops the registry and global collector, disabling metrics
func ResetRegistry() {
	Registry = nil
	globalGameCollector = nil
}

// SetGlobalGameCollector sets the global game metrics collector
func SetGlobalGameCollector(collector GameMetricsRecorder) {
	globalGameCollector = collector
}

// RecordPlayerResources records a player's resource totals globally
func RecordPlayerResources(playerID uint32, food, technology, gold int32) {
	if globalGameCollector != nil {
		globalGameCollector.RecordPlayerResources(playerID, food, technology, gold)
	}
}

// RecordStep records a completed step globally
func RecordStep(sequence uint64, unixSeconds float64) {
	if globalGameCollector != nil {
		globalGameCollector.RecordStep(sequence, unixSeconds)
	}
}

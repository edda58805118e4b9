package config

import (
	"net"
	"strconv"
)

// MetricsConfig holds metrics collection and exposure configuration
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled"`

	// Port for the HTTP metrics server (Prometheus endpoint)
	Port int `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Host to bind the metrics HTTP server (default: localhost)
	Host string `mapstructure:"host"`

	// Path for the metrics endpoint (default: /metrics)
	Path string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

// Addr returns host:port for the metrics listener
func (m MetricsConfig) Addr() string {
	return net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
}

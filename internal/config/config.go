package config

import (
	"time"
)

// Config represents the complete application configuration, merged from
// defaults, an optional config file, environment variables, and runtime
// overrides.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Carrier CarrierConfig `mapstructure:"carrier"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Health  HealthConfig  `mapstructure:"health"`
	Debug   DebugConfig   `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreConfig contains database configuration for libsql/Turso
type StoreConfig struct {
	Path      string `mapstructure:"path"`
	URL       string `mapstructure:"url"`
	AuthToken string `mapstructure:"auth_token"`
}

// CarrierConfig contains the wholesale carrier client configuration: the
// two service endpoints, our requester identity, the mutual-TLS material,
// and the operational switch allow-list.
type CarrierConfig struct {
	// AddressEndpoint is the address-matching service URL.
	AddressEndpoint string `mapstructure:"address_endpoint"`

	// LineEndpoint is the line-characteristics service URL.
	LineEndpoint string `mapstructure:"line_endpoint"`

	// RequesterID is the DUNS identity sent in every request.
	RequesterID string `mapstructure:"requester_id"`

	// CertFile and KeyFile hold the client certificate presented to the
	// carrier; CAFile holds the trust anchors for its endpoints. The
	// files are re-read on every call, so rotation needs no restart.
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
	CAFile   string `mapstructure:"ca_file"`

	// Timeout bounds one complete carrier exchange.
	Timeout time.Duration `mapstructure:"timeout"`

	// AllowedSwitches is the switch allow-list gating serviceability.
	AllowedSwitches []string `mapstructure:"allowed_switches"`
}

// LoggingConfig contains logging configuration
// Supports progressive logging profiles:
// - SIMPLE: Console output only, minimal configuration (CLI tools)
// - STRUCTURED: Structured sinks, correlation IDs (API services)
// - ENTERPRISE: Multiple sinks, middleware, throttling, policy enforcement (production)
type LoggingConfig struct {
	// Level controls the minimum log level
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`

	// Profile selects the logging complexity level
	// Valid values: SIMPLE, STRUCTURED, ENTERPRISE
	Profile string `mapstructure:"profile"`
}

// MetricsConfig contains Prometheus metrics configuration
type MetricsConfig struct {
	// Enabled controls whether metrics are exposed
	Enabled bool `mapstructure:"enabled"`

	// Port is the dedicated metrics endpoint port (Prometheus format)
	// Metrics are also available at the main HTTP port in JSON format
	Port int `mapstructure:"port"`
}

// HealthConfig contains health check configuration
type HealthConfig struct {
	// Enabled controls whether health endpoints are exposed
	Enabled bool `mapstructure:"enabled"`
}

// DebugConfig contains debug and profiling configuration
type DebugConfig struct {
	// Enabled controls whether debug mode is active
	Enabled bool `mapstructure:"enabled"`

	// PprofEnabled controls whether pprof endpoints are exposed
	// WARNING: Only enable in development/staging environments
	PprofEnabled bool `mapstructure:"pprof_enabled"`
}

// Package config provides centralized configuration management for
// Briteline. Settings merge in layers: built-in defaults and the optional
// config file arrive through viper, environment variables override those,
// and runtime overrides win over everything.
package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fulmenhq/gofulmen/appidentity"
	gfconfig "github.com/fulmenhq/gofulmen/config"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/briteline/briteline/internal/appid"
)

var (
	// appConfig holds the current application configuration
	appConfig   *Config
	configMu    sync.RWMutex
	appIdentity *appidentity.Identity
)

// EnvVarSpec defines environment variable mappings for config fields
// following the pattern: {PREFIX}{NAME} maps to config path
type EnvVarSpec = gfconfig.EnvVarSpec

// Environment variable types
const (
	EnvString = gfconfig.EnvString
	EnvInt    = gfconfig.EnvInt
	EnvBool   = gfconfig.EnvBool
)

// Load builds the typed configuration from viper's merged settings plus
// environment and runtime overrides. Safe to call multiple times; the last
// loaded config is what GetConfig returns.
func Load(ctx context.Context, runtimeOverrides ...map[string]any) (*Config, error) {
	if appIdentity == nil {
		identity, err := appid.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load app identity: %w", err)
		}
		appIdentity = identity
	}

	settings := viper.AllSettings()

	envOverrides, err := gfconfig.LoadEnvOverrides(getEnvSpecs())
	if err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	mergeSettings(settings, envOverrides)
	for _, overrides := range runtimeOverrides {
		mergeSettings(settings, overrides)
	}

	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.Store.URL) == "" && strings.TrimSpace(cfg.Store.Path) == "" {
		cfg.Store.Path = DefaultStorePath()
	}

	setConfig(cfg)

	return cfg, nil
}

// GetConfig returns the current application configuration (thread-safe)
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return appConfig
}

// setConfig updates the current configuration (thread-safe)
func setConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig = cfg
}

// mergeSettings deep-merges src into dst, with src winning on conflicts.
func mergeSettings(dst, src map[string]any) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeSettings(dstMap, srcMap)
				continue
			}
		}
		dst[key] = value
	}
}

// getEnvSpecs returns environment variable specifications for config mapping
// Maps {PREFIX}{NAME} environment variables to config paths
func getEnvSpecs() []EnvVarSpec {
	if appIdentity == nil {
		return []EnvVarSpec{}
	}

	prefix := appIdentity.EnvPrefix
	if !strings.HasSuffix(prefix, "_") {
		prefix += "_"
	}

	return []EnvVarSpec{
		// Server config
		{Name: prefix + "HOST", Path: []string{"server", "host"}, Type: EnvString},
		{Name: prefix + "PORT", Path: []string{"server", "port"}, Type: EnvInt},
		// Duration fields are parsed as strings and converted by mapstructure decode hook
		{Name: prefix + "READ_TIMEOUT", Path: []string{"server", "read_timeout"}, Type: EnvString},
		{Name: prefix + "WRITE_TIMEOUT", Path: []string{"server", "write_timeout"}, Type: EnvString},
		{Name: prefix + "IDLE_TIMEOUT", Path: []string{"server", "idle_timeout"}, Type: EnvString},
		{Name: prefix + "SHUTDOWN_TIMEOUT", Path: []string{"server", "shutdown_timeout"}, Type: EnvString},

		// Logging config
		{Name: prefix + "LOG_LEVEL", Path: []string{"logging", "level"}, Type: EnvString},
		{Name: prefix + "LOG_PROFILE", Path: []string{"logging", "profile"}, Type: EnvString},

		// Store config
		{Name: prefix + "DB_PATH", Path: []string{"store", "path"}, Type: EnvString},
		{Name: prefix + "DB_URL", Path: []string{"store", "url"}, Type: EnvString},
		{Name: prefix + "DB_AUTH_TOKEN", Path: []string{"store", "auth_token"}, Type: EnvString},

		// Carrier config
		{Name: prefix + "CARRIER_ADDRESS_ENDPOINT", Path: []string{"carrier", "address_endpoint"}, Type: EnvString},
		{Name: prefix + "CARRIER_LINE_ENDPOINT", Path: []string{"carrier", "line_endpoint"}, Type: EnvString},
		{Name: prefix + "CARRIER_REQUESTER_ID", Path: []string{"carrier", "requester_id"}, Type: EnvString},
		{Name: prefix + "CARRIER_CERT_FILE", Path: []string{"carrier", "cert_file"}, Type: EnvString},
		{Name: prefix + "CARRIER_KEY_FILE", Path: []string{"carrier", "key_file"}, Type: EnvString},
		{Name: prefix + "CARRIER_CA_FILE", Path: []string{"carrier", "ca_file"}, Type: EnvString},
		{Name: prefix + "CARRIER_TIMEOUT", Path: []string{"carrier", "timeout"}, Type: EnvString},
		{Name: prefix + "CARRIER_ALLOWED_SWITCHES", Path: []string{"carrier", "allowed_switches"}, Type: EnvString},

		// Metrics config
		{Name: prefix + "METRICS_ENABLED", Path: []string{"metrics", "enabled"}, Type: EnvBool},
		{Name: prefix + "METRICS_PORT", Path: []string{"metrics", "port"}, Type: EnvInt},

		// Health config
		{Name: prefix + "HEALTH_ENABLED", Path: []string{"health", "enabled"}, Type: EnvBool},

		// Debug config
		{Name: prefix + "DEBUG_ENABLED", Path: []string{"debug", "enabled"}, Type: EnvBool},
		{Name: prefix + "DEBUG_PPROF_ENABLED", Path: []string{"debug", "pprof_enabled"}, Type: EnvBool},
	}
}

// appNamesForPaths returns the config name and binary name from app
// identity, falling back to "briteline" if not set.
func appNamesForPaths() (configName string, binaryName string) {
	configName = "briteline"
	binaryName = "briteline"
	if appIdentity == nil {
		return configName, binaryName
	}

	if strings.TrimSpace(appIdentity.ConfigName) != "" {
		configName = appIdentity.ConfigName
	}
	if strings.TrimSpace(appIdentity.BinaryName) != "" {
		binaryName = appIdentity.BinaryName
	}
	return configName, binaryName
}

// DefaultConfigPath returns the XDG-compliant path to the user config file.
func DefaultConfigPath() string {
	configName, _ := appNamesForPaths()
	configDir := gfconfig.GetAppConfigDir(configName)
	if strings.TrimSpace(configDir) == "" {
		return ""
	}
	return filepath.Join(configDir, "config.yaml")
}

// DefaultDataDir returns the XDG-compliant data directory for the app.
func DefaultDataDir() string {
	configName, _ := appNamesForPaths()
	return gfconfig.GetAppDataDir(configName)
}

// DefaultStorePath returns the XDG-compliant path to the database file.
func DefaultStorePath() string {
	configName, binaryName := appNamesForPaths()
	dataDir := gfconfig.GetAppDataDir(configName)
	if strings.TrimSpace(dataDir) == "" {
		return "./" + binaryName + ".db"
	}
	return filepath.Join(dataDir, binaryName+".db")
}

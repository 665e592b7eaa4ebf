// Package config loads and validates adservice configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig controls the gRPC listener.
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	DrainTimeoutSec int `mapstructure:"drain_timeout_seconds"`
}

// MetricsConfig controls the Prometheus sidecar endpoint.
type MetricsConfig struct {
	Port int `mapstructure:"port"`
}

// TelemetryConfig controls trace exporter registration.
type TelemetryConfig struct {
	CollectorAddr   string `mapstructure:"collector_addr"`
	RegisterRetries int    `mapstructure:"register_retries"`
	RetryDelaySec   int    `mapstructure:"retry_delay_seconds"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from the environment. The listen port is required
// and has no default; a missing or malformed value fails startup.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ADSERVICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Deployment-standard names used by the surrounding demo topology.
	if err := v.BindEnv("server.port", "PORT", "ADSERVICE_SERVER_PORT"); err != nil {
		return Config{}, fmt.Errorf("bind port env: %w", err)
	}
	if err := v.BindEnv("telemetry.collector_addr", "COLLECTOR_SERVICE_ADDR", "ADSERVICE_TELEMETRY_COLLECTOR_ADDR"); err != nil {
		return Config{}, fmt.Errorf("bind collector env: %w", err)
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.drain_timeout_seconds", 5)
	v.SetDefault("metrics.port", 9464)
	v.SetDefault("telemetry.collector_addr", "")
	v.SetDefault("telemetry.register_retries", 3)
	v.SetDefault("telemetry.retry_delay_seconds", 10)
	v.SetDefault("logging.development", false)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0 (set PORT)")
	}
	if c.Server.DrainTimeoutSec <= 0 {
		return fmt.Errorf("server.drain_timeout_seconds must be > 0")
	}
	if c.Metrics.Port <= 0 {
		return fmt.Errorf("metrics.port must be > 0")
	}
	if c.Telemetry.RegisterRetries <= 0 {
		return fmt.Errorf("telemetry.register_retries must be > 0")
	}
	if c.Telemetry.RetryDelaySec < 0 {
		return fmt.Errorf("telemetry.retry_delay_seconds must be >= 0")
	}
	return nil
}

// DrainTimeout converts the drain window config into a duration.
func (c Config) DrainTimeout() time.Duration {
	return time.Duration(c.Server.DrainTimeoutSec) * time.Second
}

// RetryDelay converts the exporter retry delay config into a duration.
func (c TelemetryConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySec) * time.Second
}

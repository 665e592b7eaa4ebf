package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9555")
	t.Setenv("COLLECTOR_SERVICE_ADDR", "collector:4317")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9555 {
		t.Fatalf("expected port 9555, got %d", cfg.Server.Port)
	}
	if cfg.Telemetry.CollectorAddr != "collector:4317" {
		t.Fatalf("expected collector addr to come from env, got %q", cfg.Telemetry.CollectorAddr)
	}
	if cfg.Metrics.Port != 9464 {
		t.Fatalf("expected default metrics port 9464, got %d", cfg.Metrics.Port)
	}
	if cfg.Telemetry.RegisterRetries != 3 {
		t.Fatalf("expected default register retries 3, got %d", cfg.Telemetry.RegisterRetries)
	}
	if got := cfg.DrainTimeout(); got != 5*time.Second {
		t.Fatalf("expected drain timeout 5s, got %v", got)
	}
	if got := cfg.Telemetry.RetryDelay(); got != 10*time.Second {
		t.Fatalf("expected retry delay 10s, got %v", got)
	}
}

func TestLoadPrefixedOverrides(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ADSERVICE_SERVER_PORT", "7000")
	t.Setenv("ADSERVICE_METRICS_PORT", "9900")
	t.Setenv("ADSERVICE_LOGGING_DEVELOPMENT", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Fatalf("expected port 7000, got %d", cfg.Server.Port)
	}
	if cfg.Metrics.Port != 9900 {
		t.Fatalf("expected metrics port 9900, got %d", cfg.Metrics.Port)
	}
	if !cfg.Logging.Development {
		t.Fatal("expected development logging to be enabled")
	}
}

func TestLoadMissingPortFails(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ADSERVICE_SERVER_PORT", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected Load() to fail without PORT")
	}
}

func TestLoadInvalidPortFails(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected Load() to fail with a malformed PORT")
	}
}

func TestConfigValidateErrors(t *testing.T) {
	t.Parallel()

	base := Config{
		Server:    ServerConfig{Port: 9555, DrainTimeoutSec: 5},
		Metrics:   MetricsConfig{Port: 9464},
		Telemetry: TelemetryConfig{RegisterRetries: 3, RetryDelaySec: 10},
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = 0 }},
		{name: "invalid drain window", mutate: func(c *Config) { c.Server.DrainTimeoutSec = 0 }},
		{name: "invalid metrics port", mutate: func(c *Config) { c.Metrics.Port = -1 }},
		{name: "invalid retries", mutate: func(c *Config) { c.Telemetry.RegisterRetries = 0 }},
		{name: "negative retry delay", mutate: func(c *Config) { c.Telemetry.RetryDelaySec = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := base
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected Validate() to fail for %s", tc.name)
			}
		})
	}
}

func TestConfigValidateAccepts(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Server:    ServerConfig{Port: 9555, DrainTimeoutSec: 5},
		Metrics:   MetricsConfig{Port: 9464},
		Telemetry: TelemetryConfig{RegisterRetries: 3, RetryDelaySec: 10},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

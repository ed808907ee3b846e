package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("PORT", "")
	t.Setenv("APP_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.App.Port != 5000 {
		t.Fatalf("expected default port 5000, got=%d", cfg.App.Port)
	}
	if cfg.App.BodyLimitBytes != 10<<20 {
		t.Fatalf("expected 10MB body limit, got=%d", cfg.App.BodyLimitBytes)
	}
	if cfg.Vision.ModelPath != "model/model.onnx" {
		t.Fatalf("unexpected model path: %s", cfg.Vision.ModelPath)
	}
	if cfg.HTTPAddr() != "0.0.0.0:5000" {
		t.Fatalf("unexpected addr: %s", cfg.HTTPAddr())
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[app]
port = 7000
env = "staging"

[weather]
base_url = "http://weather.local"
timeout_seconds = 3
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "8081")
	t.Setenv("OPENWEATHER_KEY", "secret")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.App.Port != 8081 {
		t.Fatalf("expected PORT override, got=%d", cfg.App.Port)
	}
	if cfg.App.Env != "staging" {
		t.Fatalf("expected env from file, got=%s", cfg.App.Env)
	}
	if cfg.Weather.BaseURL != "http://weather.local" {
		t.Fatalf("expected base url from file, got=%s", cfg.Weather.BaseURL)
	}
	if cfg.Weather.APIKey != "secret" {
		t.Fatalf("expected api key from env")
	}
	if cfg.WeatherTimeout() != 3*time.Second {
		t.Fatalf("expected 3s timeout, got=%s", cfg.WeatherTimeout())
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[app\nport ="), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := Load(); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestWeatherTimeoutFallback(t *testing.T) {
	cfg := defaultConfig()
	cfg.Weather.TimeoutSeconds = 0
	if cfg.WeatherTimeout() != 10*time.Second {
		t.Fatalf("expected 10s fallback, got=%s", cfg.WeatherTimeout())
	}
}

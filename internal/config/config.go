package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App     AppConfig     `toml:"app"`
	Weather WeatherConfig `toml:"weather"`
	Vision  VisionConfig  `toml:"vision"`
	Metrics MetricsConfig `toml:"metrics"`
}

type AppConfig struct {
	Name           string `toml:"name"`
	Env            string `toml:"env"`
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	GinMode        string `toml:"gin_mode"`
	BodyLimitBytes int64  `toml:"body_limit_bytes"`
}

type WeatherConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type VisionConfig struct {
	ModelPath         string `toml:"model_path"`
	ONNXSharedLibPath string `toml:"onnx_shared_lib_path"`
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

// WeatherTimeout falls back to 10s when the configured value is not positive.
func (c *Config) WeatherTimeout() time.Duration {
	if c.Weather.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Weather.TimeoutSeconds) * time.Second
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:           "agroassist",
			Env:            "dev",
			Host:           "0.0.0.0",
			Port:           5000,
			GinMode:        "release",
			BodyLimitBytes: 10 << 20,
		},
		Weather: WeatherConfig{
			BaseURL:        "https://api.openweathermap.org",
			APIKey:         "",
			TimeoutSeconds: 10,
		},
		Vision: VisionConfig{
			ModelPath:         "model/model.onnx",
			ONNXSharedLibPath: "", // use default or set via VISION_ONNX_LIB
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	// PORT is what most hosting platforms inject, so it wins over APP_PORT.
	cfg.App.Port = getEnvAsInt("PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)
	cfg.App.BodyLimitBytes = getEnvAsInt64("APP_BODY_LIMIT_BYTES", cfg.App.BodyLimitBytes)

	cfg.Weather.BaseURL = getEnv("WEATHER_BASE_URL", cfg.Weather.BaseURL)
	cfg.Weather.APIKey = getEnv("OPENWEATHER_KEY", cfg.Weather.APIKey)
	cfg.Weather.TimeoutSeconds = getEnvAsInt("WEATHER_TIMEOUT_SECONDS", cfg.Weather.TimeoutSeconds)

	cfg.Vision.ModelPath = getEnv("VISION_MODEL_PATH", cfg.Vision.ModelPath)
	cfg.Vision.ONNXSharedLibPath = getEnv("VISION_ONNX_LIB", cfg.Vision.ONNXSharedLibPath)

	cfg.Metrics.Enabled = getEnvAsBool("METRICS_ENABLED", cfg.Metrics.Enabled)
	cfg.Metrics.Path = getEnv("METRICS_PATH", cfg.Metrics.Path)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsInt64(key string, fallback int64) int64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

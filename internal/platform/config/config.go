// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Board     BoardConfig     `koanf:"board"`
	Redis     RedisConfig     `koanf:"redis"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// RequestTimeout bounds non-streaming API requests.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the downstream task API client.
type ClientConfig struct {
	BaseURL string `koanf:"base_url"`
	// AuthToken is sent as a Bearer token when set.
	AuthToken      string               `koanf:"auth_token"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side token bucket settings.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// BoardConfig holds board engine settings.
type BoardConfig struct {
	PersistTimeout    time.Duration `koanf:"persist_timeout"`
	PreloadWorkspaces []string      `koanf:"preload_workspaces"`
	PreloadWorkers    int           `koanf:"preload_workers"`
	Collision         string        `koanf:"collision"`
	Sensors           SensorConfig  `koanf:"sensors"`
}

// SensorConfig holds drag activation constraints.
type SensorConfig struct {
	PointerDistance float64       `koanf:"pointer_distance"`
	TouchDelay      time.Duration `koanf:"touch_delay"`
	TouchTolerance  float64       `koanf:"touch_tolerance"`
}

// RedisConfig holds settings for publishing board events to Redis.
type RedisConfig struct {
	Enabled       bool   `koanf:"enabled"`
	Addr          string `koanf:"addr"`
	Password      string `koanf:"password"`
	DB            int    `koanf:"db"`
	ChannelPrefix string `koanf:"channel_prefix"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

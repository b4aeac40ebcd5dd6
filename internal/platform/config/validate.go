package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Board.validate(),
		c.Redis.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be positive, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (b *BoardConfig) validate() error {
	var errs []error

	if b.PersistTimeout <= 0 {
		errs = append(errs, errors.New("board.persist_timeout must be positive"))
	}
	if b.PreloadWorkers < 1 {
		errs = append(errs, fmt.Errorf("board.preload_workers must be >= 1, got %d", b.PreloadWorkers))
	}

	switch b.Collision {
	case "greatest_intersection", "first_overlap":
		// Valid strategies.
	default:
		errs = append(errs, fmt.Errorf(
			"board.collision must be one of: greatest_intersection, first_overlap; got %q", b.Collision))
	}

	if b.Sensors.PointerDistance < 0 {
		errs = append(errs, errors.New("board.sensors.pointer_distance must not be negative"))
	}
	if b.Sensors.TouchDelay < 0 {
		errs = append(errs, errors.New("board.sensors.touch_delay must not be negative"))
	}
	if b.Sensors.TouchTolerance < 0 {
		errs = append(errs, errors.New("board.sensors.touch_tolerance must not be negative"))
	}

	return errors.Join(errs...)
}

func (r *RedisConfig) validate() error {
	if !r.Enabled {
		return nil
	}

	var errs []error

	if r.Addr == "" {
		errs = append(errs, errors.New("redis.addr must not be empty when redis is enabled"))
	}
	if r.DB < 0 {
		errs = append(errs, fmt.Errorf("redis.db must not be negative, got %d", r.DB))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

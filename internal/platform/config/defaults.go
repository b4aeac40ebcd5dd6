package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 10

	defaultPreloadWorkers = 4

	defaultPointerDistance = 2.0
	defaultTouchTolerance  = 8.0
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.auth_token":                      "",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"board.persist_timeout":          "5s",
		"board.preload_workspaces":       []string{},
		"board.preload_workers":          defaultPreloadWorkers,
		"board.collision":                "greatest_intersection",
		"board.sensors.pointer_distance": defaultPointerDistance,
		"board.sensors.touch_delay":      "0s",
		"board.sensors.touch_tolerance":  defaultTouchTolerance,

		"redis.enabled":        false,
		"redis.addr":           "localhost:6379",
		"redis.password":       "",
		"redis.db":             0,
		"redis.channel_prefix": "taskboard:",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskboard-sync",
	}
}

package config

import "time"

// EnvPrefix namespaces environment overrides, e.g. FLIGHT_ADMIN_UPSTREAM_BASE_URL
// overrides upstream.base_url.
const EnvPrefix = "FLIGHT_ADMIN"

// Options configures the config loader.
type Options struct {
	// YAMLPath is the path to the primary YAML config file.
	YAMLPath string

	// EnvPath is the path to the fallback .env file, used only when YAML is absent.
	EnvPath string

	// Defaults are applied before any file is read.
	Defaults map[string]any
}

// ConfigProvider is the interface consumers depend on for reading configuration.
// Implementations must be safe for concurrent use.
type ConfigProvider interface {
	// GetString returns the value associated with the key as a string.
	GetString(key string) string

	// GetInt returns the value associated with the key as an int.
	GetInt(key string) int

	// GetInt64 returns the value associated with the key as an int64.
	GetInt64(key string) int64

	// GetBool returns the value associated with the key as a bool.
	GetBool(key string) bool

	// GetDuration returns the value associated with the key as a time.Duration.
	GetDuration(key string) time.Duration

	// GetStringMap returns the value associated with the key as a map of interfaces.
	GetStringMap(key string) map[string]any

	// IsSet checks whether the key is set in the config.
	IsSet(key string) bool

	// WatchChanges starts watching the config file for changes (YAML only).
	// Non-blocking: spawns a background goroutine.
	WatchChanges()

	// OnChange registers a callback that fires after a successful config reload.
	// Multiple callbacks can be registered; they execute in registration order.
	OnChange(fn func())

	// StopWatching stops delivering reloads to OnChange callbacks.
	StopWatching()

	// Source returns which config source is active: "yaml" or "env".
	Source() string
}

// Defaults returns the settings every binary starts from.
func Defaults() map[string]any {
	return map[string]any{
		"server.port":                  3000,
		"server.read_timeout":          10 * time.Second,
		"server.write_timeout":         30 * time.Second,
		"logging.level":                "info",
		"upstream.base_url":            "http://localhost:3000",
		"upstream.timeout":             15 * time.Second,
		"session.store":                "memory",
		"session.ttl":                  24 * time.Hour,
		"session.list_idle_ttl":        10 * time.Minute,
		"security.jwt.ttl":             24 * time.Hour,
		"security.jwt.issuer":          "flight-admin",
		"redis.host":                   "localhost",
		"redis.port":                   6379,
		"database.port":                5432,
		"database.ssl_mode":            "disable",
		"rate_limit.flights.limit":     30,
		"rate_limit.flights.window":    time.Minute,
		"rate_limit.flights.algorithm": "sliding_window",
		"uid.strategy":                 "uuidv7",
		"uid.node_id":                  1,
		"watch.filters.page":           1,
		"watch.filters.size":           10,
		"flights.idempotency.ttl":      24 * time.Hour,
		"flights.idempotency.enabled":  false,
		"flights.idempotency.store":    "redis",
		"flights.idempotency.required": false,
		"server.cors_origins":          "*",
		"flights.rate_limit.enabled":   false,
		"upstream.error_message_query": "",
	}
}

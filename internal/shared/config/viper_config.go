package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var _ ConfigProvider = (*viperConfig)(nil)

type viperConfig struct {
	v         *viper.Viper
	source    string
	callbacks []func()
	mu        sync.RWMutex
	watchOnce sync.Once
	done      chan struct{}
}

// Init loads configuration from a YAML file (primary) or .env file (exclusive fallback).
// Environment variables prefixed with EnvPrefix override both.
func Init(opts Options) (ConfigProvider, error) {
	v := viper.New()
	cfg := &viperConfig{
		v:    v,
		done: make(chan struct{}),
	}

	for key, value := range opts.Defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case fileExists(opts.YAMLPath):
		v.SetConfigFile(opts.YAMLPath)
		v.SetConfigType("yaml")
		cfg.source = "yaml"
	case fileExists(opts.EnvPath):
		v.SetConfigFile(opts.EnvPath)
		v.SetConfigType("env")
		cfg.source = "env"
	default:
		return nil, fmt.Errorf("config: no config file found (tried %q and %q)", opts.YAMLPath, opts.EnvPath)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read %s file: %w", cfg.source, err)
	}

	if cfg.source == "env" {
		// FLIGHT_ADMIN_UPSTREAM_BASE_URL in the file answers upstream.base_url.
		// Process environment variables still win over the file.
		for _, key := range v.AllKeys() {
			if dotted, ok := dottedKey(key); ok {
				v.SetDefault(dotted, v.Get(key))
			}
		}
	}

	return cfg, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// dottedKey maps an env file key such as flight_admin_watch_filters_code to
// watch.filters.code. Only keys listed in Defaults are mapped since the
// underscore is ambiguous.
func dottedKey(envKey string) (string, bool) {
	trimmed := strings.TrimPrefix(strings.ToLower(envKey), strings.ToLower(EnvPrefix)+"_")
	for known := range Defaults() {
		if strings.ReplaceAll(known, ".", "_") == trimmed {
			return known, true
		}
	}
	for _, known := range envOnlyKeys {
		if strings.ReplaceAll(known, ".", "_") == trimmed {
			return known, true
		}
	}
	return "", false
}

// envOnlyKeys have no default but may be set from a .env file.
var envOnlyKeys = []string{
	"security.jwt.secret",
	"redis.password",
	"redis.db",
	"database.host",
	"database.user",
	"database.password",
	"database.name",
	"watch.email",
	"watch.password",
	"watch.interval",
	"watch.filters.code",
	"rate_limit.flights.burst",
}

func (c *viperConfig) GetString(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetInt(key)
}

func (c *viperConfig) GetInt64(key string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetInt64(key)
}

func (c *viperConfig) GetBool(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetBool(key)
}

func (c *viperConfig) GetDuration(key string) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetDuration(key)
}

func (c *viperConfig) GetStringMap(key string) map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetStringMap(key)
}

func (c *viperConfig) IsSet(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.IsSet(key)
}

func (c *viperConfig) Source() string { return c.source }

func (c *viperConfig) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks = append(c.callbacks, fn)
}

func (c *viperConfig) WatchChanges() {
	if c.source != "yaml" {
		return
	}

	c.watchOnce.Do(func() {
		c.v.OnConfigChange(func(fsnotify.Event) {
			c.reload()
		})
		c.v.WatchConfig()
	})
}

// reload re-reads the file and notifies callbacks. A file caught mid-write
// fails to parse; the previous settings stay in effect until the next event.
func (c *viperConfig) reload() {
	select {
	case <-c.done:
		return
	default:
	}

	c.mu.Lock()
	if err := c.v.ReadInConfig(); err != nil {
		c.mu.Unlock()
		return
	}
	cbs := make([]func(), len(c.callbacks))
	copy(cbs, c.callbacks)
	c.mu.Unlock()

	for _, fn := range cbs {
		fn()
	}
}

func (c *viperConfig) StopWatching() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

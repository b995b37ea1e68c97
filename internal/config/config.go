package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces all engine environment variables (MAZAD_PORT, ...).
const EnvPrefix = "MAZAD"

// Config carries the runtime settings of the bidding engine. Every field has
// a default so the binary runs with no environment at all.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Anti-sniping policy: a bid inside the trailing window resets the end
	// time to now + duration.
	ExtensionWindow   time.Duration `envconfig:"EXTENSION_WINDOW" default:"15m"`
	ExtensionDuration time.Duration `envconfig:"EXTENSION_DURATION" default:"15m"`

	// Bound on waiting for a per-auction critical section before the caller
	// gets a retryable error.
	LockTimeout time.Duration `envconfig:"LOCK_TIMEOUT" default:"3s"`

	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"30s"`

	// Optional Redis coordination for the closing sweeper across replicas.
	// Empty RedisAddr leaves the sweeper uncoordinated (single replica).
	RedisAddr    string        `envconfig:"REDIS_ADDR" default:""`
	SweepLockKey string        `envconfig:"SWEEP_LOCK_KEY" default:"mazad:close-sweeper"`
	SweepLockTTL time.Duration `envconfig:"SWEEP_LOCK_TTL" default:"1m"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.ExtensionDuration < cfg.ExtensionWindow {
		return nil, fmt.Errorf("extension duration %s shorter than window %s", cfg.ExtensionDuration, cfg.ExtensionWindow)
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"funnel-engine/internal/config/configs"
)

// Config is the process configuration, read from the environment only.
// Each section is parsed with its envPrefix; defaults live on the section
// types in the configs package.
type Config struct {
	// Env names the deployment (prod, staging, dev). It is only logged.
	Env string `env:"ENV" envDefault:"prod"`

	// StorageDriver selects the repository backend: "postgres" or "memory".
	// The memory driver keeps everything in process and is meant for local
	// demos only.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`

	HTTP   configs.HTTP     `envPrefix:"HTTP_"`
	Log    configs.Logger   `envPrefix:"LOG_"`
	Psql   configs.Postgres `envPrefix:"PSQL_"`
	Redis  configs.Redis    `envPrefix:"REDIS_"`
	Cache  configs.Cache    `envPrefix:"CACHE_"`
	Funnel configs.Funnel   `envPrefix:"FUNNEL_"`
}

// Load parses the environment into a Config and rejects values the
// engine cannot run with.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that env tags cannot express.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("STORAGE_DRIVER: unknown driver %q", c.StorageDriver)
	}
	if c.Funnel.MinSample < 1 {
		return fmt.Errorf("FUNNEL_MIN_SAMPLE must be positive, got %d", c.Funnel.MinSample)
	}
	if c.Funnel.DropOffBucket < time.Second || c.Funnel.DropOffBucket%time.Second != 0 {
		return fmt.Errorf("FUNNEL_DROPOFF_BUCKET must be a positive whole number of seconds, got %s", c.Funnel.DropOffBucket)
	}
	return nil
}

package configs

import (
	"strings"
	"time"
)

// Cache configures the campaign lookup cache. Driver may be "memory"
// (bounded in-process cache), "redis" or "none". Unknown drivers fall back
// to "memory".
type Cache struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
	// TTL is how long a resolved campaign stays cached. Campaign edits made
	// by the content tools become visible after at most one TTL.
	TTL time.Duration `env:"TTL" envDefault:"30s"`
	// MaxEntries bounds the in-process cache.
	MaxEntries int64 `env:"MAX_ENTRIES" envDefault:"10000"`
}

// NormalizedDriver returns the lower-cased driver name with unknown values
// mapped to "memory".
func (c Cache) NormalizedDriver() string {
	switch d := strings.ToLower(c.Driver); d {
	case "redis", "none":
		return d
	default:
		return "memory"
	}
}

package configs

import "time"

// Funnel groups the tunables of the experimentation and analytics engine.
type Funnel struct {
	// CookieTTL is the lifetime of the sticky fv_{campaignId} cookie.
	CookieTTL time.Duration `env:"COOKIE_TTL" envDefault:"2160h"`
	// MinSample is the visitor count below which a variation is never tested.
	MinSample int64 `env:"MIN_SAMPLE" envDefault:"30"`
	// DropOffBucket is the width of a retention curve bucket, in whole seconds.
	DropOffBucket time.Duration `env:"DROPOFF_BUCKET" envDefault:"30s"`
	// WebhookURL receives registration notices for the marketing list sync.
	// Empty disables the sync.
	WebhookURL string `env:"WEBHOOK_URL"`
	// WebhookTimeout bounds a single sync attempt.
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
}

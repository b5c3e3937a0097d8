package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

const keyPrefix = "funnel:campaign:"

// Redis caches campaigns as JSON strings with a per-key expiry, so the
// cache is shared between replicas and bounded by the server's memory policy.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ port.CampaignCache = (*Redis)(nil)

// NewRedis wraps an existing client.
func NewRedis(client redis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, slug string) (domain.Campaign, bool, error) {
	var c domain.Campaign
	raw, err := r.client.Get(ctx, keyPrefix+slug).Bytes()
	if errors.Is(err, redis.Nil) {
		return c, false, nil
	}
	if err != nil {
		return c, false, err
	}
	if err = json.Unmarshal(raw, &c); err != nil {
		return c, false, err
	}
	return c, true, nil
}

func (r *Redis) Set(ctx context.Context, c domain.Campaign) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+c.Slug, raw, r.ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, slug string) error {
	return r.client.Del(ctx, keyPrefix+slug).Err()
}

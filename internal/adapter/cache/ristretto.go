// Package cache implements port.CampaignCache. Both backends are bounded
// and expire entries after a fixed TTL.
package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

// Local is an in-process cache holding at most maxEntries campaigns. It is
// safe for concurrent use. Writes are applied asynchronously by ristretto,
// so a Get right after Set may still miss.
type Local struct {
	cache *ristretto.Cache[string, domain.Campaign]
	ttl   time.Duration
}

var _ port.CampaignCache = (*Local)(nil)

// NewLocal returns a cache bounded to maxEntries whose entries expire after ttl.
func NewLocal(maxEntries int64, ttl time.Duration) (*Local, error) {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, domain.Campaign]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
		// every entry costs 1, so MaxCost is an entry count
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Local{cache: c, ttl: ttl}, nil
}

func (l *Local) Get(_ context.Context, slug string) (domain.Campaign, bool, error) {
	c, ok := l.cache.Get(slug)
	return c, ok, nil
}

func (l *Local) Set(_ context.Context, c domain.Campaign) error {
	l.cache.SetWithTTL(c.Slug, c, 1, l.ttl)
	return nil
}

func (l *Local) Delete(_ context.Context, slug string) error {
	l.cache.Del(slug)
	return nil
}

// Wait blocks until buffered writes have been applied.
func (l *Local) Wait() {
	l.cache.Wait()
}

// Close stops the cache's background goroutines.
func (l *Local) Close() {
	l.cache.Close()
}

package port

import (
	"context"

	"funnel-engine/internal/core/domain"
)

// CampaignCache caches slug lookups for the content-owned campaign rows.
// Implementations must be bounded, expire entries and be safe for
// concurrent use. A miss is reported with ok == false and a nil error; the
// caller treats errors as misses.
type CampaignCache interface {
	Get(ctx context.Context, slug string) (domain.Campaign, bool, error)
	Set(ctx context.Context, c domain.Campaign) error
	// Delete evicts slug. The funnel calls it when a repository read finds
	// the campaign inactive or removed.
	Delete(ctx context.Context, slug string) error
}

// RegistrationListener is notified after a registration has been recorded.
// It is called outside the request path; errors are only logged.
type RegistrationListener interface {
	OnRegistration(ctx context.Context, n domain.RegistrationNotice) error
}

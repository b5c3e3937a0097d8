package port

import (
	"context"
	"encoding/json"

	"funnel-engine/internal/core/domain"
)

// FunnelUseCase defines the visitor-facing operations of the engine: sticky
// assignment, registration, timeline resolution and event tracking.
type FunnelUseCase interface {
	// Visit resolves the campaign by slug and returns the visitor's
	// assignment. A known token returns the stored assignment without
	// re-rolling; otherwise a new visitor is assigned by weight and
	// persisted. Both paths record a page_view. Returns
	// ErrCampaignNotFound or ErrNoActiveVariations.
	Visit(ctx context.Context, req VisitReq) (*VisitResp, error)

	// Register enriches the visitor with contact details and records a
	// registration event. Registration listeners run asynchronously.
	Register(ctx context.Context, req RegisterReq) (*domain.Visitor, error)

	// Watch returns the presentation timeline for the visitor's variation.
	// An unknown token yields the anonymous timeline.
	Watch(ctx context.Context, req WatchReq) (*WatchResp, error)

	// Track appends one event to the log. No deduplication or ordering
	// checks are made.
	Track(ctx context.Context, req TrackReq) (*domain.Event, error)
}

// VisitReq carries the data of a landing page hit.
//
// TokenFor returns the visitor token the client holds for the campaign (the
// fv_{campaignId} cookie), or "" when it has none. The campaign id is only
// known once the slug has been resolved.
type VisitReq struct {
	Slug     string
	TokenFor func(campaignID int64) string
	UTM      domain.UTM
	Referrer string
}

// VisitResp is the assignment returned to the landing page.
type VisitResp struct {
	Campaign  domain.Campaign
	Visitor   domain.Visitor
	Variation domain.VariationSet
	Returning bool
}

// RegisterReq is the body of a registration.
type RegisterReq struct {
	Slug         string
	Email        string
	FirstName    *string
	VisitorToken string
}

// WatchReq identifies the viewer of a presentation.
type WatchReq struct {
	Slug     string
	TokenFor func(campaignID int64) string
}

// WatchResp is the resolved presentation. Visitor is nil for anonymous
// viewers.
type WatchResp struct {
	Campaign  domain.Campaign
	Visitor   *domain.Visitor
	Variation *domain.VariationSet
	Timeline  []domain.TimelineItem
}

// TrackReq is one tracked event. VariationSetID is optional; when present it
// must match the visitor's assignment.
type TrackReq struct {
	VisitorID      int64
	CampaignID     int64
	VariationSetID *int64
	EventType      string
	EventData      json.RawMessage
}

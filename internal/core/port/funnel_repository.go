package port

import (
	"context"
	"time"

	"funnel-engine/internal/core/domain"
)

// CampaignRepository is the read path into content owned by the campaign
// management tools. Lookups return nil, nil when the row does not exist.
type CampaignRepository interface {
	// GetCampaignBySlug returns the campaign with the given slug, active or not.
	GetCampaignBySlug(ctx context.Context, slug string) (*domain.Campaign, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListVariationSets returns every variation set of the campaign ordered
	// by ascending id. Assignment relies on this order being stable.
	ListVariationSets(ctx context.Context, campaignID int64) ([]domain.VariationSet, error)
	// GetVariationSet returns a variation set by id.
	GetVariationSet(ctx context.Context, id int64) (*domain.VariationSet, error)
	// ListModules returns the presentation modules ordered by position,
	// each with its variants ordered by position.
	ListModules(ctx context.Context, presentationID int64) ([]domain.Module, error)
}

// VisitorRepository is the identity store. Implementations must make
// InsertVisitorIfAbsent atomic with respect to (CampaignID, Token) so that a
// visitor's assignment is written exactly once.
type VisitorRepository interface {
	// FindVisitor looks a visitor up by campaign and cookie token.
	FindVisitor(ctx context.Context, campaignID int64, token string) (*domain.Visitor, error)
	// GetVisitor looks a visitor up by id.
	GetVisitor(ctx context.Context, id int64) (*domain.Visitor, error)
	// InsertVisitorIfAbsent stores v unless a visitor with the same campaign
	// and token exists. It returns the stored row and whether it was created
	// by this call. An existing row is returned untouched.
	InsertVisitorIfAbsent(ctx context.Context, v *domain.Visitor) (*domain.Visitor, bool, error)
	// UpdateVisitorContact records the email and first name captured at
	// registration. It never touches the assignment.
	UpdateVisitorContact(ctx context.Context, visitorID int64, email string, firstName *string) error
}

// EventRepository is the append-only funnel event log together with its
// replay queries.
type EventRepository interface {
	// AppendEvent writes one event and fills in its ID and CreatedAt.
	AppendEvent(ctx context.Context, e *domain.Event) error
	// ListEvents replays the campaign's events of the given type in
	// insertion order.
	ListEvents(ctx context.Context, campaignID int64, eventType domain.EventType) ([]domain.Event, error)
	// CountVisitors returns the number of visitors per variation set.
	CountVisitors(ctx context.Context, campaignID int64) (map[int64]int64, error)
	// CountEvents returns per variation set and type the raw event count and
	// the number of distinct visitors behind it.
	CountEvents(ctx context.Context, campaignID int64) ([]EventCount, error)
	// ListAdSpend returns the recorded ad spend of the campaign.
	ListAdSpend(ctx context.Context, campaignID int64) ([]domain.AdSpend, error)
	// ExportRows returns every event of the campaign joined with its
	// visitor's attribution, ordered by event id.
	ExportRows(ctx context.Context, campaignID int64) ([]ExportRow, error)
}

// FunnelRepository bundles the outbound storage ports used by the use cases.
type FunnelRepository interface {
	CampaignRepository
	VisitorRepository
	EventRepository
}

// EventCount is one GROUP BY row of the event log.
type EventCount struct {
	VariationSetID int64
	Type           domain.EventType
	Events         int64
	Visitors       int64
}

// ExportRow is one flat line of the CSV export.
type ExportRow struct {
	EventID        int64
	CreatedAt      time.Time
	EventType      domain.EventType
	EventData      []byte
	VisitorID      int64
	VisitorToken   string
	VariationSetID int64
	Email          string
	FirstName      string
	UTM            domain.UTM
	Referrer       string
}

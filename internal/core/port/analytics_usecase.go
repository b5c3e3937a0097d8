package port

import (
	"context"

	"funnel-engine/internal/core/domain"
)

// AnalyticsUseCase exposes the reporting reads. Every call replays the event
// log; nothing is cached.
type AnalyticsUseCase interface {
	// Metrics aggregates per-variation counts, rates and cost metrics.
	Metrics(ctx context.Context, campaignID int64) (*domain.CampaignMetrics, error)
	// Significance labels each variation against the registration-rate leader.
	Significance(ctx context.Context, campaignID int64) ([]domain.VariationSignificance, error)
	// DropOff computes the audience retention curve from play_progress events.
	DropOff(ctx context.Context, campaignID int64) ([]domain.DropOffPoint, error)
	// Export returns the flat event export.
	Export(ctx context.Context, campaignID int64) ([]ExportRow, error)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"funnel-engine/internal/core/analytics"
	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

// AnalyticsUseCase implements port.AnalyticsUseCase by replaying the event
// log on every call.
type AnalyticsUseCase struct {
	repo      port.FunnelRepository
	minSample int64
	bucket    time.Duration
}

var _ port.AnalyticsUseCase = (*AnalyticsUseCase)(nil)

// NewAnalyticsUseCase creates the reporting use case. Non-positive
// minSample and bucket fall back to the package defaults of analytics.
func NewAnalyticsUseCase(repo port.FunnelRepository, minSample int64, bucket time.Duration) *AnalyticsUseCase {
	if minSample <= 0 {
		minSample = analytics.DefaultMinSample
	}
	if bucket <= 0 {
		bucket = analytics.DefaultBucket
	}
	return &AnalyticsUseCase{repo: repo, minSample: minSample, bucket: bucket}
}

func (a *AnalyticsUseCase) Metrics(ctx context.Context, campaignID int64) (*domain.CampaignMetrics, error) {
	if err := a.ensureCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	sets, err := a.repo.ListVariationSets(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	visitors, err := a.repo.CountVisitors(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	counts, err := a.repo.CountEvents(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	spend, err := a.repo.ListAdSpend(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	m := analytics.Aggregate(campaignID, sets, visitors, counts, spend)
	return &m, nil
}

func (a *AnalyticsUseCase) Significance(ctx context.Context, campaignID int64) ([]domain.VariationSignificance, error) {
	m, err := a.Metrics(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return analytics.Significance(m.Variations, a.minSample), nil
}

func (a *AnalyticsUseCase) DropOff(ctx context.Context, campaignID int64) ([]domain.DropOffPoint, error) {
	if err := a.ensureCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	events, err := a.repo.ListEvents(ctx, campaignID, domain.EventPlayProgress)
	if err != nil {
		return nil, err
	}
	return analytics.DropOff(events, a.bucket), nil
}

func (a *AnalyticsUseCase) Export(ctx context.Context, campaignID int64) ([]port.ExportRow, error) {
	if err := a.ensureCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return a.repo.ExportRows(ctx, campaignID)
}

// ensureCampaign distinguishes an unknown campaign from one without traffic.
// Inactive campaigns still report.
func (a *AnalyticsUseCase) ensureCampaign(ctx context.Context, id int64) error {
	c, err := a.repo.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("campaign %d: %w", id, port.ErrCampaignNotFound)
	}
	return nil
}

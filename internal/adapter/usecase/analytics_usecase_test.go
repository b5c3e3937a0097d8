package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"funnel-engine/internal/adapter/memory"
	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
	"funnel-engine/internal/core/port/mocks"
)

// drive sends n visitors through the funnel, registering every regEvery-th.
func drive(t *testing.T, uc *FunnelUseCase, slug string, n, regEvery int) []*port.VisitResp {
	t.Helper()
	ctx := context.Background()
	var out []*port.VisitResp
	for i := 0; i < n; i++ {
		resp, err := uc.Visit(ctx, port.VisitReq{Slug: slug})
		require.NoError(t, err)
		if regEvery > 0 && i%regEvery == 0 {
			_, err = uc.Register(ctx, port.RegisterReq{Slug: slug, Email: fmt.Sprintf("v%d@example.com", i), VisitorToken: resp.Visitor.Token})
			require.NoError(t, err)
		}
		out = append(out, resp)
	}
	return out
}

func TestAnalyticsMetrics(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	c := repo.SeedDemo("demo")
	uc := NewFunnelUseCase(repo, discard, seeded())
	visits := drive(t, uc, "demo", 40, 4)

	// a double submit counts twice in registrations but once in uniqueRegistrants
	_, err := uc.Register(ctx, port.RegisterReq{Slug: "demo", Email: "v0@example.com", VisitorToken: visits[0].Visitor.Token})
	require.NoError(t, err)

	a := NewAnalyticsUseCase(repo, 0, 0)
	m, err := a.Metrics(ctx, c.ID)
	require.NoError(t, err)

	assert.Equal(t, c.ID, m.CampaignID)
	assert.Len(t, m.Variations, 2)
	assert.Equal(t, int64(40), m.Visitors)
	assert.Equal(t, int64(11), m.Registrations)
	assert.Equal(t, int64(10), m.UniqueRegistrants)
	assert.InDelta(t, 11.0/40, m.RegistrationRate, 1e-9)
	assert.Equal(t, "USD", m.AdSpendCurrency)
	assert.InDelta(t, 1050.0, m.TotalAdSpend, 1e-9)
	require.NotNil(t, m.CostPerRegistration)
	assert.InDelta(t, 1050.0/11, *m.CostPerRegistration, 1e-9)
	assert.Nil(t, m.CostPerSale)
}

func TestAnalyticsSignificance(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	c := repo.SeedDemo("demo")
	uc := NewFunnelUseCase(repo, discard, seeded())
	drive(t, uc, "demo", 20, 2)

	sig, err := NewAnalyticsUseCase(repo, 0, 0).Significance(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, sig, 2)

	leaders := 0
	for _, s := range sig {
		if s.IsLeader {
			leaders++
		}
		// neither arm reaches the default minimum sample
		assert.Equal(t, domain.ConfidenceNeedData, s.Label)
	}
	assert.Equal(t, 1, leaders)
}

func TestAnalyticsDropOff(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	c := repo.SeedDemo("demo")
	uc := NewFunnelUseCase(repo, discard)
	visits := drive(t, uc, "demo", 10, 0)

	for i, v := range visits {
		for _, ms := range []int{15000, (i + 1) * 10000} {
			_, err := uc.Track(ctx, port.TrackReq{
				VisitorID:  v.Visitor.ID,
				CampaignID: c.ID,
				EventType:  string(domain.EventPlayProgress),
				EventData:  json.RawMessage(fmt.Sprintf(`{"watchTimeMs":%d}`, ms)),
			})
			require.NoError(t, err)
		}
	}

	points, err := NewAnalyticsUseCase(repo, 0, 30*time.Second).DropOff(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, points, 4)
	assert.Equal(t, domain.DropOffPoint{TimeSeconds: 0, ViewerCount: 10, Percentage: 100}, points[0])
	assert.Equal(t, domain.DropOffPoint{TimeSeconds: 30, ViewerCount: 8, Percentage: 80}, points[1])
	assert.Equal(t, domain.DropOffPoint{TimeSeconds: 90, ViewerCount: 2, Percentage: 20}, points[3])
}

func TestAnalyticsExport(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	c := repo.SeedDemo("demo")
	uc := NewFunnelUseCase(repo, discard)
	drive(t, uc, "demo", 3, 1)

	rows, err := NewAnalyticsUseCase(repo, 0, 0).Export(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, domain.EventPageView, rows[0].EventType)
	assert.Equal(t, domain.EventRegistration, rows[1].EventType)
	assert.Equal(t, "v0@example.com", rows[1].Email)
}

func TestAnalyticsUnknownCampaign(t *testing.T) {
	ctx := context.Background()
	a := NewAnalyticsUseCase(memory.NewRepository(), 0, 0)

	_, err := a.Metrics(ctx, 404)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	_, err = a.Significance(ctx, 404)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	_, err = a.DropOff(ctx, 404)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	_, err = a.Export(ctx, 404)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestAnalyticsRepositoryError(t *testing.T) {
	repo := mocks.NewMockFunnelRepository(t)
	boom := errors.New("statement timeout")
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&domain.Campaign{ID: 1}, nil)
	repo.EXPECT().ListVariationSets(mock.Anything, int64(1)).Return(nil, nil)
	repo.EXPECT().CountVisitors(mock.Anything, int64(1)).Return(nil, boom)

	_, err := NewAnalyticsUseCase(repo, 0, 0).Metrics(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

package db_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funnel-engine/internal/adapter/memory"
	"funnel-engine/internal/adapter/usecase"
	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/db"
)

func TestSeedTraffic(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	c := repo.SeedDemo(db.DemoSlug)
	uc := usecase.NewFunnelUseCase(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, db.SeedTraffic(ctx, uc, db.DemoSlug, 150, rand.New(rand.NewPCG(3, 4))))

	m, err := usecase.NewAnalyticsUseCase(repo, 0, 0).Metrics(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), m.Visitors)
	assert.Positive(t, m.Registrations)
	assert.Less(t, m.Registrations, m.Visitors)
	assert.Equal(t, m.Registrations, m.UniqueRegistrants)

	views, err := repo.ListEvents(ctx, c.ID, domain.EventPageView)
	require.NoError(t, err)
	assert.Len(t, views, 150)
}

func TestSeedTrafficUnknownCampaign(t *testing.T) {
	uc := usecase.NewFunnelUseCase(memory.NewRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := db.SeedTraffic(context.Background(), uc, "missing", 1, rand.New(rand.NewPCG(1, 1)))
	assert.Error(t, err)
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"funnel-engine/internal/adapter/memory"
	"funnel-engine/internal/core/assign"
	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
	"funnel-engine/internal/core/port/mocks"
	"funnel-engine/internal/metrics"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	repo     *memory.Repository
	campaign domain.Campaign
	a, b     domain.VariationSet
}

func newFixture() fixture {
	repo := memory.NewRepository()
	c := repo.AddCampaign(domain.Campaign{Slug: "launch", Name: "Launch", IsActive: true})
	a := repo.AddVariationSet(domain.VariationSet{CampaignID: c.ID, Name: "A", Weight: 1, IsActive: true})
	b := repo.AddVariationSet(domain.VariationSet{CampaignID: c.ID, Name: "B", Weight: 1, IsActive: true})
	return fixture{repo: repo, campaign: c, a: a, b: b}
}

func token(s string) func(int64) string {
	return func(int64) string { return s }
}

func seeded() Option {
	return WithPicker(assign.NewPicker(rand.New(rand.NewPCG(1, 2))))
}

func TestVisitIsSticky(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := NewFunnelUseCase(f.repo, discard, seeded())

	first, err := uc.Visit(ctx, port.VisitReq{Slug: "launch", UTM: domain.UTM{Source: "fb"}})
	require.NoError(t, err)
	assert.False(t, first.Returning)
	assert.NotEmpty(t, first.Visitor.Token)
	assert.Equal(t, "fb", first.Visitor.UTM.Source)

	for i := 0; i < 10; i++ {
		again, err := uc.Visit(ctx, port.VisitReq{Slug: "launch", TokenFor: token(first.Visitor.Token)})
		require.NoError(t, err)
		assert.True(t, again.Returning)
		assert.Equal(t, first.Visitor.ID, again.Visitor.ID)
		assert.Equal(t, first.Variation.ID, again.Variation.ID)
	}

	views, err := f.repo.ListEvents(ctx, f.campaign.ID, domain.EventPageView)
	require.NoError(t, err)
	assert.Len(t, views, 11)
}

func TestVisitStickyAfterDeactivation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := NewFunnelUseCase(f.repo, discard, seeded())

	var onA *port.VisitResp
	for onA == nil {
		resp, err := uc.Visit(ctx, port.VisitReq{Slug: "launch"})
		require.NoError(t, err)
		if resp.Variation.ID == f.a.ID {
			onA = resp
		}
	}
	require.NoError(t, f.repo.SetVariationActive(f.a.ID, false))

	again, err := uc.Visit(ctx, port.VisitReq{Slug: "launch", TokenFor: token(onA.Visitor.Token)})
	require.NoError(t, err)
	assert.Equal(t, f.a.ID, again.Variation.ID, "returning visitor keeps a deactivated variation")
	assert.False(t, again.Variation.IsActive)

	for i := 0; i < 50; i++ {
		resp, err := uc.Visit(ctx, port.VisitReq{Slug: "launch"})
		require.NoError(t, err)
		assert.Equal(t, f.b.ID, resp.Variation.ID)
	}
}

func TestVisitSplitsTrafficByWeight(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := metrics.New()
	uc := NewFunnelUseCase(f.repo, discard, seeded(), WithMetrics(m))

	const n = 1000
	for i := 0; i < n; i++ {
		_, err := uc.Visit(ctx, port.VisitReq{Slug: "launch"})
		require.NoError(t, err)
	}

	counts, err := f.repo.CountVisitors(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), counts[f.a.ID]+counts[f.b.ID])
	assert.InDelta(t, n/2, counts[f.a.ID], 60)
	assert.InDelta(t, n/2, counts[f.b.ID], 60)

	views, err := f.repo.ListEvents(ctx, f.campaign.ID, domain.EventPageView)
	require.NoError(t, err)
	assert.Len(t, views, n)
	for _, e := range views {
		v, err := f.repo.GetVisitor(ctx, e.VisitorID)
		require.NoError(t, err)
		assert.Equal(t, v.VariationSetID, e.VariationSetID)
	}
	assert.Equal(t, float64(n), testutil.ToFloat64(m.VisitsTotal.WithLabelValues("new")))
}

func TestVisitConcurrentSameToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := NewFunnelUseCase(f.repo, discard)
	tok := uuid.NewString()

	const n = 24
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		visitors = map[int64]struct{}{}
		sets     = map[int64]struct{}{}
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			resp, err := uc.Visit(ctx, port.VisitReq{Slug: "launch", TokenFor: token(tok)})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			visitors[resp.Visitor.ID] = struct{}{}
			sets[resp.Variation.ID] = struct{}{}
		}()
	}
	wg.Wait()

	assert.Len(t, visitors, 1)
	assert.Len(t, sets, 1)
}

func TestVisitReplacesMalformedToken(t *testing.T) {
	f := newFixture()
	uc := NewFunnelUseCase(f.repo, discard, WithTokenGenerator(func() string { return "generated" }))

	resp, err := uc.Visit(context.Background(), port.VisitReq{Slug: "launch", TokenFor: token("not-a-uuid")})
	require.NoError(t, err)
	assert.Equal(t, "generated", resp.Visitor.Token)
}

func TestVisitErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.repo.AddCampaign(domain.Campaign{Slug: "paused", IsActive: false})
	empty := f.repo.AddCampaign(domain.Campaign{Slug: "empty", IsActive: true})
	f.repo.AddVariationSet(domain.VariationSet{CampaignID: empty.ID, Weight: 0, IsActive: true})
	uc := NewFunnelUseCase(f.repo, discard)

	_, err := uc.Visit(ctx, port.VisitReq{Slug: "missing"})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)

	_, err = uc.Visit(ctx, port.VisitReq{Slug: "paused"})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)

	_, err = uc.Visit(ctx, port.VisitReq{Slug: "empty"})
	assert.ErrorIs(t, err, port.ErrNoActiveVariations)
	assert.True(t, IsClientError(err))
}

func TestVisitPropagatesRepositoryErrors(t *testing.T) {
	repo := mocks.NewMockFunnelRepository(t)
	c := &domain.Campaign{ID: 1, Slug: "launch", IsActive: true}
	sets := []domain.VariationSet{{ID: 7, CampaignID: 1, Weight: 1, IsActive: true}}
	boom := errors.New("connection reset")

	repo.EXPECT().GetCampaignBySlug(mock.Anything, "launch").Return(c, nil)
	repo.EXPECT().ListVariationSets(mock.Anything, int64(1)).Return(sets, nil)
	repo.EXPECT().
		InsertVisitorIfAbsent(mock.Anything, mock.AnythingOfType("*domain.Visitor")).
		RunAndReturn(func(_ context.Context, v *domain.Visitor) (*domain.Visitor, bool, error) {
			stored := *v
			stored.ID = 42
			return &stored, true, nil
		})
	repo.EXPECT().AppendEvent(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(boom)

	uc := NewFunnelUseCase(repo, discard)
	_, err := uc.Visit(context.Background(), port.VisitReq{Slug: "launch"})
	require.ErrorIs(t, err, boom)
	assert.False(t, IsClientError(err))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	listener := mocks.NewMockRegistrationListener(t)
	uc := NewFunnelUseCase(f.repo, discard, WithListener(listener, 0))

	visit, err := uc.Visit(ctx, port.VisitReq{Slug: "launch", UTM: domain.UTM{Campaign: "spring"}})
	require.NoError(t, err)

	listener.EXPECT().
		OnRegistration(mock.Anything, mock.AnythingOfType("domain.RegistrationNotice")).
		Run(func(_ context.Context, n domain.RegistrationNotice) {
			assert.Equal(t, "a@b.co", n.Email)
			assert.Equal(t, "Ann", n.FirstName)
			assert.Equal(t, visit.Variation.ID, n.VariationSetID)
			assert.Equal(t, "spring", n.UTM.Campaign)
		}).
		Return(nil).
		Once()

	name := "Ann"
	v, err := uc.Register(ctx, port.RegisterReq{Slug: "launch", Email: "a@b.co", FirstName: &name, VisitorToken: visit.Visitor.Token})
	require.NoError(t, err)
	uc.Wait()

	assert.Equal(t, visit.Visitor.ID, v.ID)
	assert.Equal(t, visit.Variation.ID, v.VariationSetID)

	stored, err := f.repo.GetVisitor(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Email)
	assert.Equal(t, "a@b.co", *stored.Email)
	assert.Equal(t, visit.Variation.ID, stored.VariationSetID)

	regs, err := f.repo.ListEvents(ctx, f.campaign.ID, domain.EventRegistration)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, visit.Variation.ID, regs[0].VariationSetID)
}

func TestRegisterSurvivesListenerFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := metrics.New()
	listener := mocks.NewMockRegistrationListener(t)
	listener.EXPECT().OnRegistration(mock.Anything, mock.Anything).Return(errors.New("list sync down"))
	uc := NewFunnelUseCase(f.repo, discard, WithListener(listener, 0), WithMetrics(m))

	visit, err := uc.Visit(ctx, port.VisitReq{Slug: "launch"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, port.RegisterReq{Slug: "launch", Email: "a@b.co", VisitorToken: visit.Visitor.Token})
	require.NoError(t, err)
	uc.Wait()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ListenerFailuresTotal))
}

func TestRegisterErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := NewFunnelUseCase(f.repo, discard)

	_, err := uc.Register(ctx, port.RegisterReq{Slug: "launch", VisitorToken: "x"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	_, err = uc.Register(ctx, port.RegisterReq{Slug: "launch", Email: "a@b.co"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	_, err = uc.Register(ctx, port.RegisterReq{Slug: "launch", Email: "a@b.co", VisitorToken: "unknown"})
	assert.ErrorIs(t, err, port.ErrVisitorNotFound)

	_, err = uc.Register(ctx, port.RegisterReq{Slug: "nope", Email: "a@b.co", VisitorToken: "x"})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestTrack(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := NewFunnelUseCase(f.repo, discard)

	visit, err := uc.Visit(ctx, port.VisitReq{Slug: "launch"})
	require.NoError(t, err)
	other := f.a.ID
	if visit.Variation.ID == f.a.ID {
		other = f.b.ID
	}

	e, err := uc.Track(ctx, port.TrackReq{
		VisitorID:  visit.Visitor.ID,
		CampaignID: f.campaign.ID,
		EventType:  "play_progress",
		EventData:  json.RawMessage(`{"watchTimeMs": 45000}`),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PlayProgress{WatchTimeMs: 45000}, e.Payload)
	assert.Equal(t, visit.Variation.ID, e.VariationSetID)
	assert.NotZero(t, e.ID)

	own := visit.Variation.ID
	_, err = uc.Track(ctx, port.TrackReq{VisitorID: visit.Visitor.ID, CampaignID: f.campaign.ID, VariationSetID: &own, EventType: "cta_click"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  port.TrackReq
		want error
	}{
		{"missing type", port.TrackReq{VisitorID: visit.Visitor.ID, CampaignID: f.campaign.ID}, port.ErrInvalidInput},
		{"unknown type", port.TrackReq{VisitorID: visit.Visitor.ID, CampaignID: f.campaign.ID, EventType: "purchase"}, port.ErrInvalidInput},
		{"negative watch time", port.TrackReq{VisitorID: visit.Visitor.ID, CampaignID: f.campaign.ID, EventType: "play_progress", EventData: json.RawMessage(`{"watchTimeMs":-1}`)}, port.ErrInvalidInput},
		{"watch time over a day", port.TrackReq{VisitorID: visit.Visitor.ID, CampaignID: f.campaign.ID, EventType: "play_progress", EventData: json.RawMessage(`{"watchTimeMs":86400001}`)}, port.ErrInvalidInput},
		{"watch time overflow", port.TrackReq{VisitorID: visit.Visitor.ID, CampaignID: f.campaign.ID, EventType: "play_progress", EventData: json.RawMessage(`{"watchTimeMs":9223372036854775807}`)}, port.ErrInvalidInput},
		{"wrong campaign", port.TrackReq{VisitorID: visit.Visitor.ID, CampaignID: f.campaign.ID + 100, EventType: "cta_click"}, port.ErrInvalidInput},
		{"wrong variation", port.TrackReq{VisitorID: visit.Visitor.ID, CampaignID: f.campaign.ID, VariationSetID: &other, EventType: "cta_click"}, port.ErrInvalidInput},
		{"unknown visitor", port.TrackReq{VisitorID: 9999, CampaignID: f.campaign.ID, EventType: "cta_click"}, port.ErrVisitorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Track(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	clicks, err := f.repo.ListEvents(ctx, f.campaign.ID, domain.EventCTAClick)
	require.NoError(t, err)
	assert.Len(t, clicks, 1)
}

func TestWatch(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	c := repo.SeedDemo("demo")
	uc := NewFunnelUseCase(repo, discard, seeded())

	anon, err := uc.Watch(ctx, port.WatchReq{Slug: "demo"})
	require.NoError(t, err)
	assert.Nil(t, anon.Visitor)
	require.Len(t, anon.Timeline, 3)
	assert.Equal(t, "story-short", anon.Timeline[1].VariantName)
	assert.Equal(t, 90, anon.Timeline[1].StartsAtSeconds)

	sets, err := repo.ListVariationSets(ctx, c.ID)
	require.NoError(t, err)
	var onB *port.VisitResp
	for onB == nil {
		resp, err := uc.Visit(ctx, port.VisitReq{Slug: "demo"})
		require.NoError(t, err)
		if resp.Variation.ID == sets[1].ID {
			onB = resp
		}
	}

	watched, err := uc.Watch(ctx, port.WatchReq{Slug: "demo", TokenFor: token(onB.Visitor.Token)})
	require.NoError(t, err)
	require.NotNil(t, watched.Visitor)
	assert.Equal(t, onB.Visitor.ID, watched.Visitor.ID)
	require.Len(t, watched.Timeline, 3)
	assert.Equal(t, "story-long", watched.Timeline[1].VariantName)
	assert.Equal(t, 90+600, watched.Timeline[2].StartsAtSeconds)
}

func TestWatchModuleWithoutVariants(t *testing.T) {
	ctx := context.Background()
	presentation := int64(8)
	c := domain.Campaign{ID: 3, Slug: "broken", IsActive: true, PresentationID: &presentation}

	repo := mocks.NewMockFunnelRepository(t)
	repo.EXPECT().GetCampaignBySlug(mock.Anything, "broken").Return(&c, nil)
	repo.EXPECT().ListModules(mock.Anything, presentation).
		Return([]domain.Module{{ID: 4, PresentationID: presentation, Name: "intro"}}, nil)

	uc := NewFunnelUseCase(repo, discard)
	_, err := uc.Watch(ctx, port.WatchReq{Slug: "broken"})
	assert.ErrorIs(t, err, port.ErrNoModuleVariant)
	assert.True(t, IsClientError(err))
}

func TestCampaignCache(t *testing.T) {
	ctx := context.Background()
	c := domain.Campaign{ID: 3, Slug: "cached", IsActive: true}

	t.Run("hit skips the repository", func(t *testing.T) {
		repo := mocks.NewMockFunnelRepository(t)
		cache := mocks.NewMockCampaignCache(t)
		cache.EXPECT().Get(mock.Anything, "cached").Return(c, true, nil)

		uc := NewFunnelUseCase(repo, discard, WithCache(cache))
		resp, err := uc.Watch(ctx, port.WatchReq{Slug: "cached"})
		require.NoError(t, err)
		assert.Equal(t, c.ID, resp.Campaign.ID)
		assert.Empty(t, resp.Timeline)
	})

	t.Run("failure falls back to the repository", func(t *testing.T) {
		repo := mocks.NewMockFunnelRepository(t)
		cache := mocks.NewMockCampaignCache(t)
		cache.EXPECT().Get(mock.Anything, "cached").Return(domain.Campaign{}, false, errors.New("redis down"))
		cache.EXPECT().Set(mock.Anything, c).Return(errors.New("redis down"))
		repo.EXPECT().GetCampaignBySlug(mock.Anything, "cached").Return(&c, nil)

		uc := NewFunnelUseCase(repo, discard, WithCache(cache))
		_, err := uc.Watch(ctx, port.WatchReq{Slug: "cached"})
		require.NoError(t, err)
	})

	t.Run("cached inactive campaign is not served", func(t *testing.T) {
		repo := mocks.NewMockFunnelRepository(t)
		cache := mocks.NewMockCampaignCache(t)
		paused := c
		paused.IsActive = false
		cache.EXPECT().Get(mock.Anything, "cached").Return(paused, true, nil)

		uc := NewFunnelUseCase(repo, discard, WithCache(cache))
		_, err := uc.Watch(ctx, port.WatchReq{Slug: "cached"})
		assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	})

	t.Run("inactive campaign is evicted instead of cached", func(t *testing.T) {
		repo := mocks.NewMockFunnelRepository(t)
		cache := mocks.NewMockCampaignCache(t)
		paused := c
		paused.IsActive = false
		cache.EXPECT().Get(mock.Anything, "cached").Return(domain.Campaign{}, false, nil)
		repo.EXPECT().GetCampaignBySlug(mock.Anything, "cached").Return(&paused, nil)
		cache.EXPECT().Delete(mock.Anything, "cached").Return(nil)

		uc := NewFunnelUseCase(repo, discard, WithCache(cache))
		_, err := uc.Visit(ctx, port.VisitReq{Slug: "cached"})
		assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	})

	t.Run("removed campaign is evicted", func(t *testing.T) {
		repo := mocks.NewMockFunnelRepository(t)
		cache := mocks.NewMockCampaignCache(t)
		cache.EXPECT().Get(mock.Anything, "gone").Return(domain.Campaign{}, false, nil)
		repo.EXPECT().GetCampaignBySlug(mock.Anything, "gone").Return(nil, nil)
		cache.EXPECT().Delete(mock.Anything, "gone").Return(errors.New("redis down"))

		uc := NewFunnelUseCase(repo, discard, WithCache(cache))
		_, err := uc.Watch(ctx, port.WatchReq{Slug: "gone"})
		assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	})
}

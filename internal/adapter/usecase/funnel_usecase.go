package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"funnel-engine/internal/core/analytics"
	"funnel-engine/internal/core/assign"
	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
	"funnel-engine/internal/metrics"
)

// FunnelUseCase implements port.FunnelUseCase. It orchestrates the identity
// store, the assignment engine and the event log.
type FunnelUseCase struct {
	repo     port.FunnelRepository
	cache    port.CampaignCache
	listener port.RegistrationListener
	picker   *assign.Picker
	metrics  *metrics.Metrics
	logger   *slog.Logger

	newToken        func() string
	listenerTimeout time.Duration

	// tracks listener goroutines so shutdown can drain them
	inflight sync.WaitGroup
}

var _ port.FunnelUseCase = (*FunnelUseCase)(nil)

// Option configures a FunnelUseCase.
type Option func(*FunnelUseCase)

// WithCache puts c in front of campaign slug lookups.
func WithCache(c port.CampaignCache) Option {
	return func(u *FunnelUseCase) { u.cache = c }
}

// WithListener notifies l after every registration, bounded by timeout.
func WithListener(l port.RegistrationListener, timeout time.Duration) Option {
	return func(u *FunnelUseCase) {
		u.listener = l
		if timeout > 0 {
			u.listenerTimeout = timeout
		}
	}
}

// WithPicker replaces the randomly seeded assignment picker.
func WithPicker(p *assign.Picker) Option {
	return func(u *FunnelUseCase) { u.picker = p }
}

// WithMetrics records assignments and events in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *FunnelUseCase) { u.metrics = m }
}

// WithTokenGenerator replaces uuid.NewString for new visitor tokens.
func WithTokenGenerator(f func() string) Option {
	return func(u *FunnelUseCase) { u.newToken = f }
}

// NewFunnelUseCase creates a use case over repo. Without options there is
// no cache and no registration listener.
func NewFunnelUseCase(repo port.FunnelRepository, logger *slog.Logger, opts ...Option) *FunnelUseCase {
	u := &FunnelUseCase{
		repo:            repo,
		logger:          logger,
		newToken:        uuid.NewString,
		listenerTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.picker == nil {
		u.picker = assign.NewPicker(nil)
	}
	return u
}

// Visit returns the sticky assignment for the visitor, creating it on the
// first visit, and records a page_view either way.
func (u *FunnelUseCase) Visit(ctx context.Context, req port.VisitReq) (*port.VisitResp, error) {
	c, err := u.campaignBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	var token string
	if req.TokenFor != nil {
		token = req.TokenFor(c.ID)
	}
	if token != "" {
		v, err := u.repo.FindVisitor(ctx, c.ID, token)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return u.returning(ctx, c, v)
		}
	}

	sets, err := u.repo.ListVariationSets(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	chosen, err := u.picker.Pick(sets)
	if err != nil {
		return nil, fmt.Errorf("campaign %q: %w", c.Slug, err)
	}

	// A well-formed token the store does not know yet is kept, so that
	// concurrent first requests carrying it collapse onto one visitor.
	if _, perr := uuid.Parse(token); perr != nil {
		token = u.newToken()
	}
	v, created, err := u.repo.InsertVisitorIfAbsent(ctx, &domain.Visitor{
		CampaignID:     c.ID,
		Token:          token,
		VariationSetID: chosen.ID,
		UTM:            req.UTM,
		Referrer:       req.Referrer,
	})
	if err != nil {
		return nil, err
	}
	if !created {
		// lost the race against a concurrent request for the same token
		return u.returning(ctx, c, v)
	}

	u.metrics.TrackAssignment(c.ID, chosen.ID)
	u.metrics.TrackVisit(false)
	u.logger.Debug("visitor assigned",
		slog.Int64("campaign_id", c.ID),
		slog.Int64("visitor_id", v.ID),
		slog.Int64("variation_set_id", chosen.ID))

	if err = u.append(ctx, v, domain.PageView{}); err != nil {
		return nil, err
	}
	return &port.VisitResp{Campaign: *c, Visitor: *v, Variation: chosen, Returning: false}, nil
}

// returning serves a visitor that already has an assignment. The stored
// variation is used even if it has been deactivated since.
func (u *FunnelUseCase) returning(ctx context.Context, c *domain.Campaign, v *domain.Visitor) (*port.VisitResp, error) {
	vs, err := u.repo.GetVariationSet(ctx, v.VariationSetID)
	if err != nil {
		return nil, err
	}
	if vs == nil {
		return nil, fmt.Errorf("visitor %d: %w", v.ID, port.ErrVariationNotFound)
	}
	u.metrics.TrackVisit(true)
	if err = u.append(ctx, v, domain.PageView{}); err != nil {
		return nil, err
	}
	return &port.VisitResp{Campaign: *c, Visitor: *v, Variation: *vs, Returning: true}, nil
}

// Register records the visitor's contact details and a registration event.
// The registration listener runs after the event is stored and its outcome
// never affects the result.
func (u *FunnelUseCase) Register(ctx context.Context, req port.RegisterReq) (*domain.Visitor, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", port.ErrInvalidInput)
	}
	if req.VisitorToken == "" {
		return nil, fmt.Errorf("%w: visitor token is required", port.ErrInvalidInput)
	}
	c, err := u.campaignBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	v, err := u.repo.FindVisitor(ctx, c.ID, req.VisitorToken)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("token %q: %w", req.VisitorToken, port.ErrVisitorNotFound)
	}

	if err = u.repo.UpdateVisitorContact(ctx, v.ID, req.Email, req.FirstName); err != nil {
		return nil, err
	}
	email := req.Email
	v.Email = &email
	if req.FirstName != nil {
		v.FirstName = req.FirstName
	}

	if err = u.append(ctx, v, domain.Registration{}); err != nil {
		return nil, err
	}

	notice := domain.RegistrationNotice{
		CampaignID:     c.ID,
		CampaignSlug:   c.Slug,
		VisitorID:      v.ID,
		VariationSetID: v.VariationSetID,
		Email:          email,
		UTM:            v.UTM,
	}
	if v.FirstName != nil {
		notice.FirstName = *v.FirstName
	}
	u.notify(ctx, notice)
	return v, nil
}

func (u *FunnelUseCase) notify(ctx context.Context, n domain.RegistrationNotice) {
	if u.listener == nil {
		return
	}
	u.inflight.Add(1)
	go func() {
		defer u.inflight.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.listenerTimeout)
		defer cancel()
		if err := u.listener.OnRegistration(ctx, n); err != nil {
			u.metrics.TrackListenerFailure()
			u.logger.Warn("registration sync failed",
				slog.Int64("visitor_id", n.VisitorID),
				slog.Any("error", err))
		}
	}()
}

// Wait blocks until all pending registration notifications have finished.
func (u *FunnelUseCase) Wait() {
	u.inflight.Wait()
}

// Watch resolves the presentation timeline for the visitor's variation set.
// Unknown visitors get the anonymous timeline, which serves every module's
// first variant.
func (u *FunnelUseCase) Watch(ctx context.Context, req port.WatchReq) (*port.WatchResp, error) {
	c, err := u.campaignBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	resp := &port.WatchResp{Campaign: *c, Timeline: []domain.TimelineItem{}}

	var token string
	if req.TokenFor != nil {
		token = req.TokenFor(c.ID)
	}
	var mapping map[int64]int64
	if token != "" {
		v, err := u.repo.FindVisitor(ctx, c.ID, token)
		if err != nil {
			return nil, err
		}
		if v != nil {
			vs, err := u.repo.GetVariationSet(ctx, v.VariationSetID)
			if err != nil {
				return nil, err
			}
			resp.Visitor = v
			if vs != nil {
				resp.Variation = vs
				mapping = vs.ModuleVariants
			} else {
				u.logger.Warn("visitor references missing variation set",
					slog.Int64("visitor_id", v.ID),
					slog.Int64("variation_set_id", v.VariationSetID))
			}
		}
	}

	if c.PresentationID == nil {
		return resp, nil
	}
	modules, err := u.repo.ListModules(ctx, *c.PresentationID)
	if err != nil {
		return nil, err
	}
	if resp.Timeline, err = analytics.ResolveTimeline(modules, mapping); err != nil {
		u.logger.Warn("presentation misconfigured",
			slog.Int64("campaign_id", c.ID),
			slog.Int64("presentation_id", *c.PresentationID),
			slog.Any("error", err))
		return nil, err
	}
	return resp, nil
}

// Track appends one event for the visitor. The variation set is taken from
// the visitor's stored assignment; a client-supplied one must agree with it.
func (u *FunnelUseCase) Track(ctx context.Context, req port.TrackReq) (*domain.Event, error) {
	if req.VisitorID <= 0 || req.CampaignID <= 0 || req.EventType == "" {
		return nil, fmt.Errorf("%w: visitorId, campaignId and eventType are required", port.ErrInvalidInput)
	}
	t, err := domain.ParseEventType(req.EventType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidInput, err)
	}
	payload, err := domain.DecodePayload(t, req.EventData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidInput, err)
	}

	v, err := u.repo.GetVisitor(ctx, req.VisitorID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("visitor %d: %w", req.VisitorID, port.ErrVisitorNotFound)
	}
	if v.CampaignID != req.CampaignID {
		return nil, fmt.Errorf("%w: visitor %d does not belong to campaign %d", port.ErrInvalidInput, v.ID, req.CampaignID)
	}
	if req.VariationSetID != nil && *req.VariationSetID != v.VariationSetID {
		return nil, fmt.Errorf("%w: visitor %d is assigned to variation set %d", port.ErrInvalidInput, v.ID, v.VariationSetID)
	}

	e := &domain.Event{VisitorID: v.ID, CampaignID: v.CampaignID, VariationSetID: v.VariationSetID, Payload: payload}
	if err = u.repo.AppendEvent(ctx, e); err != nil {
		return nil, err
	}
	u.metrics.TrackEvent(t)
	return e, nil
}

// append writes an event denormalised from the visitor row.
func (u *FunnelUseCase) append(ctx context.Context, v *domain.Visitor, p domain.Payload) error {
	e := &domain.Event{VisitorID: v.ID, CampaignID: v.CampaignID, VariationSetID: v.VariationSetID, Payload: p}
	if err := u.repo.AppendEvent(ctx, e); err != nil {
		return fmt.Errorf("append %s: %w", p.EventType(), err)
	}
	u.metrics.TrackEvent(p.EventType())
	return nil
}

// campaignBySlug resolves an active campaign, going through the cache when
// one is configured. Cache failures degrade to a repository read. Only active
// campaigns are cached; a read that finds the campaign inactive or gone
// evicts the slug so a shared cache stops serving it.
func (u *FunnelUseCase) campaignBySlug(ctx context.Context, slug string) (*domain.Campaign, error) {
	if slug == "" {
		return nil, port.ErrCampaignNotFound
	}
	if u.cache != nil {
		c, ok, err := u.cache.Get(ctx, slug)
		if err != nil {
			u.logger.Warn("campaign cache read failed", slog.String("slug", slug), slog.Any("error", err))
		}
		if ok {
			return activeOnly(&c)
		}
	}

	c, err := u.repo.GetCampaignBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		u.refreshCache(ctx, slug, c)
	}
	if c == nil {
		return nil, fmt.Errorf("slug %q: %w", slug, port.ErrCampaignNotFound)
	}
	return activeOnly(c)
}

func (u *FunnelUseCase) refreshCache(ctx context.Context, slug string, c *domain.Campaign) {
	if c != nil && c.IsActive {
		if err := u.cache.Set(ctx, *c); err != nil {
			u.logger.Warn("campaign cache write failed", slog.String("slug", slug), slog.Any("error", err))
		}
		return
	}
	if err := u.cache.Delete(ctx, slug); err != nil {
		u.logger.Warn("campaign cache evict failed", slog.String("slug", slug), slog.Any("error", err))
	}
}

func activeOnly(c *domain.Campaign) (*domain.Campaign, error) {
	if !c.IsActive {
		return nil, fmt.Errorf("campaign %q is inactive: %w", c.Slug, port.ErrCampaignNotFound)
	}
	return c, nil
}

// IsClientError reports whether err is one of the recoverable request
// errors of the funnel.
func IsClientError(err error) bool {
	return errors.Is(err, port.ErrCampaignNotFound) ||
		errors.Is(err, port.ErrNoActiveVariations) ||
		errors.Is(err, port.ErrVariationNotFound) ||
		errors.Is(err, port.ErrNoModuleVariant) ||
		errors.Is(err, port.ErrVisitorNotFound) ||
		errors.Is(err, port.ErrInvalidInput)
}

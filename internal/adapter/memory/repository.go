// Package memory provides an in-process implementation of the funnel
// storage ports. It backs the "memory" storage driver for local demos and
// the use case tests. All data is lost when the process exits.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

type visitorKey struct {
	campaignID int64
	token      string
}

// Repository implements port.FunnelRepository. It is safe for concurrent
// use; InsertVisitorIfAbsent is atomic under the repository lock.
type Repository struct {
	mu sync.RWMutex

	nextID int64
	now    func() time.Time

	campaigns  map[int64]domain.Campaign
	variations map[int64]domain.VariationSet
	modules    map[int64][]domain.Module // by presentation id
	visitors   map[int64]domain.Visitor
	byToken    map[visitorKey]int64
	events     []domain.Event
	spend      []domain.AdSpend
}

var _ port.FunnelRepository = (*Repository)(nil)

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{
		now:        func() time.Time { return time.Now().UTC() },
		campaigns:  make(map[int64]domain.Campaign),
		variations: make(map[int64]domain.VariationSet),
		modules:    make(map[int64][]domain.Module),
		visitors:   make(map[int64]domain.Visitor),
		byToken:    make(map[visitorKey]int64),
	}
}

func (r *Repository) id() int64 {
	r.nextID++
	return r.nextID
}

// AddCampaign stores c with a fresh id and returns it.
func (r *Repository) AddCampaign(c domain.Campaign) domain.Campaign {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.id()
	c.CreatedAt, c.UpdatedAt = r.now(), r.now()
	r.campaigns[c.ID] = c
	return c
}

// AddVariationSet stores v with a fresh id and returns it.
func (r *Repository) AddVariationSet(v domain.VariationSet) domain.VariationSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.id()
	v.CreatedAt = r.now()
	v.ModuleVariants = maps.Clone(v.ModuleVariants)
	r.variations[v.ID] = v
	return v
}

// SetVariationActive toggles a variation set the way the content tools do.
func (r *Repository) SetVariationActive(id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.variations[id]
	if !ok {
		return fmt.Errorf("variation set %d: %w", id, port.ErrVariationNotFound)
	}
	v.IsActive = active
	r.variations[id] = v
	return nil
}

// AddModule appends a module with its variants to a presentation, assigning
// ids to both.
func (r *Repository) AddModule(m domain.Module) domain.Module {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.id()
	m.Position = len(r.modules[m.PresentationID])
	m.Variants = slices.Clone(m.Variants)
	for i := range m.Variants {
		m.Variants[i].ID = r.id()
		m.Variants[i].ModuleID = m.ID
		m.Variants[i].Position = i
	}
	r.modules[m.PresentationID] = append(r.modules[m.PresentationID], m)
	return m
}

// AddAdSpend records ad spend for a campaign.
func (r *Repository) AddAdSpend(s domain.AdSpend) domain.AdSpend {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.id()
	r.spend = append(r.spend, s)
	return s
}

func (r *Repository) GetCampaignBySlug(_ context.Context, slug string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.campaigns {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *Repository) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.campaigns[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *Repository) ListVariationSets(_ context.Context, campaignID int64) ([]domain.VariationSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.VariationSet
	for _, v := range r.variations {
		if v.CampaignID == campaignID {
			v.ModuleVariants = maps.Clone(v.ModuleVariants)
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b domain.VariationSet) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *Repository) GetVariationSet(_ context.Context, id int64) (*domain.VariationSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.variations[id]
	if !ok {
		return nil, nil
	}
	v.ModuleVariants = maps.Clone(v.ModuleVariants)
	return &v, nil
}

func (r *Repository) ListModules(_ context.Context, presentationID int64) ([]domain.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := slices.Clone(r.modules[presentationID])
	for i := range out {
		out[i].Variants = slices.Clone(out[i].Variants)
	}
	return out, nil
}

func (r *Repository) FindVisitor(_ context.Context, campaignID int64, token string) (*domain.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byToken[visitorKey{campaignID, token}]
	if !ok {
		return nil, nil
	}
	v := r.visitors[id]
	return &v, nil
}

func (r *Repository) GetVisitor(_ context.Context, id int64) (*domain.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.visitors[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *Repository) InsertVisitorIfAbsent(_ context.Context, v *domain.Visitor) (*domain.Visitor, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := visitorKey{v.CampaignID, v.Token}
	if id, ok := r.byToken[key]; ok {
		existing := r.visitors[id]
		return &existing, false, nil
	}
	if _, ok := r.variations[v.VariationSetID]; !ok {
		return nil, false, fmt.Errorf("variation set %d: %w", v.VariationSetID, port.ErrVariationNotFound)
	}
	stored := *v
	stored.ID = r.id()
	stored.CreatedAt = r.now()
	r.visitors[stored.ID] = stored
	r.byToken[key] = stored.ID
	return &stored, true, nil
}

func (r *Repository) UpdateVisitorContact(_ context.Context, visitorID int64, email string, firstName *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.visitors[visitorID]
	if !ok {
		return fmt.Errorf("visitor %d: %w", visitorID, port.ErrVisitorNotFound)
	}
	v.Email = &email
	if firstName != nil {
		name := *firstName
		v.FirstName = &name
	}
	r.visitors[visitorID] = v
	return nil
}

func (r *Repository) AppendEvent(_ context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.visitors[e.VisitorID]; !ok {
		return fmt.Errorf("visitor %d: %w", e.VisitorID, port.ErrVisitorNotFound)
	}
	e.ID = r.id()
	e.CreatedAt = r.now()
	r.events = append(r.events, *e)
	return nil
}

func (r *Repository) ListEvents(_ context.Context, campaignID int64, eventType domain.EventType) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Event
	for _, e := range r.events {
		if e.CampaignID == campaignID && e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *Repository) CountVisitors(_ context.Context, campaignID int64) (map[int64]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[int64]int64)
	for _, v := range r.visitors {
		if v.CampaignID == campaignID {
			out[v.VariationSetID]++
		}
	}
	return out, nil
}

func (r *Repository) CountEvents(_ context.Context, campaignID int64) ([]port.EventCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type key struct {
		variation int64
		typ       domain.EventType
	}
	counts := make(map[key]*port.EventCount)
	seen := make(map[key]map[int64]struct{})
	var order []key
	for _, e := range r.events {
		if e.CampaignID != campaignID {
			continue
		}
		k := key{e.VariationSetID, e.Type()}
		c, ok := counts[k]
		if !ok {
			c = &port.EventCount{VariationSetID: k.variation, Type: k.typ}
			counts[k] = c
			seen[k] = make(map[int64]struct{})
			order = append(order, k)
		}
		c.Events++
		if _, dup := seen[k][e.VisitorID]; !dup {
			seen[k][e.VisitorID] = struct{}{}
			c.Visitors++
		}
	}
	out := make([]port.EventCount, 0, len(order))
	for _, k := range order {
		out = append(out, *counts[k])
	}
	return out, nil
}

func (r *Repository) ListAdSpend(_ context.Context, campaignID int64) ([]domain.AdSpend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AdSpend
	for _, s := range r.spend {
		if s.CampaignID == campaignID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *Repository) ExportRows(_ context.Context, campaignID int64) ([]port.ExportRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []port.ExportRow
	for _, e := range r.events {
		if e.CampaignID != campaignID {
			continue
		}
		v := r.visitors[e.VisitorID]
		data, err := domain.EncodePayload(e.Payload)
		if err != nil {
			return nil, err
		}
		row := port.ExportRow{
			EventID:        e.ID,
			CreatedAt:      e.CreatedAt,
			EventType:      e.Type(),
			EventData:      data,
			VisitorID:      v.ID,
			VisitorToken:   v.Token,
			VariationSetID: e.VariationSetID,
			UTM:            v.UTM,
			Referrer:       v.Referrer,
		}
		if v.Email != nil {
			row.Email = *v.Email
		}
		if v.FirstName != nil {
			row.FirstName = *v.FirstName
		}
		out = append(out, row)
	}
	return out, nil
}

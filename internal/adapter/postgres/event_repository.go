package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

// AppendEvent inserts one event row. The payload is stored as JSONB; types
// without a body store NULL.
func (r *FunnelRepository) AppendEvent(ctx context.Context, e *domain.Event) error {
	data, err := domain.EncodePayload(e.Payload)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `
        INSERT INTO events (visitor_id, campaign_id, variation_set_id, event_type, event_data)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`,
		e.VisitorID, e.CampaignID, e.VariationSetID, string(e.Type()), []byte(data),
	).Scan(&e.ID, &e.CreatedAt)
}

// ListEvents returns the campaign's events of one type in id order.
func (r *FunnelRepository) ListEvents(ctx context.Context, campaignID int64, eventType domain.EventType) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, visitor_id, campaign_id, variation_set_id, event_type, event_data, created_at
        FROM events
        WHERE campaign_id = $1 AND event_type = $2
        ORDER BY id`, campaignID, string(eventType))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			e    domain.Event
			typ  string
			data []byte
		)
		if err := row.Scan(&e.ID, &e.VisitorID, &e.CampaignID, &e.VariationSetID, &typ, &data, &e.CreatedAt); err != nil {
			return e, err
		}
		p, err := domain.DecodePayload(domain.EventType(typ), data)
		if err != nil {
			return e, fmt.Errorf("event %d: %w", e.ID, err)
		}
		e.Payload = p
		return e, nil
	})
}

// CountVisitors returns the visitor count per variation set.
func (r *FunnelRepository) CountVisitors(ctx context.Context, campaignID int64) (map[int64]int64, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT variation_set_id, count(*)
        FROM visitors
        WHERE campaign_id = $1
        GROUP BY variation_set_id`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]int64)
	for rows.Next() {
		var id, n int64
		if err = rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

// CountEvents groups the campaign's log by variation set and event type.
func (r *FunnelRepository) CountEvents(ctx context.Context, campaignID int64) ([]port.EventCount, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT variation_set_id, event_type, count(*), count(DISTINCT visitor_id)
        FROM events
        WHERE campaign_id = $1
        GROUP BY variation_set_id, event_type`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.EventCount, error) {
		var (
			c   port.EventCount
			typ string
		)
		err := row.Scan(&c.VariationSetID, &typ, &c.Events, &c.Visitors)
		c.Type = domain.EventType(typ)
		return c, err
	})
}

// ListAdSpend returns the campaign's ad spend rows by date.
func (r *FunnelRepository) ListAdSpend(ctx context.Context, campaignID int64) ([]domain.AdSpend, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, spent_on, amount, currency, platform, notes
        FROM ad_spend
        WHERE campaign_id = $1
        ORDER BY spent_on, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdSpend, error) {
		var s domain.AdSpend
		err := row.Scan(&s.ID, &s.CampaignID, &s.Date, &s.Amount, &s.Currency, &s.Platform, &s.Notes)
		return s, err
	})
}

// ExportRows joins every event of the campaign with its visitor.
func (r *FunnelRepository) ExportRows(ctx context.Context, campaignID int64) ([]port.ExportRow, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT e.id, e.created_at, e.event_type, e.event_data, v.id, v.token, e.variation_set_id,
               COALESCE(v.email, ''), COALESCE(v.first_name, ''),
               v.utm_source, v.utm_medium, v.utm_campaign, v.utm_content, v.utm_term, v.referrer
        FROM events e
        JOIN visitors v ON v.id = e.visitor_id
        WHERE e.campaign_id = $1
        ORDER BY e.id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ExportRow, error) {
		var (
			x   port.ExportRow
			typ string
		)
		err := row.Scan(&x.EventID, &x.CreatedAt, &typ, &x.EventData, &x.VisitorID, &x.VisitorToken, &x.VariationSetID,
			&x.Email, &x.FirstName, &x.UTM.Source, &x.UTM.Medium, &x.UTM.Campaign, &x.UTM.Content, &x.UTM.Term, &x.Referrer)
		x.EventType = domain.EventType(typ)
		return x, err
	})
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"funnel-engine/internal/core/domain"
)

const visitorColumns = `id, campaign_id, token, variation_set_id, email, first_name,
       utm_source, utm_medium, utm_campaign, utm_content, utm_term, referrer, created_at`

func scanVisitor(row pgx.Row) (*domain.Visitor, error) {
	var v domain.Visitor
	err := row.Scan(&v.ID, &v.CampaignID, &v.Token, &v.VariationSetID, &v.Email, &v.FirstName,
		&v.UTM.Source, &v.UTM.Medium, &v.UTM.Campaign, &v.UTM.Content, &v.UTM.Term, &v.Referrer, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FindVisitor returns the visitor holding token in the campaign.
func (r *FunnelRepository) FindVisitor(ctx context.Context, campaignID int64, token string) (*domain.Visitor, error) {
	return scanVisitor(r.pool.QueryRow(ctx,
		`SELECT `+visitorColumns+` FROM visitors WHERE campaign_id = $1 AND token = $2`, campaignID, token))
}

// GetVisitor returns a visitor by id.
func (r *FunnelRepository) GetVisitor(ctx context.Context, id int64) (*domain.Visitor, error) {
	return scanVisitor(r.pool.QueryRow(ctx, `SELECT `+visitorColumns+` FROM visitors WHERE id = $1`, id))
}

// InsertVisitorIfAbsent relies on the (campaign_id, token) unique constraint:
// a concurrent insert for the same token loses the race and reads the
// winner's row instead, so the first assignment is the only one ever stored.
func (r *FunnelRepository) InsertVisitorIfAbsent(ctx context.Context, v *domain.Visitor) (*domain.Visitor, bool, error) {
	stored := *v
	err := r.pool.QueryRow(ctx, `
        INSERT INTO visitors (campaign_id, token, variation_set_id, email, first_name,
                              utm_source, utm_medium, utm_campaign, utm_content, utm_term, referrer)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (campaign_id, token) DO NOTHING
        RETURNING id, created_at`,
		v.CampaignID, v.Token, v.VariationSetID, v.Email, v.FirstName,
		v.UTM.Source, v.UTM.Medium, v.UTM.Campaign, v.UTM.Content, v.UTM.Term, v.Referrer,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err == nil {
		return &stored, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	existing, err := r.FindVisitor(ctx, v.CampaignID, v.Token)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("visitor %q conflicted but was not found", v.Token)
	}
	return existing, false, nil
}

// UpdateVisitorContact stores the contact details captured at registration.
func (r *FunnelRepository) UpdateVisitorContact(ctx context.Context, visitorID int64, email string, firstName *string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE visitors SET email = $1, first_name = COALESCE($2, first_name) WHERE id = $3`,
		email, firstName, visitorID)
	return err
}

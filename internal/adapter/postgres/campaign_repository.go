package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"funnel-engine/internal/core/domain"
)

const campaignColumns = `id, slug, name, is_active, presentation_id, cta_text, cta_url,
       cta_appear_at_seconds, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Slug, &c.Name, &c.IsActive, &c.PresentationID, &c.CTAText, &c.CTAURL,
		&c.CTAAppearAtSeconds, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCampaignBySlug returns a campaign by slug.
func (r *FunnelRepository) GetCampaignBySlug(ctx context.Context, slug string) (*domain.Campaign, error) {
	return scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE slug = $1`, slug))
}

// GetCampaign returns a campaign by id.
func (r *FunnelRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
}

const variationColumns = `id, campaign_id, name, opt_in_page_id, module_variants, weight, is_active, created_at`

func scanVariationSet(row pgx.Row) (domain.VariationSet, error) {
	var (
		v       domain.VariationSet
		mapping []byte
	)
	if err := row.Scan(&v.ID, &v.CampaignID, &v.Name, &v.OptInPageID, &mapping, &v.Weight, &v.IsActive, &v.CreatedAt); err != nil {
		return v, err
	}
	if len(mapping) > 0 {
		if err := json.Unmarshal(mapping, &v.ModuleVariants); err != nil {
			return v, fmt.Errorf("variation set %d: decode module variants: %w", v.ID, err)
		}
	}
	return v, nil
}

// ListVariationSets returns all variation sets of a campaign ordered by id.
func (r *FunnelRepository) ListVariationSets(ctx context.Context, campaignID int64) ([]domain.VariationSet, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+variationColumns+` FROM variation_sets WHERE campaign_id = $1 ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VariationSet, error) {
		return scanVariationSet(row)
	})
}

// GetVariationSet returns a variation set by id.
func (r *FunnelRepository) GetVariationSet(ctx context.Context, id int64) (*domain.VariationSet, error) {
	v, err := scanVariationSet(r.pool.QueryRow(ctx, `SELECT `+variationColumns+` FROM variation_sets WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListModules returns the presentation modules with their variants, both
// ordered by position.
func (r *FunnelRepository) ListModules(ctx context.Context, presentationID int64) ([]domain.Module, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, presentation_id, name, position, is_swappable
        FROM presentation_modules
        WHERE presentation_id = $1
        ORDER BY position, id`, presentationID)
	if err != nil {
		return nil, err
	}
	modules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Module, error) {
		var m domain.Module
		err := row.Scan(&m.ID, &m.PresentationID, &m.Name, &m.Position, &m.IsSwappable)
		return m, err
	})
	if err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `
        SELECT mv.id, mv.module_id, mv.name, mv.media_url, mv.duration_seconds, mv.position
        FROM module_variants mv
        JOIN presentation_modules pm ON pm.id = mv.module_id
        WHERE pm.presentation_id = $1
        ORDER BY mv.position, mv.id`, presentationID)
	if err != nil {
		return nil, err
	}
	variants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ModuleVariant, error) {
		var v domain.ModuleVariant
		err := row.Scan(&v.ID, &v.ModuleID, &v.Name, &v.MediaURL, &v.DurationSeconds, &v.Position)
		return v, err
	})
	if err != nil {
		return nil, err
	}

	index := make(map[int64]int, len(modules))
	for i, m := range modules {
		index[m.ID] = i
	}
	for _, v := range variants {
		if i, ok := index[v.ModuleID]; ok {
			modules[i].Variants = append(modules[i].Variants, v)
		}
	}
	return modules, nil
}

package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

// DemoSlug is the slug of the campaign created by Seed.
const DemoSlug = "launch-a"

// Seed inserts a demo campaign with two equally weighted variation sets, a
// three-module presentation and some ad spend, then replays synthetic
// traffic through uc so that every analytics endpoint has data. It does
// nothing when the demo campaign already exists.
func Seed(ctx context.Context, pool *pgxpool.Pool, uc port.FunnelUseCase, visitors int) error {
	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE slug = $1)`, DemoSlug).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := seedContent(ctx, pool); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	return SeedTraffic(ctx, uc, DemoSlug, visitors, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 1)))
}

func seedContent(ctx context.Context, pool *pgxpool.Pool) (err error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var presentationID int64
	if err = tx.QueryRow(ctx, `INSERT INTO presentations (title) VALUES ($1) RETURNING id`,
		"Launch webinar").Scan(&presentationID); err != nil {
		return err
	}

	// module name -> variants (name, seconds); the story module is swappable
	type variant struct {
		name    string
		seconds int
	}
	modules := []struct {
		name      string
		swappable bool
		variants  []variant
	}{
		{"intro", false, []variant{{"intro", 90}}},
		{"story", true, []variant{{"story-short", 300}, {"story-long", 600}}},
		{"offer", false, []variant{{"offer", 240}}},
	}
	storyVariants := make([]int64, 0, 2)
	var storyModule int64
	for pos, m := range modules {
		var moduleID int64
		if err = tx.QueryRow(ctx, `INSERT INTO presentation_modules (presentation_id, name, position, is_swappable)
VALUES ($1, $2, $3, $4) RETURNING id`, presentationID, m.name, pos, m.swappable).Scan(&moduleID); err != nil {
			return err
		}
		for vpos, v := range m.variants {
			var variantID int64
			if err = tx.QueryRow(ctx, `INSERT INTO module_variants (module_id, name, media_url, duration_seconds, position)
VALUES ($1, $2, $3, $4, $5) RETURNING id`, moduleID, v.name, fmt.Sprintf("https://example.com/media/%s.mp4", v.name),
				v.seconds, vpos).Scan(&variantID); err != nil {
				return err
			}
			if m.swappable {
				storyModule = moduleID
				storyVariants = append(storyVariants, variantID)
			}
		}
	}

	var campaignID int64
	if err = tx.QueryRow(ctx, `INSERT INTO campaigns (slug, name, is_active, presentation_id, cta_text, cta_url, cta_appear_at_seconds)
VALUES ($1, $2, true, $3, $4, $5, $6) RETURNING id`,
		DemoSlug, "Launch A", presentationID, "Book a call", "https://example.com/book", 600).Scan(&campaignID); err != nil {
		return err
	}

	for i, name := range []string{"A", "B"} {
		mapping, _ := json.Marshal(map[int64]int64{storyModule: storyVariants[i]})
		if _, err = tx.Exec(ctx, `INSERT INTO variation_sets (campaign_id, name, module_variants, weight, is_active)
VALUES ($1, $2, $3, 1, true)`, campaignID, name, mapping); err != nil {
			return err
		}
	}

	for d := 0; d < 7; d++ {
		if _, err = tx.Exec(ctx, `INSERT INTO ad_spend (campaign_id, spent_on, amount, currency, platform)
VALUES ($1, $2, $3, 'USD', 'meta')`, campaignID, time.Now().AddDate(0, 0, -d), 15000); err != nil {
			return err
		}
	}
	return nil
}

// SeedTraffic sends n synthetic visitors through the funnel of slug. Roughly
// a third register, most of those start the presentation and report
// progress, and a few click the call to action, book a call and buy.
func SeedTraffic(ctx context.Context, uc port.FunnelUseCase, slug string, n int, r *rand.Rand) error {
	for i := 0; i < n; i++ {
		visit, err := uc.Visit(ctx, port.VisitReq{
			Slug:     slug,
			UTM:      domain.UTM{Source: []string{"facebook", "google", "newsletter"}[r.IntN(3)], Medium: "cpc"},
			Referrer: "https://example.com/ad",
		})
		if err != nil {
			return err
		}
		if r.Float64() > 0.35 {
			continue
		}
		if _, err = uc.Register(ctx, port.RegisterReq{
			Slug:         slug,
			Email:        fmt.Sprintf("visitor%d@example.com", visit.Visitor.ID),
			VisitorToken: visit.Visitor.Token,
		}); err != nil {
			return err
		}

		track := func(t domain.EventType, data any) error {
			raw, _ := json.Marshal(data)
			_, err := uc.Track(ctx, port.TrackReq{
				VisitorID:  visit.Visitor.ID,
				CampaignID: visit.Campaign.ID,
				EventType:  string(t),
				EventData:  raw,
			})
			return err
		}
		if r.Float64() > 0.8 {
			continue
		}
		if err = track(domain.EventPlayStart, nil); err != nil {
			return err
		}
		watched := r.Int64N(900_000)
		for ms := int64(0); ms <= watched; ms += 60_000 {
			if err = track(domain.EventPlayProgress, domain.PlayProgress{WatchTimeMs: ms}); err != nil {
				return err
			}
		}
		if watched < 600_000 || r.Float64() > 0.5 {
			continue
		}
		if err = track(domain.EventCTAClick, nil); err != nil {
			return err
		}
		if r.Float64() < 0.4 {
			if err = track(domain.EventCallBooked, nil); err != nil {
				return err
			}
			if r.Float64() < 0.5 {
				if err = track(domain.EventSale, domain.Sale{Amount: 997, Currency: "USD"}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}


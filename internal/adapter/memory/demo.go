package memory

import (
	"time"

	"funnel-engine/internal/core/domain"
)

// SeedDemo creates the same demo campaign the PostgreSQL seed creates: two
// equally weighted variation sets that differ in the story module they
// serve, and a week of ad spend.
func (r *Repository) SeedDemo(slug string) domain.Campaign {
	const presentationID = 1

	r.AddModule(domain.Module{PresentationID: presentationID, Name: "intro", Variants: []domain.ModuleVariant{
		{Name: "intro", MediaURL: "https://example.com/media/intro.mp4", DurationSeconds: 90},
	}})
	story := r.AddModule(domain.Module{PresentationID: presentationID, Name: "story", IsSwappable: true, Variants: []domain.ModuleVariant{
		{Name: "story-short", MediaURL: "https://example.com/media/story-short.mp4", DurationSeconds: 300},
		{Name: "story-long", MediaURL: "https://example.com/media/story-long.mp4", DurationSeconds: 600},
	}})
	r.AddModule(domain.Module{PresentationID: presentationID, Name: "offer", Variants: []domain.ModuleVariant{
		{Name: "offer", MediaURL: "https://example.com/media/offer.mp4", DurationSeconds: 240},
	}})

	pid := int64(presentationID)
	appear := 600
	c := r.AddCampaign(domain.Campaign{
		Slug:               slug,
		Name:               "Launch A",
		IsActive:           true,
		PresentationID:     &pid,
		CTAText:            "Book a call",
		CTAURL:             "https://example.com/book",
		CTAAppearAtSeconds: &appear,
	})
	for i, name := range []string{"A", "B"} {
		r.AddVariationSet(domain.VariationSet{
			CampaignID:     c.ID,
			Name:           name,
			ModuleVariants: map[int64]int64{story.ID: story.Variants[i].ID},
			Weight:         1,
			IsActive:       true,
		})
	}
	for d := 0; d < 7; d++ {
		r.AddAdSpend(domain.AdSpend{
			CampaignID: c.ID,
			Date:       time.Now().AddDate(0, 0, -d),
			Amount:     15000,
			Currency:   "USD",
			Platform:   "meta",
		})
	}
	return c
}

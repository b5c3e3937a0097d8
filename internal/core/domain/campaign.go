package domain

import "time"

// Campaign is a funnel campaign as maintained by the content tools. The
// engine only reads it.
type Campaign struct {
	ID                 int64
	Slug               string
	Name               string
	IsActive           bool
	PresentationID     *int64
	CTAText            string
	CTAURL             string
	CTAAppearAtSeconds *int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// VariationSet is one weighted arm of a campaign's A/B test. ModuleVariants
// maps a swappable presentation module id to the module variant id this arm
// serves. A weight of zero keeps the arm but stops new visitors from being
// assigned to it.
type VariationSet struct {
	ID             int64
	CampaignID     int64
	Name           string
	OptInPageID    *int64
	ModuleVariants map[int64]int64
	Weight         int
	IsActive       bool
	CreatedAt      time.Time
}

// Eligible reports whether new visitors may be assigned to the set.
func (v VariationSet) Eligible() bool {
	return v.IsActive && v.Weight > 0
}

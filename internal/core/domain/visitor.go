package domain

import "time"

// Visitor is one anonymous browser in one campaign, identified by the token
// stored in its fv_{campaignId} cookie. VariationSetID is written once on
// creation and never changes afterwards.
type Visitor struct {
	ID             int64
	CampaignID     int64
	Token          string
	VariationSetID int64
	Email          *string
	FirstName      *string
	UTM            UTM
	Referrer       string
	CreatedAt      time.Time
}

// UTM holds the attribution parameters captured on the first visit.
type UTM struct {
	Source   string `json:"utm_source,omitempty"`
	Medium   string `json:"utm_medium,omitempty"`
	Campaign string `json:"utm_campaign,omitempty"`
	Content  string `json:"utm_content,omitempty"`
	Term     string `json:"utm_term,omitempty"`
}

// RegistrationNotice is handed to registration listeners (e.g. the
// marketing list sync) after a visitor registers.
type RegistrationNotice struct {
	CampaignID     int64  `json:"campaignId"`
	CampaignSlug   string `json:"campaignSlug"`
	VisitorID      int64  `json:"visitorId"`
	VariationSetID int64  `json:"variationSetId"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName,omitempty"`
	UTM            UTM    `json:"utm"`
}

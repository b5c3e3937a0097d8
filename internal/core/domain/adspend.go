package domain

import "time"

// AdSpend is externally recorded advertising cost for a campaign. Amount is
// stored in minor currency units (e.g. cents).
type AdSpend struct {
	ID         int64
	CampaignID int64
	Date       time.Time
	Amount     int64
	Currency   string
	Platform   string
	Notes      string
}

package domain

// VariationMetrics are the counts and rates of one variation set, derived by
// replaying the event log.
type VariationMetrics struct {
	VariationSetID    int64   `json:"variationSetId"`
	Name              string  `json:"name"`
	IsActive          bool    `json:"isActive"`
	Weight            int     `json:"weight"`
	Visitors          int64   `json:"visitors"`
	Registrations     int64   `json:"registrations"`
	UniqueRegistrants int64   `json:"uniqueRegistrants"`
	PlayStarts        int64   `json:"playStarts"`
	CTAClicks         int64   `json:"ctaClicks"`
	CallsBooked       int64   `json:"callsBooked"`
	Sales             int64   `json:"sales"`
	RegistrationRate  float64 `json:"registrationRate"`
	CTAClickRate      float64 `json:"ctaClickRate"`
}

// CampaignMetrics rolls VariationMetrics up to the campaign and adds cost
// metrics from recorded ad spend. Money values are in major currency units.
// TotalAdSpend and the cost metrics are only filled when all spend shares one
// currency, named by AdSpendCurrency; AdSpendByCurrency is always reported.
type CampaignMetrics struct {
	CampaignID          int64              `json:"campaignId"`
	Variations          []VariationMetrics `json:"variations"`
	Visitors            int64              `json:"visitors"`
	Registrations       int64              `json:"registrations"`
	UniqueRegistrants   int64              `json:"uniqueRegistrants"`
	PlayStarts          int64              `json:"playStarts"`
	CTAClicks           int64              `json:"ctaClicks"`
	CallsBooked         int64              `json:"callsBooked"`
	Sales               int64              `json:"sales"`
	RegistrationRate    float64            `json:"registrationRate"`
	CTAClickRate        float64            `json:"ctaClickRate"`
	AdSpendByCurrency   map[string]float64 `json:"adSpendByCurrency"`
	AdSpendCurrency     string             `json:"adSpendCurrency,omitempty"`
	TotalAdSpend        float64            `json:"totalAdSpend"`
	CostPerRegistration *float64           `json:"costPerRegistration"`
	CostPerSale         *float64           `json:"costPerSale"`
}

// Confidence is the coarse significance label of a variation.
type Confidence string

const (
	ConfidenceNeedData Confidence = "need_data"
	ConfidenceTrending Confidence = "trending"
	ConfidenceWinner   Confidence = "winner"
)

// VariationSignificance is the outcome of comparing one variation against the
// campaign leader. ZScore and PValue are nil for the leader itself and for
// variations that were not tested.
type VariationSignificance struct {
	VariationSetID   int64      `json:"variationSetId"`
	Name             string     `json:"name"`
	Visitors         int64      `json:"visitors"`
	Registrations    int64      `json:"registrations"`
	RegistrationRate float64    `json:"registrationRate"`
	IsLeader         bool       `json:"isLeader"`
	Label            Confidence `json:"label"`
	ZScore           *float64   `json:"zScore"`
	PValue           *float64   `json:"pValue"`
}

// DropOffPoint is one bucket of the audience retention curve.
type DropOffPoint struct {
	TimeSeconds int64   `json:"timeSeconds"`
	ViewerCount int64   `json:"viewerCount"`
	Percentage  float64 `json:"percentage"`
}

package domain

// Module is one ordered block of a campaign presentation. Swappable modules
// can serve a different variant per variation set; the others always serve
// their first variant.
type Module struct {
	ID             int64
	PresentationID int64
	Name           string
	Position       int
	IsSwappable    bool
	Variants       []ModuleVariant // ordered by Position
}

// ModuleVariant is a concrete rendition of a module.
type ModuleVariant struct {
	ID              int64
	ModuleID        int64
	Name            string
	MediaURL        string
	DurationSeconds int
	Position        int
}

// TimelineItem is one resolved module in the order it is played.
type TimelineItem struct {
	ModuleID        int64  `json:"moduleId"`
	ModuleName      string `json:"moduleName"`
	VariantID       int64  `json:"variantId"`
	VariantName     string `json:"variantName"`
	MediaURL        string `json:"mediaUrl"`
	DurationSeconds int    `json:"durationSeconds"`
	StartsAtSeconds int    `json:"startsAtSeconds"`
}

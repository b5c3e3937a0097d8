package port

import "errors"

// Errors returned by the funnel use cases. Adapters match them with
// errors.Is to choose a response; all of them are recoverable at the
// request boundary.
var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrNoActiveVariations = errors.New("no active variations")
	ErrVariationNotFound  = errors.New("variation set not found")
	ErrVisitorNotFound    = errors.New("visitor not found")
	ErrNoModuleVariant    = errors.New("module has no variants")
	ErrInvalidInput       = errors.New("invalid input")
)

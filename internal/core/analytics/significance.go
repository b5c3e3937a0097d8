package analytics

import (
	"math"

	"funnel-engine/internal/core/domain"
)

// DefaultMinSample is the visitor count below which a variation is not tested.
const DefaultMinSample = 30

// Critical values of the standard normal distribution (two-sided).
const (
	zWinner   = 1.96  // ~95%
	zTrending = 1.645 // ~90%
)

// Significance labels every variation against the registration-rate leader
// using a pooled two-proportion z-test. The result keeps the order of rows.
//
// The leader is the variation with the highest rate; ties go to the one
// with more visitors, then the lower id. Each non-leader is compared with
// the leader only, so no family-wise error control is attempted. A zero
// standard error is not an error: the variation is labeled need_data.
func Significance(rows []domain.VariationMetrics, minSample int64) []domain.VariationSignificance {
	if minSample <= 0 {
		minSample = DefaultMinSample
	}
	out := make([]domain.VariationSignificance, len(rows))
	if len(rows) == 0 {
		return out
	}

	best := 0
	for i := 1; i < len(rows); i++ {
		if leads(rows[i], rows[best]) {
			best = i
		}
	}
	leader := rows[best]

	for i, r := range rows {
		res := domain.VariationSignificance{
			VariationSetID:   r.VariationSetID,
			Name:             r.Name,
			Visitors:         r.Visitors,
			Registrations:    r.Registrations,
			RegistrationRate: r.RegistrationRate,
			Label:            domain.ConfidenceNeedData,
		}
		switch {
		case i == best:
			res.IsLeader = true
			if r.Visitors >= minSample {
				res.Label = domain.ConfidenceTrending
			}
		case r.Visitors >= minSample:
			z, ok := twoProportionZ(r, leader)
			if ok {
				p := twoSidedPValue(z)
				res.ZScore, res.PValue = &z, &p
				res.Label = classify(z)
			}
		}
		out[i] = res
	}
	return out
}

// leads reports whether a should replace b as the leader.
func leads(a, b domain.VariationMetrics) bool {
	if a.RegistrationRate != b.RegistrationRate {
		return a.RegistrationRate > b.RegistrationRate
	}
	if a.Visitors != b.Visitors {
		return a.Visitors > b.Visitors
	}
	return a.VariationSetID < b.VariationSetID
}

// twoProportionZ returns |rate_v - rate_best| / se with the pooled standard
// error. ok is false when the standard error is zero or undefined.
func twoProportionZ(v, best domain.VariationMetrics) (float64, bool) {
	if v.Visitors == 0 || best.Visitors == 0 {
		return 0, false
	}
	n := float64(v.Visitors + best.Visitors)
	p := float64(v.Registrations+best.Registrations) / n
	se := math.Sqrt(p * (1 - p) * (1/float64(v.Visitors) + 1/float64(best.Visitors)))
	if se == 0 || math.IsNaN(se) {
		return 0, false
	}
	return math.Abs(v.RegistrationRate-best.RegistrationRate) / se, true
}

func classify(z float64) domain.Confidence {
	switch {
	case z >= zWinner:
		return domain.ConfidenceWinner
	case z >= zTrending:
		return domain.ConfidenceTrending
	default:
		return domain.ConfidenceNeedData
	}
}

// twoSidedPValue returns 2·(1 − Φ(|z|)). Erfc keeps precision in the tail
// where 1 − Φ would cancel.
func twoSidedPValue(z float64) float64 {
	return math.Erfc(math.Abs(z) / math.Sqrt2)
}

package analytics

import (
	"cmp"
	"slices"
	"strings"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

// Aggregate builds campaign metrics from the replayed log. visitors maps a
// variation set id to its visitor count; counts are the per-type event
// counts. Variation sets are reported in ascending id order, including sets
// without any traffic. Counts for ids not in sets are ignored.
//
// Ad spend is summed across rows regardless of currency.
func Aggregate(campaignID int64, sets []domain.VariationSet, visitors map[int64]int64, counts []port.EventCount, spend []domain.AdSpend) domain.CampaignMetrics {
	byID := make(map[int64]*domain.VariationMetrics, len(sets))
	rows := make([]domain.VariationMetrics, 0, len(sets))
	ordered := slices.Clone(sets)
	slices.SortFunc(ordered, func(a, b domain.VariationSet) int { return cmp.Compare(a.ID, b.ID) })
	for _, s := range ordered {
		rows = append(rows, domain.VariationMetrics{
			VariationSetID: s.ID,
			Name:           s.Name,
			IsActive:       s.IsActive,
			Weight:         s.Weight,
			Visitors:       visitors[s.ID],
		})
	}
	for i := range rows {
		byID[rows[i].VariationSetID] = &rows[i]
	}

	for _, c := range counts {
		m, ok := byID[c.VariationSetID]
		if !ok {
			continue
		}
		switch c.Type {
		case domain.EventRegistration:
			m.Registrations += c.Events
			m.UniqueRegistrants += c.Visitors
		case domain.EventPlayStart:
			m.PlayStarts += c.Events
		case domain.EventCTAClick:
			m.CTAClicks += c.Events
		case domain.EventCallBooked:
			m.CallsBooked += c.Events
		case domain.EventSale:
			m.Sales += c.Events
		case domain.EventPageView, domain.EventPlayProgress:
			// not reported as counts
		}
	}

	out := domain.CampaignMetrics{CampaignID: campaignID, Variations: rows}
	for i := range rows {
		m := &rows[i]
		m.RegistrationRate = ratio(m.Registrations, m.Visitors)
		m.CTAClickRate = ratio(m.CTAClicks, m.PlayStarts)

		out.Visitors += m.Visitors
		out.Registrations += m.Registrations
		out.UniqueRegistrants += m.UniqueRegistrants
		out.PlayStarts += m.PlayStarts
		out.CTAClicks += m.CTAClicks
		out.CallsBooked += m.CallsBooked
		out.Sales += m.Sales
	}
	out.RegistrationRate = ratio(out.Registrations, out.Visitors)
	out.CTAClickRate = ratio(out.CTAClicks, out.PlayStarts)

	centsByCurrency := make(map[string]int64)
	for _, s := range spend {
		centsByCurrency[strings.ToUpper(strings.TrimSpace(s.Currency))] += s.Amount
	}
	out.AdSpendByCurrency = make(map[string]float64, len(centsByCurrency))
	for cur, cents := range centsByCurrency {
		out.AdSpendByCurrency[cur] = float64(cents) / 100
	}
	if len(centsByCurrency) > 1 {
		return out
	}
	for cur, total := range out.AdSpendByCurrency {
		out.AdSpendCurrency = cur
		out.TotalAdSpend = total
	}
	out.CostPerRegistration = costPer(out.TotalAdSpend, out.Registrations)
	out.CostPerSale = costPer(out.TotalAdSpend, out.Sales)
	return out
}

func ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func costPer(total float64, n int64) *float64 {
	if n == 0 {
		return nil
	}
	v := total / float64(n)
	return &v
}

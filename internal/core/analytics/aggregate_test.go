package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

func TestAggregate(t *testing.T) {
	sets := []domain.VariationSet{
		{ID: 2, Name: "B", Weight: 1, IsActive: true},
		{ID: 1, Name: "A", Weight: 1, IsActive: true},
		{ID: 3, Name: "C", Weight: 0, IsActive: false},
	}
	visitors := map[int64]int64{1: 10, 2: 4, 99: 50}
	counts := []port.EventCount{
		{VariationSetID: 1, Type: domain.EventPageView, Events: 30, Visitors: 10},
		{VariationSetID: 1, Type: domain.EventRegistration, Events: 6, Visitors: 5},
		{VariationSetID: 1, Type: domain.EventPlayStart, Events: 4, Visitors: 4},
		{VariationSetID: 1, Type: domain.EventCTAClick, Events: 1, Visitors: 1},
		{VariationSetID: 1, Type: domain.EventSale, Events: 2, Visitors: 2},
		{VariationSetID: 2, Type: domain.EventRegistration, Events: 2, Visitors: 2},
		{VariationSetID: 2, Type: domain.EventCTAClick, Events: 3, Visitors: 1},
		{VariationSetID: 2, Type: domain.EventCallBooked, Events: 1, Visitors: 1},
		{VariationSetID: 99, Type: domain.EventRegistration, Events: 50, Visitors: 50},
	}
	spend := []domain.AdSpend{{Amount: 10000, Currency: "USD"}, {Amount: 6000, Currency: "usd "}}

	m := Aggregate(7, sets, visitors, counts, spend)

	require.Len(t, m.Variations, 3)
	a, b, c := m.Variations[0], m.Variations[1], m.Variations[2]
	assert.Equal(t, []int64{1, 2, 3}, []int64{a.VariationSetID, b.VariationSetID, c.VariationSetID})

	assert.Equal(t, int64(10), a.Visitors)
	assert.Equal(t, int64(6), a.Registrations)
	assert.Equal(t, int64(5), a.UniqueRegistrants)
	assert.InDelta(t, 0.6, a.RegistrationRate, 1e-9)
	assert.InDelta(t, 0.25, a.CTAClickRate, 1e-9)

	// no play starts: click rate is defined as zero
	assert.Equal(t, int64(3), b.CTAClicks)
	assert.Zero(t, b.CTAClickRate)
	assert.InDelta(t, 0.5, b.RegistrationRate, 1e-9)

	// no traffic at all
	assert.Zero(t, c.Visitors)
	assert.Zero(t, c.RegistrationRate)

	assert.Equal(t, int64(7), m.CampaignID)
	assert.Equal(t, int64(14), m.Visitors)
	assert.Equal(t, int64(8), m.Registrations)
	assert.Equal(t, int64(2), m.Sales)
	assert.Equal(t, int64(1), m.CallsBooked)
	assert.Equal(t, map[string]float64{"USD": 160}, m.AdSpendByCurrency)
	assert.Equal(t, "USD", m.AdSpendCurrency)
	assert.InDelta(t, 160.0, m.TotalAdSpend, 1e-9)
	require.NotNil(t, m.CostPerRegistration)
	assert.InDelta(t, 20.0, *m.CostPerRegistration, 1e-9)
	require.NotNil(t, m.CostPerSale)
	assert.InDelta(t, 80.0, *m.CostPerSale, 1e-9)
}

func TestAggregateEmptyCampaign(t *testing.T) {
	m := Aggregate(1, []domain.VariationSet{{ID: 1}}, nil, nil, nil)

	require.Len(t, m.Variations, 1)
	assert.Zero(t, m.RegistrationRate)
	assert.Zero(t, m.TotalAdSpend)
	assert.Nil(t, m.CostPerRegistration)
	assert.Nil(t, m.CostPerSale)
}

func TestAggregateMixedCurrencies(t *testing.T) {
	sets := []domain.VariationSet{{ID: 1}}
	counts := []port.EventCount{{VariationSetID: 1, Type: domain.EventRegistration, Events: 4, Visitors: 4}}
	spend := []domain.AdSpend{
		{Amount: 10000, Currency: "USD"},
		{Amount: 2500, Currency: "EUR"},
		{Amount: 500, Currency: "USD"},
	}

	m := Aggregate(1, sets, map[int64]int64{1: 10}, counts, spend)

	assert.Equal(t, map[string]float64{"USD": 105, "EUR": 25}, m.AdSpendByCurrency)
	assert.Empty(t, m.AdSpendCurrency)
	assert.Zero(t, m.TotalAdSpend)
	assert.Nil(t, m.CostPerRegistration)
	assert.Nil(t, m.CostPerSale)
	assert.Equal(t, int64(4), m.Registrations)
}

func TestAggregateIsIdempotent(t *testing.T) {
	sets := []domain.VariationSet{{ID: 1}, {ID: 2}}
	visitors := map[int64]int64{1: 3, 2: 5}
	counts := []port.EventCount{
		{VariationSetID: 1, Type: domain.EventRegistration, Events: 1, Visitors: 1},
		{VariationSetID: 2, Type: domain.EventSale, Events: 2, Visitors: 2},
	}
	spend := []domain.AdSpend{{Amount: 500}}

	first := Aggregate(1, sets, visitors, counts, spend)
	second := Aggregate(1, sets, visitors, counts, spend)
	assert.Equal(t, first, second)
}

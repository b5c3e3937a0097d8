package analytics

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funnel-engine/internal/core/domain"
)

func row(id, visitors, regs int64) domain.VariationMetrics {
	return domain.VariationMetrics{
		VariationSetID:   id,
		Visitors:         visitors,
		Registrations:    regs,
		RegistrationRate: ratio(regs, visitors),
	}
}

func TestSignificanceLeaderVsLoser(t *testing.T) {
	res := Significance([]domain.VariationMetrics{row(1, 40, 20), row(2, 40, 10)}, 30)
	require.Len(t, res, 2)

	a, b := res[0], res[1]
	assert.True(t, a.IsLeader)
	assert.Equal(t, domain.ConfidenceTrending, a.Label)
	assert.Nil(t, a.PValue)

	require.NotNil(t, b.ZScore)
	require.NotNil(t, b.PValue)
	assert.InDelta(t, 2.3094, *b.ZScore, 1e-4)
	assert.Equal(t, domain.ConfidenceWinner, b.Label)
	assert.InDelta(t, 0.020921, *b.PValue, 1e-6)
	assert.Greater(t, *b.PValue, 0.0)
	assert.Less(t, *b.PValue, 1.0)
}

func TestSignificanceThresholds(t *testing.T) {
	tests := []struct {
		name  string
		regs  int64
		label domain.Confidence
	}{
		{name: "z 1.85 trending", regs: 37, label: domain.ConfidenceTrending},
		{name: "z 1.71 trending", regs: 38, label: domain.ConfidenceTrending},
		{name: "z below 1.645", regs: 42, label: domain.ConfidenceNeedData},
		{name: "z above 1.96", regs: 30, label: domain.ConfidenceWinner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Significance([]domain.VariationMetrics{row(1, 100, 50), row(2, 100, tt.regs)}, 30)
			assert.Equal(t, tt.label, res[1].Label)
		})
	}
}

func TestSignificanceSmallSamples(t *testing.T) {
	res := Significance([]domain.VariationMetrics{row(1, 29, 29), row(2, 29, 0), row(3, 100, 10)}, 30)

	assert.True(t, res[0].IsLeader)
	assert.Equal(t, domain.ConfidenceNeedData, res[0].Label)
	assert.Equal(t, domain.ConfidenceNeedData, res[1].Label)
	assert.Nil(t, res[1].ZScore)
	// tested against the small leader all the same
	require.NotNil(t, res[2].ZScore)
	assert.Equal(t, domain.ConfidenceWinner, res[2].Label)
}

func TestSignificanceDegenerate(t *testing.T) {
	res := Significance([]domain.VariationMetrics{row(1, 50, 0), row(2, 50, 0)}, 30)

	assert.Equal(t, domain.ConfidenceNeedData, res[1].Label)
	assert.Nil(t, res[1].ZScore)
	assert.Nil(t, res[1].PValue)
}

func TestSignificanceTieBreak(t *testing.T) {
	res := Significance([]domain.VariationMetrics{row(1, 40, 20), row(2, 80, 40), row(3, 80, 40)}, 30)

	assert.False(t, res[0].IsLeader)
	assert.True(t, res[1].IsLeader)
	assert.False(t, res[2].IsLeader)
	assert.Equal(t, domain.ConfidenceNeedData, res[2].Label)
	require.NotNil(t, res[2].PValue)
	assert.InDelta(t, 1.0, *res[2].PValue, 1e-12)
}

func TestSignificanceEmpty(t *testing.T) {
	assert.Empty(t, Significance(nil, 30))
}

func TestTwoSidedPValueMatchesCDF(t *testing.T) {
	cdf := func(x float64) float64 { return 0.5 * (1 + math.Erf(x/math.Sqrt2)) }
	for _, z := range []float64{0, 0.5, 1.645, 1.96, 2.58, 4} {
		assert.InDelta(t, 2*(1-cdf(z)), twoSidedPValue(z), 1e-12, "z=%v", z)
	}
	assert.InDelta(t, 0.05, twoSidedPValue(1.959964), 1e-6)
}

func TestSignificanceIdenticalRatesNeverWinner(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("identical variations are never winner", prop.ForAll(
		func(visitors, regs int64) bool {
			if regs > visitors {
				regs = visitors
			}
			res := Significance([]domain.VariationMetrics{row(1, visitors, regs), row(2, visitors, regs)}, 30)
			for _, r := range res {
				if r.Label == domain.ConfidenceWinner {
					return false
				}
				if !r.IsLeader && r.Label != domain.ConfidenceNeedData {
					return false
				}
			}
			return true
		},
		gen.Int64Range(30, 10_000),
		gen.Int64Range(0, 10_000),
	))

	properties.TestingRun(t)
}

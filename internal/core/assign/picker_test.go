package assign

import (
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

// fixedSource replays the given draws.
type fixedSource struct{ draws []int64 }

func (f *fixedSource) Int64N(n int64) int64 {
	d := f.draws[0]
	f.draws = f.draws[1:]
	return d % n
}

func sets(weights ...int) []domain.VariationSet {
	out := make([]domain.VariationSet, len(weights))
	for i, w := range weights {
		out[i] = domain.VariationSet{ID: int64(i + 1), Weight: w, IsActive: true}
	}
	return out
}

func TestPickDistribution(t *testing.T) {
	p := NewPicker(rand.New(rand.NewPCG(1, 2)))
	vs := sets(1, 1, 2)

	const n = 120_000
	counts := map[int64]int{}
	for i := 0; i < n; i++ {
		s, err := p.Pick(vs)
		require.NoError(t, err)
		counts[s.ID]++
	}

	assert.InDelta(t, 0.25, float64(counts[1])/n, 0.02)
	assert.InDelta(t, 0.25, float64(counts[2])/n, 0.02)
	assert.InDelta(t, 0.50, float64(counts[3])/n, 0.02)
}

func TestPickBoundaries(t *testing.T) {
	vs := sets(1, 1, 2) // cumulative: [0,1) -> 1, [1,2) -> 2, [2,4) -> 3
	p := NewPicker(&fixedSource{draws: []int64{0, 1, 2, 3}})

	var got []int64
	for range 4 {
		s, err := p.Pick(vs)
		require.NoError(t, err)
		got = append(got, s.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 3}, got)
}

func TestPickOrderIndependent(t *testing.T) {
	forward := sets(3, 1)
	reversed := []domain.VariationSet{forward[1], forward[0]}

	for draw := int64(0); draw < 4; draw++ {
		a, err := NewPicker(&fixedSource{draws: []int64{draw}}).Pick(forward)
		require.NoError(t, err)
		b, err := NewPicker(&fixedSource{draws: []int64{draw}}).Pick(reversed)
		require.NoError(t, err)
		assert.Equal(t, a.ID, b.ID, "draw %d", draw)
	}
}

func TestPickSkipsZeroWeightAndInactive(t *testing.T) {
	vs := sets(0, 5, 5)
	vs[2].IsActive = false
	p := NewPicker(rand.New(rand.NewPCG(7, 7)))

	for range 1000 {
		s, err := p.Pick(vs)
		require.NoError(t, err)
		assert.Equal(t, int64(2), s.ID)
	}
}

func TestPickNoActiveVariations(t *testing.T) {
	p := NewPicker(nil)

	_, err := p.Pick(nil)
	assert.ErrorIs(t, err, port.ErrNoActiveVariations)

	vs := sets(0, 0)
	_, err = p.Pick(vs)
	assert.ErrorIs(t, err, port.ErrNoActiveVariations)

	vs = sets(2)
	vs[0].IsActive = false
	_, err = p.Pick(vs)
	assert.ErrorIs(t, err, port.ErrNoActiveVariations)
}

func TestPickAlwaysReturnsEligible(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	p := NewPicker(rand.New(rand.NewPCG(3, 4)))
	properties.Property("picked set is active with positive weight", prop.ForAll(
		func(weights []int) bool {
			vs := sets(weights...)
			s, err := p.Pick(vs)
			if err != nil {
				return len(Eligible(vs)) == 0
			}
			return s.Eligible()
		},
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.TestingRun(t)
}

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

func modules() []domain.Module {
	return []domain.Module{
		{ID: 1, Name: "intro", Variants: []domain.ModuleVariant{
			{ID: 10, Name: "intro", DurationSeconds: 60},
			{ID: 11, Name: "intro-alt", DurationSeconds: 90},
		}},
		{ID: 2, Name: "story", IsSwappable: true, Variants: []domain.ModuleVariant{
			{ID: 20, Name: "story-a", DurationSeconds: 120},
			{ID: 21, Name: "story-b", DurationSeconds: 300},
		}},
		{ID: 3, Name: "offer", Variants: []domain.ModuleVariant{
			{ID: 30, Name: "offer", DurationSeconds: 45},
		}},
	}
}

func TestResolveVariantPrecedence(t *testing.T) {
	ms := modules()

	v, err := ResolveVariant(ms[1], map[int64]int64{2: 21})
	require.NoError(t, err)
	assert.Equal(t, int64(21), v.ID, "mapped variant on swappable module")

	v, err = ResolveVariant(ms[0], map[int64]int64{1: 11})
	require.NoError(t, err)
	assert.Equal(t, int64(10), v.ID, "mapping ignored on fixed module")

	v, err = ResolveVariant(ms[1], map[int64]int64{2: 30})
	require.NoError(t, err)
	assert.Equal(t, int64(20), v.ID, "foreign variant id falls back to first")

	v, err = ResolveVariant(ms[1], nil)
	require.NoError(t, err)
	assert.Equal(t, int64(20), v.ID)

	_, err = ResolveVariant(domain.Module{ID: 4}, nil)
	assert.ErrorIs(t, err, port.ErrNoModuleVariant)
}

func TestResolveTimeline(t *testing.T) {
	items, err := ResolveTimeline(modules(), map[int64]int64{2: 21})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, []int64{10, 21, 30}, []int64{items[0].VariantID, items[1].VariantID, items[2].VariantID})
	assert.Equal(t, []int{0, 60, 360}, []int{items[0].StartsAtSeconds, items[1].StartsAtSeconds, items[2].StartsAtSeconds})
}

// Package assign implements weighted roulette selection of variation sets
// for newly seen visitors.
package assign

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"sync"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

// Source draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	Int64N(n int64) int64
}

// Picker selects a variation set with probability proportional to its
// weight. It is safe for concurrent use.
type Picker struct {
	mu  sync.Mutex
	src Source
}

// NewPicker returns a Picker drawing from src. A nil src uses a randomly
// seeded PCG generator.
func NewPicker(src Source) *Picker {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{src: src}
}

// Pick returns one of the eligible (active, positive weight) sets. Sets are
// visited in ascending ID order regardless of the order they are passed in,
// so a given draw always maps to the same set. It returns
// port.ErrNoActiveVariations when no set is eligible.
func (p *Picker) Pick(sets []domain.VariationSet) (domain.VariationSet, error) {
	eligible := Eligible(sets)
	var total int64
	for _, s := range eligible {
		total += int64(s.Weight)
	}
	if total <= 0 {
		return domain.VariationSet{}, port.ErrNoActiveVariations
	}

	p.mu.Lock()
	r := p.src.Int64N(total)
	p.mu.Unlock()

	for _, s := range eligible {
		r -= int64(s.Weight)
		if r < 0 {
			return s, nil
		}
	}
	// unreachable: r < total
	return eligible[len(eligible)-1], nil
}

// Eligible filters sets down to those new visitors may be assigned to and
// sorts them by ID.
func Eligible(sets []domain.VariationSet) []domain.VariationSet {
	out := make([]domain.VariationSet, 0, len(sets))
	for _, s := range sets {
		if s.Eligible() {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b domain.VariationSet) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

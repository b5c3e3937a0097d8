package analytics

import (
	"fmt"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

// ResolveVariant picks the variant a module serves. Precedence:
//
//  1. the variant mapped for the module, if the module is swappable and the
//     mapping names one of its own variants;
//  2. the module's first variant;
//  3. port.ErrNoModuleVariant.
//
// A nil mapping (anonymous viewer) always falls through to rule 2.
func ResolveVariant(m domain.Module, mapping map[int64]int64) (domain.ModuleVariant, error) {
	if m.IsSwappable {
		if id, ok := mapping[m.ID]; ok {
			for _, v := range m.Variants {
				if v.ID == id {
					return v, nil
				}
			}
		}
	}
	if len(m.Variants) == 0 {
		return domain.ModuleVariant{}, fmt.Errorf("module %d: %w", m.ID, port.ErrNoModuleVariant)
	}
	return m.Variants[0], nil
}

// ResolveTimeline resolves every module in order and stamps each item with
// its start offset within the presentation.
func ResolveTimeline(modules []domain.Module, mapping map[int64]int64) ([]domain.TimelineItem, error) {
	items := make([]domain.TimelineItem, 0, len(modules))
	offset := 0
	for _, m := range modules {
		v, err := ResolveVariant(m, mapping)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.TimelineItem{
			ModuleID:        m.ID,
			ModuleName:      m.Name,
			VariantID:       v.ID,
			VariantName:     v.Name,
			MediaURL:        v.MediaURL,
			DurationSeconds: v.DurationSeconds,
			StartsAtSeconds: offset,
		})
		offset += v.DurationSeconds
	}
	return items, nil
}

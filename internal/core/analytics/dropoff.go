package analytics

import (
	"slices"
	"time"

	"funnel-engine/internal/core/domain"
)

// DefaultBucket is the retention curve resolution.
const DefaultBucket = 30 * time.Second

// DropOff computes the audience retention curve from play_progress events.
// Each visitor counts with the largest watch time seen in any of their
// events, so arrival order does not matter. Watch times are clamped to
// [0, domain.MaxWatchTime]. Points are emitted at t = 0, bucket, 2·bucket, …
// up to and including the longest watch time; each reports how many visitors
// watched at least t. The bucket is truncated to whole seconds and falls back
// to DefaultBucket when that leaves nothing. Events of other types are
// ignored. No viewers yields an empty slice.
func DropOff(events []domain.Event, bucket time.Duration) []domain.DropOffPoint {
	bucket = bucket.Truncate(time.Second)
	if bucket <= 0 {
		bucket = DefaultBucket
	}
	limit := domain.MaxWatchTime.Milliseconds()

	maxByVisitor := make(map[int64]int64)
	for _, e := range events {
		p, ok := e.Payload.(domain.PlayProgress)
		if !ok {
			continue
		}
		ms := min(max(p.WatchTimeMs, 0), limit)
		if cur, seen := maxByVisitor[e.VisitorID]; !seen || ms > cur {
			maxByVisitor[e.VisitorID] = ms
		}
	}
	if len(maxByVisitor) == 0 {
		return []domain.DropOffPoint{}
	}

	watched := make([]int64, 0, len(maxByVisitor))
	for _, ms := range maxByVisitor {
		watched = append(watched, ms)
	}
	slices.Sort(watched)

	total := int64(len(watched))
	longest := watched[len(watched)-1]
	step := bucket.Milliseconds()

	points := make([]domain.DropOffPoint, 0, longest/step+1)
	for t := int64(0); t <= longest; t += step {
		// first index with watch time >= t
		idx, _ := slices.BinarySearch(watched, t)
		viewers := total - int64(idx)
		points = append(points, domain.DropOffPoint{
			TimeSeconds: t / 1000,
			ViewerCount: viewers,
			Percentage:  float64(viewers) * 100 / float64(total),
		})
	}
	return points
}

package analysis

import (
	"sort"

	"github.com/jisook325/tracker/internal/domain"
)

// BuildRangeSummary pairs events, aggregates days and returns them sorted by
// date. moods and events are the rows already fetched for [from, to].
func BuildRangeSummary(from, to string, moods []domain.MoodEntry, events []domain.SleepEvent) domain.RangeSummary {
	analysis := AnalyzeSleepEvents(events)
	days := AggregateDays(moods, analysis)

	sorted := make([]domain.DaySummary, 0, len(days))
	for _, d := range days {
		sorted = append(sorted, *d)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	return domain.RangeSummary{
		From:  from,
		To:    to,
		Days:  sorted,
		Pairs: analysis.Pairs,
		SleepUnmatched: domain.UnmatchedCounts{
			Beds:  len(analysis.UnmatchedBeds),
			Wakes: len(analysis.UnmatchedWakes),
		},
	}
}

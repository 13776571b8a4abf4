package analysis

import (
	"github.com/jisook325/tracker/internal/domain"
)

// AggregateDays folds moods, sleep pairs and unpaired sleep events into one
// summary per date. Only dates with at least one signal appear in the result.
//
// Pairs are attributed to their wake date; unpaired events to the date of
// their own timestamp.
func AggregateDays(moods []domain.MoodEntry, analysis domain.SleepAnalysis) map[string]*domain.DaySummary {
	days := make(map[string]*domain.DaySummary)

	day := func(date string) *domain.DaySummary {
		d, ok := days[date]
		if !ok {
			d = &domain.DaySummary{Date: date, State: domain.CellEmpty}
			days[date] = d
		}
		return d
	}

	for _, entry := range moods {
		d := day(entry.Date)
		mood := entry.Mood
		d.Mood = &mood
		d.MoodDateSource = entry.MoodDateSource
	}

	for _, pair := range analysis.Pairs {
		d := day(pair.WakeDate)
		d.HasSleep = true
		d.SleepPairs = append(d.SleepPairs, pair)
	}

	for _, ev := range analysis.Unmatched {
		d := day(ev.Date())
		d.HasSleep = true
		d.SleepEvents = append(d.SleepEvents, ev)
	}

	for _, d := range days {
		d.State = domain.DayState(d.HasMood(), d.HasSleep)
	}

	return days
}

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jisook325/tracker/internal/domain"
)

func TestBuildRangeSummary(t *testing.T) {
	events := []domain.SleepEvent{
		wake(1, "2024-01-01T08:00"),
		bed(2, "2024-01-01T23:00"),
		wake(3, "2024-01-02T07:00"),
		bed(4, "2024-01-03T22:00"),
	}
	moods := []domain.MoodEntry{
		mood("2024-01-05", "tired"),
		mood("2024-01-02", "calm"),
	}

	got := BuildRangeSummary("2024-01-01", "2024-01-06", moods, events)

	assert.Equal(t, "2024-01-01", got.From)
	assert.Equal(t, "2024-01-06", got.To)

	dates := make([]string, 0, len(got.Days))
	for _, d := range got.Days {
		dates = append(dates, d.Date)
	}
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"}, dates)

	require.Len(t, got.Pairs, 1)
	assert.Equal(t, 480, got.Pairs[0].DurationMinutes)
	assert.Equal(t, domain.UnmatchedCounts{Beds: 1, Wakes: 1}, got.SleepUnmatched)

	states := map[string]domain.CellState{}
	for _, d := range got.Days {
		states[d.Date] = d.State
	}
	assert.Equal(t, map[string]domain.CellState{
		"2024-01-01": domain.CellPartial,
		"2024-01-02": domain.CellFull,
		"2024-01-03": domain.CellPartial,
		"2024-01-05": domain.CellPartial,
	}, states)
}

func TestBuildRangeSummary_NoData(t *testing.T) {
	got := BuildRangeSummary("2024-01-01", "2024-01-31", nil, nil)

	assert.NotNil(t, got.Days)
	assert.Empty(t, got.Days)
	assert.NotNil(t, got.Pairs)
	assert.Equal(t, domain.UnmatchedCounts{}, got.SleepUnmatched)
}

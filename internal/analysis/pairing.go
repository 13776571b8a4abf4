// Package analysis turns raw mood and sleep rows into day summaries.
// Everything here is pure and deterministic.
package analysis

import (
	"math"
	"strings"
	"time"

	"github.com/jisook325/tracker/internal/domain"
)

// MaxPairMinutes is the longest bed-to-wake gap that still forms a pair (18h).
const MaxPairMinutes = 18 * 60

// AnalyzeSleepEvents pairs bed and wake events.
//
// events must be sorted ascending by TimestampLocal, ties in insertion
// order. Each wake is matched with the most recently opened bed that lies
// between 0 and MaxPairMinutes before it; a wake with no such bed is
// left unmatched and does not disturb the open beds. Beds still open at
// the end are unmatched.
func AnalyzeSleepEvents(events []domain.SleepEvent) domain.SleepAnalysis {
	analysis := domain.SleepAnalysis{
		Pairs:          []domain.SleepPair{},
		UnmatchedBeds:  []domain.SleepEvent{},
		UnmatchedWakes: []domain.SleepEvent{},
		Unmatched:      []domain.SleepEvent{},
	}

	// indexes into events of beds not yet consumed, in arrival order
	var open []int
	paired := make([]bool, len(events))

	for i, ev := range events {
		switch ev.Type {
		case domain.SleepEventBed:
			open = append(open, i)
		case domain.SleepEventWake:
			slot, minutes, ok := matchOpenBed(events, open, ev)
			if !ok {
				continue
			}
			bedIdx := open[slot]
			open = append(open[:slot], open[slot+1:]...)
			paired[bedIdx] = true
			paired[i] = true
			analysis.Pairs = append(analysis.Pairs, domain.SleepPair{
				Bed:             events[bedIdx],
				Wake:            ev,
				DurationMinutes: minutes,
				WakeDate:        ev.Date(),
			})
		}
	}

	for i, ev := range events {
		if paired[i] {
			continue
		}
		switch ev.Type {
		case domain.SleepEventBed:
			analysis.UnmatchedBeds = append(analysis.UnmatchedBeds, ev)
		case domain.SleepEventWake:
			analysis.UnmatchedWakes = append(analysis.UnmatchedWakes, ev)
		default:
			continue
		}
		analysis.Unmatched = append(analysis.Unmatched, ev)
	}

	return analysis
}

// matchOpenBed scans open beds newest first and returns the slot of the
// first one within the pairing window of wake.
func matchOpenBed(events []domain.SleepEvent, open []int, wake domain.SleepEvent) (int, int, bool) {
	wakeAt, ok := parseLocal(wake.TimestampLocal)
	if !ok {
		return 0, 0, false
	}
	for slot := len(open) - 1; slot >= 0; slot-- {
		bedAt, ok := parseLocal(events[open[slot]].TimestampLocal)
		if !ok {
			continue
		}
		minutes := int(math.Round(wakeAt.Sub(bedAt).Minutes()))
		if minutes < 0 || minutes > MaxPairMinutes {
			continue
		}
		return slot, minutes, true
	}
	return 0, 0, false
}

var localLayouts = []string{domain.LocalTimestampLayout, "2006-01-02T15:04:05"}

// parseLocal reads a naive wall-clock timestamp. A space is accepted in
// place of the T separator.
func parseLocal(ts string) (time.Time, bool) {
	ts = strings.Replace(ts, " ", "T", 1)
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

package domain

// CellState is the completeness of a calendar day.
// @Description Day completeness: empty, partial or full.
type CellState string

const (
	CellEmpty   CellState = "empty"
	CellPartial CellState = "partial"
	CellFull    CellState = "full"
)

// DayState derives the completeness of a day from its two signals.
func DayState(hasMood, hasSleep bool) CellState {
	switch {
	case hasMood && hasSleep:
		return CellFull
	case hasMood || hasSleep:
		return CellPartial
	default:
		return CellEmpty
	}
}

// SleepPair is a bed event matched with the wake event that ended it.
// @Description A reconstructed sleep session, attributed to the wake date.
type SleepPair struct {
	Bed  SleepEvent `json:"bed"`
	Wake SleepEvent `json:"wake"`
	// Minutes between bed and wake, 0..1080
	DurationMinutes int `json:"durationMinutes" example:"480"`
	// Date of the wake event
	WakeDate string `json:"wakeDate" example:"2024-01-02"`
}

// SleepAnalysis is the outcome of pairing one user's sleep events.
type SleepAnalysis struct {
	Pairs          []SleepPair
	UnmatchedBeds  []SleepEvent
	UnmatchedWakes []SleepEvent
	// Unmatched holds every leftover bed and wake in input order.
	Unmatched []SleepEvent
}

// DaySummary aggregates everything recorded for one calendar date.
// @Description Mood and sleep facts for one date.
type DaySummary struct {
	Date           string          `json:"date" example:"2024-01-02"`
	Mood           *string         `json:"mood,omitempty" example:"calm"`
	MoodDateSource *MoodDateSource `json:"moodDateSource,omitempty" example:"today"`
	HasSleep       bool            `json:"hasSleep" example:"true"`
	// Pairs whose wake falls on this date
	SleepPairs []SleepPair `json:"sleepPairs,omitempty"`
	// Unpaired events on this date
	SleepEvents []SleepEvent `json:"sleepEvents,omitempty"`
	State       CellState    `json:"state" example:"full" enums:"empty,partial,full"`
}

// HasMood reports whether a non-empty mood is recorded for the day.
func (d *DaySummary) HasMood() bool {
	return d.Mood != nil && *d.Mood != ""
}

// ComputeState recomputes the day's state from its fields.
func (d *DaySummary) ComputeState() CellState {
	return DayState(d.HasMood(), d.HasSleep || len(d.SleepPairs) > 0 || len(d.SleepEvents) > 0)
}

// UnmatchedCounts reports how many events could not be paired.
type UnmatchedCounts struct {
	Beds  int `json:"beds" example:"1"`
	Wakes int `json:"wakes" example:"0"`
}

// RangeSummary is the response for a date range read.
// @Description Per-day summaries and sleep pairs for a date range.
type RangeSummary struct {
	From string `json:"from" example:"2024-01-01"`
	To   string `json:"to" example:"2024-01-31"`
	// Days with any signal, ascending by date
	Days []DaySummary `json:"days"`
	// Pairs in the order they were matched
	Pairs          []SleepPair     `json:"pairs"`
	SleepUnmatched UnmatchedCounts `json:"sleepUnmatched"`
}

package domain

// SleepEventType marks whether a sleep event is going to bed or waking up.
// @Description Sleep event kind: bed or wake.
type SleepEventType string

const (
	SleepEventBed  SleepEventType = "bed"
	SleepEventWake SleepEventType = "wake"
)

// LocalTimestampLayout is the naive wall-clock layout of SleepEvent.TimestampLocal.
const LocalTimestampLayout = "2006-01-02T15:04"

// DateLayout is the layout of every calendar date string.
const DateLayout = "2006-01-02"

// SleepEvent is one timestamped bed or wake action of a user.
// @Description Recorded bed/wake event in local wall-clock time.
type SleepEvent struct {
	// Store-assigned sequence; breaks ties between equal timestamps
	ID uint64 `json:"id" example:"42"`
	// Event kind
	Type SleepEventType `json:"type" example:"bed" enums:"bed,wake"`
	// Local time, YYYY-MM-DDTHH:MM
	TimestampLocal string `json:"timestampLocal" example:"2024-01-01T23:00"`
}

// Date returns the calendar date part of the event timestamp.
func (e SleepEvent) Date() string {
	if len(e.TimestampLocal) < len(DateLayout) {
		return e.TimestampLocal
	}
	return e.TimestampLocal[:len(DateLayout)]
}

// CreateSleepEventRequest is the request body for recording a sleep event.
// Either Timestamp or Date+TimeMinute must be given.
// @Description Request payload for recording a bed or wake event.
type CreateSleepEventRequest struct {
	// Event kind
	Type SleepEventType `json:"type" validate:"required,oneof=bed wake" example:"wake" enums:"bed,wake"`
	// Full local timestamp; takes precedence over date/timeMinute
	Timestamp string `json:"timestamp,omitempty" validate:"omitempty,localtimestamp" example:"2024-01-02T07:00"`
	// Calendar date the minute offset applies to
	Date string `json:"date,omitempty" validate:"omitempty,calendardate" example:"2024-01-02"`
	// Minute of day, clamped to 0..1439
	TimeMinute *float64 `json:"timeMinute,omitempty" example:"420"`
}

// SleepEventResponse is returned after a sleep event is stored.
type SleepEventResponse struct {
	OK    bool       `json:"ok" example:"true"`
	Event SleepEvent `json:"event"`
}

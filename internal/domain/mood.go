package domain

// MoodDateSource says which logical day the user meant when recording a mood.
// It is stored and returned as-is.
type MoodDateSource string

const (
	MoodDateToday     MoodDateSource = "today"
	MoodDateYesterday MoodDateSource = "yesterday"
)

// MoodEntry is the single mood value of a user for one date.
type MoodEntry struct {
	Date           string          `json:"date" example:"2024-01-02"`
	Mood           string          `json:"mood" example:"calm"`
	MoodDateSource *MoodDateSource `json:"moodDateSource" example:"today"`
}

// PutMoodRequest is the request body for recording a day's mood.
// @Description Request payload for setting the mood of a date.
type PutMoodRequest struct {
	// Free-form mood label
	Mood string `json:"mood" validate:"required" example:"calm"`
	// Which day the user meant; defaults to today
	MoodDateSource MoodDateSource `json:"moodDateSource,omitempty" validate:"omitempty,oneof=today yesterday" example:"today" enums:"today,yesterday"`
}

// PutMoodResponse echoes the stored mood.
type PutMoodResponse struct {
	OK   bool   `json:"ok" example:"true"`
	Date string `json:"date" example:"2024-01-02"`
	Mood string `json:"mood" example:"calm"`
}

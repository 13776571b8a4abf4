package domain

// MaxMoodOptions caps the number of custom mood labels a user may keep.
const MaxMoodOptions = 5

// MoodSettings holds the mood labels offered to a user when logging a day.
// @Description Custom mood labels for the tracking screen.
type MoodSettings struct {
	Options []string `json:"options" validate:"max=5,dive,required,max=32" example:"calm,tired,happy"`
}

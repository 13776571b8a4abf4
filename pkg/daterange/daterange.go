package daterange

import (
	"regexp"
	"time"
)

const (
	Layout = "2006-01-02"

	// DefaultPastDays and DefaultFutureDays bound the range used when a
	// caller gives no dates.
	DefaultPastDays   = 30
	DefaultFutureDays = 1
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Range is an inclusive span of calendar dates.
type Range struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Default returns [today-30, today+1] for now in loc.
func Default(now time.Time, loc *time.Location) Range {
	if loc == nil {
		loc = time.Local
	}
	today := now.In(loc)
	return Range{
		From: today.AddDate(0, 0, -DefaultPastDays).Format(Layout),
		To:   today.AddDate(0, 0, DefaultFutureDays).Format(Layout),
	}
}

// Resolve fills missing bounds from the default range.
func Resolve(from, to string, now time.Time, loc *time.Location) Range {
	def := Default(now, loc)
	if from == "" {
		from = def.From
	}
	if to == "" {
		to = def.To
	}
	return Range{From: from, To: to}
}

// IsDate reports whether s is a YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(Layout, s)
	return err == nil
}

// StartTimestamp and EndTimestamp give the local-timestamp bounds covering
// every minute of the range.
func (r Range) StartTimestamp() string {
	return r.From + "T00:00"
}

func (r Range) EndTimestamp() string {
	return r.To + "T23:59"
}

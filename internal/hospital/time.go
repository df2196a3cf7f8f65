package hospital

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time with minute precision and no date attached.
// Working hours and appointment bounds are plain wall-clock values; the
// zero value is midnight.
type TimeOfDay int

// ClockTime builds a TimeOfDay from hour and minute.
func ClockTime(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "15:04" strings, the format the document codec uses.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return ClockTime(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Add advances the clock time by d, truncated to whole minutes.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

func (t TimeOfDay) After(other TimeOfDay) bool  { return t > other }
func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }

// DateOf strips the clock part of t, leaving a calendar date normalized to
// UTC midnight. All appointment dates in the registry are normalized this
// way so time.Time.Equal works as date equality.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses "2006-01-02" calendar-date strings.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// Tomorrow is the local calendar date one day from now, normalized.
func Tomorrow() time.Time {
	return DateOf(time.Now().AddDate(0, 0, 1))
}

// FormatDate renders a normalized date for reports and documents.
func FormatDate(d time.Time) string {
	return d.Format("2006-01-02")
}

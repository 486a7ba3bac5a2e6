package domain

import (
	"strings"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey is a calendar date in the user's local time, formatted YYYY-MM-DD.
type DayKey string

// DayKeyOf formats t's calendar date in t's own location. Pass local time.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

func ParseDayKey(raw string) (DayKey, error) {
	trimmed := strings.TrimSpace(raw)
	if _, err := time.Parse(dayKeyLayout, trimmed); err != nil {
		return "", invalid("date", "expected YYYY-MM-DD, got %q", raw)
	}
	return DayKey(trimmed), nil
}

// AddDays moves the key by whole calendar days.
func (d DayKey) AddDays(n int) DayKey {
	t, err := time.Parse(dayKeyLayout, string(d))
	if err != nil {
		return d
	}
	return DayKey(t.AddDate(0, 0, n).Format(dayKeyLayout))
}

func (d DayKey) Weekday() string {
	t, err := time.Parse(dayKeyLayout, string(d))
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}

func (d DayKey) String() string { return string(d) }

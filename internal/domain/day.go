package domain

import (
	"fmt"
	"strings"
	"time"
)

// DayFormat is the wire format for entry days.
const DayFormat = "2006-01-02"

// ParseDay parses a YYYY-MM-DD calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// Today returns the current local calendar day.
func Today() string {
	return time.Now().In(time.Local).Format(DayFormat)
}

// FormatDayDE renders a YYYY-MM-DD day as DD.MM.YYYY for display.
// Malformed input is returned unchanged.
func FormatDayDE(day string) string {
	parts := strings.Split(day, "-")
	if len(parts) != 3 {
		return day
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

// AddDays returns the day n days after (or before, for negative n) the given
// calendar day.
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DayFormat), nil
}

// DaysBetween returns a minus b in whole days. Malformed input yields 0.
func DaysBetween(a, b string) int {
	ta, err := ParseDay(a)
	if err != nil {
		return 0
	}
	tb, err := ParseDay(b)
	if err != nil {
		return 0
	}
	return int(ta.Sub(tb) / (24 * time.Hour))
}

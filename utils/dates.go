// utils/dates.go
package utils

import (
	"regexp"
	"time"
)

const dateOnlyLayout = "2006-01-02"

var dateOnlyPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// ExtractDatePart returns the leading YYYY-MM-DD of a date or timestamp
// string. All day arithmetic works on the date part alone so that a
// timestamp's clock time and zone suffix never shift which day it lands on.
func ExtractDatePart(value string) (string, bool) {
	match := dateOnlyPrefix.FindString(value)
	if match == "" {
		return "", false
	}
	if _, ok := ParseDateOnly(match); !ok {
		return "", false
	}
	return match, true
}

// ParseDateOnly parses a YYYY-MM-DD string as a UTC midnight instant.
// Calendar-invalid dates such as a 13th month fail.
func ParseDateOnly(value string) (time.Time, bool) {
	if !dateOnlyPrefix.MatchString(value) || len(value) != len(dateOnlyLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDateOnly renders a time as YYYY-MM-DD in UTC.
func FormatDateOnly(t time.Time) string {
	return t.UTC().Format(dateOnlyLayout)
}

// DiffDays returns the whole-day difference end minus start. Both values are
// anchored at UTC midnight, so the result is exact and DST-proof.
func DiffDays(start, end string) (int, bool) {
	startTime, ok := ParseDateOnly(start)
	if !ok {
		return 0, false
	}
	endTime, ok := ParseDateOnly(end)
	if !ok {
		return 0, false
	}
	return int(endTime.Sub(startTime).Hours() / 24), true
}

// AddDays returns the date `days` after start, formatted YYYY-MM-DD.
func AddDays(start string, days int) (string, bool) {
	startTime, ok := ParseDateOnly(start)
	if !ok {
		return "", false
	}
	return FormatDateOnly(startTime.AddDate(0, 0, days)), true
}

// InclusiveDayCount returns the number of days a trip spans, counting both
// endpoints. Unparseable or inverted ranges degrade to a single day so a
// malformed stored trip still renders.
func InclusiveDayCount(start, end string) int {
	diff, ok := DiffDays(start, end)
	if !ok || diff < 0 {
		return 1
	}
	return diff + 1
}

var timeOfDayLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// FormatTimeOfDay extracts the HH:MM clock time from a timestamp,
// normalized to UTC. Returns false for date-only or unparseable values.
func FormatTimeOfDay(value string) (string, bool) {
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format("15:04"), true
		}
	}
	return "", false
}

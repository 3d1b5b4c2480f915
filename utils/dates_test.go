package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDatePart(t *testing.T) {
	datePart, ok := ExtractDatePart("2026-03-01T10:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, "2026-03-01", datePart)

	datePart, ok = ExtractDatePart("2026-03-01")
	assert.True(t, ok)
	assert.Equal(t, "2026-03-01", datePart)

	_, ok = ExtractDatePart("March 1st")
	assert.False(t, ok)

	// A well-shaped prefix that is not a real calendar date must fail
	_, ok = ExtractDatePart("2026-13-01T10:30:00Z")
	assert.False(t, ok)
}

func TestParseDateOnly_RejectsInvalidCalendarDates(t *testing.T) {
	_, ok := ParseDateOnly("2023-13-01")
	assert.False(t, ok)

	_, ok = ParseDateOnly("2023-02-30")
	assert.False(t, ok)

	_, ok = ParseDateOnly("2023-02-30T00:00:00Z")
	assert.False(t, ok)

	parsed, ok := ParseDateOnly("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, "2024-02-29", FormatDateOnly(parsed))
}

func TestDiffDays(t *testing.T) {
	diff, ok := DiffDays("2026-03-01", "2026-03-03")
	assert.True(t, ok)
	assert.Equal(t, 2, diff)

	diff, ok = DiffDays("2026-03-03", "2026-03-01")
	assert.True(t, ok)
	assert.Equal(t, -2, diff)

	// Month and year boundaries
	diff, ok = DiffDays("2026-02-28", "2026-03-01")
	assert.True(t, ok)
	assert.Equal(t, 1, diff)

	diff, ok = DiffDays("2025-12-31", "2026-01-01")
	assert.True(t, ok)
	assert.Equal(t, 1, diff)

	_, ok = DiffDays("not-a-date", "2026-03-01")
	assert.False(t, ok)
}

func TestAddDays(t *testing.T) {
	date, ok := AddDays("2026-03-01", 0)
	assert.True(t, ok)
	assert.Equal(t, "2026-03-01", date)

	date, ok = AddDays("2026-02-27", 2)
	assert.True(t, ok)
	assert.Equal(t, "2026-03-01", date)

	date, ok = AddDays("2024-02-28", 1)
	assert.True(t, ok)
	assert.Equal(t, "2024-02-29", date)

	_, ok = AddDays("", 1)
	assert.False(t, ok)
}

func TestAddDaysDiffDaysRoundTrip(t *testing.T) {
	start := "2025-11-15"
	for offset := 0; offset < 100; offset++ {
		date, ok := AddDays(start, offset)
		assert.True(t, ok)

		diff, ok := DiffDays(start, date)
		assert.True(t, ok)
		assert.Equal(t, offset, diff)
	}
}

func TestInclusiveDayCount(t *testing.T) {
	assert.Equal(t, 3, InclusiveDayCount("2026-03-01", "2026-03-03"))
	assert.Equal(t, 1, InclusiveDayCount("2026-03-01", "2026-03-01"))

	// Inverted and malformed ranges degrade to a single day
	assert.Equal(t, 1, InclusiveDayCount("2026-03-03", "2026-03-01"))
	assert.Equal(t, 1, InclusiveDayCount("garbage", "2026-03-01"))
}

func TestFormatTimeOfDay(t *testing.T) {
	clock, ok := FormatTimeOfDay("2026-03-01T10:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, "10:30", clock)

	// Zoned timestamps normalize to UTC
	clock, ok = FormatTimeOfDay("2026-03-01T10:30:00+02:00")
	assert.True(t, ok)
	assert.Equal(t, "08:30", clock)

	clock, ok = FormatTimeOfDay("2026-03-01T09:15:00")
	assert.True(t, ok)
	assert.Equal(t, "09:15", clock)

	_, ok = FormatTimeOfDay("2026-03-01")
	assert.False(t, ok)

	_, ok = FormatTimeOfDay("")
	assert.False(t, ok)
}

package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripkit/tripkit-backend/models"
)

func TestBuildItineraryWorkbook(t *testing.T) {
	itinerarySvc := NewItineraryService()
	service := NewExportService(NewTripService(itinerarySvc, nil))

	trip := &models.Trip{
		TripSummary: models.TripSummary{
			Title:       "Bali Getaway",
			Destination: "Bali",
			StartDate:   "2026-03-01",
			EndDate:     "2026-03-02",
		},
		Places: map[string]models.Place{
			"p1": {ID: "p1", Name: "Uluwatu Temple"},
		},
		Itinerary: []models.TripDay{
			{
				Date: "2026-03-01",
				Items: []models.ItineraryItem{
					{ID: "i1", PlaceID: "p1", StartTime: "09:00", EndTime: "11:00", Notes: "Sunrise visit"},
					{ID: "i2", PlaceID: "unknown-place", StartTime: "13:00"},
				},
			},
			{Date: "2026-03-02", Items: []models.ItineraryItem{}},
		},
	}

	f, filename, err := service.BuildItineraryWorkbook(trip)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "Bali_Getaway_Itinerary_"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	cell := func(ref string) string {
		value, err := f.GetCellValue("Itinerary", ref)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "Trip", cell("A1"))
	assert.Equal(t, "Bali Getaway", cell("B1"))
	assert.Equal(t, "Dates", cell("A2"))
	assert.Equal(t, "2026-03-01 to 2026-03-02", cell("B2"))
	assert.Equal(t, "Destination", cell("A3"))
	assert.Equal(t, "Bali", cell("B3"))

	// Day block starts after the blank separator row
	assert.Equal(t, "Day 1", cell("A5"))
	assert.Equal(t, "2026-03-01", cell("B5"))
	assert.Equal(t, "Time", cell("A6"))
	assert.Equal(t, "Place", cell("B6"))
	assert.Equal(t, "Notes", cell("C6"))

	assert.Equal(t, "09:00 - 11:00", cell("A7"))
	assert.Equal(t, "Uluwatu Temple", cell("B7"))
	assert.Equal(t, "Sunrise visit", cell("C7"))

	// An item whose place is not in the map falls back to the raw id
	assert.Equal(t, "13:00", cell("A8"))
	assert.Equal(t, "unknown-place", cell("B8"))

	// Empty second day still gets its header block
	assert.Equal(t, "Day 2", cell("A10"))
	assert.Equal(t, "2026-03-02", cell("B10"))

	// The default sheet is replaced by the itinerary sheet
	assert.NotContains(t, f.GetSheetList(), "Sheet1")
	assert.Contains(t, f.GetSheetList(), "Itinerary")
}

func TestBuildItineraryWorkbook_NoDestination(t *testing.T) {
	itinerarySvc := NewItineraryService()
	service := NewExportService(NewTripService(itinerarySvc, nil))

	trip := &models.Trip{
		TripSummary: models.TripSummary{
			Title:     "Weekend",
			StartDate: "2026-03-01",
			EndDate:   "2026-03-01",
		},
		Places:    map[string]models.Place{},
		Itinerary: []models.TripDay{{Date: "2026-03-01", Items: []models.ItineraryItem{}}},
	}

	f, _, err := service.BuildItineraryWorkbook(trip)
	require.NoError(t, err)

	value, err := f.GetCellValue("Itinerary", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Day 1", value)
}

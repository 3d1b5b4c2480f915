package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateTrip_RejectsInvalidInput(t *testing.T) {
	service := NewTripService(NewItineraryService(), nil)

	// Blank title
	_, err := service.CreateTrip("u1", &models.CreateTripRequest{
		Title:     "   ",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-03",
	})
	assertBadRequest(t, err)

	// Calendar-invalid start date
	_, err = service.CreateTrip("u1", &models.CreateTripRequest{
		Title:     "Bali",
		StartDate: "2026-13-01",
		EndDate:   "2026-03-03",
	})
	assertBadRequest(t, err)

	// Calendar-invalid end date
	_, err = service.CreateTrip("u1", &models.CreateTripRequest{
		Title:     "Bali",
		StartDate: "2026-03-01",
		EndDate:   "2026-02-30",
	})
	assertBadRequest(t, err)

	// End before start
	_, err = service.CreateTrip("u1", &models.CreateTripRequest{
		Title:     "Bali",
		StartDate: "2026-03-03",
		EndDate:   "2026-03-01",
	})
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, utils.ErrInvalidDateRange, appErr.Message)
}

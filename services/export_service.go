// services/export_service.go
package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

// ExportService renders a trip's assembled itinerary as a spreadsheet.
type ExportService struct {
	tripService *TripService
}

// NewExportService creates a new ExportService
func NewExportService(tripService *TripService) *ExportService {
	return &ExportService{tripService: tripService}
}

// ExportTrip assembles the trip and builds the workbook.
func (s *ExportService) ExportTrip(tripID string) (*excelize.File, string, error) {
	trip, err := s.tripService.GetTripDetail(tripID)
	if err != nil {
		return nil, "", err
	}
	return s.BuildItineraryWorkbook(trip)
}

// BuildItineraryWorkbook renders one sheet with a header row per day and one
// row per item, using the same day assembly the trip detail endpoint serves.
func (s *ExportService) BuildItineraryWorkbook(trip *models.Trip) (*excelize.File, string, error) {
	f := excelize.NewFile()
	sheetName := "Itinerary"
	f.NewSheet(sheetName)

	row := 1
	setRow := func(values ...interface{}) {
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, value)
		}
		row++
	}

	setRow("Trip", trip.Title)
	setRow("Dates", fmt.Sprintf("%s to %s", trip.StartDate, trip.EndDate))
	if trip.Destination != "" {
		setRow("Destination", trip.Destination)
	}
	row++

	for dayIndex, day := range trip.Itinerary {
		setRow(fmt.Sprintf("Day %d", dayIndex+1), day.Date)
		setRow("Time", "Place", "Notes")
		for _, item := range day.Items {
			name := item.PlaceID
			if place, ok := trip.Places[item.PlaceID]; ok {
				name = place.Name
			}
			timeRange := item.StartTime
			if item.EndTime != "" {
				timeRange = fmt.Sprintf("%s - %s", item.StartTime, item.EndTime)
			}
			setRow(timeRange, name, item.Notes)
		}
		row++
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Itinerary_%s.xlsx",
		utils.CleanFileName(trip.Title),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// services/flight_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/repository"
	"github.com/tripkit/tripkit-backend/utils"
)

// FlightService handles flight records attached to trips.
type FlightService struct {
	flightRepo *repository.FlightRepository
}

// NewFlightService creates a new FlightService
func NewFlightService() *FlightService {
	return &FlightService{
		flightRepo: repository.NewFlightRepository(),
	}
}

// AddFlight stores a flight record for a trip.
func (s *FlightService) AddFlight(tripID string, req *models.AddFlightRequest) (*models.Flight, error) {
	flight := &models.Flight{
		ID:               uuid.New().String(),
		TripID:           tripID,
		Airline:          req.Airline,
		FlightNumber:     req.FlightNumber,
		DepartureTime:    req.DepartureTime,
		ArrivalTime:      req.ArrivalTime,
		DepartureAirport: req.DepartureAirport,
		ArrivalAirport:   req.ArrivalAirport,
		Price:            req.Price,
		ConfirmationCode: req.ConfirmationCode,
		Notes:            req.Notes,
	}
	if err := s.flightRepo.StoreFlight(flight); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return flight, nil
}

// RemoveFlight deletes a flight record. This is where removing a flight's
// virtual itinerary entry routes to.
func (s *FlightService) RemoveFlight(tripID, flightID string) error {
	matched, err := s.flightRepo.DeleteFlight(tripID, flightID)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !matched {
		return utils.NewNotFoundError("Flight")
	}
	return nil
}

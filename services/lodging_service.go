// services/lodging_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/repository"
	"github.com/tripkit/tripkit-backend/utils"
)

// LodgingService handles lodging stays. A stay references a Place, so adding
// one upserts the place first.
type LodgingService struct {
	lodgingRepo *repository.LodgingRepository
	placeRepo   *repository.PlaceRepository
}

// NewLodgingService creates a new LodgingService
func NewLodgingService() *LodgingService {
	return &LodgingService{
		lodgingRepo: repository.NewLodgingRepository(),
		placeRepo:   repository.NewPlaceRepository(),
	}
}

// AddLodging upserts the place and stores the stay record.
func (s *LodgingService) AddLodging(tripID string, req *models.AddLodgingRequest) (*models.Lodging, error) {
	place, err := s.placeRepo.UpsertPlace(uuid.New().String(), &req.SavePlaceRequest)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	lodging := &models.Lodging{
		ID:       uuid.New().String(),
		TripID:   tripID,
		PlaceID:  place.ID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Notes:    req.Notes,
	}
	if err := s.lodgingRepo.StoreLodging(lodging); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return lodging, nil
}

// UpdateLodging changes the stay dates and notes of the lodging referencing
// a place.
func (s *LodgingService) UpdateLodging(tripID string, req *models.UpdateLodgingRequest) error {
	matched, err := s.lodgingRepo.UpdateLodgingByPlace(tripID, req.PlaceID, req.CheckIn, req.CheckOut, req.Notes)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !matched {
		return utils.NewNotFoundError("Lodging")
	}
	return nil
}

// RemoveLodging deletes a stay record. This is where removing a lodging's
// virtual itinerary entries routes to.
func (s *LodgingService) RemoveLodging(tripID, lodgingID string) error {
	matched, err := s.lodgingRepo.DeleteLodging(tripID, lodgingID)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !matched {
		return utils.NewNotFoundError("Lodging")
	}
	return nil
}

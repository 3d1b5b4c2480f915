// services/place_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/repository"
	"github.com/tripkit/tripkit-backend/utils"
)

// PlaceService handles saving places and organizing them into lists.
type PlaceService struct {
	placeRepo *repository.PlaceRepository
	listRepo  *repository.ListRepository
}

// NewPlaceService creates a new PlaceService
func NewPlaceService() *PlaceService {
	return &PlaceService{
		placeRepo: repository.NewPlaceRepository(),
		listRepo:  repository.NewListRepository(),
	}
}

// SavePlace upserts a place by its Google place id and links it into the
// trip's Saved Places list, creating that list on first use.
func (s *PlaceService) SavePlace(tripID string, req *models.SavePlaceRequest) (*models.Place, error) {
	place, err := s.placeRepo.UpsertPlace(uuid.New().String(), req)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	list, err := s.listRepo.GetListByTitle(tripID, utils.SavedPlacesListTitle)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if list == nil {
		list, err = s.listRepo.CreateList(uuid.New().String(), tripID, utils.SavedPlacesListTitle)
		if err != nil {
			// The place itself was saved; losing the list link is logged,
			// not fatal, matching the reference behavior.
			utils.Logger.Errorw("failed to create default list", "trip", tripID, "err", err)
			return place, nil
		}
	}

	if err := s.listRepo.UpsertListItem(list.ID, place.ID); err != nil {
		utils.Logger.Errorw("failed to link place into list", "trip", tripID, "err", err)
	}

	return place, nil
}

// CreateList creates a named list for a trip.
func (s *PlaceService) CreateList(tripID, title string) (*models.PlaceList, error) {
	if err := utils.ValidateRequired(title, "title"); err != nil {
		return nil, err
	}

	list, err := s.listRepo.CreateList(uuid.New().String(), tripID, title)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return &models.PlaceList{ID: list.ID, Title: list.Title, PlaceIDs: []string{}}, nil
}

// ListExists reports whether a list belongs to a trip.
func (s *PlaceService) ListExists(tripID, listID string) (bool, error) {
	list, err := s.listRepo.GetListByID(tripID, listID)
	if err != nil {
		return false, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return list != nil, nil
}

// AddToList links a place into a list, idempotently.
func (s *PlaceService) AddToList(listID, placeID string) error {
	if err := s.listRepo.UpsertListItem(listID, placeID); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// RemoveFromList unlinks a place from a list.
func (s *PlaceService) RemoveFromList(listID, placeID string) error {
	if err := s.listRepo.DeleteListItem(listID, placeID); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// DeleteList removes a list and its memberships.
func (s *PlaceService) DeleteList(tripID, listID string) error {
	if err := s.listRepo.DeleteList(tripID, listID); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

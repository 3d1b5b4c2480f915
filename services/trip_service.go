// services/trip_service.go
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/repository"
	"github.com/tripkit/tripkit-backend/utils"
)

// TripService handles trip lifecycle and the full trip detail projection.
type TripService struct {
	tripRepo      *repository.TripRepository
	placeRepo     *repository.PlaceRepository
	listRepo      *repository.ListRepository
	flightRepo    *repository.FlightRepository
	lodgingRepo   *repository.LodgingRepository
	itineraryRepo *repository.ItineraryRepository
	itinerarySvc  *ItineraryService
	googleSvc     *GoogleService
}

// NewTripService creates a new TripService
func NewTripService(itinerarySvc *ItineraryService, googleSvc *GoogleService) *TripService {
	return &TripService{
		tripRepo:      repository.NewTripRepository(),
		placeRepo:     repository.NewPlaceRepository(),
		listRepo:      repository.NewListRepository(),
		flightRepo:    repository.NewFlightRepository(),
		lodgingRepo:   repository.NewLodgingRepository(),
		itineraryRepo: repository.NewItineraryRepository(),
		itinerarySvc:  itinerarySvc,
		googleSvc:     googleSvc,
	}
}

// CreateTrip validates the date range, geocodes the destination when
// possible, and stores the trip. Geocoding failures never fail creation.
func (s *TripService) CreateTrip(userID string, req *models.CreateTripRequest) (*models.Trip, error) {
	if err := utils.ValidateRequired(req.Title, "title"); err != nil {
		return nil, err
	}
	if err := utils.ValidateDateOnly(req.StartDate, "startDate"); err != nil {
		return nil, err
	}
	if err := utils.ValidateDateOnly(req.EndDate, "endDate"); err != nil {
		return nil, err
	}
	if err := utils.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	destinationQuery := req.Destination
	if destinationQuery == "" {
		destinationQuery = req.Title
	}

	trip := models.TripSummary{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Destination: destinationQuery,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CoverImage:  utils.DefaultCoverImage,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if geo, err := s.googleSvc.GeocodeDestination(ctx, destinationQuery); err != nil {
		utils.Logger.Warnw("geocoding failed", "destination", destinationQuery, "err", err)
	} else if geo != nil {
		trip.Destination = geo.FormattedAddress
		trip.Lat = &geo.Lat
		trip.Lng = &geo.Lng
	}

	if err := s.tripRepo.StoreTrip(&trip); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return &models.Trip{
		TripSummary: trip,
		Places:      map[string]models.Place{},
		Flights:     []models.Flight{},
		Lodging:     []models.Lodging{},
		Itinerary:   []models.TripDay{},
		Lists:       []models.PlaceList{},
	}, nil
}

// ListTrips returns the caller's trips ordered by start date.
func (s *TripService) ListTrips(userID string) ([]models.TripSummary, error) {
	trips, err := s.tripRepo.GetTripsByUser(userID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return trips, nil
}

// UserOwnsTrip reports whether a trip exists and belongs to the user.
// Legacy development rows with no owner are claimed on first authenticated
// access.
func (s *TripService) UserOwnsTrip(tripID, userID string) (bool, error) {
	trip, err := s.tripRepo.GetTripByID(tripID)
	if err != nil {
		return false, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if trip == nil {
		return false, nil
	}
	if trip.UserID == userID {
		return true, nil
	}
	if trip.UserID == "" {
		claimed, err := s.tripRepo.ClaimTrip(tripID, userID)
		if err != nil {
			return false, utils.NewInternalError(utils.ErrFailedToStore)
		}
		return claimed, nil
	}
	return false, nil
}

// GetTripDetail assembles the full trip payload: normalized places, the
// day-by-day itinerary with virtual items merged in, and lists.
func (s *TripService) GetTripDetail(tripID string) (*models.Trip, error) {
	tripRow, err := s.tripRepo.GetTripByID(tripID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if tripRow == nil {
		return nil, utils.NewNotFoundError("Trip")
	}

	lists, err := s.listRepo.GetListsByTrip(tripID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	lodgings, err := s.lodgingRepo.GetLodgingsByTrip(tripID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	flights, err := s.flightRepo.GetFlightsByTrip(tripID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	itineraryRows, _, err := s.itineraryRepo.GetItemsByTrip(tripID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	listIDs := make([]string, 0, len(lists))
	for _, list := range lists {
		listIDs = append(listIDs, list.ID)
	}
	listItems, err := s.listRepo.GetListItems(listIDs)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	placeIDSet := map[string]bool{}
	for _, listItem := range listItems {
		placeIDSet[listItem.PlaceID] = true
	}
	for _, row := range itineraryRows {
		placeIDSet[row.PlaceID] = true
	}
	for _, lodging := range lodgings {
		placeIDSet[lodging.PlaceID] = true
	}
	placeIDs := make([]string, 0, len(placeIDSet))
	for placeID := range placeIDSet {
		placeIDs = append(placeIDs, placeID)
	}

	places, err := s.placeRepo.GetPlacesByIDs(placeIDs)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	placesMap := map[string]models.Place{}
	for _, place := range places {
		if !isKnownPlaceType(place.Type) {
			place.Type = "activity"
		}
		placesMap[place.ID] = place
	}

	// Lodging stays enrich their place with stay dates for display.
	for _, lodging := range lodgings {
		place, ok := placesMap[lodging.PlaceID]
		if !ok {
			continue
		}
		place.Type = utils.ItemTypeLodging
		place.CheckIn = lodging.CheckIn
		place.CheckOut = lodging.CheckOut
		if lodging.Notes != "" {
			place.Notes = lodging.Notes
		}
		placesMap[lodging.PlaceID] = place
	}

	for _, flight := range flights {
		virtualPlace := s.itinerarySvc.BuildFlightPlace(flight)
		placesMap[virtualPlace.ID] = virtualPlace
	}

	totalDays := utils.InclusiveDayCount(tripRow.StartDate, tripRow.EndDate)
	virtualByDay := s.itinerarySvc.SynthesizeVirtualItems(flights, lodgings, tripRow.StartDate, totalDays)
	days := s.itinerarySvc.AssembleDays(tripRow.StartDate, tripRow.EndDate, itineraryRows, virtualByDay)

	placeIDsByList := map[string][]string{}
	for _, listItem := range listItems {
		placeIDsByList[listItem.ListID] = append(placeIDsByList[listItem.ListID], listItem.PlaceID)
	}
	formattedLists := make([]models.PlaceList, 0, len(lists))
	for _, list := range lists {
		memberIDs := placeIDsByList[list.ID]
		if memberIDs == nil {
			memberIDs = []string{}
		}
		formattedLists = append(formattedLists, models.PlaceList{
			ID:       list.ID,
			Title:    list.Title,
			PlaceIDs: memberIDs,
		})
	}

	return &models.Trip{
		TripSummary: *tripRow,
		Places:      placesMap,
		Flights:     flights,
		Lodging:     lodgings,
		Itinerary:   days,
		Lists:       formattedLists,
	}, nil
}

func isKnownPlaceType(placeType string) bool {
	switch placeType {
	case "lodging", "restaurant", "activity", "flight", "attraction", "cafe", "bar", "shopping", "other":
		return true
	}
	return false
}

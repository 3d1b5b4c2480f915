// handlers/handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tripkit/tripkit-backend/config"
	"github.com/tripkit/tripkit-backend/services"
	"github.com/tripkit/tripkit-backend/utils"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	AuthService      *services.AuthService
	TripService      *services.TripService
	PlaceService     *services.PlaceService
	ItineraryService *services.ItineraryService
	FlightService    *services.FlightService
	LodgingService   *services.LodgingService
	GoogleService    *services.GoogleService
	ExportService    *services.ExportService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices(cfg config.Config) (*HandlerServices, error) {
	googleService, err := services.NewGoogleService(cfg.GoogleMapsAPIKey)
	if err != nil {
		return nil, err
	}

	itineraryService := services.NewItineraryService()
	tripService := services.NewTripService(itineraryService, googleService)

	return &HandlerServices{
		AuthService:      services.NewAuthService(cfg),
		TripService:      tripService,
		PlaceService:     services.NewPlaceService(),
		ItineraryService: itineraryService,
		FlightService:    services.NewFlightService(),
		LodgingService:   services.NewLodgingService(),
		GoogleService:    googleService,
		ExportService:    services.NewExportService(tripService),
	}, nil
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers(cfg config.Config) error {
	hs, err := NewHandlerServices(cfg)
	if err != nil {
		return err
	}
	handlerServices = hs
	return nil
}

const userIDKey = "userID"

// currentUserID returns the authenticated user id set by RequireAuth.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// ensureTripAccess verifies the caller owns the trip. A trip that exists but
// belongs to someone else reads as not found.
func ensureTripAccess(c *gin.Context, tripID string) bool {
	owns, err := handlerServices.TripService.UserOwnsTrip(tripID, currentUserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return false
	}
	if !owns {
		utils.HandleError(c, utils.NewNotFoundError("Trip"))
		return false
	}
	return true
}

// routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tripkit/tripkit-backend/config"
	"github.com/tripkit/tripkit-backend/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, cfg config.Config) error {
	if err := handlers.InitHandlers(cfg); err != nil {
		return err
	}

	api := router.Group("/api")
	{
		// Session endpoints (token exchange, no auth middleware)
		api.POST("/auth/session", handlers.CreateSession)
		api.DELETE("/auth/session", handlers.DeleteSession)

		// Places provider proxy endpoints
		api.GET("/google/autocomplete", handlers.PlacesAutocomplete)
		api.GET("/google/details", handlers.PlaceDetails)
		api.GET("/google/photo", handlers.PlacePhoto)

		trips := api.Group("/trips", handlers.RequireAuth)
		{
			trips.GET("", handlers.ListTrips)
			trips.POST("", handlers.CreateTrip)
			trips.GET("/:tripId", handlers.GetTrip)
			trips.GET("/:tripId/export", handlers.ExportTrip)

			trips.POST("/:tripId/places", handlers.SavePlace)

			trips.POST("/:tripId/itinerary", handlers.AddItineraryItem)
			trips.PUT("/:tripId/itinerary", handlers.EditItineraryItem)
			trips.DELETE("/:tripId/itinerary", handlers.RemoveItineraryItem)
			trips.PUT("/:tripId/itinerary/reorder", handlers.ReorderItinerary)
			trips.PUT("/:tripId/itinerary/move", handlers.MoveItineraryItems)

			trips.POST("/:tripId/flights", handlers.AddFlight)
			trips.DELETE("/:tripId/flights/:flightId", handlers.RemoveFlight)

			trips.POST("/:tripId/lodging", handlers.AddLodging)
			trips.PUT("/:tripId/lodging", handlers.UpdateLodging)
			trips.DELETE("/:tripId/lodging/:lodgingId", handlers.RemoveLodging)

			trips.POST("/:tripId/lists", handlers.CreateList)
			trips.POST("/:tripId/lists/:listId/items", handlers.AddListItem)
			trips.DELETE("/:tripId/lists/:listId/items", handlers.RemoveListItem)
		}
	}

	return nil
}

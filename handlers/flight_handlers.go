// handlers/flight_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

// AddFlight stores a flight on a trip
func AddFlight(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	var req models.AddFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	flight, err := handlerServices.FlightService.AddFlight(tripID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, flight)
}

// RemoveFlight deletes a flight from a trip
func RemoveFlight(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	if err := handlerServices.FlightService.RemoveFlight(tripID, c.Param("flightId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"success": true})
}

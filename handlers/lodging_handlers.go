// handlers/lodging_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

// AddLodging stores a lodging stay, upserting its place first
func AddLodging(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	var req models.AddLodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	lodging, err := handlerServices.LodgingService.AddLodging(tripID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, lodging)
}

// UpdateLodging changes stay dates and notes for the lodging referencing a
// place.
func UpdateLodging(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	var req models.UpdateLodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.LodgingService.UpdateLodging(tripID, &req); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"success": true})
}

// RemoveLodging deletes a lodging stay from a trip
func RemoveLodging(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	if err := handlerServices.LodgingService.RemoveLodging(tripID, c.Param("lodgingId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"success": true})
}

// handlers/itinerary_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

// AddItineraryItem appends an item to the end of a day
func AddItineraryItem(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	var req models.AddItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	item, err := handlerServices.ItineraryService.AddItem(tripID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, item)
}

// EditItineraryItem updates times and notes on an existing item
func EditItineraryItem(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	var req models.EditItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.ItineraryService.EditItem(tripID, &req); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"success": true})
}

// RemoveItineraryItem deletes an item identified by the itemId query param
func RemoveItineraryItem(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	itemID := c.Query("itemId")
	if itemID == "" {
		utils.HandleError(c, utils.NewValidationError(utils.ErrMissingItemID))
		return
	}

	if err := handlerServices.ItineraryService.RemoveItem(tripID, itemID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"success": true})
}

// ReorderItinerary moves a single item to a target day and position,
// renumbering the affected days.
func ReorderItinerary(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	var req models.ReorderItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.ItineraryService.Reorder(tripID, &req); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"success": true})
}

// MoveItineraryItems appends a batch of items to the end of a target day
func MoveItineraryItems(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	var req models.MoveItineraryItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}
	if req.TargetDayIndex == nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrMissingDayIndex))
		return
	}

	if err := handlerServices.ItineraryService.Move(tripID, req.ItemIDs, *req.TargetDayIndex); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"success": true})
}

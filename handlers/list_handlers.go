// handlers/list_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

// ensureListAccess checks the list exists within the trip after the trip
// ownership check has passed.
func ensureListAccess(c *gin.Context, tripID, listID string) bool {
	exists, err := handlerServices.PlaceService.ListExists(tripID, listID)
	if err != nil {
		utils.HandleError(c, err)
		return false
	}
	if !exists {
		utils.HandleError(c, utils.NewNotFoundError("List"))
		return false
	}
	return true
}

// CreateList creates a named place list on a trip
func CreateList(c *gin.Context) {
	tripID := c.Param("tripId")
	if !ensureTripAccess(c, tripID) {
		return
	}

	var req models.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	list, err := handlerServices.PlaceService.CreateList(tripID, req.Title)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, list)
}

// AddListItem adds a saved place to a list
func AddListItem(c *gin.Context) {
	tripID := c.Param("tripId")
	listID := c.Param("listId")
	if !ensureTripAccess(c, tripID) || !ensureListAccess(c, tripID, listID) {
		return
	}

	var req models.AddListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.PlaceService.AddToList(listID, req.PlaceID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"success": true})
}

// RemoveListItem removes one place from a list, or deletes the list when no
// placeId query param is given.
func RemoveListItem(c *gin.Context) {
	tripID := c.Param("tripId")
	listID := c.Param("listId")
	if !ensureTripAccess(c, tripID) || !ensureListAccess(c, tripID, listID) {
		return
	}

	placeID := c.Query("placeId")
	if placeID == "" {
		if err := handlerServices.PlaceService.DeleteList(tripID, listID); err != nil {
			utils.HandleError(c, err)
			return
		}
		utils.HandleSuccess(c, gin.H{"success": true})
		return
	}

	if err := handlerServices.PlaceService.RemoveFromList(listID, placeID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"success": true})
}

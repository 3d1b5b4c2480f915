// handlers/google_handlers.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

// parseLocation splits a "lat,lng" query value into coordinates. Returns
// nils when the value is absent or malformed.
func parseLocation(value string) (*float64, *float64) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return nil, nil
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return nil, nil
	}
	return &lat, &lng
}

// PlacesAutocomplete proxies search suggestions from the places provider
func PlacesAutocomplete(c *gin.Context) {
	input := c.Query("input")
	if input == "" {
		utils.HandleSuccess(c, models.AutocompleteResponse{Predictions: []models.PlacePrediction{}})
		return
	}

	lat, lng := parseLocation(c.Query("location"))
	radius := uint(0)
	if r, err := strconv.ParseUint(c.Query("radius"), 10, 32); err == nil {
		radius = uint(r)
	}

	predictions, err := handlerServices.GoogleService.Autocomplete(c.Request.Context(), input, lat, lng, radius)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.AutocompleteResponse{Predictions: predictions})
}

// PlaceDetails proxies a detail lookup for a single place
func PlaceDetails(c *gin.Context) {
	placeID := c.Query("placeId")
	if placeID == "" {
		utils.HandleError(c, utils.NewValidationError(utils.ErrMissingPlaceID))
		return
	}

	details, err := handlerServices.GoogleService.GetDetails(c.Request.Context(), placeID, c.Query("languageCode"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, details)
}

// PlacePhoto streams a place photo through the backend so the provider key
// never reaches the client.
func PlacePhoto(c *gin.Context) {
	photoReference := c.Query("photoReference")
	if photoReference == "" {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	maxWidth := uint(400)
	if w, err := strconv.ParseUint(c.Query("maxwidth"), 10, 32); err == nil && w > 0 {
		maxWidth = uint(w)
	}

	body, contentType, err := handlerServices.GoogleService.GetPhoto(c.Request.Context(), photoReference, maxWidth)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}

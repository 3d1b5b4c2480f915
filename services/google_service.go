// services/google_service.go
package services

import (
	"context"
	"fmt"
	"io"

	"googlemaps.github.io/maps"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

// GoogleService wraps the Places and Geocoding APIs. The client is nil when
// no API key is configured; every call then fails with a configuration
// error, except geocoding which is best-effort for callers.
type GoogleService struct {
	client *maps.Client
}

// NewGoogleService creates a new GoogleService. An empty API key yields a
// disabled service rather than an error so the rest of the app can run.
func NewGoogleService(apiKey string) (*GoogleService, error) {
	if apiKey == "" {
		utils.Logger.Warn("GOOGLE_MAPS_API_KEY not set, places search disabled")
		return &GoogleService{}, nil
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %v", err)
	}
	return &GoogleService{client: client}, nil
}

// Enabled reports whether an API key was configured.
func (s *GoogleService) Enabled() bool {
	return s.client != nil
}

// Autocomplete returns ranked place predictions for a text input, optionally
// biased around a coordinate.
func (s *GoogleService) Autocomplete(ctx context.Context, input string, lat, lng *float64, radius uint) ([]models.PlacePrediction, error) {
	if s.client == nil {
		return nil, utils.NewInternalError("Server API Key not configured")
	}

	req := &maps.PlaceAutocompleteRequest{Input: input}
	if lat != nil && lng != nil && radius > 0 {
		req.Location = &maps.LatLng{Lat: *lat, Lng: *lng}
		req.Radius = radius
	}

	resp, err := s.client.PlaceAutocomplete(ctx, req)
	if err != nil {
		utils.Logger.Errorw("places autocomplete failed", "err", err)
		return nil, utils.NewInternalError("Failed to fetch from Google")
	}

	predictions := make([]models.PlacePrediction, 0, len(resp.Predictions))
	for _, prediction := range resp.Predictions {
		if prediction.PlaceID == "" {
			continue
		}
		mainText := prediction.StructuredFormatting.MainText
		if mainText == "" {
			mainText = prediction.Description
		}
		if mainText == "" {
			mainText = "Unknown place"
		}
		types := prediction.Types
		if types == nil {
			types = []string{}
		}
		predictions = append(predictions, models.PlacePrediction{
			PlaceID: prediction.PlaceID,
			Types:   types,
			StructuredFormatting: models.PredictionFormatting{
				MainText:      mainText,
				SecondaryText: prediction.StructuredFormatting.SecondaryText,
			},
		})
	}
	return predictions, nil
}

// GetDetails fetches the detail fields consumed by the clients for one
// place.
func (s *GoogleService) GetDetails(ctx context.Context, placeID, language string) (*models.PlaceDetails, error) {
	if s.client == nil {
		return nil, utils.NewInternalError("Server API Key not configured")
	}

	req := &maps.PlaceDetailsRequest{PlaceID: placeID, Language: language}
	result, err := s.client.PlaceDetails(ctx, req)
	if err != nil {
		utils.Logger.Errorw("place details failed", "placeId", placeID, "err", err)
		return nil, utils.NewInternalError("Failed to fetch from Google")
	}

	details := &models.PlaceDetails{
		PlaceID:              result.PlaceID,
		Name:                 result.Name,
		FormattedAddress:     result.FormattedAddress,
		Types:                result.Types,
		Website:              result.Website,
		FormattedPhoneNumber: result.InternationalPhoneNumber,
		Photos:               []models.PhotoRef{},
	}
	if details.PlaceID == "" {
		details.PlaceID = placeID
	}
	if details.Name == "" {
		details.Name = "Unknown place"
	}
	if details.Types == nil {
		details.Types = []string{}
	}
	if details.FormattedPhoneNumber == "" {
		details.FormattedPhoneNumber = result.FormattedPhoneNumber
	}
	if result.Rating != 0 {
		rating := float64(result.Rating)
		details.Rating = &rating
	}
	if result.UserRatingsTotal != 0 {
		total := result.UserRatingsTotal
		details.UserRatingsTotal = &total
	}
	if result.PriceLevel != 0 {
		level := result.PriceLevel
		details.PriceLevel = &level
	}
	for _, photo := range result.Photos {
		if photo.PhotoReference == "" {
			continue
		}
		details.Photos = append(details.Photos, models.PhotoRef{PhotoReference: photo.PhotoReference})
	}
	details.Geometry = &models.PlaceGeometry{
		Location: models.LatLngLiteral{
			Lat: result.Geometry.Location.Lat,
			Lng: result.Geometry.Location.Lng,
		},
	}
	if result.OpeningHours != nil {
		details.OpeningHours = result.OpeningHours.WeekdayText
	}

	return details, nil
}

// GetPhoto streams the bytes of a place photo. The caller owns the reader.
func (s *GoogleService) GetPhoto(ctx context.Context, photoReference string, maxWidth uint) (io.ReadCloser, string, error) {
	if s.client == nil {
		return nil, "", utils.NewInternalError("Server API Key not configured")
	}

	req := &maps.PlacePhotoRequest{PhotoReference: photoReference, MaxWidth: maxWidth}
	resp, err := s.client.PlacePhoto(ctx, req)
	if err != nil {
		utils.Logger.Errorw("place photo failed", "err", err)
		return nil, "", utils.NewInternalError("Failed to fetch from Google")
	}
	return resp.Data, resp.ContentType, nil
}

// GeocodeDestination resolves a destination query to a formatted address and
// center coordinate. Returns nil without error when the service is disabled
// or nothing matched, so trip creation can proceed without it.
func (s *GoogleService) GeocodeDestination(ctx context.Context, query string) (*models.GeocodeResult, error) {
	if s.client == nil || query == "" {
		return nil, nil
	}

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %v", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &models.GeocodeResult{
		FormattedAddress: results[0].FormattedAddress,
		Lat:              results[0].Geometry.Location.Lat,
		Lng:              results[0].Geometry.Location.Lng,
	}, nil
}

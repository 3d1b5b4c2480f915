// models/google.go
package models

// PredictionFormatting mirrors the legacy structured_formatting shape the
// clients consume.
type PredictionFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

// PlacePrediction is one autocomplete suggestion.
type PlacePrediction struct {
	PlaceID              string               `json:"place_id"`
	Types                []string             `json:"types"`
	StructuredFormatting PredictionFormatting `json:"structured_formatting"`
}

// AutocompleteResponse wraps predictions the way the legacy Places API did.
type AutocompleteResponse struct {
	Predictions []PlacePrediction `json:"predictions"`
}

// PhotoRef carries an opaque photo reference usable with the photo proxy.
type PhotoRef struct {
	PhotoReference string `json:"photo_reference"`
}

// LatLngLiteral is a coordinate pair in the legacy geometry shape.
type LatLngLiteral struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceGeometry wraps the location of a place.
type PlaceGeometry struct {
	Location LatLngLiteral `json:"location"`
}

// PlaceDetails is the detail payload in the legacy shape.
type PlaceDetails struct {
	PlaceID              string         `json:"place_id"`
	Name                 string         `json:"name"`
	FormattedAddress     string         `json:"formatted_address,omitempty"`
	Types                []string       `json:"types"`
	Rating               *float64       `json:"rating,omitempty"`
	UserRatingsTotal     *int           `json:"user_ratings_total,omitempty"`
	Photos               []PhotoRef     `json:"photos"`
	PriceLevel           *int           `json:"price_level,omitempty"`
	Website              string         `json:"website,omitempty"`
	Geometry             *PlaceGeometry `json:"geometry,omitempty"`
	EditorialSummary     string         `json:"editorial_summary,omitempty"`
	FormattedPhoneNumber string         `json:"formatted_phone_number,omitempty"`
	OpeningHours         []string       `json:"opening_hours,omitempty"`
}

// GeocodeResult is the resolved destination used for search biasing.
type GeocodeResult struct {
	FormattedAddress string  `json:"formatted_address"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

// models/requests.go
package models

// CreateTripRequest request model
type CreateTripRequest struct {
	Title       string `json:"title" binding:"required"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

// SavePlaceRequest carries the place fields collected from the places
// provider when the user saves a search result.
type SavePlaceRequest struct {
	GooglePlaceID               string   `json:"googlePlaceId" binding:"required"`
	Name                        string   `json:"name" binding:"required"`
	Address                     string   `json:"address"`
	Rating                      *float64 `json:"rating"`
	UserRatingsTotal            *int     `json:"userRatingsTotal"`
	Type                        string   `json:"type"`
	Image                       string   `json:"image"`
	PriceLevel                  *int     `json:"priceLevel"`
	Website                     string   `json:"website"`
	Lat                         *float64 `json:"lat"`
	Lng                         *float64 `json:"lng"`
	City                        string   `json:"city"`
	OpeningHours                []string `json:"openingHours"`
	EditorialSummary            string   `json:"editorialSummary"`
	FormattedPhoneNumber        string   `json:"formattedPhoneNumber"`
	TypicalVisitDurationMinutes *int     `json:"typicalVisitDurationMinutes"`
}

// AddItineraryItemRequest request model
type AddItineraryItemRequest struct {
	DayIndex *int `json:"dayIndex" binding:"required"`
	Item     struct {
		PlaceID   string `json:"placeId" binding:"required"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
		Notes     string `json:"notes"`
	} `json:"item" binding:"required"`
}

// EditItineraryItemRequest request model
type EditItineraryItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	DayIndex *int   `json:"dayIndex" binding:"required"`
	Updates  struct {
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
		Notes     string `json:"notes"`
	} `json:"updates" binding:"required"`
}

// ReorderItineraryRequest request model. ItemID may be empty, in which case
// the moving item is resolved from the source day and position.
type ReorderItineraryRequest struct {
	ItemID         string `json:"itemId"`
	SourceDayIndex *int   `json:"sourceDayIndex"`
	SourceIndex    *int   `json:"sourceIndex"`
	DestDayIndex   *int   `json:"destDayIndex"`
	DestIndex      *int   `json:"destIndex"`
}

// MoveItineraryItemsRequest request model for the coarse bulk move.
type MoveItineraryItemsRequest struct {
	ItemIDs        []string `json:"itemIds" binding:"required,min=1"`
	TargetDayIndex *int     `json:"targetDayIndex" binding:"required"`
}

// AddFlightRequest request model
type AddFlightRequest struct {
	Airline          string   `json:"airline"`
	FlightNumber     string   `json:"flightNumber"`
	DepartureTime    string   `json:"departureTime"`
	ArrivalTime      string   `json:"arrivalTime"`
	DepartureAirport string   `json:"departureAirport"`
	ArrivalAirport   string   `json:"arrivalAirport"`
	Price            *float64 `json:"price"`
	ConfirmationCode string   `json:"confirmationCode"`
	Notes            string   `json:"notes"`
}

// AddLodgingRequest embeds the place payload; lodging rows reference an
// upserted Place.
type AddLodgingRequest struct {
	SavePlaceRequest
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Notes    string `json:"notes"`
}

// UpdateLodgingRequest request model
type UpdateLodgingRequest struct {
	PlaceID  string `json:"placeId" binding:"required"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Notes    string `json:"notes"`
}

// CreateListRequest request model
type CreateListRequest struct {
	Title string `json:"title" binding:"required"`
}

// AddListItemRequest request model
type AddListItemRequest struct {
	PlaceID string `json:"placeId" binding:"required"`
}

// SessionRequest request model for cookie-based session issuance.
type SessionRequest struct {
	AccessToken string `json:"accessToken" binding:"required"`
}

// models/models.go
package models

// TripSummary is the list-view projection of a trip.
type TripSummary struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Destination string   `json:"destination,omitempty"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	CoverImage  string   `json:"coverImage,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// Place is a point of interest, deduplicated globally by its Google place id.
type Place struct {
	ID                          string   `json:"id"`
	GooglePlaceID               string   `json:"googlePlaceId"`
	Name                        string   `json:"name"`
	Address                     string   `json:"address,omitempty"`
	Rating                      *float64 `json:"rating,omitempty"`
	UserRatingsTotal            *int     `json:"userRatingsTotal,omitempty"`
	Type                        string   `json:"type"`
	Image                       string   `json:"image,omitempty"`
	PriceLevel                  *int     `json:"priceLevel,omitempty"`
	Website                     string   `json:"website,omitempty"`
	Notes                       string   `json:"notes,omitempty"`
	CheckIn                     string   `json:"checkIn,omitempty"`
	CheckOut                    string   `json:"checkOut,omitempty"`
	Lat                         *float64 `json:"lat,omitempty"`
	Lng                         *float64 `json:"lng,omitempty"`
	City                        string   `json:"city,omitempty"`
	OpeningHours                []string `json:"openingHours,omitempty"`
	EditorialSummary            string   `json:"editorialSummary,omitempty"`
	FormattedPhoneNumber        string   `json:"formattedPhoneNumber,omitempty"`
	TypicalVisitDurationMinutes *int     `json:"typicalVisitDurationMinutes,omitempty"`
}

// Flight is a flight record attached to a trip. Timestamps are RFC 3339.
type Flight struct {
	ID               string   `json:"id"`
	TripID           string   `json:"tripId"`
	Airline          string   `json:"airline,omitempty"`
	FlightNumber     string   `json:"flightNumber,omitempty"`
	DepartureTime    string   `json:"departureTime,omitempty"`
	ArrivalTime      string   `json:"arrivalTime,omitempty"`
	DepartureAirport string   `json:"departureAirport,omitempty"`
	ArrivalAirport   string   `json:"arrivalAirport,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	ConfirmationCode string   `json:"confirmationCode,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

// Lodging is a stay record referencing a Place. Timestamps are RFC 3339.
type Lodging struct {
	ID       string `json:"id"`
	TripID   string `json:"tripId"`
	PlaceID  string `json:"placeId"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ItineraryItem is a day-scoped entry in the itinerary view. Persisted rows
// carry ItemType "itinerary"; flight and lodging projections carry their own
// types and are never stored.
type ItineraryItem struct {
	ID         string `json:"id"`
	PlaceID    string `json:"placeId"`
	StartTime  string `json:"startTime,omitempty"`
	EndTime    string `json:"endTime,omitempty"`
	Notes      string `json:"notes,omitempty"`
	OrderIndex *int   `json:"orderIndex,omitempty"`
	ItemType   string `json:"itemType,omitempty"`
	SourceID   string `json:"sourceId,omitempty"`
	Subtype    string `json:"subtype,omitempty"`
	LodgingID  string `json:"lodgingId,omitempty"`
}

// TripDay is one day of the assembled itinerary.
type TripDay struct {
	Date  string          `json:"date"`
	Items []ItineraryItem `json:"items"`
}

// PlaceList is a named, trip-scoped grouping of saved places.
type PlaceList struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	PlaceIDs []string `json:"placeIds"`
}

// Trip is the full detail payload: summary fields plus normalized places,
// the day-by-day itinerary, and lists.
type Trip struct {
	TripSummary
	Places    map[string]Place `json:"places"`
	Flights   []Flight         `json:"flights"`
	Lodging   []Lodging        `json:"lodging"`
	Itinerary []TripDay        `json:"itinerary"`
	Lists     []PlaceList      `json:"lists"`
}

// ItineraryItemRow is the storage shape of a persisted itinerary item.
// OrderIndex is nil for legacy rows predating the ordering column, or when
// the schema does not carry it at all.
type ItineraryItemRow struct {
	ID         string
	TripID     string
	PlaceID    string
	DayIndex   int
	StartTime  string
	EndTime    string
	Notes      string
	OrderIndex *int
}

// ItineraryOrderRow is the minimal projection the reorder reconciler works
// on.
type ItineraryOrderRow struct {
	ID         string
	DayIndex   int
	OrderIndex *int
}

// OrderUpdate is one row's new placement produced by a reorder or move plan.
type OrderUpdate struct {
	ID         string
	DayIndex   int
	OrderIndex int
}

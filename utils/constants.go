package utils

const (
	// Itinerary item types
	ItemTypeItinerary = "itinerary"
	ItemTypeFlight    = "flight"
	ItemTypeLodging   = "lodging"

	// Lodging virtual item subtypes
	SubtypeCheckIn  = "checkin"
	SubtypeCheckOut = "checkout"

	// Default times applied to lodging virtual items when the timestamp has
	// no usable time-of-day component
	DefaultCheckInTime  = "15:00"
	DefaultCheckOutTime = "11:00"

	// Sort sentinels: items without a start time or order index sort last
	MissingTimeSentinel  = "23:59"
	MissingOrderSentinel = 1 << 30

	// Title of the implicit list every saved place is linked into
	SavedPlacesListTitle = "Saved Places"

	// Cover image applied to trips created without one
	DefaultCoverImage = "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?q=80&w=2070&auto=format&fit=crop"

	// Session cookie carrying the Supabase access token
	AccessTokenCookie = "sb-access-token"

	// HTTP status messages
	ErrInvalidRequest    = "Invalid request"
	ErrUnauthorized      = "Unauthorized"
	ErrFailedToStore     = "Failed to store data"
	ErrFailedToRetrieve  = "Failed to retrieve data"
	ErrMissingDayIndex   = "Missing dayIndex or placeId"
	ErrMissingItemID     = "Missing itemId"
	ErrMissingPlaceID    = "Missing placeId"
	ErrInvalidDateRange  = "endDate must not be before startDate"
	ErrMissingDestIndex  = "Missing destination indices"
	ErrMissingSourceSpec = "Missing itemId or source indices"
)

// repository/place_repository.go
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/tripkit/tripkit-backend/models"
)

// PlaceRepository handles database operations for places
type PlaceRepository struct {
	DB *sql.DB
}

// NewPlaceRepository creates a new PlaceRepository
func NewPlaceRepository() *PlaceRepository {
	return &PlaceRepository{
		DB: GetDB(),
	}
}

// placeDetails is the JSONB payload carrying the optional rich fields.
type placeDetails struct {
	EditorialSummary            string `json:"editorial_summary,omitempty"`
	FormattedPhoneNumber        string `json:"formatted_phone_number,omitempty"`
	TypicalVisitDurationMinutes *int   `json:"typical_visit_duration_minutes,omitempty"`
}

const placeColumns = `id, google_place_id, name, address, rating, user_ratings_total, type,
          image, price_level, website, lat, lng, city, opening_hours, details`

// UpsertPlace inserts a place or updates the existing row with the same
// Google place id, keeping at most one row per external id.
func (r *PlaceRepository) UpsertPlace(id string, req *models.SavePlaceRequest) (*models.Place, error) {
	details := placeDetails{
		EditorialSummary:            req.EditorialSummary,
		FormattedPhoneNumber:        req.FormattedPhoneNumber,
		TypicalVisitDurationMinutes: req.TypicalVisitDurationMinutes,
	}
	var detailsJSON interface{}
	if details.EditorialSummary != "" || details.FormattedPhoneNumber != "" || details.TypicalVisitDurationMinutes != nil {
		encoded, err := json.Marshal(details)
		if err != nil {
			return nil, fmt.Errorf("failed to encode place details: %v", err)
		}
		detailsJSON = encoded
	}

	row := r.DB.QueryRow(
		`INSERT INTO places (id, google_place_id, name, address, rating, user_ratings_total, type,
                             image, price_level, website, lat, lng, city, opening_hours, details)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
         ON CONFLICT (google_place_id) DO UPDATE SET
             name = EXCLUDED.name,
             address = EXCLUDED.address,
             rating = EXCLUDED.rating,
             user_ratings_total = EXCLUDED.user_ratings_total,
             type = EXCLUDED.type,
             image = EXCLUDED.image,
             price_level = EXCLUDED.price_level,
             website = EXCLUDED.website,
             lat = EXCLUDED.lat,
             lng = EXCLUDED.lng,
             city = EXCLUDED.city,
             opening_hours = EXCLUDED.opening_hours,
             details = EXCLUDED.details
         RETURNING `+placeColumns,
		id, req.GooglePlaceID, req.Name, nullString(req.Address), req.Rating, req.UserRatingsTotal,
		nullString(req.Type), nullString(req.Image), req.PriceLevel, nullString(req.Website),
		req.Lat, req.Lng, nullString(req.City), pq.Array(req.OpeningHours), detailsJSON,
	)

	place, err := scanPlace(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert place: %v", err)
	}
	return place, nil
}

// GetPlacesByIDs retrieves the places with the given ids.
func (r *PlaceRepository) GetPlacesByIDs(ids []string) ([]models.Place, error) {
	if len(ids) == 0 {
		return []models.Place{}, nil
	}

	rows, err := r.DB.Query(
		`SELECT `+placeColumns+` FROM places WHERE id = ANY($1)`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get places: %v", err)
	}
	defer rows.Close()

	places := []models.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, *place)
	}
	return places, rows.Err()
}

func scanPlace(row rowScanner) (*models.Place, error) {
	var place models.Place
	var address, placeType, image, website, city sql.NullString
	var rating, lat, lng sql.NullFloat64
	var userRatingsTotal, priceLevel sql.NullInt64
	var openingHours pq.StringArray
	var detailsJSON []byte

	err := row.Scan(&place.ID, &place.GooglePlaceID, &place.Name, &address, &rating,
		&userRatingsTotal, &placeType, &image, &priceLevel, &website, &lat, &lng,
		&city, &openingHours, &detailsJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to scan place: %v", err)
	}

	place.Address = address.String
	place.Type = placeType.String
	place.Image = image.String
	place.Website = website.String
	place.City = city.String
	place.OpeningHours = openingHours
	if rating.Valid {
		place.Rating = &rating.Float64
	}
	if userRatingsTotal.Valid {
		total := int(userRatingsTotal.Int64)
		place.UserRatingsTotal = &total
	}
	if priceLevel.Valid {
		level := int(priceLevel.Int64)
		place.PriceLevel = &level
	}
	if lat.Valid {
		place.Lat = &lat.Float64
	}
	if lng.Valid {
		place.Lng = &lng.Float64
	}

	if len(detailsJSON) > 0 {
		var details placeDetails
		if err := json.Unmarshal(detailsJSON, &details); err == nil {
			place.EditorialSummary = details.EditorialSummary
			place.FormattedPhoneNumber = details.FormattedPhoneNumber
			place.TypicalVisitDurationMinutes = details.TypicalVisitDurationMinutes
		}
	}

	return &place, nil
}

// repository/trip_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/tripkit/tripkit-backend/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	DB *sql.DB
}

// NewTripRepository creates a new TripRepository
func NewTripRepository() *TripRepository {
	return &TripRepository{
		DB: GetDB(),
	}
}

// StoreTrip saves a trip to the database
func (r *TripRepository) StoreTrip(trip *models.TripSummary) error {
	_, err := r.DB.Exec(
		`INSERT INTO trips (id, user_id, title, destination, start_date, end_date, cover_image, lat, lng)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		trip.ID, nullString(trip.UserID), trip.Title, nullString(trip.Destination),
		trip.StartDate, trip.EndDate, nullString(trip.CoverImage), trip.Lat, trip.Lng,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %v", err)
	}
	return nil
}

// GetTripsByUser retrieves all trips owned by a user, ordered by start date
func (r *TripRepository) GetTripsByUser(userID string) ([]models.TripSummary, error) {
	rows, err := r.DB.Query(
		`SELECT id, user_id, title, destination, start_date, end_date, cover_image, lat, lng
         FROM trips WHERE user_id = $1 ORDER BY start_date ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get trips: %v", err)
	}
	defer rows.Close()

	trips := []models.TripSummary{}
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *trip)
	}
	return trips, rows.Err()
}

// GetTripByID retrieves a trip by its id
func (r *TripRepository) GetTripByID(tripID string) (*models.TripSummary, error) {
	row := r.DB.QueryRow(
		`SELECT id, user_id, title, destination, start_date, end_date, cover_image, lat, lng
         FROM trips WHERE id = $1`,
		tripID,
	)
	trip, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// ClaimTrip assigns an owner to a legacy trip row with no owner. Returns
// true when a row was claimed.
func (r *TripRepository) ClaimTrip(tripID, userID string) (bool, error) {
	result, err := r.DB.Exec(
		"UPDATE trips SET user_id = $1 WHERE id = $2 AND user_id IS NULL",
		userID, tripID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim trip: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to claim trip: %v", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row rowScanner) (*models.TripSummary, error) {
	var trip models.TripSummary
	var userID, destination, coverImage sql.NullString
	var lat, lng sql.NullFloat64

	err := row.Scan(&trip.ID, &userID, &trip.Title, &destination,
		&trip.StartDate, &trip.EndDate, &coverImage, &lat, &lng)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan trip: %v", err)
	}

	trip.UserID = userID.String
	trip.Destination = destination.String
	trip.CoverImage = coverImage.String
	if lat.Valid {
		trip.Lat = &lat.Float64
	}
	if lng.Valid {
		trip.Lng = &lng.Float64
	}
	return &trip, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

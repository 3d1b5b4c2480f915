// repository/lodging_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/tripkit/tripkit-backend/models"
)

// LodgingRepository handles database operations for lodging stays
type LodgingRepository struct {
	DB *sql.DB
}

// NewLodgingRepository creates a new LodgingRepository
func NewLodgingRepository() *LodgingRepository {
	return &LodgingRepository{
		DB: GetDB(),
	}
}

// StoreLodging saves a lodging record to the database
func (r *LodgingRepository) StoreLodging(lodging *models.Lodging) error {
	_, err := r.DB.Exec(
		`INSERT INTO lodgings (id, trip_id, place_id, check_in, check_out, notes)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		lodging.ID, lodging.TripID, lodging.PlaceID,
		nullString(lodging.CheckIn), nullString(lodging.CheckOut), nullString(lodging.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to insert lodging: %v", err)
	}
	return nil
}

// GetLodgingsByTrip retrieves all lodging records for a trip
func (r *LodgingRepository) GetLodgingsByTrip(tripID string) ([]models.Lodging, error) {
	rows, err := r.DB.Query(
		"SELECT id, trip_id, place_id, check_in, check_out, notes FROM lodgings WHERE trip_id = $1",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get lodgings: %v", err)
	}
	defer rows.Close()

	lodgings := []models.Lodging{}
	for rows.Next() {
		var lodging models.Lodging
		var checkIn, checkOut, notes sql.NullString

		err = rows.Scan(&lodging.ID, &lodging.TripID, &lodging.PlaceID, &checkIn, &checkOut, &notes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lodging: %v", err)
		}

		lodging.CheckIn = checkIn.String
		lodging.CheckOut = checkOut.String
		lodging.Notes = notes.String
		lodgings = append(lodgings, lodging)
	}
	return lodgings, rows.Err()
}

// UpdateLodgingByPlace updates the stay dates and notes of the lodging
// referencing a place within a trip. Returns true when a row matched.
func (r *LodgingRepository) UpdateLodgingByPlace(tripID, placeID, checkIn, checkOut, notes string) (bool, error) {
	result, err := r.DB.Exec(
		`UPDATE lodgings SET check_in = $1, check_out = $2, notes = $3
         WHERE trip_id = $4 AND place_id = $5`,
		nullString(checkIn), nullString(checkOut), nullString(notes), tripID, placeID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update lodging: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update lodging: %v", err)
	}
	return affected > 0, nil
}

// DeleteLodging removes a lodging record. Returns true when a row matched.
func (r *LodgingRepository) DeleteLodging(tripID, lodgingID string) (bool, error) {
	result, err := r.DB.Exec(
		"DELETE FROM lodgings WHERE trip_id = $1 AND id = $2",
		tripID, lodgingID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete lodging: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete lodging: %v", err)
	}
	return affected > 0, nil
}

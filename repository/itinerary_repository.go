// repository/itinerary_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

// ItineraryRepository handles database operations for itinerary items
type ItineraryRepository struct {
	DB *sql.DB
}

// NewItineraryRepository creates a new ItineraryRepository
func NewItineraryRepository() *ItineraryRepository {
	return &ItineraryRepository{
		DB: GetDB(),
	}
}

// isMissingOrderColumn reports whether an error is the degraded-schema case:
// the ordering column has not been migrated in yet.
func isMissingOrderColumn(err error) bool {
	return err != nil && strings.Contains(err.Error(), "order_index")
}

// GetItemsByTrip retrieves all itinerary rows for a trip. The bool result
// reports whether the schema carries the ordering column; when it does not,
// rows come back with a nil OrderIndex and ordering degrades to insertion
// order.
func (r *ItineraryRepository) GetItemsByTrip(tripID string) ([]models.ItineraryItemRow, bool, error) {
	rows, err := r.DB.Query(
		`SELECT id, trip_id, place_id, day_index, start_time, end_time, notes, order_index
         FROM itinerary_items WHERE trip_id = $1`,
		tripID,
	)
	if isMissingOrderColumn(err) {
		utils.Logger.Warnw("order_index column missing, loading without ordering", "trip", tripID)
		items, fallbackErr := r.getItemsWithoutOrder(tripID)
		return items, false, fallbackErr
	}
	if err != nil {
		return nil, true, fmt.Errorf("failed to get itinerary items: %v", err)
	}
	defer rows.Close()

	items := []models.ItineraryItemRow{}
	for rows.Next() {
		var item models.ItineraryItemRow
		var startTime, endTime, notes sql.NullString
		var orderIndex sql.NullInt64

		err = rows.Scan(&item.ID, &item.TripID, &item.PlaceID, &item.DayIndex,
			&startTime, &endTime, &notes, &orderIndex)
		if err != nil {
			return nil, true, fmt.Errorf("failed to scan itinerary item: %v", err)
		}

		item.StartTime = startTime.String
		item.EndTime = endTime.String
		item.Notes = notes.String
		if orderIndex.Valid {
			idx := int(orderIndex.Int64)
			item.OrderIndex = &idx
		}
		items = append(items, item)
	}
	return items, true, rows.Err()
}

func (r *ItineraryRepository) getItemsWithoutOrder(tripID string) ([]models.ItineraryItemRow, error) {
	rows, err := r.DB.Query(
		`SELECT id, trip_id, place_id, day_index, start_time, end_time, notes
         FROM itinerary_items WHERE trip_id = $1`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get itinerary items: %v", err)
	}
	defer rows.Close()

	items := []models.ItineraryItemRow{}
	for rows.Next() {
		var item models.ItineraryItemRow
		var startTime, endTime, notes sql.NullString

		err = rows.Scan(&item.ID, &item.TripID, &item.PlaceID, &item.DayIndex,
			&startTime, &endTime, &notes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan itinerary item: %v", err)
		}

		item.StartTime = startTime.String
		item.EndTime = endTime.String
		item.Notes = notes.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetOrderRows retrieves the minimal (id, day, order) projection the reorder
// reconciler works on, with the same degraded-schema fallback.
func (r *ItineraryRepository) GetOrderRows(tripID string) ([]models.ItineraryOrderRow, bool, error) {
	items, supportsOrder, err := r.GetItemsByTrip(tripID)
	if err != nil {
		return nil, supportsOrder, err
	}

	orderRows := make([]models.ItineraryOrderRow, 0, len(items))
	for _, item := range items {
		orderRows = append(orderRows, models.ItineraryOrderRow{
			ID:         item.ID,
			DayIndex:   item.DayIndex,
			OrderIndex: item.OrderIndex,
		})
	}
	return orderRows, supportsOrder, nil
}

// MaxOrderIndex returns the highest order index within a day, -1 when the
// day is empty. The bool result reports ordering-column support.
func (r *ItineraryRepository) MaxOrderIndex(tripID string, dayIndex int) (int, bool, error) {
	var maxOrder sql.NullInt64
	err := r.DB.QueryRow(
		"SELECT MAX(order_index) FROM itinerary_items WHERE trip_id = $1 AND day_index = $2",
		tripID, dayIndex,
	).Scan(&maxOrder)
	if isMissingOrderColumn(err) {
		return -1, false, nil
	}
	if err != nil {
		return -1, true, fmt.Errorf("failed to get max order index: %v", err)
	}
	if !maxOrder.Valid {
		return -1, true, nil
	}
	return int(maxOrder.Int64), true, nil
}

// InsertItem saves a new itinerary item. The order index is written only
// when the schema supports it.
func (r *ItineraryRepository) InsertItem(item *models.ItineraryItemRow, withOrder bool) error {
	var err error
	if withOrder {
		_, err = r.DB.Exec(
			`INSERT INTO itinerary_items (id, trip_id, place_id, day_index, start_time, end_time, notes, order_index)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.TripID, item.PlaceID, item.DayIndex,
			nullString(item.StartTime), nullString(item.EndTime), nullString(item.Notes), item.OrderIndex,
		)
	} else {
		_, err = r.DB.Exec(
			`INSERT INTO itinerary_items (id, trip_id, place_id, day_index, start_time, end_time, notes)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.TripID, item.PlaceID, item.DayIndex,
			nullString(item.StartTime), nullString(item.EndTime), nullString(item.Notes),
		)
	}
	if err != nil {
		return fmt.Errorf("failed to insert itinerary item: %v", err)
	}
	return nil
}

// UpdateItemFields updates the editable fields of an item. Returns true when
// a row matched.
func (r *ItineraryRepository) UpdateItemFields(tripID, itemID, startTime, endTime, notes string) (bool, error) {
	result, err := r.DB.Exec(
		`UPDATE itinerary_items SET start_time = $1, end_time = $2, notes = $3
         WHERE trip_id = $4 AND id = $5`,
		nullString(startTime), nullString(endTime), nullString(notes), tripID, itemID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update itinerary item: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update itinerary item: %v", err)
	}
	return affected > 0, nil
}

// DeleteItem removes an item. Returns true when a row matched.
func (r *ItineraryRepository) DeleteItem(tripID, itemID string) (bool, error) {
	result, err := r.DB.Exec(
		"DELETE FROM itinerary_items WHERE trip_id = $1 AND id = $2",
		tripID, itemID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete itinerary item: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete itinerary item: %v", err)
	}
	return affected > 0, nil
}

// CountItemsByIDs counts how many of the given ids exist within a trip.
func (r *ItineraryRepository) CountItemsByIDs(tripID string, itemIDs []string) (int, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM itinerary_items WHERE trip_id = $1 AND id = ANY($2)",
		tripID, pq.Array(itemIDs),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count itinerary items: %v", err)
	}
	return count, nil
}

// ApplyOrderUpdates persists a reorder or move plan inside a single
// transaction so the contiguity invariant is never observable half-applied.
// When the ordering column is unsupported, only day assignments are written.
func (r *ItineraryRepository) ApplyOrderUpdates(tripID string, updates []models.OrderUpdate, withOrder bool) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, update := range updates {
		if withOrder {
			_, err = tx.Exec(
				"UPDATE itinerary_items SET day_index = $1, order_index = $2 WHERE trip_id = $3 AND id = $4",
				update.DayIndex, update.OrderIndex, tripID, update.ID,
			)
		} else {
			_, err = tx.Exec(
				"UPDATE itinerary_items SET day_index = $1 WHERE trip_id = $2 AND id = $3",
				update.DayIndex, tripID, update.ID,
			)
		}
		if err != nil {
			return fmt.Errorf("failed to update itinerary item order: %v", err)
		}
	}

	return tx.Commit()
}

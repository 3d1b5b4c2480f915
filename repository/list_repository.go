// repository/list_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// ListRepository handles database operations for place lists
type ListRepository struct {
	DB *sql.DB
}

// ListRow is the storage shape of a list.
type ListRow struct {
	ID     string
	TripID string
	Title  string
}

// ListItemRow links a place into a list.
type ListItemRow struct {
	ListID  string
	PlaceID string
}

// NewListRepository creates a new ListRepository
func NewListRepository() *ListRepository {
	return &ListRepository{
		DB: GetDB(),
	}
}

// CreateList saves a new list for a trip
func (r *ListRepository) CreateList(id, tripID, title string) (*ListRow, error) {
	_, err := r.DB.Exec(
		"INSERT INTO lists (id, trip_id, title) VALUES ($1, $2, $3)",
		id, tripID, title,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert list: %v", err)
	}
	return &ListRow{ID: id, TripID: tripID, Title: title}, nil
}

// GetListsByTrip retrieves all lists for a trip
func (r *ListRepository) GetListsByTrip(tripID string) ([]ListRow, error) {
	rows, err := r.DB.Query(
		"SELECT id, trip_id, title FROM lists WHERE trip_id = $1",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get lists: %v", err)
	}
	defer rows.Close()

	lists := []ListRow{}
	for rows.Next() {
		var list ListRow
		if err := rows.Scan(&list.ID, &list.TripID, &list.Title); err != nil {
			return nil, fmt.Errorf("failed to scan list: %v", err)
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}

// GetListByID retrieves a list scoped to a trip, nil when absent
func (r *ListRepository) GetListByID(tripID, listID string) (*ListRow, error) {
	var list ListRow
	err := r.DB.QueryRow(
		"SELECT id, trip_id, title FROM lists WHERE id = $1 AND trip_id = $2",
		listID, tripID,
	).Scan(&list.ID, &list.TripID, &list.Title)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %v", err)
	}
	return &list, nil
}

// GetListByTitle retrieves a trip's list by title, nil when absent
func (r *ListRepository) GetListByTitle(tripID, title string) (*ListRow, error) {
	var list ListRow
	err := r.DB.QueryRow(
		"SELECT id, trip_id, title FROM lists WHERE trip_id = $1 AND title = $2",
		tripID, title,
	).Scan(&list.ID, &list.TripID, &list.Title)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %v", err)
	}
	return &list, nil
}

// GetListItems retrieves the list memberships for the given list ids
func (r *ListRepository) GetListItems(listIDs []string) ([]ListItemRow, error) {
	if len(listIDs) == 0 {
		return []ListItemRow{}, nil
	}

	rows, err := r.DB.Query(
		"SELECT list_id, place_id FROM list_items WHERE list_id = ANY($1)",
		pq.Array(listIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get list items: %v", err)
	}
	defer rows.Close()

	items := []ListItemRow{}
	for rows.Next() {
		var item ListItemRow
		if err := rows.Scan(&item.ListID, &item.PlaceID); err != nil {
			return nil, fmt.Errorf("failed to scan list item: %v", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpsertListItem links a place into a list, idempotently
func (r *ListRepository) UpsertListItem(listID, placeID string) error {
	_, err := r.DB.Exec(
		`INSERT INTO list_items (list_id, place_id) VALUES ($1, $2)
         ON CONFLICT (list_id, place_id) DO NOTHING`,
		listID, placeID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert list item: %v", err)
	}
	return nil
}

// DeleteListItem removes a place from a list
func (r *ListRepository) DeleteListItem(listID, placeID string) error {
	_, err := r.DB.Exec(
		"DELETE FROM list_items WHERE list_id = $1 AND place_id = $2",
		listID, placeID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete list item: %v", err)
	}
	return nil
}

// DeleteList removes a list and its memberships
func (r *ListRepository) DeleteList(tripID, listID string) error {
	_, err := r.DB.Exec(
		"DELETE FROM lists WHERE id = $1 AND trip_id = $2",
		listID, tripID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete list: %v", err)
	}
	return nil
}

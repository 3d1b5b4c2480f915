// services/itinerary_service.go
package services

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/repository"
	"github.com/tripkit/tripkit-backend/utils"
)

// itineraryStore is the slice of the itinerary repository this service
// writes through. Tests substitute an in-memory implementation.
type itineraryStore interface {
	GetOrderRows(tripID string) ([]models.ItineraryOrderRow, bool, error)
	MaxOrderIndex(tripID string, dayIndex int) (int, bool, error)
	InsertItem(item *models.ItineraryItemRow, withOrder bool) error
	UpdateItemFields(tripID, itemID, startTime, endTime, notes string) (bool, error)
	DeleteItem(tripID, itemID string) (bool, error)
	CountItemsByIDs(tripID string, itemIDs []string) (int, error)
	ApplyOrderUpdates(tripID string, updates []models.OrderUpdate, withOrder bool) error
}

// ItineraryService owns the day/order reconciliation logic: assembling the
// day-by-day view, projecting flights and lodgings into virtual items, and
// recomputing order indices on reorder and move.
type ItineraryService struct {
	itineraryRepo itineraryStore
}

// NewItineraryService creates a new ItineraryService
func NewItineraryService() *ItineraryService {
	return &ItineraryService{
		itineraryRepo: repository.NewItineraryRepository(),
	}
}

// orderOf treats a missing order index as larger than any real one so legacy
// rows sort last instead of failing.
func orderOf(row models.ItineraryOrderRow) int {
	if row.OrderIndex == nil {
		return utils.MissingOrderSentinel
	}
	return *row.OrderIndex
}

// rowsForDay returns the rows of one day in their current display order.
func rowsForDay(rows []models.ItineraryOrderRow, dayIndex int) []models.ItineraryOrderRow {
	dayRows := []models.ItineraryOrderRow{}
	for _, row := range rows {
		if row.DayIndex == dayIndex {
			dayRows = append(dayRows, row)
		}
	}
	sort.SliceStable(dayRows, func(i, j int) bool {
		return orderOf(dayRows[i]) < orderOf(dayRows[j])
	})
	return dayRows
}

// ComputeReorderPlan resolves the moving item and renumbers the source and
// destination days so order indices stay contiguous from 0. It is a pure
// function over the given snapshot; persistence happens in ApplyOrderUpdates.
func (s *ItineraryService) ComputeReorderPlan(rows []models.ItineraryOrderRow, req *models.ReorderItineraryRequest) ([]models.OrderUpdate, error) {
	if req.DestDayIndex == nil || req.DestIndex == nil {
		return nil, utils.NewBadRequestError(utils.ErrMissingDestIndex)
	}
	destDayIndex := *req.DestDayIndex
	destIndex := *req.DestIndex

	movingItemID := req.ItemID
	if movingItemID == "" {
		if req.SourceDayIndex == nil || req.SourceIndex == nil {
			return nil, utils.NewBadRequestError(utils.ErrMissingSourceSpec)
		}
		sourceRows := rowsForDay(rows, *req.SourceDayIndex)
		if *req.SourceIndex < 0 || *req.SourceIndex >= len(sourceRows) {
			return nil, utils.NewNotFoundError("Item at source index")
		}
		movingItemID = sourceRows[*req.SourceIndex].ID
	}

	var movingItem *models.ItineraryOrderRow
	for i := range rows {
		if rows[i].ID == movingItemID {
			movingItem = &rows[i]
			break
		}
	}
	if movingItem == nil {
		return nil, utils.NewNotFoundError("Item")
	}

	sourceDayIndex := movingItem.DayIndex
	if req.SourceDayIndex != nil {
		sourceDayIndex = *req.SourceDayIndex
	}

	sourceRows := []models.ItineraryOrderRow{}
	for _, row := range rowsForDay(rows, sourceDayIndex) {
		if row.ID != movingItem.ID {
			sourceRows = append(sourceRows, row)
		}
	}

	var destRows []models.ItineraryOrderRow
	if sourceDayIndex == destDayIndex {
		destRows = append(destRows, sourceRows...)
	} else {
		for _, row := range rowsForDay(rows, destDayIndex) {
			if row.ID != movingItem.ID {
				destRows = append(destRows, row)
			}
		}
	}

	insertionIndex := destIndex
	if insertionIndex < 0 {
		insertionIndex = 0
	}
	if insertionIndex > len(destRows) {
		insertionIndex = len(destRows)
	}
	moved := models.ItineraryOrderRow{ID: movingItem.ID, DayIndex: destDayIndex}
	destRows = append(destRows[:insertionIndex], append([]models.ItineraryOrderRow{moved}, destRows[insertionIndex:]...)...)

	updates := []models.OrderUpdate{}
	if sourceDayIndex != destDayIndex {
		for position, row := range sourceRows {
			updates = append(updates, models.OrderUpdate{ID: row.ID, DayIndex: sourceDayIndex, OrderIndex: position})
		}
	}
	for position, row := range destRows {
		updates = append(updates, models.OrderUpdate{ID: row.ID, DayIndex: destDayIndex, OrderIndex: position})
	}

	// The moving item must not receive two conflicting updates.
	seen := map[string]bool{}
	deduped := updates[:0]
	for _, update := range updates {
		if seen[update.ID] {
			continue
		}
		seen[update.ID] = true
		deduped = append(deduped, update)
	}

	return deduped, nil
}

// Reorder loads the trip's order snapshot, computes the plan, and persists
// it transactionally.
func (s *ItineraryService) Reorder(tripID string, req *models.ReorderItineraryRequest) error {
	rows, supportsOrder, err := s.itineraryRepo.GetOrderRows(tripID)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	updates, err := s.ComputeReorderPlan(rows, req)
	if err != nil {
		return err
	}

	if err := s.itineraryRepo.ApplyOrderUpdates(tripID, updates, supportsOrder); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// Move appends the given items to the end of the target day, preserving
// their input order. Source days are not renumbered; a gap left behind is
// accepted.
func (s *ItineraryService) Move(tripID string, itemIDs []string, targetDayIndex int) error {
	if err := utils.ValidateNotEmpty(itemIDs, "itemIds"); err != nil {
		return err
	}

	count, err := s.itineraryRepo.CountItemsByIDs(tripID, itemIDs)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if count != len(itemIDs) {
		return utils.NewNotFoundError("One or more itinerary items")
	}

	maxOrder, supportsOrder, err := s.itineraryRepo.MaxOrderIndex(tripID, targetDayIndex)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	updates := make([]models.OrderUpdate, 0, len(itemIDs))
	for i, itemID := range itemIDs {
		updates = append(updates, models.OrderUpdate{
			ID:         itemID,
			DayIndex:   targetDayIndex,
			OrderIndex: maxOrder + 1 + i,
		})
	}

	if err := s.itineraryRepo.ApplyOrderUpdates(tripID, updates, supportsOrder); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// AddItem places a place into a day, appending after the day's current
// maximum order index.
func (s *ItineraryService) AddItem(tripID string, req *models.AddItineraryItemRequest) (*models.ItineraryItem, error) {
	if err := utils.ValidateNonNegative(*req.DayIndex, "dayIndex"); err != nil {
		return nil, err
	}

	maxOrder, supportsOrder, err := s.itineraryRepo.MaxOrderIndex(tripID, *req.DayIndex)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	nextOrder := maxOrder + 1
	row := &models.ItineraryItemRow{
		ID:        uuid.New().String(),
		TripID:    tripID,
		PlaceID:   req.Item.PlaceID,
		DayIndex:  *req.DayIndex,
		StartTime: req.Item.StartTime,
		EndTime:   req.Item.EndTime,
		Notes:     req.Item.Notes,
	}
	if supportsOrder {
		row.OrderIndex = &nextOrder
	}

	if err := s.itineraryRepo.InsertItem(row, supportsOrder); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	item := mapRowToItem(*row)
	return &item, nil
}

// EditItem updates the editable fields of a persisted item.
func (s *ItineraryService) EditItem(tripID string, req *models.EditItineraryItemRequest) error {
	matched, err := s.itineraryRepo.UpdateItemFields(tripID, req.ItemID,
		req.Updates.StartTime, req.Updates.EndTime, req.Updates.Notes)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !matched {
		return utils.NewNotFoundError("Item")
	}
	return nil
}

// RemoveItem deletes a persisted item. Virtual items are never stored here;
// removing one routes to the flight or lodging endpoints instead.
func (s *ItineraryService) RemoveItem(tripID, itemID string) error {
	matched, err := s.itineraryRepo.DeleteItem(tripID, itemID)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !matched {
		return utils.NewNotFoundError("Item")
	}
	return nil
}

// dayIndexFromTimestamp maps an absolute timestamp to a day offset within
// the trip, or false when it falls outside the trip's range.
func dayIndexFromTimestamp(value, tripStart string, totalDays int) (int, bool) {
	datePart, ok := utils.ExtractDatePart(value)
	if !ok {
		return 0, false
	}
	offset, ok := utils.DiffDays(tripStart, datePart)
	if !ok {
		return 0, false
	}
	if offset < 0 || offset >= totalDays {
		return 0, false
	}
	return offset, true
}

// BuildFlightPlace synthesizes the display-only place record backing a
// flight's virtual item.
func (s *ItineraryService) BuildFlightPlace(flight models.Flight) models.Place {
	name := flight.Airline
	if name == "" {
		name = "Flight"
	}
	if flight.FlightNumber != "" {
		name = fmt.Sprintf("%s %s", name, flight.FlightNumber)
	}

	return models.Place{
		ID:            fmt.Sprintf("flight-place-%s", flight.ID),
		GooglePlaceID: fmt.Sprintf("flight-%s", flight.ID),
		Name:          name,
		Address:       fmt.Sprintf("%s -> %s", flight.DepartureAirport, flight.ArrivalAirport),
		Type:          utils.ItemTypeFlight,
		Notes:         flight.Notes,
	}
}

func buildFlightItem(flight models.Flight) models.ItineraryItem {
	item := models.ItineraryItem{
		ID:       fmt.Sprintf("flight-item-%s", flight.ID),
		PlaceID:  fmt.Sprintf("flight-place-%s", flight.ID),
		Notes:    flight.Notes,
		ItemType: utils.ItemTypeFlight,
		SourceID: flight.ID,
	}
	if start, ok := utils.FormatTimeOfDay(flight.DepartureTime); ok {
		item.StartTime = start
	}
	if end, ok := utils.FormatTimeOfDay(flight.ArrivalTime); ok {
		item.EndTime = end
	}
	return item
}

func buildLodgingItem(lodging models.Lodging, subtype string) models.ItineraryItem {
	timestamp := lodging.CheckIn
	defaultTime := utils.DefaultCheckInTime
	defaultNote := "Check-in"
	if subtype == utils.SubtypeCheckOut {
		timestamp = lodging.CheckOut
		defaultTime = utils.DefaultCheckOutTime
		defaultNote = "Check-out"
	}

	startTime, ok := utils.FormatTimeOfDay(timestamp)
	if !ok {
		startTime = defaultTime
	}
	notes := lodging.Notes
	if notes == "" {
		notes = defaultNote
	}

	return models.ItineraryItem{
		ID:        fmt.Sprintf("lodging-%s-%s", subtype, lodging.ID),
		PlaceID:   lodging.PlaceID,
		StartTime: startTime,
		Notes:     notes,
		Subtype:   subtype,
		ItemType:  utils.ItemTypeLodging,
		SourceID:  lodging.ID,
		LodgingID: lodging.ID,
	}
}

// SynthesizeVirtualItems projects flight and lodging rows into day-indexed
// itinerary entries. Records falling outside the trip's date range are
// omitted from the view but stay retrievable from storage. A lodging whose
// check-in and check-out land on the same day yields only the check-in
// entry.
func (s *ItineraryService) SynthesizeVirtualItems(flights []models.Flight, lodgings []models.Lodging, tripStart string, totalDays int) map[int][]models.ItineraryItem {
	virtualByDay := map[int][]models.ItineraryItem{}

	for _, flight := range flights {
		dayIndex, ok := dayIndexFromTimestamp(flight.DepartureTime, tripStart, totalDays)
		if !ok {
			continue
		}
		virtualByDay[dayIndex] = append(virtualByDay[dayIndex], buildFlightItem(flight))
	}

	for _, lodging := range lodgings {
		checkInDay, checkInOK := dayIndexFromTimestamp(lodging.CheckIn, tripStart, totalDays)
		checkOutDay, checkOutOK := dayIndexFromTimestamp(lodging.CheckOut, tripStart, totalDays)

		if checkInOK {
			virtualByDay[checkInDay] = append(virtualByDay[checkInDay], buildLodgingItem(lodging, utils.SubtypeCheckIn))
		}
		if checkOutOK && (!checkInOK || checkOutDay != checkInDay) {
			virtualByDay[checkOutDay] = append(virtualByDay[checkOutDay], buildLodgingItem(lodging, utils.SubtypeCheckOut))
		}
	}

	for dayIndex := range virtualByDay {
		items := virtualByDay[dayIndex]
		sort.SliceStable(items, func(i, j int) bool {
			return timeOrDefault(items[i].StartTime) < timeOrDefault(items[j].StartTime)
		})
	}

	return virtualByDay
}

func timeOrDefault(startTime string) string {
	if startTime == "" {
		return utils.MissingTimeSentinel
	}
	return startTime
}

func mapRowToItem(row models.ItineraryItemRow) models.ItineraryItem {
	return models.ItineraryItem{
		ID:         row.ID,
		PlaceID:    row.PlaceID,
		StartTime:  row.StartTime,
		EndTime:    row.EndTime,
		Notes:      row.Notes,
		OrderIndex: row.OrderIndex,
		ItemType:   utils.ItemTypeItinerary,
		SourceID:   row.ID,
	}
}

// AssembleDays builds the full day-by-day itinerary spanning the trip's
// inclusive date range. Virtual items always precede persisted items within
// a day. This is a pure read-side projection.
func (s *ItineraryService) AssembleDays(tripStart, tripEnd string, items []models.ItineraryItemRow, virtualByDay map[int][]models.ItineraryItem) []models.TripDay {
	totalDays := utils.InclusiveDayCount(tripStart, tripEnd)

	itemsByDay := map[int][]models.ItineraryItem{}
	for _, row := range items {
		itemsByDay[row.DayIndex] = append(itemsByDay[row.DayIndex], mapRowToItem(row))
	}
	for dayIndex := range itemsByDay {
		dayItems := itemsByDay[dayIndex]
		sort.SliceStable(dayItems, func(i, j int) bool {
			return itemOrder(dayItems[i]) < itemOrder(dayItems[j])
		})
	}

	days := make([]models.TripDay, 0, totalDays)
	for offset := 0; offset < totalDays; offset++ {
		date, ok := utils.AddDays(tripStart, offset)
		if !ok {
			date = tripStart
		}

		dayItems := []models.ItineraryItem{}
		dayItems = append(dayItems, virtualByDay[offset]...)
		dayItems = append(dayItems, itemsByDay[offset]...)

		days = append(days, models.TripDay{Date: date, Items: dayItems})
	}
	return days
}

func itemOrder(item models.ItineraryItem) int {
	if item.OrderIndex == nil {
		return utils.MissingOrderSentinel
	}
	return *item.OrderIndex
}

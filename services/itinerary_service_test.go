package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

func intPtr(v int) *int {
	return &v
}

// fakeItineraryStore is an in-memory itineraryStore so the write paths can
// be exercised without a database.
type fakeItineraryStore struct {
	rows          []models.ItineraryOrderRow
	supportsOrder bool
	inserted      []models.ItineraryItemRow
	applied       []models.OrderUpdate
}

func newFakeItineraryStore(rows ...models.ItineraryOrderRow) *fakeItineraryStore {
	return &fakeItineraryStore{rows: rows, supportsOrder: true}
}

func (f *fakeItineraryStore) GetOrderRows(tripID string) ([]models.ItineraryOrderRow, bool, error) {
	return f.rows, f.supportsOrder, nil
}

func (f *fakeItineraryStore) MaxOrderIndex(tripID string, dayIndex int) (int, bool, error) {
	if !f.supportsOrder {
		return -1, false, nil
	}
	maxOrder := -1
	for _, row := range f.rows {
		if row.DayIndex == dayIndex && row.OrderIndex != nil && *row.OrderIndex > maxOrder {
			maxOrder = *row.OrderIndex
		}
	}
	return maxOrder, true, nil
}

func (f *fakeItineraryStore) InsertItem(item *models.ItineraryItemRow, withOrder bool) error {
	f.inserted = append(f.inserted, *item)
	f.rows = append(f.rows, models.ItineraryOrderRow{
		ID:         item.ID,
		DayIndex:   item.DayIndex,
		OrderIndex: item.OrderIndex,
	})
	return nil
}

func (f *fakeItineraryStore) UpdateItemFields(tripID, itemID, startTime, endTime, notes string) (bool, error) {
	for _, row := range f.rows {
		if row.ID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeItineraryStore) DeleteItem(tripID, itemID string) (bool, error) {
	for i, row := range f.rows {
		if row.ID == itemID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeItineraryStore) CountItemsByIDs(tripID string, itemIDs []string) (int, error) {
	count := 0
	for _, itemID := range itemIDs {
		for _, row := range f.rows {
			if row.ID == itemID {
				count++
				break
			}
		}
	}
	return count, nil
}

func (f *fakeItineraryStore) ApplyOrderUpdates(tripID string, updates []models.OrderUpdate, withOrder bool) error {
	f.applied = append(f.applied, updates...)
	for _, update := range updates {
		for i := range f.rows {
			if f.rows[i].ID == update.ID {
				orderIndex := update.OrderIndex
				f.rows[i].DayIndex = update.DayIndex
				f.rows[i].OrderIndex = &orderIndex
			}
		}
	}
	return nil
}

func newTestItineraryService(store itineraryStore) *ItineraryService {
	return &ItineraryService{itineraryRepo: store}
}

func addItemRequest(dayIndex int, placeID string) *models.AddItineraryItemRequest {
	req := &models.AddItineraryItemRequest{DayIndex: intPtr(dayIndex)}
	req.Item.PlaceID = placeID
	return req
}

func TestAddItem_AppendsContiguously(t *testing.T) {
	store := newFakeItineraryStore()
	service := newTestItineraryService(store)

	// First item on an empty day lands at 0, the next at 1.
	first, err := service.AddItem("t1", addItemRequest(1, "P"))
	require.NoError(t, err)
	require.NotNil(t, first.OrderIndex)
	assert.Equal(t, 0, *first.OrderIndex)

	second, err := service.AddItem("t1", addItemRequest(1, "Q"))
	require.NoError(t, err)
	require.NotNil(t, second.OrderIndex)
	assert.Equal(t, 1, *second.OrderIndex)

	require.Len(t, store.inserted, 2)
	assert.Equal(t, "P", store.inserted[0].PlaceID)
	assert.Equal(t, 1, store.inserted[0].DayIndex)
	assert.Equal(t, "Q", store.inserted[1].PlaceID)

	// A different day starts its own numbering from 0.
	other, err := service.AddItem("t1", addItemRequest(2, "R"))
	require.NoError(t, err)
	require.NotNil(t, other.OrderIndex)
	assert.Equal(t, 0, *other.OrderIndex)
}

func TestAddItem_WithoutOrderColumn(t *testing.T) {
	store := newFakeItineraryStore()
	store.supportsOrder = false
	service := newTestItineraryService(store)

	item, err := service.AddItem("t1", addItemRequest(0, "P"))
	require.NoError(t, err)
	assert.Nil(t, item.OrderIndex)

	require.Len(t, store.inserted, 1)
	assert.Nil(t, store.inserted[0].OrderIndex)
}

func TestAddItem_RejectsNegativeDay(t *testing.T) {
	service := newTestItineraryService(newFakeItineraryStore())

	_, err := service.AddItem("t1", addItemRequest(-1, "P"))
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestMove_AppendsAfterTargetDayMax(t *testing.T) {
	store := newFakeItineraryStore(
		orderRow("A", 0, intPtr(0)),
		orderRow("B", 0, intPtr(1)),
		orderRow("X", 2, intPtr(0)),
	)
	service := newTestItineraryService(store)

	err := service.Move("t1", []string{"A", "B"}, 2)
	require.NoError(t, err)

	// A and B follow X, preserving their input order. Day 0 is not
	// renumbered.
	require.Len(t, store.applied, 2)
	assert.Equal(t, models.OrderUpdate{ID: "A", DayIndex: 2, OrderIndex: 1}, store.applied[0])
	assert.Equal(t, models.OrderUpdate{ID: "B", DayIndex: 2, OrderIndex: 2}, store.applied[1])
}

func TestMove_Errors(t *testing.T) {
	store := newFakeItineraryStore(orderRow("A", 0, intPtr(0)))
	service := newTestItineraryService(store)

	// Unknown item in the batch
	err := service.Move("t1", []string{"A", "ghost"}, 1)
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)

	// Empty batch
	err = service.Move("t1", nil, 1)
	require.Error(t, err)
	appErr, ok = err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestReorder_PersistsComputedPlan(t *testing.T) {
	store := newFakeItineraryStore(
		orderRow("A", 0, intPtr(0)),
		orderRow("B", 0, intPtr(1)),
	)
	service := newTestItineraryService(store)

	err := service.Reorder("t1", &models.ReorderItineraryRequest{
		ItemID:       "A",
		DestDayIndex: intPtr(0),
		DestIndex:    intPtr(1),
	})
	require.NoError(t, err)

	byID := planByID(store.applied)
	assert.Equal(t, 0, byID["B"].OrderIndex)
	assert.Equal(t, 1, byID["A"].OrderIndex)
}

func orderRow(id string, dayIndex int, orderIndex *int) models.ItineraryOrderRow {
	return models.ItineraryOrderRow{ID: id, DayIndex: dayIndex, OrderIndex: orderIndex}
}

// planByID indexes a reorder plan for assertion convenience.
func planByID(updates []models.OrderUpdate) map[string]models.OrderUpdate {
	byID := map[string]models.OrderUpdate{}
	for _, update := range updates {
		byID[update.ID] = update
	}
	return byID
}

func TestComputeReorderPlan_WithinDay(t *testing.T) {
	service := NewItineraryService()

	// Day 0 holds A, B, C. Moving A to the end must leave B, C, A
	// numbered 0, 1, 2.
	rows := []models.ItineraryOrderRow{
		orderRow("A", 0, intPtr(0)),
		orderRow("B", 0, intPtr(1)),
		orderRow("C", 0, intPtr(2)),
	}
	req := &models.ReorderItineraryRequest{
		ItemID:       "A",
		DestDayIndex: intPtr(0),
		DestIndex:    intPtr(2),
	}

	updates, err := service.ComputeReorderPlan(rows, req)
	require.NoError(t, err)
	require.Len(t, updates, 3)

	byID := planByID(updates)
	assert.Equal(t, 0, byID["B"].OrderIndex)
	assert.Equal(t, 1, byID["C"].OrderIndex)
	assert.Equal(t, 2, byID["A"].OrderIndex)
	for _, update := range updates {
		assert.Equal(t, 0, update.DayIndex)
	}
}

func TestComputeReorderPlan_CrossDayRenumbersBothDays(t *testing.T) {
	service := NewItineraryService()

	rows := []models.ItineraryOrderRow{
		orderRow("A", 0, intPtr(0)),
		orderRow("B", 0, intPtr(1)),
		orderRow("C", 0, intPtr(2)),
		orderRow("X", 2, intPtr(0)),
		orderRow("Y", 2, intPtr(1)),
	}
	// Move B from day 0 into day 2 between X and Y.
	req := &models.ReorderItineraryRequest{
		ItemID:       "B",
		DestDayIndex: intPtr(2),
		DestIndex:    intPtr(1),
	}

	updates, err := service.ComputeReorderPlan(rows, req)
	require.NoError(t, err)
	require.Len(t, updates, 5)

	byID := planByID(updates)

	// Source day closes its gap
	assert.Equal(t, 0, byID["A"].DayIndex)
	assert.Equal(t, 0, byID["A"].OrderIndex)
	assert.Equal(t, 0, byID["C"].DayIndex)
	assert.Equal(t, 1, byID["C"].OrderIndex)

	// Destination day is X, B, Y
	assert.Equal(t, 0, byID["X"].OrderIndex)
	assert.Equal(t, 2, byID["B"].DayIndex)
	assert.Equal(t, 1, byID["B"].OrderIndex)
	assert.Equal(t, 2, byID["Y"].OrderIndex)
}

func TestComputeReorderPlan_ClampsDestIndex(t *testing.T) {
	service := NewItineraryService()

	rows := []models.ItineraryOrderRow{
		orderRow("A", 0, intPtr(0)),
		orderRow("B", 0, intPtr(1)),
	}

	// Far beyond the end clamps to append
	updates, err := service.ComputeReorderPlan(rows, &models.ReorderItineraryRequest{
		ItemID:       "A",
		DestDayIndex: intPtr(0),
		DestIndex:    intPtr(99),
	})
	require.NoError(t, err)
	byID := planByID(updates)
	assert.Equal(t, 0, byID["B"].OrderIndex)
	assert.Equal(t, 1, byID["A"].OrderIndex)

	// Negative clamps to the front
	updates, err = service.ComputeReorderPlan(rows, &models.ReorderItineraryRequest{
		ItemID:       "B",
		DestDayIndex: intPtr(0),
		DestIndex:    intPtr(-5),
	})
	require.NoError(t, err)
	byID = planByID(updates)
	assert.Equal(t, 0, byID["B"].OrderIndex)
	assert.Equal(t, 1, byID["A"].OrderIndex)
}

func TestComputeReorderPlan_ResolvesBySourcePosition(t *testing.T) {
	service := NewItineraryService()

	rows := []models.ItineraryOrderRow{
		orderRow("A", 0, intPtr(0)),
		orderRow("B", 0, intPtr(1)),
		orderRow("X", 1, intPtr(0)),
	}
	// No itemId; second item of day 0 is B.
	req := &models.ReorderItineraryRequest{
		SourceDayIndex: intPtr(0),
		SourceIndex:    intPtr(1),
		DestDayIndex:   intPtr(1),
		DestIndex:      intPtr(0),
	}

	updates, err := service.ComputeReorderPlan(rows, req)
	require.NoError(t, err)

	byID := planByID(updates)
	assert.Equal(t, 1, byID["B"].DayIndex)
	assert.Equal(t, 0, byID["B"].OrderIndex)
	assert.Equal(t, 1, byID["X"].OrderIndex)
	assert.Equal(t, 0, byID["A"].OrderIndex)
}

func TestComputeReorderPlan_MissingOrderSortsLast(t *testing.T) {
	service := NewItineraryService()

	// Legacy row without an order index sits after numbered rows.
	rows := []models.ItineraryOrderRow{
		orderRow("legacy", 0, nil),
		orderRow("A", 0, intPtr(0)),
		orderRow("B", 0, intPtr(1)),
	}
	req := &models.ReorderItineraryRequest{
		SourceDayIndex: intPtr(0),
		SourceIndex:    intPtr(2),
		DestDayIndex:   intPtr(0),
		DestIndex:      intPtr(0),
	}

	updates, err := service.ComputeReorderPlan(rows, req)
	require.NoError(t, err)

	byID := planByID(updates)
	assert.Equal(t, 0, byID["legacy"].OrderIndex)
	assert.Equal(t, 1, byID["A"].OrderIndex)
	assert.Equal(t, 2, byID["B"].OrderIndex)
}

func TestComputeReorderPlan_MovingItemUpdatedOnce(t *testing.T) {
	service := NewItineraryService()

	rows := []models.ItineraryOrderRow{
		orderRow("A", 0, intPtr(0)),
		orderRow("B", 1, intPtr(0)),
	}
	req := &models.ReorderItineraryRequest{
		ItemID:       "A",
		DestDayIndex: intPtr(1),
		DestIndex:    intPtr(0),
	}

	updates, err := service.ComputeReorderPlan(rows, req)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, update := range updates {
		seen[update.ID]++
	}
	assert.Equal(t, 1, seen["A"])
	assert.Equal(t, 1, seen["B"])

	byID := planByID(updates)
	assert.Equal(t, 1, byID["A"].DayIndex)
}

func TestComputeReorderPlan_Errors(t *testing.T) {
	service := NewItineraryService()

	rows := []models.ItineraryOrderRow{orderRow("A", 0, intPtr(0))}

	// Missing destination
	_, err := service.ComputeReorderPlan(rows, &models.ReorderItineraryRequest{ItemID: "A"})
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)

	// Neither itemId nor source position
	_, err = service.ComputeReorderPlan(rows, &models.ReorderItineraryRequest{
		DestDayIndex: intPtr(0),
		DestIndex:    intPtr(0),
	})
	require.Error(t, err)
	appErr, ok = err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)

	// Unknown item
	_, err = service.ComputeReorderPlan(rows, &models.ReorderItineraryRequest{
		ItemID:       "missing",
		DestDayIndex: intPtr(0),
		DestIndex:    intPtr(0),
	})
	require.Error(t, err)
	appErr, ok = err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)

	// Source position out of range
	_, err = service.ComputeReorderPlan(rows, &models.ReorderItineraryRequest{
		SourceDayIndex: intPtr(0),
		SourceIndex:    intPtr(5),
		DestDayIndex:   intPtr(0),
		DestIndex:      intPtr(0),
	})
	require.Error(t, err)
	appErr, ok = err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestComputeReorderPlan_PreservesMembership(t *testing.T) {
	service := NewItineraryService()

	rows := []models.ItineraryOrderRow{
		orderRow("A", 0, intPtr(0)),
		orderRow("B", 0, intPtr(1)),
		orderRow("C", 1, intPtr(0)),
		orderRow("D", 1, intPtr(1)),
	}
	req := &models.ReorderItineraryRequest{
		ItemID:       "D",
		DestDayIndex: intPtr(0),
		DestIndex:    intPtr(1),
	}

	updates, err := service.ComputeReorderPlan(rows, req)
	require.NoError(t, err)

	// No item appears twice, nothing new is invented, and each affected
	// day is contiguous from zero.
	seen := map[string]bool{}
	perDay := map[int][]int{}
	for _, update := range updates {
		assert.False(t, seen[update.ID])
		seen[update.ID] = true
		assert.Contains(t, []string{"A", "B", "C", "D"}, update.ID)
		perDay[update.DayIndex] = append(perDay[update.DayIndex], update.OrderIndex)
	}
	for _, orders := range perDay {
		expected := map[int]bool{}
		for i := range orders {
			expected[i] = true
		}
		for _, order := range orders {
			assert.True(t, expected[order])
		}
	}
}

func TestSynthesizeVirtualItems_LodgingSameDay(t *testing.T) {
	service := NewItineraryService()

	// Check-in and check-out on the same day collapse to one entry.
	lodging := models.Lodging{
		ID:       "l1",
		PlaceID:  "p1",
		CheckIn:  "2026-03-01",
		CheckOut: "2026-03-01",
	}

	virtualByDay := service.SynthesizeVirtualItems(nil, []models.Lodging{lodging}, "2026-03-01", 3)
	require.Len(t, virtualByDay[0], 1)

	item := virtualByDay[0][0]
	assert.Equal(t, "lodging-checkin-l1", item.ID)
	assert.Equal(t, utils.ItemTypeLodging, item.ItemType)
	assert.Equal(t, utils.SubtypeCheckIn, item.Subtype)
	assert.Equal(t, "15:00", item.StartTime)
	assert.Equal(t, "Check-in", item.Notes)
	assert.Equal(t, "l1", item.LodgingID)
}

func TestSynthesizeVirtualItems_LodgingCrossDay(t *testing.T) {
	service := NewItineraryService()

	lodging := models.Lodging{
		ID:       "l1",
		PlaceID:  "p1",
		CheckIn:  "2026-03-01",
		CheckOut: "2026-03-03",
	}

	virtualByDay := service.SynthesizeVirtualItems(nil, []models.Lodging{lodging}, "2026-03-01", 3)

	require.Len(t, virtualByDay[0], 1)
	assert.Equal(t, "lodging-checkin-l1", virtualByDay[0][0].ID)
	assert.Equal(t, "15:00", virtualByDay[0][0].StartTime)

	require.Len(t, virtualByDay[2], 1)
	assert.Equal(t, "lodging-checkout-l1", virtualByDay[2][0].ID)
	assert.Equal(t, utils.SubtypeCheckOut, virtualByDay[2][0].Subtype)
	assert.Equal(t, "11:00", virtualByDay[2][0].StartTime)
	assert.Equal(t, "Check-out", virtualByDay[2][0].Notes)
}

func TestSynthesizeVirtualItems_FlightOutsideRangeOmitted(t *testing.T) {
	service := NewItineraryService()

	flights := []models.Flight{
		{ID: "f1", DepartureTime: "2026-02-20T08:00:00Z"},
		{ID: "f2", DepartureTime: "2026-03-10T08:00:00Z"},
	}

	virtualByDay := service.SynthesizeVirtualItems(flights, nil, "2026-03-01", 3)
	assert.Empty(t, virtualByDay)
}

func TestSynthesizeVirtualItems_FlightMappedWithTimes(t *testing.T) {
	service := NewItineraryService()

	flight := models.Flight{
		ID:            "f1",
		Airline:       "Garuda",
		FlightNumber:  "GA123",
		DepartureTime: "2026-03-02T08:30:00Z",
		ArrivalTime:   "2026-03-02T11:45:00Z",
	}

	virtualByDay := service.SynthesizeVirtualItems([]models.Flight{flight}, nil, "2026-03-01", 3)
	require.Len(t, virtualByDay[1], 1)

	item := virtualByDay[1][0]
	assert.Equal(t, "flight-item-f1", item.ID)
	assert.Equal(t, "flight-place-f1", item.PlaceID)
	assert.Equal(t, utils.ItemTypeFlight, item.ItemType)
	assert.Equal(t, "08:30", item.StartTime)
	assert.Equal(t, "11:45", item.EndTime)
	assert.Equal(t, "f1", item.SourceID)
}

func TestSynthesizeVirtualItems_SortedByTimeWithMissingLast(t *testing.T) {
	service := NewItineraryService()

	// The no-time flight sorts after timed entries on the same day.
	flights := []models.Flight{
		{ID: "late", DepartureTime: "2026-03-01"},
		{ID: "morning", DepartureTime: "2026-03-01T06:00:00Z"},
	}
	lodging := models.Lodging{ID: "l1", PlaceID: "p1", CheckIn: "2026-03-01T12:00:00Z"}

	virtualByDay := service.SynthesizeVirtualItems(flights, []models.Lodging{lodging}, "2026-03-01", 1)
	require.Len(t, virtualByDay[0], 3)

	assert.Equal(t, "flight-item-morning", virtualByDay[0][0].ID)
	assert.Equal(t, "lodging-checkin-l1", virtualByDay[0][1].ID)
	assert.Equal(t, "flight-item-late", virtualByDay[0][2].ID)
}

func TestBuildFlightPlace(t *testing.T) {
	service := NewItineraryService()

	place := service.BuildFlightPlace(models.Flight{
		ID:               "f1",
		Airline:          "Garuda",
		FlightNumber:     "GA123",
		DepartureAirport: "CGK",
		ArrivalAirport:   "DPS",
	})
	assert.Equal(t, "flight-place-f1", place.ID)
	assert.Equal(t, "Garuda GA123", place.Name)
	assert.Equal(t, "CGK -> DPS", place.Address)
	assert.Equal(t, utils.ItemTypeFlight, place.Type)

	// Airline missing falls back to a generic label
	place = service.BuildFlightPlace(models.Flight{ID: "f2", FlightNumber: "XX1"})
	assert.Equal(t, "Flight XX1", place.Name)

	place = service.BuildFlightPlace(models.Flight{ID: "f3"})
	assert.Equal(t, "Flight", place.Name)
}

func TestAssembleDays(t *testing.T) {
	service := NewItineraryService()

	items := []models.ItineraryItemRow{
		{ID: "i2", PlaceID: "p2", DayIndex: 0, OrderIndex: intPtr(1)},
		{ID: "i1", PlaceID: "p1", DayIndex: 0, OrderIndex: intPtr(0)},
		{ID: "i3", PlaceID: "p3", DayIndex: 2, OrderIndex: intPtr(0)},
	}
	virtualByDay := map[int][]models.ItineraryItem{
		0: {{ID: "flight-item-f1", ItemType: utils.ItemTypeFlight}},
	}

	days := service.AssembleDays("2026-03-01", "2026-03-03", items, virtualByDay)
	require.Len(t, days, 3)

	assert.Equal(t, "2026-03-01", days[0].Date)
	assert.Equal(t, "2026-03-02", days[1].Date)
	assert.Equal(t, "2026-03-03", days[2].Date)

	// Virtual entries precede persisted ones; persisted ones follow their
	// order index.
	require.Len(t, days[0].Items, 3)
	assert.Equal(t, "flight-item-f1", days[0].Items[0].ID)
	assert.Equal(t, "i1", days[0].Items[1].ID)
	assert.Equal(t, "i2", days[0].Items[2].ID)

	// A day with nothing scheduled still renders, with an empty item list
	assert.NotNil(t, days[1].Items)
	assert.Empty(t, days[1].Items)

	require.Len(t, days[2].Items, 1)
	assert.Equal(t, utils.ItemTypeItinerary, days[2].Items[0].ItemType)
	assert.Equal(t, "i3", days[2].Items[0].SourceID)
}

func TestAssembleDays_SingleDayTrip(t *testing.T) {
	service := NewItineraryService()

	days := service.AssembleDays("2026-03-01", "2026-03-01", nil, nil)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-03-01", days[0].Date)
}

func TestAssembleDays_ItemsWithoutOrderSortLast(t *testing.T) {
	service := NewItineraryService()

	items := []models.ItineraryItemRow{
		{ID: "legacy", PlaceID: "p1", DayIndex: 0},
		{ID: "first", PlaceID: "p2", DayIndex: 0, OrderIndex: intPtr(0)},
	}

	days := service.AssembleDays("2026-03-01", "2026-03-01", items, nil)
	require.Len(t, days, 1)
	require.Len(t, days[0].Items, 2)
	assert.Equal(t, "first", days[0].Items[0].ID)
	assert.Equal(t, "legacy", days[0].Items[1].ID)
}

package inventory

import (
	"context"
	"testing"
	"time"

	"foodtracker/pkg/eventstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	eventType string
	version   int
}

// recordingEventLog captures appended events instead of writing to Postgres.
type recordingEventLog struct {
	events []recordedEvent
}

func (l *recordingEventLog) AppendEvents(ctx context.Context, aggregateID uuid.UUID, aggregateType string, expectedVersion int, events []eventstore.Event) error {
	for _, e := range events {
		l.events = append(l.events, recordedEvent{eventType: e.EventType, version: e.Version})
	}
	return nil
}

type stubClock struct {
	t time.Time
}

func (c *stubClock) Today() time.Time { return c.t }

func newTestService() (Service, *recordingEventLog, *stubClock) {
	log := &recordingEventLog{}
	clock := &stubClock{t: testToday}
	return NewService(NewMemoryRepository(), log, clock), log, clock
}

func milkInput(daysOffset int) FoodInput {
	return FoodInput{
		Name:       "Milk",
		Quantity:   1,
		Unit:       "L",
		ExpiryDate: testToday.AddDate(0, 0, daysOffset),
		Category:   "dairy",
	}
}

func TestAddFoodDefaultsAddedDate(t *testing.T) {
	svc, log, _ := newTestService()

	food, err := svc.AddFood(context.Background(), milkInput(2))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, food.ID)
	assert.Equal(t, testToday, food.AddedDate)
	assert.Equal(t, StatusExpiringSoon, food.Status)
	assert.Equal(t, 2, food.DaysUntilExpiry)
	assert.Equal(t, 1, food.Version)
	require.Len(t, log.events, 1)
	assert.Equal(t, recordedEvent{eventType: "FoodAdded", version: 1}, log.events[0])
}

func TestAddFoodKeepsSuppliedAddedDate(t *testing.T) {
	svc, _, _ := newTestService()

	added := testToday.AddDate(0, 0, -4)
	input := milkInput(2)
	input.AddedDate = &added

	food, err := svc.AddFood(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, added, food.AddedDate)
}

func TestAddFoodValidation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name  string
		input FoodInput
	}{
		{"missing name", FoodInput{Quantity: 1, ExpiryDate: testToday}},
		{"zero quantity", FoodInput{Name: "Milk", ExpiryDate: testToday}},
		{"negative quantity", FoodInput{Name: "Milk", Quantity: -2, ExpiryDate: testToday}},
		{"missing expiry", FoodInput{Name: "Milk", Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddFood(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdateFoodNeverTouchesDonatedState(t *testing.T) {
	svc, log, _ := newTestService()
	ctx := context.Background()

	food, err := svc.AddFood(ctx, milkInput(2))
	require.NoError(t, err)

	donatedFood, err := svc.DonateFood(ctx, food.ID)
	require.NoError(t, err)
	require.True(t, donatedFood.Donated)

	updated, err := svc.UpdateFood(ctx, food.ID, FoodInput{
		Name:       "Whole Milk",
		Quantity:   2,
		Unit:       "L",
		ExpiryDate: testToday.AddDate(0, 0, 5),
		Category:   "dairy",
	})
	require.NoError(t, err)

	assert.Equal(t, "Whole Milk", updated.Name)
	assert.Equal(t, 2, updated.Quantity)
	assert.Equal(t, StatusGood, updated.Status)
	assert.True(t, updated.Donated, "update must not reset the donated flag")
	assert.NotNil(t, updated.DonatedDate)
	assert.Equal(t, 3, updated.Version)
	assert.Equal(t, recordedEvent{eventType: "FoodUpdated", version: 3}, log.events[len(log.events)-1])
}

func TestUpdateFoodNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateFood(context.Background(), uuid.New(), milkInput(1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDonateFoodRefreshesDateOnRepeat(t *testing.T) {
	svc, log, clock := newTestService()
	ctx := context.Background()

	food, err := svc.AddFood(ctx, milkInput(2))
	require.NoError(t, err)

	first, err := svc.DonateFood(ctx, food.ID)
	require.NoError(t, err)
	require.NotNil(t, first.DonatedDate)
	assert.Equal(t, testToday, *first.DonatedDate)

	clock.t = testToday.AddDate(0, 0, 2)
	second, err := svc.DonateFood(ctx, food.ID)
	require.NoError(t, err)
	require.NotNil(t, second.DonatedDate)
	assert.True(t, second.Donated)
	assert.Equal(t, clock.t, *second.DonatedDate)
	assert.Equal(t, "FoodDonated", log.events[len(log.events)-1].eventType)
}

func TestDonatedFoodHiddenFromActiveViews(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	food, err := svc.AddFood(ctx, milkInput(-1))
	require.NoError(t, err)
	_, err = svc.DonateFood(ctx, food.ID)
	require.NoError(t, err)

	active, _ := svc.ActiveFoods(ctx)
	expired, _ := svc.ExpiredFoods(ctx)
	found, _ := svc.SearchFoods(ctx, "milk")
	byCategory, _ := svc.FoodsByCategory(ctx, "dairy")
	donatedList, _ := svc.DonatedFoods(ctx)

	assert.Empty(t, active)
	assert.Empty(t, expired)
	assert.Empty(t, found)
	assert.Empty(t, byCategory)
	require.Len(t, donatedList, 1)
	assert.Equal(t, food.ID, donatedList[0].ID)
}

func TestDeleteFood(t *testing.T) {
	svc, log, _ := newTestService()
	ctx := context.Background()

	food, err := svc.AddFood(ctx, milkInput(2))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFood(ctx, food.ID))
	assert.Equal(t, "FoodRemoved", log.events[len(log.events)-1].eventType)

	_, err = svc.GetFood(ctx, food.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteFood(ctx, food.ID), ErrNotFound)
}

func TestSeedSampleDataStatistics(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SeedSampleData(ctx))

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, Statistics{
		TotalItems:            7,
		ExpiredCount:          1,
		ExpiringSoonCount:     4,
		GoodCount:             2,
		ExpiringThisWeekCount: 5,
	}, stats)
}

func TestSeededViewsOrdering(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SeedSampleData(ctx))

	expired, err := svc.ExpiredFoods(ctx)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "Tomato", expired[0].Name)
	assert.Equal(t, -1, expired[0].DaysUntilExpiry)

	soon, err := svc.ExpiringSoonFoods(ctx)
	require.NoError(t, err)
	// Bread (+1), then Milk and Lettuce tied at +2 in insertion order, then Yogurt (+3).
	assert.Equal(t, []string{"Bread", "Milk", "Lettuce", "Yogurt"}, names(soon))

	good, err := svc.GoodFoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chicken", "Ice Cream"}, names(good))
}

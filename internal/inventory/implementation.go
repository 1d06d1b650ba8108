// internal/inventory/implementation.go
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodtracker/pkg/eventstore"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// EventLog is the slice of the event store the service needs; the concrete
// *eventstore.EventStore satisfies it, tests use a fake.
type EventLog interface {
	AppendEvents(ctx context.Context, aggregateID uuid.UUID, aggregateType string, expectedVersion int, events []eventstore.Event) error
}

const aggregateType = "food"

// service implements the Service interface.
type service struct {
	repo        Repository
	events      EventLog
	clock       Clock
	rateLimiter *rate.Limiter
}

// NewService creates a new inventory service instance.
func NewService(repo Repository, events EventLog, clock Clock) Service {
	return &service{
		repo:        repo,
		events:      events,
		clock:       clock,
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 20), // 20 mutations per second
	}
}

func validateInput(input FoodInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if input.ExpiryDate.IsZero() {
		return fmt.Errorf("%w: expiry date is required", ErrValidation)
	}
	return nil
}

func (s *service) appendEvent(ctx context.Context, id uuid.UUID, eventType string, data interface{}, expectedVersion int) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	event := eventstore.Event{
		AggregateID:   id,
		AggregateType: aggregateType,
		EventType:     eventType,
		EventData:     jsonData,
		Version:       expectedVersion + 1,
	}

	if err := s.events.AppendEvents(ctx, id, aggregateType, expectedVersion, []eventstore.Event{event}); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

// AddFood creates a new inventory item. AddedDate defaults to today when the
// caller leaves it unset.
func (s *service) AddFood(ctx context.Context, input FoodInput) (*Food, error) {
	if !s.rateLimiter.Allow() {
		return nil, fmt.Errorf("rate limit exceeded")
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	today := toDate(s.clock.Today())
	addedDate := today
	if input.AddedDate != nil {
		addedDate = toDate(*input.AddedDate)
	}

	food := &Food{
		ID:         uuid.New(),
		Name:       input.Name,
		Quantity:   input.Quantity,
		Unit:       input.Unit,
		ExpiryDate: toDate(input.ExpiryDate),
		AddedDate:  addedDate,
		Category:   input.Category,
		Version:    1,
	}

	eventData := FoodAddedEvent{
		ID:         food.ID,
		Name:       food.Name,
		Quantity:   food.Quantity,
		Unit:       food.Unit,
		ExpiryDate: food.ExpiryDate,
		Category:   food.Category,
	}
	if err := s.appendEvent(ctx, food.ID, "FoodAdded", eventData, 0); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, food)
	if err != nil {
		return nil, fmt.Errorf("failed to update read model: %w", err)
	}

	return withFreshness(saved, today), nil
}

// GetFood retrieves an item by its ID.
func (s *service) GetFood(ctx context.Context, id uuid.UUID) (*Food, error) {
	food, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return withFreshness(food, s.clock.Today()), nil
}

// UpdateFood changes an item's editable fields. The donated flag is changed
// solely through DonateFood, never here.
func (s *service) UpdateFood(ctx context.Context, id uuid.UUID, input FoodInput) (*Food, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	food, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	eventData := FoodUpdatedEvent{
		ID:         id,
		Name:       input.Name,
		Quantity:   input.Quantity,
		Unit:       input.Unit,
		ExpiryDate: toDate(input.ExpiryDate),
		Category:   input.Category,
	}
	if err := s.appendEvent(ctx, id, "FoodUpdated", eventData, food.Version); err != nil {
		return nil, err
	}

	food.Name = input.Name
	food.Quantity = input.Quantity
	food.Unit = input.Unit
	food.ExpiryDate = toDate(input.ExpiryDate)
	food.Category = input.Category
	food.Version++

	saved, err := s.repo.Save(ctx, food)
	if err != nil {
		return nil, fmt.Errorf("failed to update read model: %w", err)
	}

	return withFreshness(saved, s.clock.Today()), nil
}

// DeleteFood removes an item permanently.
func (s *service) DeleteFood(ctx context.Context, id uuid.UUID) error {
	food, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.appendEvent(ctx, id, "FoodRemoved", FoodRemovedEvent{ID: id}, food.Version); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update read model: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// DonateFood marks an item donated. The transition is one-way; repeated
// calls keep the flag set and refresh the donation date.
func (s *service) DonateFood(ctx context.Context, id uuid.UUID) (*Food, error) {
	food, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	today := toDate(s.clock.Today())
	eventData := FoodDonatedEvent{ID: id, DonatedDate: today}
	if err := s.appendEvent(ctx, id, "FoodDonated", eventData, food.Version); err != nil {
		return nil, err
	}

	food.Donated = true
	food.DonatedDate = &today
	food.Version++

	saved, err := s.repo.Save(ctx, food)
	if err != nil {
		return nil, fmt.Errorf("failed to update read model: %w", err)
	}

	return withFreshness(saved, today), nil
}

func (s *service) ActiveFoods(ctx context.Context) ([]*Food, error) {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return withFreshnessAll(ListActive(all), s.clock.Today()), nil
}

func (s *service) ExpiredFoods(ctx context.Context) ([]*Food, error) {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	return withFreshnessAll(ListExpired(all, today), today), nil
}

func (s *service) ExpiringSoonFoods(ctx context.Context) ([]*Food, error) {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	return withFreshnessAll(ListExpiringSoon(all, today), today), nil
}

func (s *service) GoodFoods(ctx context.Context) ([]*Food, error) {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	return withFreshnessAll(ListGood(all, today), today), nil
}

func (s *service) DonatedFoods(ctx context.Context) ([]*Food, error) {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return withFreshnessAll(ListDonated(all), s.clock.Today()), nil
}

// SearchFoods delegates the substring match to the repository and applies
// the active filter on top.
func (s *service) SearchFoods(ctx context.Context, name string) ([]*Food, error) {
	matched, err := s.repo.FetchByNameContaining(ctx, name)
	if err != nil {
		return nil, err
	}
	return withFreshnessAll(ListActive(matched), s.clock.Today()), nil
}

func (s *service) FoodsByCategory(ctx context.Context, category string) ([]*Food, error) {
	matched, err := s.repo.FetchByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return withFreshnessAll(ListActive(matched), s.clock.Today()), nil
}

func (s *service) Statistics(ctx context.Context) (Statistics, error) {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return Aggregate(all, s.clock.Today()), nil
}

// SeedSampleData loads the reference sample inventory relative to today.
func (s *service) SeedSampleData(ctx context.Context) error {
	today := toDate(s.clock.Today())
	samples := []FoodInput{
		{Name: "Milk", Quantity: 1, Unit: "L", ExpiryDate: today.AddDate(0, 0, 2), Category: "dairy"},
		{Name: "Bread", Quantity: 1, Unit: "pcs", ExpiryDate: today.AddDate(0, 0, 1), Category: "pantry"},
		{Name: "Tomato", Quantity: 3, Unit: "pcs", ExpiryDate: today.AddDate(0, 0, -1), Category: "produce"},
		{Name: "Chicken", Quantity: 500, Unit: "g", ExpiryDate: today.AddDate(0, 0, 5), Category: "meat"},
		{Name: "Yogurt", Quantity: 2, Unit: "pcs", ExpiryDate: today.AddDate(0, 0, 3), Category: "dairy"},
		{Name: "Lettuce", Quantity: 1, Unit: "pcs", ExpiryDate: today.AddDate(0, 0, 2), Category: "produce"},
		{Name: "Ice Cream", Quantity: 1, Unit: "L", ExpiryDate: today.AddDate(0, 0, 30), Category: "frozen"},
	}

	for _, input := range samples {
		if _, err := s.AddFood(ctx, input); err != nil {
			return fmt.Errorf("failed to seed %q: %w", input.Name, err)
		}
	}
	return nil
}

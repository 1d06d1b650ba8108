// internal/inventory/domain.go
package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a food item does not exist.
	ErrNotFound = errors.New("food not found")
	// ErrValidation is returned when a food record is missing required fields.
	ErrValidation = errors.New("invalid food")
)

// Status classifies a food item relative to its expiry date.
type Status string

const (
	StatusExpired      Status = "EXPIRED"
	StatusExpiringSoon Status = "EXPIRING_SOON"
	StatusGood         Status = "GOOD"
)

// Food represents a perishable item tracked by the household.
// Status and DaysUntilExpiry are derived on read and never persisted.
type Food struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Quantity        int        `json:"quantity"`
	Unit            string     `json:"unit"`
	ExpiryDate      time.Time  `json:"expiry_date"`
	AddedDate       time.Time  `json:"added_date"`
	Category        string     `json:"category"`
	Donated         bool       `json:"donated"`
	DonatedDate     *time.Time `json:"donated_date,omitempty"`
	Status          Status     `json:"status,omitempty"`
	DaysUntilExpiry int        `json:"days_until_expiry"`
	Version         int        `json:"version"`
}

// FoodInput carries the caller-supplied fields of a food record.
// AddedDate defaults to "today" when nil.
type FoodInput struct {
	Name       string
	Quantity   int
	Unit       string
	ExpiryDate time.Time
	AddedDate  *time.Time
	Category   string
}

// Event represents a domain event related to a food item.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// FoodAddedEvent is published when a new item enters the inventory.
type FoodAddedEvent struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Unit       string    `json:"unit"`
	ExpiryDate time.Time `json:"expiry_date"`
	Category   string    `json:"category"`
}

// FoodUpdatedEvent is published when an item's editable fields change.
// The donated flag is never part of an update.
type FoodUpdatedEvent struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Unit       string    `json:"unit"`
	ExpiryDate time.Time `json:"expiry_date"`
	Category   string    `json:"category"`
}

// FoodDonatedEvent is published when an item is marked donated.
type FoodDonatedEvent struct {
	ID          uuid.UUID `json:"id"`
	DonatedDate time.Time `json:"donated_date"`
}

// FoodRemovedEvent is published when an item is deleted.
type FoodRemovedEvent struct {
	ID uuid.UUID `json:"id"`
}

// internal/inventory/service.go
package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for the inventory service. List results are
// enriched with the derived status and day count at call time.
type Service interface {
	AddFood(ctx context.Context, input FoodInput) (*Food, error)
	GetFood(ctx context.Context, id uuid.UUID) (*Food, error)
	UpdateFood(ctx context.Context, id uuid.UUID, input FoodInput) (*Food, error)
	DeleteFood(ctx context.Context, id uuid.UUID) error
	DonateFood(ctx context.Context, id uuid.UUID) (*Food, error)
	ActiveFoods(ctx context.Context) ([]*Food, error)
	ExpiredFoods(ctx context.Context) ([]*Food, error)
	ExpiringSoonFoods(ctx context.Context) ([]*Food, error)
	GoodFoods(ctx context.Context) ([]*Food, error)
	DonatedFoods(ctx context.Context) ([]*Food, error)
	SearchFoods(ctx context.Context, name string) ([]*Food, error)
	FoodsByCategory(ctx context.Context, category string) ([]*Food, error)
	Statistics(ctx context.Context) (Statistics, error)
	SeedSampleData(ctx context.Context) error
}

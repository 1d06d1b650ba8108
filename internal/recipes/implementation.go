// internal/recipes/implementation.go
package recipes

import (
	"context"
	"fmt"

	"foodtracker/internal/inventory"
)

// InventoryGateway is the slice of the inventory service this package needs;
// *clients.InventoryClient satisfies it.
type InventoryGateway interface {
	ExpiringSoonFoods(ctx context.Context) ([]*inventory.Food, error)
}

// service implements the Service interface.
type service struct {
	catalog   *Catalog
	inventory InventoryGateway
}

// NewService creates a new recipe suggestion service instance.
func NewService(catalog *Catalog, inventoryGateway InventoryGateway) Service {
	return &service{
		catalog:   catalog,
		inventory: inventoryGateway,
	}
}

func (s *service) AllRecipes(ctx context.Context) []Recipe {
	return s.catalog.Recipes()
}

func (s *service) SuggestFor(ctx context.Context, foodName string) []Recipe {
	return s.catalog.SuggestFor(foodName)
}

func (s *service) SuggestForMultiple(ctx context.Context, foodNames []string) []Recipe {
	return s.catalog.SuggestForMultiple(foodNames)
}

func (s *service) SuggestForCategory(ctx context.Context, category string) []Recipe {
	return s.catalog.SuggestForCategory(category)
}

// SuggestForExpiring suggests recipes that use up the items currently
// expiring soon, fetched from the inventory service.
func (s *service) SuggestForExpiring(ctx context.Context) ([]Recipe, error) {
	foods, err := s.inventory.ExpiringSoonFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get expiring foods: %w", err)
	}

	names := make([]string, 0, len(foods))
	for _, food := range foods {
		names = append(names, food.Name)
	}
	if len(names) == 0 {
		return []Recipe{}, nil
	}

	return s.catalog.SuggestForMultiple(names), nil
}

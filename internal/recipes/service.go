// internal/recipes/service.go
package recipes

import "context"

// Service defines the interface for the recipe suggestion service.
type Service interface {
	AllRecipes(ctx context.Context) []Recipe
	SuggestFor(ctx context.Context, foodName string) []Recipe
	SuggestForMultiple(ctx context.Context, foodNames []string) []Recipe
	SuggestForCategory(ctx context.Context, category string) []Recipe
	SuggestForExpiring(ctx context.Context) ([]Recipe, error)
}

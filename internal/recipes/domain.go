// internal/recipes/domain.go
package recipes

// Recipe is reference data: statically defined, immutable, never persisted.
type Recipe struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	CookingTime  string   `json:"cooking_time"`
	Difficulty   string   `json:"difficulty"`
	Instructions string   `json:"instructions"`
}

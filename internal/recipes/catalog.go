// internal/recipes/catalog.go
package recipes

import "strings"

// Catalog holds the fixed recipe list and the category expansion table.
// Both are built once at process start and read-only afterwards, so a single
// Catalog is safe for concurrent use.
type Catalog struct {
	recipes       []Recipe
	categoryFoods map[string][]string
}

// NewCatalog returns the default catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		recipes:       defaultRecipes(),
		categoryFoods: defaultCategoryFoods(),
	}
}

// Recipes returns the catalog in its fixed iteration order.
func (c *Catalog) Recipes() []Recipe {
	out := make([]Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// ExpandCategory maps a category label to its representative ingredient
// names. The key is case-insensitive; unknown categories expand to nothing.
func (c *Catalog) ExpandCategory(category string) []string {
	return c.categoryFoods[strings.ToLower(category)]
}

func defaultCategoryFoods() map[string][]string {
	return map[string][]string{
		"dairy":   {"Milk", "Yogurt", "Cheese"},
		"produce": {"Tomato", "Lettuce", "Cucumber"},
		"meat":    {"Chicken", "Beef", "Fish"},
		"pantry":  {"Bread", "Rice", "Pasta"},
		"frozen":  {"Ice Cream", "Frozen"},
	}
}

func defaultRecipes() []Recipe {
	return []Recipe{
		{
			Name:         "Cheese Omelette",
			Description:  "A fluffy omelette with melted cheese",
			Ingredients:  []string{"Milk", "Eggs", "Cheese"},
			CookingTime:  "10 mins",
			Difficulty:   "Easy",
			Instructions: "Beat eggs with milk, pour into buttered pan, add cheese, fold and serve.",
		},
		{
			Name:         "Creamy Pasta",
			Description:  "Pasta with creamy milk sauce",
			Ingredients:  []string{"Milk", "Pasta", "Butter"},
			CookingTime:  "20 mins",
			Difficulty:   "Easy",
			Instructions: "Cook pasta, make béchamel sauce with milk and butter, mix with pasta.",
		},
		{
			Name:         "Yogurt Parfait",
			Description:  "Layered yogurt with granola",
			Ingredients:  []string{"Yogurt", "Granola", "Berries"},
			CookingTime:  "5 mins",
			Difficulty:   "Very Easy",
			Instructions: "Layer yogurt, granola, and berries in a glass. Serve immediately.",
		},
		{
			Name:         "Fresh Salad",
			Description:  "Crisp vegetable salad",
			Ingredients:  []string{"Lettuce", "Tomato", "Cucumber"},
			CookingTime:  "10 mins",
			Difficulty:   "Very Easy",
			Instructions: "Chop vegetables, toss with olive oil and vinegar, season to taste.",
		},
		{
			Name:         "Tomato Sauce",
			Description:  "Classic pasta sauce",
			Ingredients:  []string{"Tomato", "Garlic", "Olive Oil"},
			CookingTime:  "30 mins",
			Difficulty:   "Easy",
			Instructions: "Sauté garlic, add chopped tomatoes, simmer 20 mins, season with salt and pepper.",
		},
		{
			Name:         "Vegetable Stir Fry",
			Description:  "Quick and colorful stir fry",
			Ingredients:  []string{"Lettuce", "Tomato", "Garlic"},
			CookingTime:  "15 mins",
			Difficulty:   "Easy",
			Instructions: "Heat oil, stir fry vegetables, add soy sauce and serve over rice.",
		},
		{
			Name:         "Grilled Chicken",
			Description:  "Juicy grilled chicken breast",
			Ingredients:  []string{"Chicken", "Olive Oil", "Lemon"},
			CookingTime:  "25 mins",
			Difficulty:   "Easy",
			Instructions: "Season chicken, grill 12-15 mins per side, rest 5 mins before serving.",
		},
		{
			Name:         "Chicken Soup",
			Description:  "Warm and comforting chicken soup",
			Ingredients:  []string{"Chicken", "Carrots", "Celery"},
			CookingTime:  "45 mins",
			Difficulty:   "Easy",
			Instructions: "Boil chicken with vegetables, season, simmer until cooked through.",
		},
		{
			Name:         "Classic Sandwich",
			Description:  "Simple bread sandwich",
			Ingredients:  []string{"Bread", "Butter", "Cheese"},
			CookingTime:  "5 mins",
			Difficulty:   "Very Easy",
			Instructions: "Butter bread slices, add cheese, cut diagonally and serve.",
		},
		{
			Name:         "Bread Pudding",
			Description:  "Sweet dessert using stale bread",
			Ingredients:  []string{"Bread", "Milk", "Eggs"},
			CookingTime:  "50 mins",
			Difficulty:   "Medium",
			Instructions: "Cube bread, soak in milk and egg mixture, bake at 350°F for 40 mins.",
		},
		{
			Name:         "Ice Cream Sundae",
			Description:  "Classic ice cream dessert",
			Ingredients:  []string{"Ice Cream", "Chocolate Sauce", "Nuts"},
			CookingTime:  "5 mins",
			Difficulty:   "Very Easy",
			Instructions: "Scoop ice cream into bowl, drizzle with sauce, top with nuts.",
		},
		{
			Name:         "Smoothie Bowl",
			Description:  "Frozen fruit smoothie bowl",
			Ingredients:  []string{"Ice Cream", "Berries", "Granola"},
			CookingTime:  "10 mins",
			Difficulty:   "Easy",
			Instructions: "Blend ice cream with berries, pour into bowl, top with granola.",
		},
	}
}

// internal/recipes/matcher.go
package recipes

import "strings"

// matches reports whether either value contains the other,
// case-insensitively. There is no minimum match length and no word-boundary
// requirement; "Mil" matches "Milk". The permissiveness is a product
// decision carried over as-is, not an oversight.
func matches(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// SuggestFor returns every recipe with at least one ingredient matching
// foodName, in catalog order.
func (c *Catalog) SuggestFor(foodName string) []Recipe {
	out := make([]Recipe, 0)
	for _, recipe := range c.recipes {
		for _, ingredient := range recipe.Ingredients {
			if matches(ingredient, foodName) {
				out = append(out, recipe)
				break
			}
		}
	}
	return out
}

// SuggestForMultiple returns every recipe where any (ingredient, food) pair
// matches. One hit anywhere includes the recipe; recipes are not required to
// cover all supplied foods.
func (c *Catalog) SuggestForMultiple(foodNames []string) []Recipe {
	out := make([]Recipe, 0)
	for _, recipe := range c.recipes {
		if anyPairMatches(recipe.Ingredients, foodNames) {
			out = append(out, recipe)
		}
	}
	return out
}

func anyPairMatches(ingredients, foods []string) bool {
	for _, ingredient := range ingredients {
		for _, food := range foods {
			if matches(ingredient, food) {
				return true
			}
		}
	}
	return false
}

// SuggestForCategory expands a category into its representative ingredients
// and suggests recipes for those. An unknown category yields no suggestions;
// there is no fallback search.
func (c *Catalog) SuggestForCategory(category string) []Recipe {
	foods := c.ExpandCategory(category)
	if len(foods) == 0 {
		return []Recipe{}
	}
	return c.SuggestForMultiple(foods)
}

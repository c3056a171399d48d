package catalog

import (
	"slices"

	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
	apperrors "github.com/scoopworks/creamery-backend/pkg/errors"
)

// RecipeCatalog implements RecipeRepository over the constant recipe list.
type RecipeCatalog struct {
	recipes []entities.Recipe
}

// NewRecipeCatalog creates a recipe catalog backed by the built-in fixtures.
func NewRecipeCatalog() repositories.RecipeRepository {
	return &RecipeCatalog{recipes: recipes}
}

// NewRecipeCatalogWith creates a recipe catalog over an explicit list.
func NewRecipeCatalogWith(list []entities.Recipe) repositories.RecipeRepository {
	return &RecipeCatalog{recipes: list}
}

// GetByID retrieves a recipe by ID
func (c *RecipeCatalog) GetByID(id string) (*entities.Recipe, error) {
	for i := range c.recipes {
		if c.recipes[i].ID == id {
			r := c.recipes[i]
			return &r, nil
		}
	}
	return nil, apperrors.NewNotFoundError("recipe not found: " + id)
}

// List returns the full recipe catalog in canonical order
func (c *RecipeCatalog) List() []entities.Recipe {
	out := make([]entities.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// ListByCategory returns recipes in one category, in catalog order
func (c *RecipeCatalog) ListByCategory(category entities.RecipeCategory) []entities.Recipe {
	var out []entities.Recipe
	for _, r := range c.recipes {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// ListFeatured returns recipes flagged as featured
func (c *RecipeCatalog) ListFeatured() []entities.Recipe {
	var out []entities.Recipe
	for _, r := range c.recipes {
		if r.Featured {
			out = append(out, r)
		}
	}
	return out
}

// ListByFlavor returns recipes referencing the given product ID. FlavorIDs are
// weak references, so nothing here checks that the id resolves in the product
// catalog.
func (c *RecipeCatalog) ListByFlavor(productID string) []entities.Recipe {
	var out []entities.Recipe
	for _, r := range c.recipes {
		if slices.Contains(r.FlavorIDs, productID) {
			out = append(out, r)
		}
	}
	return out
}

// Search returns recipes matching the query as a case-insensitive substring of
// title, description, category, or any dietary tag. An empty query matches
// every recipe.
func (c *RecipeCatalog) Search(query string) []entities.Recipe {
	q := normalizeQuery(query)
	var out []entities.Recipe
	for _, r := range c.recipes {
		if containsFold(r.Title, q) ||
			containsFold(r.Description, q) ||
			containsFold(string(r.Category), q) ||
			anyContainsFold(r.DietaryTags, q) {
			out = append(out, r)
		}
	}
	return out
}

var recipes = []entities.Recipe{
	{
		ID:              "classic-vanilla-milkshake",
		Title:           "Classic Vanilla Milkshake",
		Description:     "Three scoops of vanilla, whole milk and a splash of vanilla extract, blended thick.",
		Category:        entities.RecipeCategoryMilkshakes,
		Image:           "/images/recipes/classic-vanilla-milkshake.jpg",
		PrepTimeMinutes: 5,
		Difficulty:      entities.DifficultyEasy,
		Servings:        2,
		FlavorIDs:       []string{"vanilla"},
		DietaryTags:     []string{"vegetarian", "gluten-free"},
		Featured:        true,
	},
	{
		ID:              "vegan-chocolate-shake",
		Title:           "Vegan Chocolate Shake",
		Description:     "Non-dairy chocolate fudge blended with oat milk and a pinch of sea salt.",
		Category:        entities.RecipeCategoryMilkshakes,
		Image:           "/images/recipes/vegan-chocolate-shake.jpg",
		PrepTimeMinutes: 5,
		Difficulty:      entities.DifficultyEasy,
		Servings:        2,
		FlavorIDs:       []string{"non-dairy-chocolate-fudge"},
		DietaryTags:     []string{"vegan", "dairy-free"},
		Featured:        true,
	},
	{
		ID:              "dulce-affogato",
		Title:           "Dulce de Leche Affogato",
		Description:     "A scoop of dulce de leche drowned in a double shot of hot espresso.",
		Category:        entities.RecipeCategoryAffogato,
		Image:           "/images/recipes/dulce-affogato.jpg",
		PrepTimeMinutes: 5,
		Difficulty:      entities.DifficultyEasy,
		Servings:        1,
		FlavorIDs:       []string{"dulce-de-leche", "coffee"},
		DietaryTags:     []string{"vegetarian", "gluten-free"},
	},
	{
		ID:              "strawberry-sundae",
		Title:           "Strawberry Shortcake Sundae",
		Description:     "Strawberry ice cream layered with pound cake, macerated berries and whipped cream.",
		Category:        entities.RecipeCategorySundaes,
		Image:           "/images/recipes/strawberry-sundae.jpg",
		PrepTimeMinutes: 15,
		Difficulty:      entities.DifficultyMedium,
		Servings:        4,
		FlavorIDs:       []string{"strawberry", "vanilla"},
		DietaryTags:     []string{"vegetarian"},
	},
	{
		ID:              "mocha-ice-cream-cake",
		Title:           "Mocha Layer Ice Cream Cake",
		Description:     "Coffee and chocolate ice cream layered over a chocolate cookie crust, frozen overnight.",
		Category:        entities.RecipeCategoryCakes,
		Image:           "/images/recipes/mocha-cake.jpg",
		PrepTimeMinutes: 45,
		Difficulty:      entities.DifficultyHard,
		Servings:        10,
		FlavorIDs:       []string{"coffee", "chocolate"},
		DietaryTags:     []string{"vegetarian"},
		Featured:        true,
	},
	{
		ID:              "cookie-ice-cream-sandwiches",
		Title:           "Brown Butter Cookie Ice Cream Sandwiches",
		Description:     "Vanilla ice cream pressed between brown butter chocolate chip cookies.",
		Category:        entities.RecipeCategorySandwiches,
		Image:           "/images/recipes/cookie-sandwiches.jpg",
		PrepTimeMinutes: 35,
		Difficulty:      entities.DifficultyMedium,
		Servings:        6,
		FlavorIDs:       []string{"vanilla", "cookies-and-cream"},
		DietaryTags:     []string{"vegetarian"},
	},
	{
		ID:              "matcha-affogato",
		Title:           "Matcha Affogato",
		Description:     "Green tea ice cream under a pour of hot ceremonial matcha.",
		Category:        entities.RecipeCategoryAffogato,
		Image:           "/images/recipes/matcha-affogato.jpg",
		PrepTimeMinutes: 10,
		Difficulty:      entities.DifficultyEasy,
		Servings:        1,
		// black-sesame has no catalog entry; the reference stays and
		// resolution simply skips it. green-tea exists but is unavailable,
		// which still resolves to a name.
		FlavorIDs:   []string{"green-tea", "black-sesame"},
		DietaryTags: []string{"vegetarian", "gluten-free"},
	},
	{
		ID:              "mango-coconut-sundae",
		Title:           "Mango Coconut Sundae",
		Description:     "Mango ice cream with toasted coconut, lime zest and passionfruit syrup.",
		Category:        entities.RecipeCategorySundaes,
		Image:           "/images/recipes/mango-coconut-sundae.jpg",
		PrepTimeMinutes: 10,
		Difficulty:      entities.DifficultyEasy,
		Servings:        2,
		FlavorIDs:       []string{"mango"},
		DietaryTags:     []string{"vegetarian", "gluten-free"},
	},
}

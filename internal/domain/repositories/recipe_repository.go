package repositories

import (
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
)

// RecipeRepository defines read access to the recipe catalog.
type RecipeRepository interface {
	// GetByID retrieves a recipe by ID. A miss is a NotFound error.
	GetByID(id string) (*entities.Recipe, error)

	// List returns the full recipe catalog in its canonical order.
	List() []entities.Recipe

	// ListByCategory returns recipes in one category, in catalog order.
	ListByCategory(category entities.RecipeCategory) []entities.Recipe

	// ListFeatured returns recipes flagged as featured.
	ListFeatured() []entities.Recipe

	// ListByFlavor returns recipes referencing the given product ID. Recipes
	// referencing ids absent from the product catalog are still returned for
	// the ids they do carry; dangling references are not an error.
	ListByFlavor(productID string) []entities.Recipe

	// Search returns recipes whose title, description, category or dietary
	// tags contain the query as a case-insensitive substring. An empty query
	// matches every recipe.
	Search(query string) []entities.Recipe
}

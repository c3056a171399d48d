package handlers

import (
	"net/http"

	"github.com/scoopworks/creamery-backend/internal/application/services"
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
	"github.com/scoopworks/creamery-backend/internal/pipeline"
)

// RecipeLister paginates the recipe catalog and resolves flavor references.
type RecipeLister interface {
	Recipes(params services.RecipeParams) pipeline.Result[entities.Recipe]
	FlavorNames(recipe entities.Recipe) []string
}

// RecipeHandler handles recipe catalog HTTP requests
type RecipeHandler struct {
	recipes repositories.RecipeRepository
	lister  RecipeLister
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipes repositories.RecipeRepository, lister RecipeLister) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, lister: lister}
}

// List handles GET /api/recipes
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var categories []entities.RecipeCategory
	for _, c := range queryValues(q, "category") {
		categories = append(categories, entities.RecipeCategory(c))
	}
	var difficulties []entities.Difficulty
	for _, d := range queryValues(q, "difficulty") {
		difficulties = append(difficulties, entities.Difficulty(d))
	}

	page := h.lister.Recipes(services.RecipeParams{
		Categories:   categories,
		Difficulties: difficulties,
		DietaryTags:  queryValues(q, "dietary"),
		FeaturedOnly: queryBool(q, "featured"),
		SortKey:      q.Get("sort"),
		Page:         queryInt(q, "page", 1),
		PageSize:     queryInt(q, "page_size", 0),
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"recipes": page.Items,
		"count":   len(page.Items),
		"total":   page.TotalItems,
		"pages":   page.TotalPages,
		"page":    page.Number,
		"state":   page.State,
	})
}

// Get handles GET /api/recipes/{id}. The response carries the recipe plus its
// flavor references resolved to product names; dangling references are
// silently dropped.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.recipes.GetByID(r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"recipe":       recipe,
		"flavor_names": h.lister.FlavorNames(*recipe),
	})
}

package handlers

import (
	"net/http"

	"github.com/scoopworks/creamery-backend/internal/application/services"
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
	"github.com/scoopworks/creamery-backend/internal/pipeline"
)

// ProductLister paginates the product catalog.
type ProductLister interface {
	Products(params services.ProductParams) pipeline.Result[entities.Product]
}

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	products repositories.ProductRepository
	recipes  repositories.RecipeRepository
	lister   ProductLister
}

// NewProductHandler creates a new product handler
func NewProductHandler(products repositories.ProductRepository, recipes repositories.RecipeRepository, lister ProductLister) *ProductHandler {
	return &ProductHandler{products: products, recipes: recipes, lister: lister}
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var categories []entities.ProductCategory
	for _, c := range queryValues(q, "category") {
		categories = append(categories, entities.ProductCategory(c))
	}

	page := h.lister.Products(services.ProductParams{
		Categories:    categories,
		AvailableOnly: queryBool(q, "available"),
		SortKey:       q.Get("sort"),
		Page:          queryInt(q, "page", 1),
		PageSize:      queryInt(q, "page_size", 0),
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"products": page.Items,
		"count":    len(page.Items),
		"total":    page.TotalItems,
		"pages":    page.TotalPages,
		"page":     page.Number,
		"state":    page.State,
	})
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetByID(r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, product)
}

// Recipes handles GET /api/products/{id}/recipes, listing the recipes that
// feature the product as a flavor.
func (h *ProductHandler) Recipes(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.products.GetByID(id); err != nil {
		respondWithAppError(w, err)
		return
	}

	recipes := h.recipes.ListByFlavor(id)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

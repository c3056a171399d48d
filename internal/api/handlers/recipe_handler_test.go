package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scoopworks/creamery-backend/internal/api/handlers"
	"github.com/scoopworks/creamery-backend/internal/catalog"
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
)

func newRecipeHandler() *handlers.RecipeHandler {
	return handlers.NewRecipeHandler(catalog.NewRecipeCatalog(), newResultLister())
}

func TestRecipeHandler_List(t *testing.T) {
	handler := newRecipeHandler()

	t.Run("dietary facet", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/recipes?dietary=vegan", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Recipes []entities.Recipe `json:"recipes"`
		}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Recipes)
		for _, r := range resp.Recipes {
			assert.Contains(t, r.DietaryTags, "vegan")
		}
	})

	t.Run("category and difficulty combine as AND", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/recipes?category=sundaes&difficulty=easy", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		var resp struct {
			Recipes []entities.Recipe `json:"recipes"`
		}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		for _, r := range resp.Recipes {
			assert.Equal(t, entities.RecipeCategorySundaes, r.Category)
			assert.Equal(t, entities.DifficultyEasy, r.Difficulty)
		}
	})

	t.Run("sorted by prep time", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/recipes?sort=prep-time&page_size=100", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		var resp struct {
			Recipes []entities.Recipe `json:"recipes"`
		}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		prev := -1
		for _, r := range resp.Recipes {
			assert.GreaterOrEqual(t, r.PrepTimeMinutes, prev)
			prev = r.PrepTimeMinutes
		}
	})
}

func TestRecipeHandler_Get(t *testing.T) {
	handler := newRecipeHandler()

	t.Run("resolves flavor names and skips dangling references", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/recipes/matcha-affogato", nil)
		req.SetPathValue("id", "matcha-affogato")
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Recipe      entities.Recipe `json:"recipe"`
			FlavorNames []string        `json:"flavor_names"`
		}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "matcha-affogato", resp.Recipe.ID)
		assert.Equal(t, []string{"Green Tea"}, resp.FlavorNames)
	})

	t.Run("missing id is a 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/recipes/nope", nil)
		req.SetPathValue("id", "nope")
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

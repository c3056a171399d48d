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

func newProductHandler() *handlers.ProductHandler {
	return handlers.NewProductHandler(catalog.NewProductCatalog(), catalog.NewRecipeCatalog(), newResultLister())
}

func TestProductHandler_List(t *testing.T) {
	handler := newProductHandler()

	t.Run("category facet", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/products?category=bars", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		for _, item := range resp["products"].([]interface{}) {
			assert.Equal(t, "bars", item.(map[string]interface{})["category"])
		}
	})

	t.Run("available only excludes retired flavors", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/products?available=true", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		for _, item := range resp["products"].([]interface{}) {
			assert.NotEqual(t, "green-tea", item.(map[string]interface{})["id"])
		}
	})

	t.Run("sorted by name", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/products?sort=name&page_size=100", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		var resp map[string]interface{}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		items := resp["products"].([]interface{})
		var prev string
		for _, item := range items {
			name := item.(map[string]interface{})["name"].(string)
			assert.GreaterOrEqual(t, name, prev)
			prev = name
		}
	})

	t.Run("page beyond the last is empty but not an error", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/products?page=99", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Empty(t, resp["products"])
		assert.Equal(t, "ok", resp["state"])
	})
}

func TestProductHandler_Get(t *testing.T) {
	handler := newProductHandler()

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/products/vanilla", nil)
		req.SetPathValue("id", "vanilla")
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var product entities.Product
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&product))
		assert.Equal(t, "Vanilla", product.Name)
	})

	t.Run("missing id is a 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/products/rocky-road", nil)
		req.SetPathValue("id", "rocky-road")
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_Recipes(t *testing.T) {
	handler := newProductHandler()

	t.Run("recipes featuring the flavor", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/products/vanilla/recipes", nil)
		req.SetPathValue("id", "vanilla")
		w := httptest.NewRecorder()

		handler.Recipes(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Recipes []entities.Recipe `json:"recipes"`
			Count   int               `json:"count"`
		}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Recipes)
		for _, r := range resp.Recipes {
			assert.Contains(t, r.FlavorIDs, "vanilla")
		}
	})

	t.Run("unknown product is a 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/products/nope/recipes", nil)
		req.SetPathValue("id", "nope")
		w := httptest.NewRecorder()

		handler.Recipes(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

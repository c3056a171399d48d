package handlers

import (
	"context"
	"net/http"

	"github.com/scoopworks/creamery-backend/internal/application/services"
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/providers"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
	"github.com/scoopworks/creamery-backend/internal/pipeline"
)

// StoreLister paginates the store catalog.
type StoreLister interface {
	Stores(params services.StoreParams) pipeline.Result[entities.Store]
}

// StoreLocator answers proximity queries and geocodes free-text locations.
type StoreLocator interface {
	Nearby(lat, lng, radiusMiles float64) []entities.NearbyStore
	Locate(ctx context.Context, location string) (*providers.Coordinates, string)
}

// StoreHandler handles store locator HTTP requests
type StoreHandler struct {
	stores  repositories.StoreRepository
	lister  StoreLister
	locator StoreLocator
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(stores repositories.StoreRepository, lister StoreLister, locator StoreLocator) *StoreHandler {
	return &StoreHandler{stores: stores, lister: lister, locator: locator}
}

// List handles GET /api/stores
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var types []entities.StoreType
	for _, t := range queryValues(q, "type") {
		types = append(types, entities.StoreType(t))
	}

	page := h.lister.Stores(services.StoreParams{
		Types:    types,
		City:     q.Get("city"),
		SortKey:  q.Get("sort"),
		Page:     queryInt(q, "page", 1),
		PageSize: queryInt(q, "page_size", 0),
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stores": page.Items,
		"count":  len(page.Items),
		"total":  page.TotalItems,
		"pages":  page.TotalPages,
		"page":   page.Number,
		"state":  page.State,
	})
}

// Get handles GET /api/stores/{id}
func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	store, err := h.stores.GetByID(r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, store)
}

type nearbyRequest struct {
	Latitude    float64 `validate:"gte=-90,lte=90"`
	Longitude   float64 `validate:"gte=-180,lte=180"`
	RadiusMiles float64 `validate:"lte=25000"`
}

// Nearby handles GET /api/stores/nearby. Latitude and longitude are required;
// radius defaults when omitted or negative. An empty result list is a normal
// 200, not an error.
func (h *StoreHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, latOK := queryFloat(q, "lat")
	lng, lngOK := queryFloat(q, "lng")
	if !latOK || !lngOK {
		respondWithError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}

	radius, ok := queryFloat(q, "radius")
	if !ok {
		radius = services.DefaultRadiusMiles
	}

	req := nearbyRequest{
		Latitude:    lat,
		Longitude:   lng,
		RadiusMiles: radius,
	}
	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid coordinates")
		return
	}

	stores := h.locator.Nearby(req.Latitude, req.Longitude, req.RadiusMiles)
	if stores == nil {
		stores = []entities.NearbyStore{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stores": stores,
		"count":  len(stores),
		"radius": req.RadiusMiles,
	})
}

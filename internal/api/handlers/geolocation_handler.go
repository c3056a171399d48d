package handlers

import (
	"net/http"
	"strings"

	"github.com/scoopworks/creamery-backend/internal/infrastructure/observability"
)

// GeolocationHandler fronts the geocoding provider for the store locator UI.
type GeolocationHandler struct {
	locator  StoreLocator
	provider string
	metrics  *observability.Metrics
}

// NewGeolocationHandler creates a new geolocation handler
func NewGeolocationHandler(locator StoreLocator, provider string, metrics *observability.Metrics) *GeolocationHandler {
	return &GeolocationHandler{locator: locator, provider: provider, metrics: metrics}
}

// Geocode handles GET /api/geolocation/geocode. A provider failure is not an
// HTTP error: the locator stays usable through manual search, so the response
// is a 200 carrying an advisory message instead of coordinates.
func (h *GeolocationHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		respondWithError(w, http.StatusBadRequest, "location is required")
		return
	}

	coords, advisory := h.locator.Locate(r.Context(), location)
	if coords == nil {
		if h.metrics != nil {
			observability.RecordGeocodeFailure(r.Context(), h.metrics, h.provider)
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"location": location,
			"advisory": advisory,
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"location":  location,
		"latitude":  coords.Latitude,
		"longitude": coords.Longitude,
	})
}

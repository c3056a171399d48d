package routes

import (
	"net/http"

	"github.com/scoopworks/creamery-backend/internal/api/handlers"
	"github.com/scoopworks/creamery-backend/internal/api/middleware"
	"github.com/scoopworks/creamery-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	searchHandler *handlers.SearchHandler

	productHandler *handlers.ProductHandler

	storeHandler *handlers.StoreHandler

	recipeHandler *handlers.RecipeHandler

	geolocationHandler *handlers.GeolocationHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	searchHandler *handlers.SearchHandler,
	productHandler *handlers.ProductHandler,
	storeHandler *handlers.StoreHandler,
	recipeHandler *handlers.RecipeHandler,
	geolocationHandler *handlers.GeolocationHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		searchHandler: searchHandler,

		productHandler: productHandler,

		storeHandler: storeHandler,

		recipeHandler: recipeHandler,

		geolocationHandler: geolocationHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Unified search endpoints
	r.mux.HandleFunc("GET /api/search", r.searchHandler.Search)

	r.mux.HandleFunc("GET /api/search/recent", r.searchHandler.RecentSearches)
	r.mux.HandleFunc("DELETE /api/search/recent", r.searchHandler.ClearRecentSearches)

	r.mux.HandleFunc("GET /api/search/popular", r.searchHandler.PopularSearches)

	r.mux.HandleFunc("POST /api/search/track", r.searchHandler.TrackSearch)

	// Product endpoints
	r.mux.HandleFunc("GET /api/products", r.productHandler.List)

	r.mux.HandleFunc("GET /api/products/{id}", r.productHandler.Get)
	r.mux.HandleFunc("GET /api/products/{id}/recipes", r.productHandler.Recipes)

	// Store locator endpoints
	r.mux.HandleFunc("GET /api/stores", r.storeHandler.List)

	r.mux.HandleFunc("GET /api/stores/nearby", r.storeHandler.Nearby)

	r.mux.HandleFunc("GET /api/stores/{id}", r.storeHandler.Get)

	// Recipe endpoints
	r.mux.HandleFunc("GET /api/recipes", r.recipeHandler.List)

	r.mux.HandleFunc("GET /api/recipes/{id}", r.recipeHandler.Get)

	// Geolocation endpoints
	r.mux.HandleFunc("GET /api/geolocation/geocode", r.geolocationHandler.Geocode)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so every response gets CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	handler = middleware.Compression(handler)

	handler = middleware.CORSMiddleware(handler)

	return handler
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/scoopworks/creamery-backend/internal/application/services"
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/infrastructure/observability"
	"github.com/scoopworks/creamery-backend/internal/pipeline"
)

// SearchEngine is the unified search entry point.
type SearchEngine interface {
	SearchAll(query string) []entities.SearchResult
}

// SearchHistory maintains recent and popular searches.
type SearchHistory interface {
	TrackSearch(ctx context.Context, event entities.SearchEvent)
	RecentSearches(ctx context.Context) []string
	ClearRecentSearches(ctx context.Context)
	PopularSearches() []string
}

// ResultLister paginates ranked search results by facet.
type ResultLister interface {
	SearchResults(results []entities.SearchResult, params services.SearchResultParams) pipeline.Result[entities.SearchResult]
}

// SearchHandler handles unified-search HTTP requests
type SearchHandler struct {
	engine  SearchEngine
	history SearchHistory
	lister  ResultLister
	metrics *observability.Metrics
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(engine SearchEngine, history SearchHistory, lister ResultLister, metrics *observability.Metrics) *SearchHandler {
	return &SearchHandler{engine: engine, history: history, lister: lister, metrics: metrics}
}

// Search handles GET /api/search. Query and paging parameters are forgiving:
// any query string is accepted, out-of-range pages come back empty, and
// oversized page sizes clamp to the lister's maximum.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := q.Get("q")
	page := queryInt(q, "page", 1)
	pageSize := queryInt(q, "page_size", 0)

	var types []entities.ResultType
	for _, t := range queryValues(q, "type") {
		types = append(types, entities.ResultType(t))
	}

	results := h.engine.SearchAll(query)

	if h.metrics != nil {
		observability.RecordSearchMetric(r.Context(), h.metrics, len(results))
	}

	// History is advisory; never make the response wait on it. The request
	// context may be cancelled once we respond, so the write gets its own.
	if h.history != nil && len(results) > 0 {
		event := entities.SearchEvent{Query: query, ResultCount: len(results)}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			h.history.TrackSearch(ctx, event)
		}()
	}

	result := h.lister.SearchResults(results, services.SearchResultParams{
		Types:    types,
		Page:     page,
		PageSize: pageSize,
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": result.Items,
		"count":   len(result.Items),
		"total":   result.TotalItems,
		"pages":   result.TotalPages,
		"page":    result.Number,
		"state":   result.State,
	})
}

// RecentSearches handles GET /api/search/recent
func (h *SearchHandler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"recent": h.history.RecentSearches(r.Context()),
	})
}

// ClearRecentSearches handles DELETE /api/search/recent
func (h *SearchHandler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	h.history.ClearRecentSearches(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// PopularSearches handles GET /api/search/popular
func (h *SearchHandler) PopularSearches(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"popular": h.history.PopularSearches(),
	})
}

type trackRequest struct {
	Query         string `json:"query" validate:"required,max=512"`
	ResultCount   int    `json:"result_count" validate:"gte=0"`
	ClickedResult string `json:"clicked_result"`
}

// TrackSearch handles POST /api/search/track, for clients reporting a search
// interaction (e.g. a clicked result) explicitly.
func (h *SearchHandler) TrackSearch(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "query is required")
		return
	}

	h.history.TrackSearch(r.Context(), entities.SearchEvent{
		Query:         req.Query,
		ResultCount:   req.ResultCount,
		ClickedResult: req.ClickedResult,
	})

	w.WriteHeader(http.StatusAccepted)
}

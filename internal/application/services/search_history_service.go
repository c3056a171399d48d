package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
	"github.com/scoopworks/creamery-backend/internal/infrastructure/observability"
)

// DefaultRecentSearchLimit caps the persisted recent-searches history.
const DefaultRecentSearchLimit = 10

// popularSearches is curated editorial content, not usage statistics. Derived
// trending queries would be a separate concern with its own source.
var popularSearches = []string{
	"vanilla",
	"chocolate",
	"non-dairy",
	"ice cream cake",
	"milkshake",
	"stores near me",
}

// SearchHistoryService maintains the advisory recent-searches history behind a
// repository and serves the curated popular-searches list. Storage failures
// degrade silently: reads return an empty history, writes are skipped. Nothing
// here ever surfaces an error to the search flow.
type SearchHistoryService struct {
	repo  repositories.RecentSearchRepository
	limit int
}

// NewSearchHistoryService creates a history service over a recent-search
// repository. A limit <= 0 falls back to DefaultRecentSearchLimit.
func NewSearchHistoryService(repo repositories.RecentSearchRepository, limit int) *SearchHistoryService {
	if limit <= 0 {
		limit = DefaultRecentSearchLimit
	}
	return &SearchHistoryService{repo: repo, limit: limit}
}

// TrackSearch records a search event into the recent history: exact-string
// dedup, most recent first, capped at the configured limit. The stamped event
// is emitted to the analytics log; only the query is retained in storage.
func (s *SearchHistoryService) TrackSearch(ctx context.Context, event entities.SearchEvent) {
	if event.Query == "" {
		return
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	observability.LoggerFromContext(ctx).Debug().
		Str("event_id", event.ID).
		Str("query", event.Query).
		Int("result_count", event.ResultCount).
		Str("clicked_result", event.ClickedResult).
		Time("created_at", event.CreatedAt).
		Msg("search tracked")

	recent := s.RecentSearches(ctx)

	updated := make([]string, 0, len(recent)+1)
	updated = append(updated, event.Query)
	for _, q := range recent {
		if q != event.Query {
			updated = append(updated, q)
		}
	}
	if len(updated) > s.limit {
		updated = updated[:s.limit]
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		observability.LoggerFromContext(ctx).Debug().
			Err(err).
			Str("query", event.Query).
			Msg("recent-searches write skipped, storage unavailable")
	}
}

// RecentSearches returns the persisted history, most recent first. An
// unavailable or corrupt store yields an empty list.
func (s *SearchHistoryService) RecentSearches(ctx context.Context) []string {
	recent, err := s.repo.Load(ctx)
	if err != nil {
		return []string{}
	}
	if len(recent) > s.limit {
		recent = recent[:s.limit]
	}
	return recent
}

// ClearRecentSearches drops the persisted history.
func (s *SearchHistoryService) ClearRecentSearches(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		observability.LoggerFromContext(ctx).Debug().
			Err(err).
			Msg("recent-searches clear skipped, storage unavailable")
	}
}

// PopularSearches returns the curated suggestion list.
func (s *SearchHistoryService) PopularSearches() []string {
	out := make([]string, len(popularSearches))
	copy(out, popularSearches)
	return out
}

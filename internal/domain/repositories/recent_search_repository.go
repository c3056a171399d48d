package repositories

import (
	"context"
)

// RecentSearchRepository persists the advisory recent-searches history: a
// short list of query strings, most recent first. Implementations surface
// storage failures; the history service treats them as an empty history and
// never propagates them to the search flow.
type RecentSearchRepository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, queries []string) error
	Clear(ctx context.Context) error
}

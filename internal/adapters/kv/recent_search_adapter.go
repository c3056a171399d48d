package kv

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/scoopworks/creamery-backend/internal/domain/providers"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
)

// RecentSearchAdapter stores the recent-searches history as a JSON string
// array under a single key in a key-value store.
type RecentSearchAdapter struct {
	kv  providers.KeyValueProvider
	key string
}

// NewRecentSearchAdapter creates a recent-search repository over a key-value store.
func NewRecentSearchAdapter(kv providers.KeyValueProvider, key string) repositories.RecentSearchRepository {
	return &RecentSearchAdapter{kv: kv, key: key}
}

// Load returns the persisted history, most recent first. A missing key is an
// empty history, not an error.
func (a *RecentSearchAdapter) Load(ctx context.Context) ([]string, error) {
	payload, err := a.kv.Get(ctx, a.key)
	if err != nil {
		if errors.Is(err, providers.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	var queries []string
	if err := json.Unmarshal(payload, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}

// Save replaces the persisted history. The history never expires; it is
// bounded by length, not by age.
func (a *RecentSearchAdapter) Save(ctx context.Context, queries []string) error {
	payload, err := json.Marshal(queries)
	if err != nil {
		return err
	}
	return a.kv.Set(ctx, a.key, payload, 0)
}

// Clear drops the persisted history.
func (a *RecentSearchAdapter) Clear(ctx context.Context) error {
	return a.kv.Delete(ctx, a.key)
}

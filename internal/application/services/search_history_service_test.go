package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoopworks/creamery-backend/internal/adapters/kv"
	"github.com/scoopworks/creamery-backend/internal/domain/entities"
)

const testHistoryKey = "test:recent-searches"

func newHistoryService() *SearchHistoryService {
	repo := kv.NewRecentSearchAdapter(kv.NewMemoryAdapter(), testHistoryKey)
	return NewSearchHistoryService(repo, 10)
}

func track(svc *SearchHistoryService, query string, count int) {
	svc.TrackSearch(context.Background(), entities.SearchEvent{
		Query:       query,
		ResultCount: count,
		CreatedAt:   time.Now(),
	})
}

func TestTrackSearch_MostRecentFirst(t *testing.T) {
	svc := newHistoryService()
	ctx := context.Background()

	track(svc, "vanilla", 4)
	track(svc, "mango", 3)
	track(svc, "austin", 2)

	assert.Equal(t, []string{"austin", "mango", "vanilla"}, svc.RecentSearches(ctx))
}

func TestTrackSearch_DedupByExactString(t *testing.T) {
	svc := newHistoryService()
	ctx := context.Background()

	track(svc, "vanilla", 4)
	track(svc, "mango", 3)
	track(svc, "vanilla", 4)

	assert.Equal(t, []string{"vanilla", "mango"}, svc.RecentSearches(ctx))

	// different casing is a different entry
	track(svc, "Vanilla", 4)
	assert.Equal(t, []string{"Vanilla", "vanilla", "mango"}, svc.RecentSearches(ctx))
}

func TestTrackSearch_CappedAtLimit(t *testing.T) {
	repo := kv.NewRecentSearchAdapter(kv.NewMemoryAdapter(), testHistoryKey)
	svc := NewSearchHistoryService(repo, 3)
	ctx := context.Background()

	for _, q := range []string{"one", "two", "three", "four", "five"} {
		track(svc, q, 1)
	}

	recent := svc.RecentSearches(ctx)
	require.Len(t, recent, 3)
	assert.Equal(t, []string{"five", "four", "three"}, recent)
}

func TestTrackSearch_EmptyQueryIgnored(t *testing.T) {
	svc := newHistoryService()
	ctx := context.Background()

	track(svc, "", 0)
	assert.Empty(t, svc.RecentSearches(ctx))
}

func TestTrackSearch_EmitsStampedEvent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	svc := newHistoryService()
	svc.TrackSearch(context.Background(), entities.SearchEvent{
		Query:       "mango sorbet",
		ResultCount: 3,
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search tracked", entry["message"])
	assert.Equal(t, "mango sorbet", entry["query"])
	assert.NotEmpty(t, entry["event_id"], "a generated event id is stamped and emitted")
	assert.EqualValues(t, 3, entry["result_count"])
	assert.Contains(t, entry, "created_at")
}

func TestClearRecentSearches(t *testing.T) {
	svc := newHistoryService()
	ctx := context.Background()

	track(svc, "mango", 3)
	require.NotEmpty(t, svc.RecentSearches(ctx))

	svc.ClearRecentSearches(ctx)
	assert.Equal(t, []string{}, svc.RecentSearches(ctx))
}

// unavailableRepo models a disabled backing store: every operation fails.
type unavailableRepo struct{}

func (unavailableRepo) Load(ctx context.Context) ([]string, error) {
	return nil, errors.New("storage unavailable")
}

func (unavailableRepo) Save(ctx context.Context, queries []string) error {
	return errors.New("storage unavailable")
}

func (unavailableRepo) Clear(ctx context.Context) error {
	return errors.New("storage unavailable")
}

func TestHistory_DegradesWhenStorageUnavailable(t *testing.T) {
	svc := NewSearchHistoryService(unavailableRepo{}, 10)
	ctx := context.Background()

	// none of these may panic or surface an error
	track(svc, "vanilla", 4)
	svc.ClearRecentSearches(ctx)

	assert.Equal(t, []string{}, svc.RecentSearches(ctx))
}

func TestRecentSearches_CorruptPayloadDegradesToEmpty(t *testing.T) {
	store := kv.NewMemoryAdapter()
	require.NoError(t, store.Set(context.Background(), testHistoryKey, []byte("{not json"), 0))

	svc := NewSearchHistoryService(kv.NewRecentSearchAdapter(store, testHistoryKey), 10)
	assert.Equal(t, []string{}, svc.RecentSearches(context.Background()))
}

func TestPopularSearches_CuratedAndStable(t *testing.T) {
	svc := newHistoryService()

	first := svc.PopularSearches()
	require.NotEmpty(t, first)

	// tracking usage never changes the curated list
	track(svc, "something uncommon", 0)
	assert.Equal(t, first, svc.PopularSearches())

	// callers cannot mutate the backing list
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", svc.PopularSearches()[0])
}

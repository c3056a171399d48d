package services

import (
	"context"
	"errors"
	"sort"

	"github.com/scoopworks/creamery-backend/internal/domain/entities"
	"github.com/scoopworks/creamery-backend/internal/domain/providers"
	"github.com/scoopworks/creamery-backend/internal/domain/repositories"
	"github.com/scoopworks/creamery-backend/pkg/geo"
)

// DefaultRadiusMiles is the nearby-store search radius when the caller does
// not supply one.
const DefaultRadiusMiles = 10.0

// The two fixed advisory strings for geolocation failures. They are the only
// geolocation errors a user ever sees; a failed request is simply re-invoked
// manually.
const (
	MsgGeolocationUnsupported = "Location services are not available here. Search by city or ZIP code instead."
	MsgPositionUnavailable    = "We couldn't determine your location. Try again, or search by city or ZIP code."
)

// StoreLocatorService answers nearby-store queries over the store catalog and
// fronts the geolocation provider for the locator UI.
type StoreLocatorService struct {
	stores      repositories.StoreRepository
	geolocation providers.GeolocationProvider
}

// NewStoreLocatorService creates a store locator over the store catalog.
// The geolocation provider may be nil when no provider is configured.
func NewStoreLocatorService(stores repositories.StoreRepository, geolocation providers.GeolocationProvider) *StoreLocatorService {
	return &StoreLocatorService{stores: stores, geolocation: geolocation}
}

// Nearby returns stores within radiusMiles of the query point (inclusive
// boundary), nearest first, ties in catalog order. Each result wraps a copy
// of the store; the canonical catalog never carries a distance. An empty
// result is valid, not an error. A radius <= 0 keeps only co-located stores
// when it is exactly zero and falls back to the default when negative.
func (s *StoreLocatorService) Nearby(lat, lng, radiusMiles float64) []entities.NearbyStore {
	if radiusMiles < 0 {
		radiusMiles = DefaultRadiusMiles
	}

	var nearby []entities.NearbyStore
	for _, store := range s.stores.List() {
		d := geo.Distance(lat, lng, store.Location.Latitude, store.Location.Longitude)
		if d <= radiusMiles {
			nearby = append(nearby, entities.NearbyStore{Store: store, DistanceMiles: d})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMiles < nearby[j].DistanceMiles
	})

	return nearby
}

// Locate geocodes a free-text location. On failure it returns nil coordinates
// and one of the two fixed advisory strings; the locator UI stays usable via
// manual text search either way.
func (s *StoreLocatorService) Locate(ctx context.Context, location string) (*providers.Coordinates, string) {
	if s.geolocation == nil {
		return nil, MsgGeolocationUnsupported
	}

	coords, err := s.geolocation.Geocode(ctx, location)
	if err != nil {
		if errors.Is(err, providers.ErrGeolocationUnsupported) {
			return nil, MsgGeolocationUnsupported
		}
		return nil, MsgPositionUnavailable
	}
	return coords, ""
}

package geolocation

import (
	"context"
	"strings"

	"github.com/scoopworks/creamery-backend/internal/domain/providers"
)

// StaticProvider resolves free-text locations against a fixed table of the
// markets the brand operates in. It stands in for a real geocoding service;
// locations outside the table fail with ErrPositionUnavailable rather than
// guessing.
type StaticProvider struct{}

// NewStaticProvider creates a static geolocation provider
func NewStaticProvider() providers.GeolocationProvider {
	return &StaticProvider{}
}

var knownLocations = map[string]providers.Coordinates{
	"austin":       {Latitude: 30.2672, Longitude: -97.7431},
	"houston":      {Latitude: 29.7604, Longitude: -95.3698},
	"dallas":       {Latitude: 32.7767, Longitude: -96.7970},
	"new york":     {Latitude: 40.7128, Longitude: -74.0060},
	"santa monica": {Latitude: 34.0195, Longitude: -118.4912},
	"los angeles":  {Latitude: 34.0522, Longitude: -118.2437},
	"chicago":      {Latitude: 41.8781, Longitude: -87.6298},
}

// Geocode converts a free-text location to coordinates
func (p *StaticProvider) Geocode(ctx context.Context, location string) (*providers.Coordinates, error) {
	needle := strings.ToLower(strings.TrimSpace(location))
	if needle == "" {
		return nil, providers.ErrPositionUnavailable
	}

	for name, coords := range knownLocations {
		if strings.Contains(needle, name) {
			c := coords
			return &c, nil
		}
	}
	return nil, providers.ErrPositionUnavailable
}

// UnsupportedProvider is the configured-off state: every request fails with
// ErrGeolocationUnsupported, which the locator surfaces as its fixed advisory
// string while text search stays usable.
type UnsupportedProvider struct{}

// NewUnsupportedProvider creates a provider with no geolocation capability
func NewUnsupportedProvider() providers.GeolocationProvider {
	return &UnsupportedProvider{}
}

// Geocode always fails with ErrGeolocationUnsupported
func (p *UnsupportedProvider) Geocode(ctx context.Context, location string) (*providers.Coordinates, error) {
	return nil, providers.ErrGeolocationUnsupported
}

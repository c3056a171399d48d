package providers

import (
	"context"
	"errors"
)

// Geolocation failure modes. Handlers translate these into the two fixed
// user-facing advisory strings; geolocation failures never block text search.
var (
	// ErrGeolocationUnsupported means no geolocation capability is configured.
	ErrGeolocationUnsupported = errors.New("geolocation unsupported")

	// ErrPositionUnavailable means the provider could not resolve a position.
	ErrPositionUnavailable = errors.New("position unavailable")
)

// GeolocationProvider resolves free-text locations to coordinates for the
// store locator. There is no retry policy: a failed request is reported once
// and the caller re-invokes manually.
type GeolocationProvider interface {
	// Geocode converts a free-text location to coordinates.
	Geocode(ctx context.Context, location string) (*Coordinates, error)
}

// Coordinates represents geographical coordinates in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

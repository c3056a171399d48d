package providers

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueProvider defines the interface for small key-value persistence,
// such as the recent-searches history. Tests substitute an in-memory fake.
type KeyValueProvider interface {
	// Get retrieves a value. A missing key yields ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with an expiration; expirationSeconds <= 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

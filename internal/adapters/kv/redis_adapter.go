package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scoopworks/creamery-backend/internal/domain/providers"
	redisclient "github.com/scoopworks/creamery-backend/internal/infrastructure/clients/redis"
)

// RedisAdapter implements the KeyValueProvider interface using Redis
type RedisAdapter struct {
	client *redisclient.Client
}

// NewRedisAdapter creates a new Redis key-value adapter
func NewRedisAdapter(client *redisclient.Client) providers.KeyValueProvider {
	return &RedisAdapter{
		client: client,
	}
}

// Get retrieves a value
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := a.client.Client().Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, providers.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from store: %w", err)
	}
	return result, nil
}

// Set stores a value; expirationSeconds <= 0 means no expiry
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	var expiration time.Duration
	if expirationSeconds > 0 {
		expiration = time.Duration(expirationSeconds) * time.Second
	}
	if err := a.client.Client().Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set in store: %w", err)
	}
	return nil
}

// Delete removes a value; deleting a missing key is not an error
func (a *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := a.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete from store: %w", err)
	}
	return nil
}

package redis

import (
	"context"
	"errors"
	"fmt"

	"meal-order-client/internal/ports/output"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "meal-order:session:"

// Compile-time check to ensure RedisSessionStore implements SessionStore interface
var _ output.SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore struct - Output adapter keeping the session in one Redis
// hash per namespace, so Clear is a single DEL.
type RedisSessionStore struct {
	client goredis.UniversalClient
	key    string
}

// NewRedisSessionStore creates a Redis-backed session store for namespace
func NewRedisSessionStore(client goredis.UniversalClient, namespace string) (*RedisSessionStore, error) {
	if client == nil {
		return nil, errors.New("session: redis client not configured")
	}
	if namespace == "" {
		namespace = "default"
	}
	return &RedisSessionStore{
		client: client,
		key:    keyPrefix + namespace,
	}, nil
}

// Get returns the hash field key; a missing field or hash reads as unset
func (r *RedisSessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.HGet(ctx, r.key, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session: failed to read %s: %w", key, err)
	}
	return val, true, nil
}

// Set writes value to the hash field key
func (r *RedisSessionStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.HSet(ctx, r.key, key, value).Err(); err != nil {
		return fmt.Errorf("session: failed to write %s: %w", key, err)
	}
	return nil
}

// Clear deletes the namespace hash. Clearing a missing hash is not an error.
func (r *RedisSessionStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("session: failed to clear: %w", err)
	}
	return nil
}

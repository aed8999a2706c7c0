package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store persisting each namespace as a plain Redis string.
// Values never expire; the collection semantics (append-only tickets,
// whole-list calendar overwrites) are enforced by the repositories.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an existing Redis client.  The prefix namespaces all
// keys so the application can share a Redis database with the cache
// and rate-limit middleware without collisions.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "fan"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(k string) string { return r.prefix + ":" + k }

// Get fetches the blob stored under key, mapping redis.Nil to ErrNotFound.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// Set overwrites the blob stored under key.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

// Delete removes the key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

package kv

import (
	"context"

	redispkg "github.com/breakloop/community-backend/pkg/redis"
)

// RedisStore adapts the shared redis client to the Store interface.
type RedisStore struct {
	client *redispkg.Client
}

// NewRedis wraps a connected redis client.
func NewRedis(client *redispkg.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.client.RecordKey(key))
	if err != nil {
		if redispkg.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.client.RecordKey(key), value, 0)
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.client.RecordKey(key))
}

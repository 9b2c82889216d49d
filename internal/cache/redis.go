package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a redis client. A nil client degrades
// to a pass-through: every Get misses and writes are dropped, so the
// API keeps serving from the database when redis is unreachable.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore; client may be nil
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.client == nil {
		return nil, ErrMiss
	}
	val, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if s.client == nil {
		return nil
	}
	// No TTL: the entry lives until a write invalidates it.
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, key).Err()
}

// Package cache holds the key-value snapshot store backing the post
// listing. The interface is deliberately narrow so the service layer
// can be exercised against an in-memory implementation.
package cache

import (
	"context"
	"errors"
)

// ErrMiss is returned by Get when the key is absent
var ErrMiss = errors.New("cache: miss")

// Store is a minimal key-value snapshot store. Entries have no expiry;
// they live until explicitly deleted.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

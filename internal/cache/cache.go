// Package cache defines the narrow store interface used to cache upstream
// gazetteer and feature lookups.
package cache

import (
	"context"
	"time"
)

// Interface is implemented by the in-memory and Redis backends. Get returns
// (nil, nil) on a miss.
type Interface interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

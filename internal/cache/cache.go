package cache

import (
	"context"
	"time"
)

// Cache is the minimal key-value contract used for short-lived read views.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns ErrMiss when the key does not exist.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value with ttl. Zero or negative ttl persists the key.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// ErrMiss signals a cache miss so callers can tell it apart from transport errors.
var ErrMiss = errMiss{}

type errMiss struct{}

func (e errMiss) Error() string { return "cache: miss" }

package service

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CatalogCache is a best-effort key-value cache in front of the public
// storefront reads. Failures are logged by callers and never fail the
// primary operation.
type CatalogCache interface {
	// Get returns the cached payload for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a payload under key with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Invalidate drops every key under the given prefix.
	Invalidate(ctx context.Context, prefix string) error
}

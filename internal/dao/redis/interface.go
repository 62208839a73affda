// Package redis wraps cache access behind small interfaces so the
// service layer depends on behaviour, not on the go-redis client.
package redis

import (
	"context"
	"time"
)

// CacheService abstracts the cache operations the services need.
type CacheService interface {
	// Set stores a value with a ttl.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get returns the value for key; a missing key yields "" and nil.
	Get(ctx context.Context, key string) (string, error)
	// Delete removes a key if present.
	Delete(ctx context.Context, key string) error
}

// AsyncCacheService adds non-blocking task submission for cache
// write-backs and invalidations that must not slow the request path.
type AsyncCacheService interface {
	CacheService
	// SubmitTask queues action on the worker pool; when the pool is
	// saturated the action runs synchronously instead of being dropped.
	SubmitTask(action func())
}

package cache

import (
	"context"
	"time"
)

// Cache is a concurrency-safe key-value store with per-entry expiry.
// Values are JSON-encoded so the in-memory and Redis backends behave
// identically; writes are idempotent (same key, same recomputed value),
// so a racing duplicate Set is harmless.
type Cache interface {
	// Get unmarshals the cached value into dest and reports whether the
	// key was present and not expired.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores the value under key for the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Package cache stores computed path counts and selected paths so repeated
// queries against the same layout skip the counting pass.
//
// Three backends are provided: [NullCache] disables caching, [FileCache]
// keeps entries under a local directory for the CLI, and [RedisCache] shares
// entries between server replicas. Keys are produced by a [Keyer] from the
// hash of the canonical layout and the query options.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

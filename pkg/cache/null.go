package cache

import (
	"context"
	"time"
)

// NullCache backs --no-cache: every lookup misses and writes are dropped, so
// the runner recomputes counts on each query.
type NullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (*NullCache) Delete(context.Context, string) error { return nil }
func (*NullCache) Close() error { return nil }

// NullCache has no Clear method: `cache clear` reports that caching is
// disabled instead of claiming to have removed something.
var _ Cache = (*NullCache)(nil)

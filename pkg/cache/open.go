package cache

import "context"

// Namespace prefixes every Redis key written by this module.
const Namespace = "stairpath:"

// Open picks a backend: Redis when url is set, otherwise a file cache in dir.
func Open(ctx context.Context, url, dir string) (Cache, error) {
	if url != "" {
		return NewRedisCache(ctx, url, Namespace)
	}
	return NewFileCache(dir)
}

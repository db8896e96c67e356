package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis under a key namespace.
type RedisCache struct {
	client    *redis.Client
	namespace string
}

// NewRedisCache connects to the server named by url
// (redis://[user:pass@]host:port/db) and pings it.
func NewRedisCache(ctx context.Context, url, namespace string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	c := &RedisCache{client: redis.NewClient(opts), namespace: namespace}

	err = waitReachable(ctx, func(ctx context.Context) error {
		return c.client.Ping(ctx).Err()
	})
	if err != nil {
		_ = c.client.Close()
		return nil, err
	}
	return c, nil
}

func (c *RedisCache) key(k string) string { return c.namespace + k }

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(key), data, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

// Clear deletes every key in the namespace. It refuses to run without a
// namespace so that a shared database is never flushed.
func (c *RedisCache) Clear(ctx context.Context) error {
	if c.namespace == "" {
		return errors.New("redis cache: refusing to clear without a namespace")
	}
	iter := c.client.Scan(ctx, 0, c.namespace+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *RedisCache) Close() error { return c.client.Close() }

var (
	_ Cache   = (*RedisCache)(nil)
	_ Clearer = (*RedisCache)(nil)
)

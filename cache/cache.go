package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin read-through JSON wrapper over Redis with a fixed TTL
// per instance. A nil underlying client disables it: every Fetch falls
// straight through to the loader and nothing is stored.
type Cache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func New(rdb *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *Cache) key(k string) string {
	return c.prefix + ":" + k
}

// Get unmarshals the cached value for key into dest. Returns false on a
// miss, on a disabled cache, or on any Redis error.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores value under key for the cache's TTL. Errors are swallowed;
// the cache is best effort.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, c.key(key), raw, c.ttl)
}

// Delete removes key, used by writers to invalidate after a mutation.
func (c *Cache) Delete(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, c.key(key))
}

// Fetch returns the cached value for key or loads it with load, storing
// the result on success.
func (c *Cache) Fetch(ctx context.Context, key string, dest interface{}, load func() (interface{}, error)) error {
	if c.Get(ctx, key, dest) {
		return nil
	}
	value, err := load()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return err
	}
	c.Set(ctx, key, value)
	return nil
}

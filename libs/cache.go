package libs

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	productCachePrefix = "products:"
	productCacheGenKey = productCachePrefix + "gen"
	productCacheTTL    = 5 * time.Minute
)

// ProductCache stores serialized product listings under a generation number.
// Invalidate bumps the generation, so a listing loaded before a write can
// only land under the old generation and is never read again. A nil client
// turns every call into a miss, so the service runs unchanged without Redis.
type ProductCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewProductCache(client *redis.Client, log *logrus.Logger) *ProductCache {
	return &ProductCache{client: client, log: log}
}

// Generation returns the current cache generation. Callers read it once
// before loading from the database and pass it to both Get and Set.
func (c *ProductCache) Generation(ctx context.Context) (int64, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}

	gen, err := c.client.Get(ctx, productCacheGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		c.log.WithError(err).Warn("product cache generation read failed")
		return 0, false
	}
	return gen, true
}

func (c *ProductCache) Get(ctx context.Context, gen int64, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, entryKey(gen, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithError(err).WithField("key", key).Warn("product cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("product cache entry corrupt")
		return false
	}
	return true
}

func (c *ProductCache) Set(ctx context.Context, gen int64, key string, value any) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("product cache encode failed")
		return
	}
	if err := c.client.Set(ctx, entryKey(gen, key), raw, productCacheTTL).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("product cache write failed")
	}
}

// Invalidate retires every cached listing. Old entries expire with their TTL.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Incr(ctx, productCacheGenKey).Err(); err != nil {
		c.log.WithError(err).Warn("product cache invalidation failed")
	}
}

func entryKey(gen int64, key string) string {
	return productCachePrefix + strconv.FormatInt(gen, 10) + ":" + key
}

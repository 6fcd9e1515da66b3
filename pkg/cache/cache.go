package cache

import (
	"context"
	"encoding/json"
	"time"

	"product-catalog/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a thin JSON cache-aside layer over redis. A nil *Cache is valid
// and disables caching, so callers never need to branch on availability.
type Cache struct {
	client *redis.Client
	log    *zap.Logger
}

// NewCache connects to redis when an address is configured. Returns nil (and
// logs a warning) when redis is unconfigured or unreachable; the application
// degrades to uncached reads.
func NewCache(config utils.RedisConfig, log *zap.Logger) *Cache {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, caching disabled", zap.Error(err), zap.String("addr", config.Addr))
		return nil
	}

	log.Info("Redis cache connected", zap.String("addr", config.Addr))
	return &Cache{client: client, log: log}
}

// GetJSON loads and unmarshals a cached value. Returns false on miss or any
// cache failure; cache errors never surface to the caller.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Cache read failed", zap.Error(err), zap.String("key", key))
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Cache entry corrupt, ignoring", zap.Error(err), zap.String("key", key))
		return false
	}

	return true
}

// SetJSON stores a value with a TTL, best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache marshal failed", zap.Error(err), zap.String("key", key))
		return
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}

// Delete drops cached keys, best effort. Used for write-through invalidation.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Cache invalidation failed", zap.Error(err), zap.Strings("keys", keys))
	}
}

// Close releases the underlying client.
func (c *Cache) Close() {
	if c != nil {
		c.client.Close()
	}
}

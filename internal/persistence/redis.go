package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/support-portal/internal/config"
)

const ownerKeyPrefix = "support-portal:owner-name:"

// OwnerNameCache caches resolved owner display names in Redis. The cache is
// optional: with no configured address NewOwnerNameCache returns nil, and a
// nil cache is a no-op on every method.
type OwnerNameCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewOwnerNameCache connects to Redis using the provided configuration.
func NewOwnerNameCache(cfg config.RedisConfig, logger *zap.Logger) *OwnerNameCache {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &OwnerNameCache{client: client, ttl: cfg.OwnerCacheTTL(), logger: logger}
}

// Get returns a cached display name for the owner id.
func (c *OwnerNameCache) Get(ctx context.Context, ownerID string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	name, err := c.client.Get(ctx, ownerKeyPrefix+ownerID).Result()
	if err != nil {
		return "", false
	}
	return name, true
}

// Set stores a resolved display name with the configured TTL. Failures only
// cost a future lookup, so they are logged and dropped.
func (c *OwnerNameCache) Set(ctx context.Context, ownerID, name string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, ownerKeyPrefix+ownerID, name, c.ttl).Err(); err != nil {
		c.logger.Warn("owner cache write failed", zap.Error(err))
	}
}

// Close closes the client.
func (c *OwnerNameCache) Close() {
	if c != nil && c.client != nil {
		_ = c.client.Close()
	}
}

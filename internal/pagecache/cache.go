// Package pagecache caches whole product result pages in Redis. The cache
// is best-effort: every failure degrades to a store read.
package pagecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wearlytic/catalog/internal/domain"
	"github.com/wearlytic/catalog/internal/logger"
)

const (
	keyPrefix         = "catalog:page:"
	connectionTimeout = 2 * time.Second
)

// Cache is a Redis-backed page cache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// New creates a cache client and verifies the connection with a ping.
func New(addr, password string, ttl time.Duration, log logger.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewWithClient(client, ttl, log), nil
}

// NewWithClient wraps an existing Redis client. Used by tests.
func NewWithClient(client *redis.Client, ttl time.Duration, log logger.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

// Get returns the cached page for key, or false on a miss. Errors other
// than a miss are logged and treated as misses.
func (c *Cache) Get(ctx context.Context, key string) (*domain.ProductPage, bool) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Page cache read failed", logger.Error(err), logger.String("key", key))
		}
		return nil, false
	}

	var page domain.ProductPage
	if unmarshalErr := json.Unmarshal(data, &page); unmarshalErr != nil {
		c.logger.Warn("Page cache entry corrupt", logger.Error(unmarshalErr), logger.String("key", key))
		return nil, false
	}

	return &page, true
}

// Set stores a page under key with the configured TTL. Failures are logged
// and otherwise ignored.
func (c *Cache) Set(ctx context.Context, key string, page *domain.ProductPage) {
	data, err := json.Marshal(page)
	if err != nil {
		c.logger.Warn("Page cache encode failed", logger.Error(err), logger.String("key", key))
		return
	}

	if setErr := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); setErr != nil {
		c.logger.Warn("Page cache write failed", logger.Error(setErr), logger.String("key", key))
	}
}

// HealthCheck reports whether Redis is reachable.
func (c *Cache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis unreachable: %w", err)
	}
	return nil
}

package pagecache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearlytic/catalog/internal/domain"
	"github.com/wearlytic/catalog/internal/logger"
	"github.com/wearlytic/catalog/internal/pagecache"
)

func newTestCache(t *testing.T, ttl time.Duration) (*pagecache.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return pagecache.NewWithClient(client, ttl, logger.NewNop()), mr
}

func samplePage() *domain.ProductPage {
	self := "http://localhost:3001/api/products?page=1&per_page=5"
	return &domain.ProductPage{
		Products: []domain.Product{
			{ProductName: "Men Solid Bomber Jacket", Category: "Jackets", Price: "₹1477", Colors: []string{"black"}, Timestamp: 1739500500},
		},
		Pagination: domain.Pagination{
			Total:      1,
			Page:       1,
			PerPage:    5,
			TotalPages: 1,
			Links:      domain.Links{First: self, Last: self, Self: self},
		},
	}
}

func TestCache_Roundtrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	key := "http://localhost:3001/api/products?page=1&per_page=5"
	cache.Set(ctx, key, samplePage())

	got, ok := cache.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, samplePage(), got)
}

func TestCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	_, ok := cache.Get(context.Background(), "never-stored")
	assert.False(t, ok)
}

func TestCache_EntryExpires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "key", samplePage())
	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, "key")
	assert.False(t, ok)
}

func TestCache_CorruptEntryIsAMiss(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)

	require.NoError(t, mr.Set("catalog:page:key", "{not json"))

	_, ok := cache.Get(context.Background(), "key")
	assert.False(t, ok)
}

func TestCache_HealthCheck(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)

	require.NoError(t, cache.HealthCheck(context.Background()))

	mr.Close()
	assert.Error(t, cache.HealthCheck(context.Background()))
}

func TestNew_UnreachableServer(t *testing.T) {
	_, err := pagecache.New("127.0.0.1:1", "", time.Minute, logger.NewNop())
	assert.Error(t, err)
}

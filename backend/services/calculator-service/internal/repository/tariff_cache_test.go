package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chargecalc/backend/services/calculator-service/internal/models"
)

func newTestCache(t *testing.T, ttl time.Duration) (*TariffCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTariffCache(client, ttl), server
}

func TestTariffCacheSaveAndGet(t *testing.T) {
	cache, server := newTestCache(t, 5*time.Minute)
	ctx := context.Background()
	updated := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Save(ctx, &models.Tariff{ID: 7, Name: "Night", PricePerKWh: 0.12, IsActive: true, UpdatedAt: updated}))

	assert.True(t, server.Exists("tariffs:active"))
	assert.Equal(t, 5*time.Minute, server.TTL("tariffs:active"))

	raw, err := server.Get("tariffs:active")
	require.NoError(t, err)
	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "Night", stored["name"])
	assert.InDelta(t, 0.12, stored["price_per_kwh"], 1e-9)

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.InDelta(t, 0.12, got.PricePerKWh, 1e-9)
	assert.True(t, updated.Equal(got.UpdatedAt))
}

func TestTariffCacheExpires(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, cache.Save(ctx, &models.Tariff{ID: 1, PricePerKWh: 0.2}))

	server.FastForward(time.Minute + time.Second)

	_, err := cache.Get(ctx)
	assert.True(t, errors.Is(err, redis.Nil))
}

func TestTariffCacheMissIsRedisNil(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	got, err := cache.Get(context.Background())

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, redis.Nil))
}

func TestTariffCacheCorruptValue(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)
	require.NoError(t, server.Set("tariffs:active", "not json"))

	_, err := cache.Get(context.Background())

	require.Error(t, err)
	assert.False(t, errors.Is(err, redis.Nil))
	assert.Contains(t, err.Error(), "tariff cache: decode")
}

func TestTariffCacheUnavailable(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)
	server.Close()

	_, err := cache.Get(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, redis.Nil))

	err = cache.Save(context.Background(), &models.Tariff{ID: 1})
	assert.ErrorContains(t, err, "tariff cache: set")
}

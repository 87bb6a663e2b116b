package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"chargecalc/backend/services/calculator-service/internal/models"
)

const activeTariffKey = "tariffs:active"

// TariffCache keeps the active tariff in redis so the database is hit once per TTL.
type TariffCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTariffCache returns redis-backed cache.
func NewTariffCache(client *redis.Client, ttl time.Duration) *TariffCache {
	return &TariffCache{client: client, ttl: ttl}
}

// Get returns the cached tariff. A miss wraps redis.Nil.
func (c *TariffCache) Get(ctx context.Context) (*models.Tariff, error) {
	result, err := c.client.Get(ctx, activeTariffKey).Bytes()
	if err != nil {
		return nil, fmt.Errorf("tariff cache: get: %w", err)
	}
	var tariff models.Tariff
	if err := json.Unmarshal(result, &tariff); err != nil {
		return nil, fmt.Errorf("tariff cache: decode %s: %w", activeTariffKey, err)
	}
	return &tariff, nil
}

// Save caches tariff for the configured TTL.
func (c *TariffCache) Save(ctx context.Context, tariff *models.Tariff) error {
	data, err := json.Marshal(tariff)
	if err != nil {
		return fmt.Errorf("tariff cache: encode: %w", err)
	}
	if err := c.client.Set(ctx, activeTariffKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("tariff cache: set: %w", err)
	}
	return nil
}

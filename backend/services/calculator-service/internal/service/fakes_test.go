package service

import (
	"context"

	"github.com/redis/go-redis/v9"

	"chargecalc/backend/services/calculator-service/internal/models"
)

type fakeSource struct {
	tariff *models.Tariff
	err    error
	calls  int
}

func (f *fakeSource) GetActive(ctx context.Context) (*models.Tariff, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tariff, nil
}

type fakeCache struct {
	tariff  *models.Tariff
	getErr  error
	saveErr error
	saved   []*models.Tariff
}

func (f *fakeCache) Get(ctx context.Context) (*models.Tariff, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.tariff == nil {
		return nil, redis.Nil
	}
	return f.tariff, nil
}

func (f *fakeCache) Save(ctx context.Context, tariff *models.Tariff) error {
	f.saved = append(f.saved, tariff)
	return f.saveErr
}

type fixedPrice struct {
	price float64
	err   error
}

func (f fixedPrice) ActiveTariff(ctx context.Context) (*models.Tariff, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Tariff{Name: "fixed", PricePerKWh: f.price, IsActive: true}, nil
}

package service

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chargecalc/backend/services/calculator-service/internal/metrics"
	"chargecalc/backend/services/calculator-service/internal/models"
	"chargecalc/backend/services/calculator-service/internal/repository"
)

// TariffSource loads the active tariff from persistent storage.
type TariffSource interface {
	GetActive(ctx context.Context) (*models.Tariff, error)
}

// TariffCache stores the active tariff between lookups.
type TariffCache interface {
	Get(ctx context.Context) (*models.Tariff, error)
	Save(ctx context.Context, tariff *models.Tariff) error
}

// TariffService provides tariff lookups with fallback: cache, database, then default.
type TariffService struct {
	repo          TariffSource
	cache         TariffCache
	defaultTariff models.Tariff
	logger        *zap.Logger
}

// NewTariffService returns service instance. repo and cache may be nil.
func NewTariffService(repo TariffSource, cache TariffCache, defaultPrice float64, logger *zap.Logger) *TariffService {
	return &TariffService{
		repo:  repo,
		cache: cache,
		defaultTariff: models.Tariff{
			Name:        "Default",
			PricePerKWh: defaultPrice,
			IsActive:    true,
		},
		logger: logger,
	}
}

// ActiveTariff returns currently active tariff or default fallback.
func (s *TariffService) ActiveTariff(ctx context.Context) (*models.Tariff, error) {
	if s.cache != nil {
		tariff, err := s.cache.Get(ctx)
		if err == nil {
			metrics.TariffLookupsTotal.WithLabelValues(metrics.SourceCache).Inc()
			return tariff, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("tariff cache lookup failed", zap.Error(err))
		}
	}

	if s.repo != nil {
		tariff, err := s.repo.GetActive(ctx)
		if err == nil {
			metrics.TariffLookupsTotal.WithLabelValues(metrics.SourceDatabase).Inc()
			s.remember(ctx, tariff)
			return tariff, nil
		}
		if errors.Is(err, repository.ErrNoActiveTariff) {
			s.logger.Debug("no active tariff row, using default")
		} else {
			s.logger.Warn("active tariff lookup failed, using default", zap.Error(err))
		}
		if s.defaultTariff.PricePerKWh <= 0 {
			return nil, err
		}
	}

	if s.defaultTariff.PricePerKWh <= 0 {
		return nil, errors.New("tariff: no tariff configured")
	}
	metrics.TariffLookupsTotal.WithLabelValues(metrics.SourceDefault).Inc()
	tariff := s.defaultTariff
	return &tariff, nil
}

func (s *TariffService) remember(ctx context.Context, tariff *models.Tariff) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Save(ctx, tariff); err != nil {
		s.logger.Warn("failed to cache tariff", zap.Int64("tariff_id", tariff.ID), zap.Error(err))
	}
}

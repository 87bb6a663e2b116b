package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chargecalc/backend/services/calculator-service/internal/models"
)

// ErrNoActiveTariff is returned when the tariffs table has no active row.
var ErrNoActiveTariff = errors.New("tariff: no active tariff")

const activeTariffQuery = `
	SELECT id, name, price_per_kwh, is_active, created_at, updated_at
	FROM tariffs
	WHERE is_active = true
	ORDER BY updated_at DESC
	LIMIT 1
`

// TariffRepository reads the price list. It never writes.
type TariffRepository struct {
	db *sql.DB
}

// NewTariffRepository returns repository.
func NewTariffRepository(db *sql.DB) *TariffRepository {
	return &TariffRepository{db: db}
}

// GetActive returns the most recently updated active tariff.
func (r *TariffRepository) GetActive(ctx context.Context) (*models.Tariff, error) {
	var tariff models.Tariff
	err := r.db.QueryRowContext(ctx, activeTariffQuery).Scan(
		&tariff.ID,
		&tariff.Name,
		&tariff.PricePerKWh,
		&tariff.IsActive,
		&tariff.CreatedAt,
		&tariff.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNoActiveTariff
	case err != nil:
		return nil, fmt.Errorf("tariff: query active: %w", err)
	}
	if tariff.PricePerKWh <= 0 {
		return nil, fmt.Errorf("tariff: active tariff %d has non-positive price %g", tariff.ID, tariff.PricePerKWh)
	}
	return &tariff, nil
}

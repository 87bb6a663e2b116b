package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"chargecalc/backend/services/calculator-service/internal/calculator"
	"chargecalc/backend/services/calculator-service/internal/metrics"
	"chargecalc/backend/services/calculator-service/internal/models"
)

// Channels label where an estimate was requested from.
const (
	ChannelForm = "form"
	ChannelAPI  = "api"
	ChannelLive = "live"
	ChannelCLI  = "cli"
)

// ErrInvalidVoltage reports an explicit supply voltage that is not positive.
var ErrInvalidVoltage = errors.New("voltage must be greater than 0")

// PriceResolver supplies the unit price when the caller does not.
type PriceResolver interface {
	ActiveTariff(ctx context.Context) (*models.Tariff, error)
}

// EstimateService runs the three estimators for one submission.
type EstimateService struct {
	prices PriceResolver
	logger *zap.Logger
}

// NewEstimateService builds service.
func NewEstimateService(prices PriceResolver, logger *zap.Logger) *EstimateService {
	return &EstimateService{prices: prices, logger: logger}
}

// Estimate computes charge times for every candidate amperage, the cost and the environmental impact.
// Calculator errors are returned unchanged so callers can branch with errors.Is.
func (s *EstimateService) Estimate(ctx context.Context, channel string, req models.EstimateRequest) (*models.EstimateResponse, error) {
	voltage := calculator.DefaultVoltage
	if req.Voltage != nil {
		if *req.Voltage <= 0 {
			err := fmt.Errorf("%w: got %g", ErrInvalidVoltage, *req.Voltage)
			s.reject(channel, req, err)
			return nil, err
		}
		voltage = *req.Voltage
	}

	charges, err := calculator.EstimateChargeTimes(calculator.ChargeRequest{
		BatterySizeKWh: req.BatterySizeKWh,
		Voltage:        voltage,
		StartPct:       req.StartPct,
		EndPct:         req.EndPct,
	})
	if err != nil {
		s.reject(channel, req, err)
		return nil, err
	}

	unitPrice, err := s.unitPrice(ctx, req.UnitPrice)
	if err != nil {
		metrics.EstimatesTotal.WithLabelValues(ResultLabel(err), channel).Inc()
		s.logger.Error("unit price unavailable", zap.String("channel", channel), zap.Error(err))
		return nil, err
	}

	cost := calculator.EstimateCost(req.BatterySizeKWh, req.StartPct, req.EndPct, unitPrice)
	impact := calculator.EstimateEnvironmentalImpact(cost.EnergyNeededKWh)

	metrics.EstimatesTotal.WithLabelValues(metrics.ResultOK, channel).Inc()
	s.logger.Debug("estimate computed",
		zap.String("channel", channel),
		zap.Float64("battery_kwh", req.BatterySizeKWh),
		zap.Float64("energy_kwh", cost.EnergyNeededKWh),
		zap.Float64("unit_price", unitPrice),
	)

	return buildResponse(voltage, unitPrice, charges, cost, impact), nil
}

func (s *EstimateService) reject(channel string, req models.EstimateRequest, err error) {
	metrics.EstimatesTotal.WithLabelValues(ResultLabel(err), channel).Inc()
	s.logger.Info("estimate rejected",
		zap.String("channel", channel),
		zap.Float64("battery_kwh", req.BatterySizeKWh),
		zap.Float64("start_pct", req.StartPct),
		zap.Float64("end_pct", req.EndPct),
		zap.Error(err),
	)
}

func (s *EstimateService) unitPrice(ctx context.Context, explicit *float64) (float64, error) {
	if explicit != nil {
		return *explicit, nil
	}
	tariff, err := s.prices.ActiveTariff(ctx)
	if err != nil {
		return 0, err
	}
	return tariff.PricePerKWh, nil
}

// ResultLabel maps an estimate error to its metrics label.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, calculator.ErrInvalidRange):
		return metrics.ResultInvalidRange
	case errors.Is(err, calculator.ErrInvalidDirection):
		return metrics.ResultInvalidDirection
	case errors.Is(err, calculator.ErrDurationOverflow):
		return metrics.ResultDurationOverflow
	case errors.Is(err, ErrInvalidVoltage):
		return metrics.ResultInvalidVoltage
	default:
		return metrics.ResultError
	}
}

// IsInputError reports whether err was caused by the submitted values.
func IsInputError(err error) bool {
	return errors.Is(err, calculator.ErrInvalidRange) ||
		errors.Is(err, calculator.ErrInvalidDirection) ||
		errors.Is(err, calculator.ErrDurationOverflow) ||
		errors.Is(err, ErrInvalidVoltage)
}

func buildResponse(
	voltage, unitPrice float64,
	charges []calculator.ChargeEstimate,
	cost calculator.CostEstimate,
	impact calculator.EnvironmentalEstimate,
) *models.EstimateResponse {
	resp := &models.EstimateResponse{
		Voltage:     voltage,
		ChargeTimes: make([]models.ChargeTimeDTO, 0, len(charges)),
		Cost: models.CostDTO{
			UnitPriceBeforeTax: unitPrice,
			EnergyNeededKWh:    cost.EnergyNeededKWh,
			TotalCost:          cost.TotalCost,
			FullChargeCost:     cost.FullChargeCost,
		},
		Environment: models.EnvironmentDTO{
			RangeKM:            impact.RangeKM,
			EVEmissions:        impact.EVEmissions,
			CO2SavingsPetrolKg: impact.CO2SavingsPetrolKg,
			CO2SavingsDieselKg: impact.CO2SavingsDieselKg,
			NOxSavedPetrolG:    impact.NOxSavedPetrolG,
			NOxSavedDieselG:    impact.NOxSavedDieselG,
			PMSavedPetrolG:     impact.PMSavedPetrolG,
			PMSavedDieselG:     impact.PMSavedDieselG,
		},
	}
	for _, c := range charges {
		resp.ChargeTimes = append(resp.ChargeTimes, models.ChargeTimeDTO{
			Amperage:         c.Amperage,
			PowerKW:          c.PowerKW,
			Duration:         c.Duration.String(),
			TimePer10Percent: c.TimePer10Pct.String(),
		})
	}
	return resp
}

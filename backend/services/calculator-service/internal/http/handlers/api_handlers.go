package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"chargecalc/backend/services/calculator-service/internal/metrics"
	"chargecalc/backend/services/calculator-service/internal/models"
	"chargecalc/backend/services/calculator-service/internal/service"
)

const maxBodyBytes = 1 << 16

// Estimator computes estimates for a submission.
type Estimator interface {
	Estimate(ctx context.Context, channel string, req models.EstimateRequest) (*models.EstimateResponse, error)
}

// TariffProvider resolves the active tariff.
type TariffProvider interface {
	ActiveTariff(ctx context.Context) (*models.Tariff, error)
}

// APIHandlers serves the JSON API.
type APIHandlers struct {
	estimator Estimator
	tariffs   TariffProvider
	logger    *zap.Logger
}

// NewAPIHandlers returns handler struct.
func NewAPIHandlers(estimator Estimator, tariffs TariffProvider, logger *zap.Logger) *APIHandlers {
	return &APIHandlers{estimator: estimator, tariffs: tariffs, logger: logger}
}

// Estimate handles POST /api/estimate.
func (h *APIHandlers) Estimate(w http.ResponseWriter, r *http.Request) {
	req, err := models.DecodeEstimateRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		metrics.EstimatesTotal.WithLabelValues(metrics.ResultBadInput, service.ChannelAPI).Inc()
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	resp, err := h.estimator.Estimate(r.Context(), service.ChannelAPI, req)
	if err != nil {
		if service.IsInputError(err) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("estimate failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "estimate failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Tariff handles GET /api/tariff.
func (h *APIHandlers) Tariff(w http.ResponseWriter, r *http.Request) {
	tariff, err := h.tariffs.ActiveTariff(r.Context())
	if err != nil {
		h.logger.Error("failed to resolve tariff", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "no tariff available")
		return
	}
	writeJSON(w, http.StatusOK, tariff)
}

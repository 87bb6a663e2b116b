package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"chargecalc/backend/services/calculator-service/internal/calculator"
	"chargecalc/backend/services/calculator-service/internal/config"
	"chargecalc/backend/services/calculator-service/internal/http/templates"
	"chargecalc/backend/services/calculator-service/internal/metrics"
	"chargecalc/backend/services/calculator-service/internal/models"
	"chargecalc/backend/services/calculator-service/internal/service"
)

const (
	msgInvalidNumbers   = "Error: Please enter valid numbers"
	msgInvalidRange     = "Error: Percentages must be between 0 and 100"
	msgInvalidDirection = "Error: End percentage must be greater than start percentage"
	msgInvalidVoltage   = "Error: Voltage must be greater than 0"
	msgTooLong          = "Error: Charging time is too long to display, check the battery size"
	msgUnavailable      = "Error: The calculation is unavailable, please try again later"
)

// FormHandlers serves the HTML calculator form.
type FormHandlers struct {
	estimator Estimator
	tariffs   TariffProvider
	defaults  config.Defaults
	logger    *zap.Logger
}

// NewFormHandlers returns handler struct.
func NewFormHandlers(estimator Estimator, tariffs TariffProvider, defaults config.Defaults, logger *zap.Logger) *FormHandlers {
	return &FormHandlers{estimator: estimator, tariffs: tariffs, defaults: defaults, logger: logger}
}

// Show handles GET /.
func (h *FormHandlers) Show(w http.ResponseWriter, r *http.Request) {
	unitPrice := h.defaults.UnitPriceBeforeTax
	if tariff, err := h.tariffs.ActiveTariff(r.Context()); err == nil {
		unitPrice = tariff.PricePerKWh
	} else {
		h.logger.Warn("form rendered with configured price", zap.Error(err))
	}

	h.render(w, http.StatusOK, templates.FormPage{
		Values: templates.FormValues{
			BatterySize:     formatFloat(h.defaults.BatterySizeKWh),
			StartPercentage: formatFloat(h.defaults.StartPercentage),
			EndPercentage:   formatFloat(h.defaults.EndPercentage),
			UnitPrice:       formatFloat(unitPrice),
			Voltage:         formatFloat(calculator.DefaultVoltage),
		},
	})
}

// Submit handles POST /. Either results or a single message are rendered, never both.
func (h *FormHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	values := templates.FormValues{
		BatterySize:     r.PostFormValue("battery_size"),
		StartPercentage: r.PostFormValue("start_percentage"),
		EndPercentage:   r.PostFormValue("end_percentage"),
		UnitPrice:       r.PostFormValue("unit_price"),
		Voltage:         r.PostFormValue("voltage"),
	}
	page := templates.FormPage{Values: values}

	req, err := parseForm(values)
	if err != nil {
		metrics.EstimatesTotal.WithLabelValues(metrics.ResultBadInput, service.ChannelForm).Inc()
		page.Error = msgInvalidNumbers
		h.render(w, http.StatusBadRequest, page)
		return
	}

	resp, err := h.estimator.Estimate(r.Context(), service.ChannelForm, req)
	switch {
	case err == nil:
		page.Result = resp
		h.render(w, http.StatusOK, page)
	case errors.Is(err, calculator.ErrInvalidRange):
		page.Error = msgInvalidRange
		h.render(w, http.StatusUnprocessableEntity, page)
	case errors.Is(err, calculator.ErrInvalidDirection):
		page.Error = msgInvalidDirection
		h.render(w, http.StatusUnprocessableEntity, page)
	case errors.Is(err, service.ErrInvalidVoltage):
		page.Error = msgInvalidVoltage
		h.render(w, http.StatusUnprocessableEntity, page)
	case errors.Is(err, calculator.ErrDurationOverflow):
		page.Error = msgTooLong
		h.render(w, http.StatusUnprocessableEntity, page)
	default:
		h.logger.Error("form estimate failed", zap.Error(err))
		page.Error = msgUnavailable
		h.render(w, http.StatusInternalServerError, page)
	}
}

func (h *FormHandlers) render(w http.ResponseWriter, status int, page templates.FormPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Form.Execute(w, page); err != nil {
		h.logger.Error("failed to render form", zap.Error(err))
	}
}

// parseForm converts the posted fields. A blank unit price or voltage falls back to the active
// tariff or 230 V; a posted voltage is passed through and rejected later when not positive.
func parseForm(values templates.FormValues) (models.EstimateRequest, error) {
	var req models.EstimateRequest
	var err error
	if req.BatterySizeKWh, err = parseFloat(values.BatterySize); err != nil {
		return req, err
	}
	if req.StartPct, err = parseFloat(values.StartPercentage); err != nil {
		return req, err
	}
	if req.EndPct, err = parseFloat(values.EndPercentage); err != nil {
		return req, err
	}
	if strings.TrimSpace(values.UnitPrice) != "" {
		price, err := parseFloat(values.UnitPrice)
		if err != nil {
			return req, err
		}
		req.UnitPrice = &price
	}
	if strings.TrimSpace(values.Voltage) != "" {
		voltage, err := parseFloat(values.Voltage)
		if err != nil {
			return req, err
		}
		req.Voltage = &voltage
	}
	return req, nil
}

func parseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", raw)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

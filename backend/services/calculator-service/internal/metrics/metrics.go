package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "chargecalc"

// Estimate results.
const (
	ResultOK               = "ok"
	ResultInvalidRange     = "invalid_range"
	ResultInvalidDirection = "invalid_direction"
	ResultInvalidVoltage   = "invalid_voltage"
	ResultDurationOverflow = "duration_overflow"
	ResultBadInput         = "bad_input"
	ResultError            = "error"
)

// Tariff sources.
const (
	SourceCache    = "cache"
	SourceDatabase = "database"
	SourceDefault  = "default"
)

var (
	// EstimatesTotal counts estimate submissions by result.
	EstimatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "Number of charge estimates computed, by result",
		},
		[]string{"result", "channel"},
	)

	// TariffLookupsTotal counts where the active tariff was resolved from.
	TariffLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tariff_lookups_total",
			Help:      "Number of active tariff lookups, by source",
		},
		[]string{"source"},
	)

	// LiveConnections tracks open live-estimate websocket connections.
	LiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_connections",
			Help:      "Open live estimate websocket connections",
		},
	)
)

func init() {
	prometheus.MustRegister(EstimatesTotal)
	prometheus.MustRegister(TariffLookupsTotal)
	prometheus.MustRegister(LiveConnections)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

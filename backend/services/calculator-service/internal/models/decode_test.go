package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEstimateRequest(t *testing.T) {
	req, err := DecodeEstimateRequest(strings.NewReader(`{"battery_size_kwh":26.8,"start_pct":20,"end_pct":80,"voltage":240}`))
	require.NoError(t, err)

	assert.InDelta(t, 26.8, req.BatterySizeKWh, 1e-9)
	assert.InDelta(t, 80, req.EndPct, 1e-9)
	assert.Nil(t, req.UnitPrice)
	require.NotNil(t, req.Voltage)
	assert.InDelta(t, 240, *req.Voltage, 1e-9)
}

func TestDecodeEstimateRequestRejects(t *testing.T) {
	bodies := map[string]string{
		"unknown field": `{"battery":26.8,"start_pct":20,"end_pct":80}`,
		"malformed":     `{"battery_size_kwh":`,
		"trailing":      `{"battery_size_kwh":26.8} {}`,
		"wrong type":    `{"battery_size_kwh":"big"}`,
		"empty":         ``,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeEstimateRequest(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

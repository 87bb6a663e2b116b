package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateChargeTime(t *testing.T) {
	tests := []struct {
		name         string
		amperage     float64
		start, end   float64
		powerKW      float64
		duration     string
		timePer10Pct string
	}{
		{name: "standard 10A", amperage: 10, start: 20, end: 80, powerKW: 2.3, duration: "6h 59m", timePer10Pct: "1h 9m"},
		{name: "minimum 6A", amperage: 6, start: 20, end: 80, powerKW: 1.38, duration: "11h 39m", timePer10Pct: "1h 56m"},
		{name: "maximum 16A", amperage: 16, start: 20, end: 80, powerKW: 3.68, duration: "4h 22m", timePer10Pct: "0h 43m"},
		{name: "full cycle", amperage: 10, start: 0, end: 100, powerKW: 2.3, duration: "11h 39m", timePer10Pct: "1h 9m"},
		{name: "small increment", amperage: 10, start: 10, end: 20, powerKW: 2.3, duration: "1h 9m", timePer10Pct: "1h 9m"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EstimateChargeTime(26.8, DefaultVoltage, tc.amperage, tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.amperage, got.Amperage)
			assert.InDelta(t, tc.powerKW, got.PowerKW, 1e-9)
			assert.Equal(t, tc.duration, got.Duration.String())
			assert.Equal(t, tc.timePer10Pct, got.TimePer10Pct.String())
		})
	}
}

func TestEstimateChargeTimeTruncatesMinutes(t *testing.T) {
	// 6.9913h would round to 7h 0m; truncation keeps 6h 59m.
	got, err := EstimateChargeTime(26.8, 230, 10, 20, 80)
	require.NoError(t, err)
	assert.Equal(t, Duration{Hours: 6, Minutes: 59}, got.Duration)

	// 1.942h: 56.5 minutes truncates to 56.
	got, err = EstimateChargeTime(26.8, 230, 6, 20, 80)
	require.NoError(t, err)
	assert.Equal(t, Duration{Hours: 1, Minutes: 56}, got.TimePer10Pct)
}

func TestEstimateChargeTimeErrors(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       error
	}{
		{name: "reversed", start: 80, end: 20, want: ErrInvalidDirection},
		{name: "equal", start: 50, end: 50, want: ErrInvalidDirection},
		{name: "negative start", start: -10, end: 80, want: ErrInvalidRange},
		{name: "end above 100", start: 20, end: 110, want: ErrInvalidRange},
		{name: "range checked first", start: 120, end: -5, want: ErrInvalidRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EstimateChargeTime(26.8, 230, 10, tc.start, tc.end)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEstimateChargeTimeBoundsInclusive(t *testing.T) {
	_, err := EstimateChargeTime(26.8, 230, 10, 0, 100)
	assert.NoError(t, err)
}

func TestEstimateChargeTimes(t *testing.T) {
	got, err := EstimateChargeTimes(ChargeRequest{BatterySizeKWh: 26.8, Voltage: 230, StartPct: 20, EndPct: 80})
	require.NoError(t, err)
	require.Len(t, got, len(CandidateAmperages))

	for i, amperage := range CandidateAmperages {
		assert.Equal(t, amperage, got[i].Amperage)
		assert.InDelta(t, 230*amperage/1000, got[i].PowerKW, 1e-9)
	}
	assert.Equal(t, "8h 44m", got[1].Duration.String())
}

func TestEstimateChargeTimesNoPartialResult(t *testing.T) {
	got, err := EstimateChargeTimes(ChargeRequest{BatterySizeKWh: 26.8, Voltage: 230, StartPct: 80, EndPct: 20})
	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.Nil(t, got)
}

func TestEstimateChargeTimeRejectsUnrepresentableDurations(t *testing.T) {
	tests := []struct {
		name    string
		battery float64
		voltage float64
	}{
		{name: "huge battery", battery: 1e20, voltage: 230},
		{name: "near zero voltage", battery: 26.8, voltage: 1e-300},
		{name: "zero voltage", battery: 26.8, voltage: 0},
		{name: "zero battery and voltage", battery: 0, voltage: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EstimateChargeTime(tc.battery, tc.voltage, 6, 0, 100)
			assert.ErrorIs(t, err, ErrDurationOverflow)
			assert.Equal(t, ChargeEstimate{}, got)
		})
	}
}

func TestEstimateChargeTimeLargeButRepresentable(t *testing.T) {
	got, err := EstimateChargeTime(1e6, 230, 10, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, 434782, got.Duration.Hours)
	assert.Equal(t, 36, got.Duration.Minutes)
}

package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateEnvironmentalImpact(t *testing.T) {
	got := EstimateEnvironmentalImpact(16.08)

	assert.InDelta(t, 80.4, got.RangeKMValue, 1e-9)
	assert.InDelta(t, 3.5376, got.EVEmissionsKg, 1e-9)
	assert.Equal(t, "80.4", got.RangeKM)
	assert.Equal(t, "3.54 kg", got.EVEmissions)
	assert.Equal(t, "6.11", got.CO2SavingsPetrolKg)
	assert.Equal(t, "5.31", got.CO2SavingsDieselKg)
	assert.Equal(t, "4.82", got.NOxSavedPetrolG)
	assert.Equal(t, "6.43", got.NOxSavedDieselG)
	assert.Equal(t, "0.36", got.PMSavedPetrolG)
	assert.Equal(t, "0.36", got.PMSavedDieselG)
}

func TestEstimateEnvironmentalImpactGrams(t *testing.T) {
	got := EstimateEnvironmentalImpact(2.68)

	assert.Equal(t, "589.6 g", got.EVEmissions)
	assert.Equal(t, "13.4", got.RangeKM)
}

func TestEstimateEnvironmentalImpactNegativeEnergy(t *testing.T) {
	got := EstimateEnvironmentalImpact(-16.08)

	assert.Equal(t, "-80.4", got.RangeKM)
	assert.Equal(t, "-6.11", got.CO2SavingsPetrolKg)
}

func TestFormatEmissions(t *testing.T) {
	tests := []struct {
		kg   float64
		want string
	}{
		{kg: 0, want: "0.0 g"},
		{kg: 0.5896, want: "589.6 g"},
		{kg: 0.9999, want: "999.9 g"},
		{kg: 1, want: "1.00 kg"},
		{kg: 3.5376, want: "3.54 kg"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatEmissions(tc.kg), "FormatEmissions(%v)", tc.kg)
	}
}

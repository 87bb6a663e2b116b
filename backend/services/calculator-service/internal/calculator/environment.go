package calculator

import "fmt"

const (
	GridCarbonIntensityKgPerKWh = 0.220
	EVConsumptionKWhPerKM       = 0.2

	PetrolCO2KgPerKM = 0.120
	DieselCO2KgPerKM = 0.110

	PetrolNOxMgPerKM = 60.0
	DieselNOxMgPerKM = 80.0

	PetrolPMMgPerKM = 4.5
	DieselPMMgPerKM = 4.5

	milligramsPerGram = 1000.0
	gramsPerKilogram  = 1000.0
)

// EnvironmentalEstimate compares EV emissions with petrol and diesel cars over the same distance.
// Savings may be negative; they are not clamped.
type EnvironmentalEstimate struct {
	RangeKMValue  float64
	EVEmissionsKg float64

	RangeKM            string
	EVEmissions        string
	CO2SavingsPetrolKg string
	CO2SavingsDieselKg string
	NOxSavedPetrolG    string
	NOxSavedDieselG    string
	PMSavedPetrolG     string
	PMSavedDieselG     string
}

// EstimateEnvironmentalImpact derives range and emission savings from the energy charged.
func EstimateEnvironmentalImpact(energyNeededKWh float64) EnvironmentalEstimate {
	rangeKM := energyNeededKWh / EVConsumptionKWhPerKM
	evKg := energyNeededKWh * GridCarbonIntensityKgPerKWh

	petrolKg := rangeKM * PetrolCO2KgPerKM
	dieselKg := rangeKM * DieselCO2KgPerKM

	return EnvironmentalEstimate{
		RangeKMValue:       rangeKM,
		EVEmissionsKg:      evKg,
		RangeKM:            fmt.Sprintf("%.1f", rangeKM),
		EVEmissions:        FormatEmissions(evKg),
		CO2SavingsPetrolKg: fmt.Sprintf("%.2f", petrolKg-evKg),
		CO2SavingsDieselKg: fmt.Sprintf("%.2f", dieselKg-evKg),
		NOxSavedPetrolG:    fmt.Sprintf("%.2f", pollutantGrams(rangeKM, PetrolNOxMgPerKM)),
		NOxSavedDieselG:    fmt.Sprintf("%.2f", pollutantGrams(rangeKM, DieselNOxMgPerKM)),
		PMSavedPetrolG:     fmt.Sprintf("%.2f", pollutantGrams(rangeKM, PetrolPMMgPerKM)),
		PMSavedDieselG:     fmt.Sprintf("%.2f", pollutantGrams(rangeKM, DieselPMMgPerKM)),
	}
}

// FormatEmissions switches to grams below one kilogram.
func FormatEmissions(kg float64) string {
	if kg < 1 {
		return fmt.Sprintf("%.1f g", kg*gramsPerKilogram)
	}
	return fmt.Sprintf("%.2f kg", kg)
}

func pollutantGrams(rangeKM, mgPerKM float64) float64 {
	return rangeKM * mgPerKM / milligramsPerGram
}

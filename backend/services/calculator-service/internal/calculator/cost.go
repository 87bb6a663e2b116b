package calculator

import "fmt"

// TaxMultiplier applies the fixed 20% VAT.
const TaxMultiplier = 1.20

// CostRequest describes the energy purchase to price.
type CostRequest struct {
	BatterySizeKWh     float64
	StartPct           float64
	EndPct             float64
	UnitPriceBeforeTax float64
}

// CostEstimate holds the energy needed and tax-inclusive costs.
type CostEstimate struct {
	EnergyNeededKWh float64
	TotalCost       string
	FullChargeCost  string
}

// EstimateCost prices the requested range and a full 0-100% charge.
// Percentages are not validated here; a negative range yields a negative cost.
func EstimateCost(batterySizeKWh, startPct, endPct, unitPriceBeforeTax float64) CostEstimate {
	energyNeeded := energyBetween(batterySizeKWh, startPct, endPct)
	return CostEstimate{
		EnergyNeededKWh: energyNeeded,
		TotalCost:       FormatEuro(energyNeeded * unitPriceBeforeTax * TaxMultiplier),
		FullChargeCost:  FormatEuro(batterySizeKWh * unitPriceBeforeTax * TaxMultiplier),
	}
}

// Estimate is EstimateCost for a CostRequest.
func (r CostRequest) Estimate() CostEstimate {
	return EstimateCost(r.BatterySizeKWh, r.StartPct, r.EndPct, r.UnitPriceBeforeTax)
}

// FormatEuro renders an amount as "€3.17".
func FormatEuro(amount float64) string {
	return fmt.Sprintf("€%.2f", amount)
}

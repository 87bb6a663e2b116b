package models

// EstimateRequest is the JSON payload for the API and the live websocket.
// UnitPrice and Voltage are optional; the active tariff and 230 V are used when omitted.
// An explicit voltage must be positive.
type EstimateRequest struct {
	BatterySizeKWh float64  `json:"battery_size_kwh"`
	StartPct       float64  `json:"start_pct"`
	EndPct         float64  `json:"end_pct"`
	UnitPrice      *float64 `json:"unit_price,omitempty"`
	Voltage        *float64 `json:"voltage,omitempty"`
}

// ChargeTimeDTO is one row of the charging-time table.
type ChargeTimeDTO struct {
	Amperage         float64 `json:"amperage"`
	PowerKW          float64 `json:"power_kw"`
	Duration         string  `json:"duration"`
	TimePer10Percent string  `json:"time_per_10_percent"`
}

// CostDTO mirrors calculator.CostEstimate.
type CostDTO struct {
	UnitPriceBeforeTax float64 `json:"unit_price_before_tax"`
	EnergyNeededKWh    float64 `json:"energy_needed_kwh"`
	TotalCost          string  `json:"total_cost"`
	FullChargeCost     string  `json:"full_charge_cost"`
}

// EnvironmentDTO mirrors calculator.EnvironmentalEstimate.
type EnvironmentDTO struct {
	RangeKM            string `json:"ev_range_km"`
	EVEmissions        string `json:"ev_emissions"`
	CO2SavingsPetrolKg string `json:"co2_savings_petrol_kg"`
	CO2SavingsDieselKg string `json:"co2_savings_diesel_kg"`
	NOxSavedPetrolG    string `json:"nox_saved_petrol_g"`
	NOxSavedDieselG    string `json:"nox_saved_diesel_g"`
	PMSavedPetrolG     string `json:"pm_saved_petrol_g"`
	PMSavedDieselG     string `json:"pm_saved_diesel_g"`
}

// EstimateResponse bundles all three estimates for one submission.
type EstimateResponse struct {
	Voltage     float64         `json:"voltage"`
	ChargeTimes []ChargeTimeDTO `json:"charge_times"`
	Cost        CostDTO         `json:"cost"`
	Environment EnvironmentDTO  `json:"environment"`
}

package calculator

import (
	"fmt"
	"math"
)

// CandidateAmperages lists the charging currents evaluated for every request.
var CandidateAmperages = []float64{6, 8, 10, 16}

// DefaultVoltage is the EU single-phase mains voltage.
const DefaultVoltage = 230.0

// ChargeRequest describes a single charging window.
type ChargeRequest struct {
	BatterySizeKWh float64
	Voltage        float64
	StartPct       float64
	EndPct         float64
}

// Duration is a truncated hours/minutes pair.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func (d Duration) String() string {
	return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
}

// ChargeEstimate is the result for one charging current.
type ChargeEstimate struct {
	Amperage     float64
	PowerKW      float64
	Duration     Duration
	TimePer10Pct Duration
}

// EstimateChargeTime returns how long charging from startPct to endPct takes at the given current.
func EstimateChargeTime(batterySizeKWh, voltage, amperage, startPct, endPct float64) (ChargeEstimate, error) {
	if !withinPercent(startPct) || !withinPercent(endPct) {
		return ChargeEstimate{}, fmt.Errorf("%w: start %g, end %g", ErrInvalidRange, startPct, endPct)
	}
	if endPct <= startPct {
		return ChargeEstimate{}, fmt.Errorf("%w: start %g, end %g", ErrInvalidDirection, startPct, endPct)
	}

	powerKW := (voltage * amperage) / 1000
	energyNeeded := energyBetween(batterySizeKWh, startPct, endPct)

	duration, err := splitHours(energyNeeded / powerKW)
	if err != nil {
		return ChargeEstimate{}, fmt.Errorf("%w: %g kWh at %g kW", err, energyNeeded, powerKW)
	}
	per10, err := splitHours((batterySizeKWh * 0.1) / powerKW)
	if err != nil {
		return ChargeEstimate{}, fmt.Errorf("%w: %g kWh at %g kW", err, batterySizeKWh*0.1, powerKW)
	}

	return ChargeEstimate{
		Amperage:     amperage,
		PowerKW:      powerKW,
		Duration:     duration,
		TimePer10Pct: per10,
	}, nil
}

// EstimateChargeTimes evaluates every candidate amperage. No partial result is returned on error.
func EstimateChargeTimes(req ChargeRequest) ([]ChargeEstimate, error) {
	estimates := make([]ChargeEstimate, 0, len(CandidateAmperages))
	for _, amperage := range CandidateAmperages {
		est, err := EstimateChargeTime(req.BatterySizeKWh, req.Voltage, amperage, req.StartPct, req.EndPct)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, est)
	}
	return estimates, nil
}

func withinPercent(v float64) bool {
	return v >= 0 && v <= 100
}

func energyBetween(batterySizeKWh, startPct, endPct float64) float64 {
	return batterySizeKWh * (endPct - startPct) / 100
}

// maxHours is the first float64 that no longer converts to an int.
const maxHours = float64(math.MaxInt64)

// splitHours truncates, never rounds: 6.99h is 6h 59m.
func splitHours(hours float64) (Duration, error) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || math.Abs(hours) >= maxHours {
		return Duration{}, ErrDurationOverflow
	}
	whole := int(hours)
	return Duration{
		Hours:   whole,
		Minutes: int((hours - float64(whole)) * 60),
	}, nil
}

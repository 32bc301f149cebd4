package forecast

import "math"

// Fixed installation parameters for the energy estimate: a 2.5 kW array
// at 20% effective efficiency, i.e. 0.5 kWh per sunshine hour.
const (
	installedPowerKW = 2.5
	panelEfficiency  = 0.2
)

// EstimateEnergy returns the estimated solar energy production in kWh for
// the given number of sunshine hours. Negative input is clamped to zero,
// so the result is never negative.
func EstimateEnergy(sunshineHours float64) float64 {
	if sunshineHours < 0 {
		sunshineHours = 0
	}

	return round2(installedPowerKW * sunshineHours * panelEfficiency)
}

// round2 rounds half up to two decimal places.
func round2(v float64) float64 {
	return math.Floor(v*100.0+0.5) / 100.0
}

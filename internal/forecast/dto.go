package forecast

import (
	"fmt"
	"strings"
	"time"
)

const wireDateLayout = "02/01/2006"

// Date renders as dd/mm/yyyy on the wire.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(wireDateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(wireDateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// LocationRequest is the inbound coordinate pair. Pointer fields
// distinguish absent values from zeroes.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// DailyForecastEntry is one day of the outward-facing forecast: the
// canonical daily record plus the derived energy estimate.
type DailyForecastEntry struct {
	Date            Date    `json:"date"`
	WeatherCode     int     `json:"weatherCode"`
	MinTemperature  float64 `json:"minTemperature"`
	MaxTemperature  float64 `json:"maxTemperature"`
	EnergyGenerated float64 `json:"energyGenerated"`
	Pressure        float64 `json:"pressure"`
}

// ForecastResponse wraps the ordered per-day forecast entries.
type ForecastResponse struct {
	Forecast []DailyForecastEntry `json:"forecast"`
}

// SummaryResponse carries the aggregate statistics for the forecast window.
type SummaryResponse struct {
	AveragePressure      float64 `json:"averagePressure"`
	AverageSunshineHours float64 `json:"averageSunshineHours"`
	MinTemperature       float64 `json:"minTemperature"`
	MaxTemperature       float64 `json:"maxTemperature"`
	WeekSummary          string  `json:"weekSummary"`
}

package forecast

import (
	"context"
	"time"
)

// ForecastPayload mirrors the Open-Meteo daily forecast response.
// Unknown top-level fields are ignored by the JSON decoder.
type ForecastPayload struct {
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	Timezone   string      `json:"timezone"`
	DailyUnits *DailyUnits `json:"daily_units"`
	Daily      *Daily      `json:"daily"`
}

// DailyUnits describes the units of the daily arrays. It is decoded for
// completeness but not used by the mapping logic.
type DailyUnits struct {
	Time                string `json:"time"`
	TemperatureMax      string `json:"temperature_2m_max"`
	TemperatureMin      string `json:"temperature_2m_min"`
	WeatherCode         string `json:"weather_code"`
	SunshineDuration    string `json:"sunshine_duration"`
	SurfacePressureMean string `json:"surface_pressure_mean"`
}

// Daily holds the parallel arrays of the provider response, indexed by day.
// Time is the canonical array; every other array may be shorter than Time
// or contain nulls, so values decode into pointers.
type Daily struct {
	Time                []string   `json:"time"`
	TemperatureMax      []*float64 `json:"temperature_2m_max"`
	TemperatureMin      []*float64 `json:"temperature_2m_min"`
	WeatherCode         []*int     `json:"weather_code"`
	SunshineDuration    []*float64 `json:"sunshine_duration"`
	SurfacePressureMean []*float64 `json:"surface_pressure_mean"`
}

// DailyRecord is the canonical per-day weather model produced by the
// mapper. SunshineHours is expressed in hours, pressure in hPa and
// temperatures in degrees Celsius.
type DailyRecord struct {
	Date           time.Time
	WeatherCode    int
	MinTemperature float64
	MaxTemperature float64
	SunshineHours  float64
	Pressure       float64
}

// Provider abstracts the upstream weather data source.
type Provider interface {
	Name() string
	FetchForecast(ctx context.Context, lat, lon float64) (*ForecastPayload, error)
}

package forecast

import "time"

const secondsPerHour = 3600.0

// Defaults applied per field when the source array is missing, too short,
// or the element itself is null.
const (
	defaultWeatherCode      = 0
	defaultTemperature      = 0.0
	defaultSunshineDuration = 0.0
	defaultPressure         = 1013.25
)

const dateLayout = "2006-01-02"

// MapDailyRecords converts the parallel-array payload into an ordered
// sequence of daily records, preserving the provider's day ordering.
// Time is the canonical array; all other arrays are treated as optional
// and possibly shorter. A day whose date fails to parse is skipped; only
// a total absence of valid days fails the mapping.
func MapDailyRecords(payload *ForecastPayload) ([]DailyRecord, error) {
	daily := payload.Daily
	records := make([]DailyRecord, 0, len(daily.Time))

	for i, raw := range daily.Time {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			// One bad upstream element must not fail the whole request.
			continue
		}

		records = append(records, DailyRecord{
			Date:           date,
			WeatherCode:    valueOrDefault(daily.WeatherCode, i, defaultWeatherCode),
			MinTemperature: valueOrDefault(daily.TemperatureMin, i, defaultTemperature),
			MaxTemperature: valueOrDefault(daily.TemperatureMax, i, defaultTemperature),
			SunshineHours:  valueOrDefault(daily.SunshineDuration, i, defaultSunshineDuration) / secondsPerHour,
			Pressure:       valueOrDefault(daily.SurfacePressureMean, i, defaultPressure),
		})
	}

	if len(records) == 0 {
		return nil, NewProcessingError("No valid weather data could be processed", nil)
	}

	return records, nil
}

// valueOrDefault returns the element at index when present and non-null,
// otherwise the default. It never indexes out of bounds.
func valueOrDefault[T any](values []*T, index int, def T) T {
	if index < len(values) && values[index] != nil {
		return *values[index]
	}
	return def
}

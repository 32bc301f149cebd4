package forecast

// Week classification labels. The service ships with a single fixed
// locale for the summary string.
const (
	WeekSummaryRain   = "z opadami"
	WeekSummaryNoRain = "bez opadów"
)

// rainyDaysThreshold is the number of precipitation days in the forecast
// window at which the week is classified as rainy.
const rainyDaysThreshold = 4

// AveragePressure returns the mean pressure over all records, rounded to
// two decimal places, or 0.0 for empty input.
func AveragePressure(records []DailyRecord) float64 {
	if len(records) == 0 {
		return 0.0
	}

	var sum float64
	for _, r := range records {
		sum += r.Pressure
	}

	return round2(sum / float64(len(records)))
}

// AverageSunshineHours returns the mean sunshine hours over all records,
// rounded to two decimal places, or 0.0 for empty input.
func AverageSunshineHours(records []DailyRecord) float64 {
	if len(records) == 0 {
		return 0.0
	}

	var sum float64
	for _, r := range records {
		sum += r.SunshineHours
	}

	return round2(sum / float64(len(records)))
}

// MinTemperature returns the lowest minimum temperature, unrounded, or
// 0.0 for empty input.
func MinTemperature(records []DailyRecord) float64 {
	if len(records) == 0 {
		return 0.0
	}

	min := records[0].MinTemperature
	for _, r := range records[1:] {
		if r.MinTemperature < min {
			min = r.MinTemperature
		}
	}

	return min
}

// MaxTemperature returns the highest maximum temperature, unrounded, or
// 0.0 for empty input.
func MaxTemperature(records []DailyRecord) float64 {
	if len(records) == 0 {
		return 0.0
	}

	max := records[0].MaxTemperature
	for _, r := range records[1:] {
		if r.MaxTemperature > max {
			max = r.MaxTemperature
		}
	}

	return max
}

// WeekSummary classifies the week as rainy when at least four days carry
// a precipitation weather code.
func WeekSummary(records []DailyRecord) string {
	rainyDays := 0
	for _, r := range records {
		if isRainyWeatherCode(r.WeatherCode) {
			rainyDays++
		}
	}

	if rainyDays >= rainyDaysThreshold {
		return WeekSummaryRain
	}
	return WeekSummaryNoRain
}

// isRainyWeatherCode reports whether the WMO weather code denotes
// drizzle, rain, snow or showers.
func isRainyWeatherCode(code int) bool {
	return (code >= 51 && code <= 67) ||
		(code >= 71 && code <= 77) ||
		(code >= 80 && code <= 99)
}

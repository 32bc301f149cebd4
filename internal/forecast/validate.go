package forecast

// ValidateCoordinates checks that both coordinates are present and within
// valid ranges. Boundary values (exactly ±90, ±180) are accepted.
func ValidateCoordinates(latitude, longitude *float64) error {
	if latitude == nil || longitude == nil {
		return NewValidationError("Latitude and longitude cannot be null")
	}

	if *latitude < -90.0 || *latitude > 90.0 {
		return NewValidationError("Latitude must be between -90.0 and 90.0")
	}

	if *longitude < -180.0 || *longitude > 180.0 {
		return NewValidationError("Longitude must be between -180.0 and 180.0")
	}

	return nil
}

// ValidateResponse checks that the provider payload has the minimum usable
// shape. A structurally unusable payload is the same failure category as a
// transport failure.
func ValidateResponse(payload *ForecastPayload) error {
	if payload == nil {
		return NewProviderError("No response received from Open-Meteo API", nil)
	}

	if payload.Daily == nil {
		return NewProviderError("No daily weather data received from Open-Meteo API", nil)
	}

	if len(payload.Daily.Time) == 0 {
		return NewProviderError("No time data received from API", nil)
	}

	return nil
}

package forecast

import (
	"context"
	"errors"
)

// Service composes validation, the provider client, mapping and
// aggregation into the two supported use cases.
type Service struct {
	provider Provider
}

// NewService creates a new Service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// GetForecast returns the per-day forecast for the requested coordinates,
// each entry augmented with the derived solar energy estimate.
func (s *Service) GetForecast(ctx context.Context, req LocationRequest) (*ForecastResponse, error) {
	records, err := s.fetchDailyRecords(ctx, req)
	if err != nil {
		return nil, err
	}

	entries := make([]DailyForecastEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, DailyForecastEntry{
			Date:            Date{rec.Date},
			WeatherCode:     rec.WeatherCode,
			MinTemperature:  rec.MinTemperature,
			MaxTemperature:  rec.MaxTemperature,
			EnergyGenerated: EstimateEnergy(rec.SunshineHours),
			Pressure:        rec.Pressure,
		})
	}

	return &ForecastResponse{Forecast: entries}, nil
}

// GetSummary returns aggregate statistics and the week classification for
// the requested coordinates.
func (s *Service) GetSummary(ctx context.Context, req LocationRequest) (*SummaryResponse, error) {
	records, err := s.fetchDailyRecords(ctx, req)
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		AveragePressure:      AveragePressure(records),
		AverageSunshineHours: AverageSunshineHours(records),
		MinTemperature:       MinTemperature(records),
		MaxTemperature:       MaxTemperature(records),
		WeekSummary:          WeekSummary(records),
	}, nil
}

// fetchDailyRecords runs the shared pipeline: presence check, range
// validation, provider fetch, response validation, mapping. The provider
// is never contacted when validation fails.
func (s *Service) fetchDailyRecords(ctx context.Context, req LocationRequest) ([]DailyRecord, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, NewValidationError("Latitude and longitude are required")
	}

	if err := ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	payload, err := s.provider.FetchForecast(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		return nil, classify(err)
	}

	if err := ValidateResponse(payload); err != nil {
		return nil, err
	}

	records, err := MapDailyRecords(payload)
	if err != nil {
		return nil, classify(err)
	}

	return records, nil
}

// classify keeps declared failure kinds intact and wraps anything else
// into a ProcessingError so callers never see raw internal errors.
func classify(err error) error {
	var (
		validationErr *ValidationError
		providerErr   *ProviderError
		processingErr *ProcessingError
	)
	if errors.As(err, &validationErr) || errors.As(err, &providerErr) || errors.As(err, &processingErr) {
		return err
	}

	return NewProcessingError("Failed to process weather data: "+err.Error(), err)
}

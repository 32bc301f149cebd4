package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkarbownik/weather-forecast-api/internal/forecast"
	"github.com/pkarbownik/weather-forecast-api/internal/metrics"
)

// OpenMeteoConfig holds the provider endpoint settings. Zero values fall
// back to the Open-Meteo production defaults.
type OpenMeteoConfig struct {
	BaseURL      string
	ForecastPath string
	DailyParams  string
	Timezone     string
	ForecastDays int
}

const (
	defaultBaseURL      = "https://api.open-meteo.com"
	defaultForecastPath = "/v1/forecast"
	defaultDailyParams  = "temperature_2m_max,temperature_2m_min,weather_code,surface_pressure_mean,sunshine_duration"
	defaultTimezone     = "auto"
	defaultForecastDays = 7
)

// OpenMeteoProvider implements the forecast.Provider interface against the
// Open-Meteo daily forecast endpoint. The call is a single outbound read
// per request; the HTTP client's timeout bounds it.
type OpenMeteoProvider struct {
	name   string
	cfg    OpenMeteoConfig
	client *http.Client
}

func NewOpenMeteoProvider(client *http.Client, cfg OpenMeteoConfig) *OpenMeteoProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.ForecastPath == "" {
		cfg.ForecastPath = defaultForecastPath
	}
	if cfg.DailyParams == "" {
		cfg.DailyParams = defaultDailyParams
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultTimezone
	}
	if cfg.ForecastDays <= 0 {
		cfg.ForecastDays = defaultForecastDays
	}

	return &OpenMeteoProvider{
		name:   "openmeteo",
		cfg:    cfg,
		client: client,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// FetchForecast issues one outbound read for the given coordinates. Any
// transport failure, timeout, non-2xx status or decode error is wrapped
// into a ProviderError carrying the underlying cause.
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, lat, lon float64) (*forecast.ForecastPayload, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("daily", p.cfg.DailyParams)
	values.Set("timezone", p.cfg.Timezone)
	values.Set("forecast_days", strconv.Itoa(p.cfg.ForecastDays))

	u := fmt.Sprintf("%s%s?%s", p.cfg.BaseURL, p.cfg.ForecastPath, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, forecast.NewProviderError("Failed to fetch weather data", err)
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	metrics.ProviderLatency.WithLabelValues(p.name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues(p.name, "transport_error").Inc()
		return nil, forecast.NewProviderError("Failed to fetch weather data", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ProviderCallsTotal.WithLabelValues(p.name, strconv.Itoa(resp.StatusCode)).Inc()
		return nil, forecast.NewProviderError(
			fmt.Sprintf("Failed to fetch weather data: unexpected status code %d", resp.StatusCode), nil)
	}

	var payload forecast.ForecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderCallsTotal.WithLabelValues(p.name, "decode_error").Inc()
		return nil, forecast.NewProviderError("Failed to fetch weather data", err)
	}

	metrics.ProviderCallsTotal.WithLabelValues(p.name, "ok").Inc()
	return &payload, nil
}

package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarbownik/weather-forecast-api/internal/forecast"
)

const openMeteoFixture = `{
	"latitude": 52.2297,
	"longitude": 21.0122,
	"timezone": "Europe/Warsaw",
	"daily_units": {
		"time": "iso8601",
		"temperature_2m_max": "°C",
		"temperature_2m_min": "°C",
		"weather_code": "wmo code",
		"sunshine_duration": "s",
		"surface_pressure_mean": "hPa"
	},
	"daily": {
		"time": ["2025-06-17", "2025-06-18"],
		"temperature_2m_max": [22.8, null],
		"temperature_2m_min": [14.3, 16.7],
		"weather_code": [3, 51],
		"sunshine_duration": [31536.0, 38160.0],
		"surface_pressure_mean": [1008.0, 1005.6]
	}
}`

func TestFetchForecastBuildsExpectedQuery(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"latitude":      q.Get("latitude"),
			"longitude":     q.Get("longitude"),
			"daily":         q.Get("daily"),
			"timezone":      q.Get("timezone"),
			"forecast_days": q.Get("forecast_days"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(openMeteoFixture))
	}))
	defer srv.Close()

	provider := NewOpenMeteoProvider(srv.Client(), OpenMeteoConfig{BaseURL: srv.URL})

	payload, err := provider.FetchForecast(context.Background(), 52.2297, 21.0122)
	require.NoError(t, err)

	assert.Equal(t, "52.2297", gotQuery["latitude"])
	assert.Equal(t, "21.0122", gotQuery["longitude"])
	assert.Equal(t, defaultDailyParams, gotQuery["daily"])
	assert.Equal(t, "auto", gotQuery["timezone"])
	assert.Equal(t, "7", gotQuery["forecast_days"])

	require.NotNil(t, payload.Daily)
	require.Len(t, payload.Daily.Time, 2)
	assert.Equal(t, "2025-06-17", payload.Daily.Time[0])

	// Nulls in the parallel arrays decode as nil pointers.
	require.Len(t, payload.Daily.TemperatureMax, 2)
	assert.Nil(t, payload.Daily.TemperatureMax[1])
	require.NotNil(t, payload.Daily.TemperatureMax[0])
	assert.Equal(t, 22.8, *payload.Daily.TemperatureMax[0])
}

func TestFetchForecastUsesConfiguredWindow(t *testing.T) {
	var gotDays string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDays = r.URL.Query().Get("forecast_days")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(openMeteoFixture))
	}))
	defer srv.Close()

	provider := NewOpenMeteoProvider(srv.Client(), OpenMeteoConfig{
		BaseURL:      srv.URL,
		ForecastDays: 3,
	})

	_, err := provider.FetchForecast(context.Background(), 52.2297, 21.0122)
	require.NoError(t, err)
	assert.Equal(t, "3", gotDays)
}

func TestFetchForecastWrapsUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider := NewOpenMeteoProvider(srv.Client(), OpenMeteoConfig{BaseURL: srv.URL})

	_, err := provider.FetchForecast(context.Background(), 52.2297, 21.0122)

	var providerErr *forecast.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Contains(t, providerErr.Message, "unexpected status code 500")
}

func TestFetchForecastWrapsTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	provider := NewOpenMeteoProvider(http.DefaultClient, OpenMeteoConfig{BaseURL: srv.URL})

	_, err := provider.FetchForecast(context.Background(), 52.2297, 21.0122)

	var providerErr *forecast.ProviderError
	require.ErrorAs(t, err, &providerErr)
}

func TestFetchForecastWrapsDecodeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily": not-json`))
	}))
	defer srv.Close()

	provider := NewOpenMeteoProvider(srv.Client(), OpenMeteoConfig{BaseURL: srv.URL})

	_, err := provider.FetchForecast(context.Background(), 52.2297, 21.0122)

	var providerErr *forecast.ProviderError
	require.ErrorAs(t, err, &providerErr)
}

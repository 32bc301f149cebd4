package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig carries the externally overridable settings: the provider
// endpoint surface and the HTTP server basics.
type AppConfig struct {
	// Outbound provider endpoint.
	ProviderBaseURL      string
	ProviderForecastPath string
	ProviderDailyParams  string
	ProviderTimezone     string
	ForecastDays         int

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	Port string
}

const defaultDailyParams = "temperature_2m_max,temperature_2m_min,weather_code,surface_pressure_mean,sunshine_duration"

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.ProviderBaseURL = getenvDefault("WEATHER_API_BASE_URL", "https://api.open-meteo.com")
	cfg.ProviderForecastPath = getenvDefault("WEATHER_API_FORECAST_PATH", "/v1/forecast")
	cfg.ProviderDailyParams = getenvDefault("WEATHER_API_DAILY_PARAMS", defaultDailyParams)
	cfg.ProviderTimezone = getenvDefault("WEATHER_API_TIMEZONE", "auto")
	cfg.ForecastDays = getenvInt("WEATHER_API_FORECAST_DAYS", 7)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/pkarbownik/weather-forecast-api/internal/api/http"
	"github.com/pkarbownik/weather-forecast-api/internal/config"
	"github.com/pkarbownik/weather-forecast-api/internal/forecast"
	"github.com/pkarbownik/weather-forecast-api/internal/forecast/providers"
	"github.com/pkarbownik/weather-forecast-api/internal/httputil"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := httputil.NewClient(cfg.HTTPTimeout)

	provider := providers.NewOpenMeteoProvider(httpClient, providers.OpenMeteoConfig{
		BaseURL:      cfg.ProviderBaseURL,
		ForecastPath: cfg.ProviderForecastPath,
		DailyParams:  cfg.ProviderDailyParams,
		Timezone:     cfg.ProviderTimezone,
		ForecastDays: cfg.ForecastDays,
	})

	// Core service orchestrating validation, fetching and mapping.
	service := forecast.NewService(provider)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-forecast-api",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-forecast-api",
		})
	})

	// Prometheus metrics.
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

package httpapi

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pkarbownik/weather-forecast-api/internal/forecast"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *forecast.Service) {
	api := app.Group("/api/weather")

	api.Post("/forecast", func(c *fiber.Ctx) error {
		req, err := parseLocationBody(c)
		if err != nil {
			return err
		}

		resp, err := service.GetForecast(c.Context(), req)
		if err != nil {
			return err
		}

		return c.JSON(resp)
	})

	api.Post("/summary", func(c *fiber.Ctx) error {
		req, err := parseLocationBody(c)
		if err != nil {
			return err
		}

		resp, err := service.GetSummary(c.Context(), req)
		if err != nil {
			return err
		}

		return c.JSON(resp)
	})
}

// RequestValidationError carries per-field messages for a malformed
// request body. It renders as the structured validation error object.
type RequestValidationError struct {
	Errors map[string]string
}

func (e *RequestValidationError) Error() string {
	return "Validation Error"
}

// parseLocationBody binds and validates the coordinate body. The provider
// is never contacted when this fails.
func parseLocationBody(c *fiber.Ctx) (forecast.LocationRequest, error) {
	var req forecast.LocationRequest

	if err := c.BodyParser(&req); err != nil {
		return req, &RequestValidationError{Errors: map[string]string{
			"body": "Request body must be valid JSON.",
		}}
	}

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return req, err
		}

		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			field := strings.ToLower(fe.Field())
			fields[field] = fieldMessage(field, fe.Tag())
		}
		return req, &RequestValidationError{Errors: fields}
	}

	return req, nil
}

// fieldMessage reproduces the per-field messages clients depend on.
func fieldMessage(field, tag string) string {
	switch field {
	case "latitude":
		if tag == "required" {
			return "Latitude is required."
		}
		return "Latitude must be between -90.0 and 90.0."
	case "longitude":
		if tag == "required" {
			return "Longitude is required."
		}
		return "Longitude must be between -180.0 and 180.0."
	}
	return "Invalid value."
}

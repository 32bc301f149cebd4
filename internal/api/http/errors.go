package httpapi

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/pkarbownik/weather-forecast-api/internal/forecast"
)

// ErrorHandler maps the failure taxonomy onto HTTP responses. Validation
// and processing failures are client errors, provider failures are 503 so
// callers may retry later, and anything unclassified is a 500 with a
// generic message; its detail goes only to the server log.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var reqErr *RequestValidationError
	if errors.As(err, &reqErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation Error",
			"status": fiber.StatusBadRequest,
			"errors": reqErr.Errors,
		})
	}

	var providerErr *forecast.ProviderError
	if errors.As(err, &providerErr) {
		return errorResponse(c, "Weather API Error", fiber.StatusServiceUnavailable, providerErr.Error())
	}

	var validationErr *forecast.ValidationError
	var processingErr *forecast.ProcessingError
	if errors.As(err, &validationErr) || errors.As(err, &processingErr) {
		return errorResponse(c, "Bad Request", fiber.StatusBadRequest, err.Error())
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return errorResponse(c, utils.StatusMessage(fiberErr.Code), fiberErr.Code, fiberErr.Message)
	}

	log.Printf("ERROR: unhandled error: %v", err)
	return errorResponse(c, "Internal Server Error", fiber.StatusInternalServerError,
		"An unexpected error occurred. Please try again later.")
}

func errorResponse(c *fiber.Ctx, errorName string, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   errorName,
		"status":  status,
		"message": message,
	})
}

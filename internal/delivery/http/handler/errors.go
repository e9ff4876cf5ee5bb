package handler

import (
	"errors"

	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/domain/user"
	"career-coach/internal/insights"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates usecase sentinels into HTTP errors. The
// error middleware collapses anything >=500 into an opaque message, so
// internal detail never leaks past the log.
func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrOnboardingIncomplete):
		return middleware.NewAppError(fiber.StatusNotFound, "User industry not set. Please complete onboarding first.", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, insights.ErrGeneration):
		return middleware.NewAppError(fiber.StatusBadGateway, "Generation failed", nil, err)
	case errors.Is(err, usecase.ErrTimeout):
		return middleware.NewAppError(fiber.StatusGatewayTimeout, "Request timed out", nil, err)
	case errors.Is(err, usecase.ErrPersistence):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

package usecase

import (
	"errors"

	"career-coach/internal/insights"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")

	// ErrOnboardingIncomplete: the caller resolved to a user whose
	// industry is still unset.
	ErrOnboardingIncomplete = errors.New("onboarding incomplete")

	// ErrPersistence: a store write failed.
	ErrPersistence = errors.New("persistence failed")

	// ErrTimeout: the profile-update transaction exceeded its bound.
	ErrTimeout = errors.New("operation timed out")
)

func isGenerationError(err error) bool {
	return errors.Is(err, insights.ErrGeneration)
}

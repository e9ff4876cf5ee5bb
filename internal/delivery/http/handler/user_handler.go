package handler

import (
	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	Industry   string   `json:"industry"`
	Experience int      `json:"experience"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
}

func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/onboarding", h.OnboardingStatus)
	r.Put("/profile", h.UpdateProfile)
}

func (h *UserHandler) OnboardingStatus(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	onboarded, err := h.uc.OnboardingStatus(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.OnboardingStatusResponse{IsOnboarded: onboarded})
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	res, err := h.uc.UpdateProfile(c.Context(), userID, usecase.ProfileInput{
		Industry:   req.Industry,
		Experience: req.Experience,
		Bio:        req.Bio,
		Skills:     req.Skills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileUpdateResponse{
		User:           dto.NewUserProfileResponse(res.User),
		Insight:        dto.NewInsightResponse(res.Insight),
		InsightCreated: res.InsightCreated,
	})
}

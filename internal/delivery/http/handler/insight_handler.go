package handler

import (
	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type InsightHandler struct {
	uc usecase.InsightUsecase
}

func NewInsightHandler(uc usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

func (h *InsightHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("", h.GetInsights)
}

// GetInsights returns the caller's industry snapshot, generating and
// storing one on a miss.
func (h *InsightHandler) GetInsights(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	rec, err := h.uc.GetForUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInsightResponse(rec))
}

package handler

import (
	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/insights"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type QuizHandler struct {
	uc usecase.QuizUsecase
}

type gradeQuizRequest struct {
	Questions []insights.QuizQuestion `json:"questions"`
	Answers   []string                `json:"answers"`
	Score     float64                 `json:"score"`
}

func NewQuizHandler(uc usecase.QuizUsecase) *QuizHandler {
	return &QuizHandler{uc: uc}
}

func (h *QuizHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/quiz", h.GenerateQuiz)
	r.Post("/quiz", h.GradeQuiz)
	r.Get("/assessments", h.ListAssessments)
}

func (h *QuizHandler) GenerateQuiz(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	questions, err := h.uc.GenerateQuiz(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"questions": questions})
}

// GradeQuiz pairs answers with questions by position; clients must keep
// the order GenerateQuiz returned.
func (h *QuizHandler) GradeQuiz(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req gradeQuizRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	res, err := h.uc.GradeAndSave(c.Context(), userID, req.Questions, req.Answers, req.Score)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GradeResponse{
		Assessment:   dto.NewAssessmentResponse(res.Assessment),
		TipAttempted: res.TipAttempted,
		TipFailed:    res.TipErr != nil,
	})
}

func (h *QuizHandler) ListAssessments(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	list, err := h.uc.ListAssessments(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAssessmentListResponse(list))
}

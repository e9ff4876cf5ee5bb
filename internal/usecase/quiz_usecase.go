package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"career-coach/internal/domain/assessment"
	"career-coach/internal/domain/user"
	"career-coach/internal/insights"
	"career-coach/internal/repository"

	"github.com/google/uuid"
)

// QuizGenerator covers both completion-backed quiz operations.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, industry string, skills []string) ([]insights.QuizQuestion, error)
	ImprovementTip(ctx context.Context, industry string, wrong []assessment.QuestionResult) (string, error)
}

// GradeResult distinguishes "no tip needed" from "tip generation
// failed": TipAttempted reports whether any answer was wrong, TipErr
// carries the swallowed generation error when the attempt failed.
type GradeResult struct {
	Assessment   assessment.Assessment
	TipAttempted bool
	TipErr       error
}

type QuizUsecase interface {
	GenerateQuiz(ctx context.Context, userID uuid.UUID) ([]insights.QuizQuestion, error)
	GradeAndSave(ctx context.Context, userID uuid.UUID, questions []insights.QuizQuestion, answers []string, score float64) (GradeResult, error)
	ListAssessments(ctx context.Context, userID uuid.UUID) ([]assessment.Assessment, error)
}

type QuizService struct {
	users       repository.UserRepository
	assessments repository.AssessmentRepository
	generator   QuizGenerator
	logger      *log.Logger
}

func NewQuizService(
	users repository.UserRepository,
	assessments repository.AssessmentRepository,
	generator QuizGenerator,
	logger *log.Logger,
) *QuizService {
	if logger == nil {
		logger = log.Default()
	}
	return &QuizService{
		users:       users,
		assessments: assessments,
		generator:   generator,
		logger:      logger,
	}
}

func (s *QuizService) GenerateQuiz(ctx context.Context, userID uuid.UUID) ([]insights.QuizQuestion, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, err
		}
		return nil, ErrInternal
	}
	if !usr.IsOnboarded() {
		return nil, ErrOnboardingIncomplete
	}

	return s.generator.GenerateQuiz(ctx, *usr.Industry, usr.Skills)
}

// GradeAndSave pairs questions with answers by position, derives a
// best-effort improvement tip from the wrong ones and persists a single
// immutable assessment. The supplied score is stored verbatim.
func (s *QuizService) GradeAndSave(ctx context.Context, userID uuid.UUID, questions []insights.QuizQuestion, answers []string, score float64) (GradeResult, error) {
	if len(questions) == 0 || len(answers) != len(questions) {
		return GradeResult{}, ErrInvalidInput
	}

	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return GradeResult{}, err
		}
		return GradeResult{}, ErrInternal
	}

	results := make([]assessment.QuestionResult, len(questions))
	wrong := make([]assessment.QuestionResult, 0)
	for i, q := range questions {
		r := assessment.QuestionResult{
			Question:    q.Question,
			Answer:      q.CorrectAnswer,
			UserAnswer:  answers[i],
			IsCorrect:   q.CorrectAnswer == answers[i],
			Explanation: q.Explanation,
		}
		results[i] = r
		if !r.IsCorrect {
			wrong = append(wrong, r)
		}
	}

	var (
		improvementTip *string
		tipAttempted   bool
		tipErr         error
	)
	if len(wrong) > 0 {
		tipAttempted = true
		industry := ""
		if usr.Industry != nil {
			industry = *usr.Industry
		}
		tip, err := s.generator.ImprovementTip(ctx, industry, wrong)
		if err != nil {
			// Grading must succeed even when the tip does not.
			s.logger.Printf("[Quiz] improvement tip generation failed user=%s: %v", userID, err)
			tipErr = err
		} else if tip = strings.TrimSpace(tip); tip != "" {
			improvementTip = &tip
		}
	}

	saved, err := s.assessments.Insert(ctx, assessment.Assessment{
		ID:             uuid.New(),
		UserID:         usr.ID,
		QuizScore:      score,
		Questions:      results,
		Category:       assessment.CategoryTechnical,
		ImprovementTip: improvementTip,
	})
	if err != nil {
		s.logger.Printf("[Quiz] assessment save failed user=%s: %v", userID, err)
		return GradeResult{}, ErrPersistence
	}

	return GradeResult{Assessment: saved, TipAttempted: tipAttempted, TipErr: tipErr}, nil
}

func (s *QuizService) ListAssessments(ctx context.Context, userID uuid.UUID) ([]assessment.Assessment, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, err
		}
		return nil, ErrInternal
	}

	list, err := s.assessments.ListByUser(ctx, usr.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

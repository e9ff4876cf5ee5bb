package repository

import (
	"context"
	"encoding/json"

	"career-coach/internal/database"
	"career-coach/internal/domain/assessment"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	Insert(ctx context.Context, a assessment.Assessment) (assessment.Assessment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]assessment.Assessment, error)
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

func (r *PostgresAssessmentRepository) Insert(ctx context.Context, a assessment.Assessment) (assessment.Assessment, error) {
	questions, err := json.Marshal(a.Questions)
	if err != nil {
		return assessment.Assessment{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO assessments (id, user_id, quiz_score, questions, category, improvement_tip)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		a.ID, a.UserID, a.QuizScore, questions, a.Category, a.ImprovementTip,
	)
	if err := row.Scan(&a.CreatedAt); err != nil {
		return assessment.Assessment{}, err
	}
	return a, nil
}

func (r *PostgresAssessmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]assessment.Assessment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, quiz_score, questions, category, improvement_tip, created_at
		 FROM assessments
		 WHERE user_id = $1
		 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]assessment.Assessment, 0)
	for rows.Next() {
		var (
			a         assessment.Assessment
			questions []byte
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.QuizScore, &questions, &a.Category, &a.ImprovementTip, &a.CreatedAt); err != nil {
			return nil, err
		}
		if len(questions) > 0 {
			if err := json.Unmarshal(questions, &a.Questions); err != nil {
				return nil, err
			}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package assessment

import (
	"time"

	"github.com/google/uuid"
)

const CategoryTechnical = "Technical"

type QuestionResult struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	UserAnswer  string `json:"userAnswer"`
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
}

// Assessment is one completed quiz attempt. Immutable once created.
type Assessment struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	QuizScore      float64
	Questions      []QuestionResult
	Category       string
	ImprovementTip *string
	CreatedAt      time.Time
}

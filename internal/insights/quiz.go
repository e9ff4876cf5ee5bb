package insights

import (
	"context"
	"fmt"
	"strings"

	"career-coach/internal/ai"
	"career-coach/internal/domain/assessment"
)

const quizLength = 10

const quizSystemPrompt = "You are an interview assistant. Always respond with VALID JSON only, no extra commentary."

const quizPromptTemplate = `Generate %d technical interview questions for a %s professional%s.

Each question should be multiple choice with 4 options.

Return the response in this JSON format only, no additional text:
{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string",
      "explanation": "string"
    }
  ]
}`

const tipSystemPrompt = "You are a supportive interview coach. Reply in 1–2 sentences."

const tipPromptTemplate = `The user got the following %s technical interview questions wrong:

%s

Based on these mistakes, provide a concise, specific improvement tip.
Focus on the knowledge gaps revealed by these wrong answers.
Keep the response under 2 sentences and make it encouraging.
Don't explicitly list each mistake, just say what to learn/practice.`

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type quizPayload struct {
	Questions []QuizQuestion `json:"questions"`
}

// GenerateQuiz produces a fixed-shape multiple-choice quiz for the
// caller's industry and skills.
func (g *Generator) GenerateQuiz(ctx context.Context, industry string, skills []string) ([]QuizQuestion, error) {
	var expertise string
	if len(skills) > 0 {
		expertise = " with expertise in " + strings.Join(skills, ", ")
	}
	prompt := fmt.Sprintf(quizPromptTemplate, quizLength, industry, expertise)

	text, err := g.client.Complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: quizSystemPrompt},
		{Role: ai.RoleUser, Content: prompt},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var payload quizPayload
	if err := decodeJSON(text, &payload); err != nil {
		return nil, err
	}
	if err := validateQuiz(payload.Questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return payload.Questions, nil
}

func validateQuiz(questions []QuizQuestion) error {
	if len(questions) != quizLength {
		return fmt.Errorf("want %d questions, got %d", quizLength, len(questions))
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("question %d: empty question text", i)
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d: want 4 options, got %d", i, len(q.Options))
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %d: correctAnswer not among options", i)
		}
	}
	return nil
}

// ImprovementTip derives a short encouraging tip from the questions the
// user answered incorrectly. Callers treat failure as best-effort.
func (g *Generator) ImprovementTip(ctx context.Context, industry string, wrong []assessment.QuestionResult) (string, error) {
	if len(wrong) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(wrong))
	for _, q := range wrong {
		parts = append(parts, fmt.Sprintf("Question: %q\nCorrect Answer: %q\nUser Answer: %q", q.Question, q.Answer, q.UserAnswer))
	}
	prompt := fmt.Sprintf(tipPromptTemplate, industry, strings.Join(parts, "\n\n"))

	text, err := g.client.Complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: tipSystemPrompt},
		{Role: ai.RoleUser, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return strings.TrimSpace(text), nil
}

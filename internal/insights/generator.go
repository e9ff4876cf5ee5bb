package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"career-coach/internal/ai"
	"career-coach/internal/domain/insight"
)

// ErrGeneration covers a failed completion call, non-JSON output, or
// JSON that breaks the required schema.
var ErrGeneration = errors.New("generation failed")

const insightSystemPrompt = "You are a data analyst assistant. Always respond with VALID JSON only, exactly matching the requested schema."

const insightPromptTemplate = `Analyze the current state of the %s industry and provide insights in ONLY the following JSON format without any additional notes or explanations:
{
  "salaryRanges": [
    { "role": "string", "min": number, "max": number, "median": number, "location": "string" }
  ],
  "growthRate": number,
  "demandLevel": "High" | "Medium" | "Low",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "Positive" | "Neutral" | "Negative",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}

IMPORTANT:
- Return ONLY valid JSON. No additional text, no markdown, no comments.
- Include at least 5 common roles in "salaryRanges".
- "growthRate" should be a percentage number (e.g. 8.5).
- Include at least 5 items in "topSkills" and "keyTrends".`

// Generator synthesizes structured content from the completion
// endpoint. Pure with respect to storage; callers persist the result.
type Generator struct {
	client ai.Client
}

func NewGenerator(client ai.Client) *Generator {
	return &Generator{client: client}
}

// Generate builds the industry-analysis prompt, runs the completion
// exchange and decodes the response into a validated payload.
func (g *Generator) Generate(ctx context.Context, industry string) (insight.Payload, error) {
	prompt := fmt.Sprintf(insightPromptTemplate, industry)

	text, err := g.client.Complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: insightSystemPrompt},
		{Role: ai.RoleUser, Content: prompt},
	})
	if err != nil {
		return insight.Payload{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var payload insight.Payload
	if err := decodeJSON(text, &payload); err != nil {
		return insight.Payload{}, err
	}
	if err := payload.Validate(); err != nil {
		return insight.Payload{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return payload, nil
}

// Models wrap JSON in ``` fences despite instructions; strip them
// before decoding.
var fenceRe = regexp.MustCompile("```(?:json)?\n?")

func stripFences(s string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(s, ""))
}

func decodeJSON(text string, out any) error {
	cleaned := stripFences(text)
	if cleaned == "" {
		return fmt.Errorf("%w: empty completion output", ErrGeneration)
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrGeneration, err)
	}
	return nil
}

package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"career-coach/internal/ai"
	"career-coach/internal/domain/insight"
)

type mockClient struct {
	response string
	err      error

	calls    int
	messages []ai.Message
}

func (m *mockClient) Complete(_ context.Context, messages []ai.Message) (string, error) {
	m.calls++
	m.messages = messages
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func validInsightJSON() string {
	ranges := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		ranges = append(ranges, fmt.Sprintf(`{"role":"Engineer %d","min":50000,"max":150000,"median":90000,"location":"Remote"}`, i))
	}
	return fmt.Sprintf(`{
		"salaryRanges": [%s],
		"growthRate": 8.5,
		"demandLevel": "High",
		"topSkills": ["Go","SQL","Docker","Kubernetes","AWS"],
		"marketOutlook": "Positive",
		"keyTrends": ["AI","Cloud","Remote","Security","Edge"],
		"recommendedSkills": ["Go","Terraform"]
	}`, strings.Join(ranges, ","))
}

func TestGenerate_Success(t *testing.T) {
	client := &mockClient{response: validInsightJSON()}
	g := NewGenerator(client)

	payload, err := g.Generate(context.Background(), "Software Engineering")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(payload.SalaryRanges) < 5 {
		t.Fatalf("expected >=5 salary ranges, got %d", len(payload.SalaryRanges))
	}
	if payload.DemandLevel != insight.DemandHigh {
		t.Fatalf("unexpected demand level: %q", payload.DemandLevel)
	}
	if len(payload.TopSkills) < 5 {
		t.Fatalf("expected >=5 top skills, got %d", len(payload.TopSkills))
	}
	if len(client.messages) != 2 {
		t.Fatalf("expected system+user exchange, got %d messages", len(client.messages))
	}
	if client.messages[0].Role != ai.RoleSystem || client.messages[1].Role != ai.RoleUser {
		t.Fatalf("unexpected roles: %s, %s", client.messages[0].Role, client.messages[1].Role)
	}
	if !strings.Contains(client.messages[1].Content, "Software Engineering") {
		t.Fatalf("prompt does not mention the industry")
	}
}

func TestGenerate_FencedOutput(t *testing.T) {
	client := &mockClient{response: "```json\n" + validInsightJSON() + "\n```"}
	g := NewGenerator(client)

	payload, err := g.Generate(context.Background(), "Finance")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if payload.MarketOutlook != insight.OutlookPositive {
		t.Fatalf("unexpected outlook: %q", payload.MarketOutlook)
	}
}

func TestGenerate_ClientError(t *testing.T) {
	client := &mockClient{err: errors.New("connection refused")}
	g := NewGenerator(client)

	_, err := g.Generate(context.Background(), "Finance")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}

func TestGenerate_InvalidJSON(t *testing.T) {
	client := &mockClient{response: "I could not produce the analysis, sorry."}
	g := NewGenerator(client)

	_, err := g.Generate(context.Background(), "Finance")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}

func TestGenerate_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"too few salary ranges": `{"salaryRanges":[{"role":"a","min":1,"max":2,"median":1,"location":"x"}],
			"growthRate":1,"demandLevel":"High","topSkills":["a","b","c","d","e"],
			"marketOutlook":"Positive","keyTrends":["a","b","c","d","e"],"recommendedSkills":[]}`,
		"bad demand level":   strings.Replace(validInsightJSON(), `"High"`, `"Extreme"`, 1),
		"bad market outlook": strings.Replace(validInsightJSON(), `"Positive"`, `"Bullish"`, 1),
		"too few key trends": strings.Replace(validInsightJSON(), `["AI","Cloud","Remote","Security","Edge"]`, `["AI"]`, 1),
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			g := NewGenerator(&mockClient{response: body})
			_, err := g.Generate(context.Background(), "Finance")
			if !errors.Is(err, ErrGeneration) {
				t.Fatalf("expected ErrGeneration, got %v", err)
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
		{"```json{\"a\":1}```", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := stripFences(tc.in); got != tc.want {
			t.Fatalf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

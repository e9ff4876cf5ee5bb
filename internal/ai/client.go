package ai

import "context"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client sends a role-tagged message exchange to a completion endpoint
// and returns the first candidate's text.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

package testplan

import (
	"context"
	"fmt"

	"github.com/metalagman/testplan/internal/jira"
)

// Chatter sends a prompt to a chat-capable assistant.
type Chatter interface {
	Chat(ctx context.Context, prompt string, extra ...string) (string, error)
}

// Generator turns an issue into a Markdown test plan.
type Generator struct {
	chat Chatter
}

// NewGenerator constructs a generator backed by chat.
func NewGenerator(chat Chatter) *Generator {
	return &Generator{chat: chat}
}

// Generate returns the assistant reply for issue. On failure the returned text
// is whatever partial output the assistant produced.
func (g *Generator) Generate(ctx context.Context, issue jira.Issue) (string, error) {
	prompt, err := Prompt(issue)
	if err != nil {
		return "", err
	}
	plan, err := g.chat.Chat(ctx, prompt)
	if err != nil {
		return plan, fmt.Errorf("generate test plan: %w", err)
	}
	return plan, nil
}

// ErrorText is the plan text reported when generation fails.
// A reply that itself starts with "Error: " looks the same; use Result.PlanErr.
func ErrorText(err error) string {
	return "Error: " + err.Error()
}

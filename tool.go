// Package stockpilot - tool.go
// Defines the Tool interface exposed to the reasoning model.
package stockpilot

import (
	"context"

	"github.com/openai/openai-go"
)

// Tool is a named, described capability the reasoning model can select
// during a run. A registered Tool is immutable for the process lifetime.
type Tool interface {
	Name() string
	StatusMessage() string // surfaced to the caller while the tool runs
	Description() string
	OpenAI() []openai.ChatCompletionToolParam
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
}

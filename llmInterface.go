package stockpilot

import (
	"context"

	"github.com/openai/openai-go"
)

// LLM defines the minimal contract required by the agent loop to interact
// with a language-model provider. Implementations may add helper methods but
// only the operation below is relied upon by the rest of the codebase.
type LLM interface {
	// New issues a non-streaming chat completion request.
	New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

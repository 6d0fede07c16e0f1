package stockpilot

import (
	"context"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ContextKey is the type for context values set by this package.
type ContextKey string

// OpenAIClient implements LLM over the OpenAI chat-completions API or any
// compatible endpoint reachable through BaseURL.
type OpenAIClient struct {
	APIKey  string
	BaseURL string
	client  *openai.Client
}

func NewLLM(apiKey string, baseURL string) *OpenAIClient {
	var client *openai.Client
	if baseURL != "" {
		client = openai.NewClient(option.WithBaseURL(baseURL), option.WithAPIKey(apiKey))
	} else {
		client = openai.NewClient(option.WithAPIKey(apiKey))
	}
	return &OpenAIClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		client:  client,
	}
}

func optsWithIds(ctx context.Context, opts []option.RequestOption) []option.RequestOption {
	if sessionID, ok := ctx.Value(ContextKey("sessionID")).(string); ok {
		opts = append(opts, option.WithJSONSet("custom_identifier", sessionID))
	}
	return opts
}

func (c *OpenAIClient) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	opts := []option.RequestOption{}
	opts = optsWithIds(ctx, opts)
	return c.client.Chat.Completions.New(ctx, params, opts...)
}

func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}

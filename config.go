package stockpilot

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// DefaultModel is used when STOCKPILOT_MODEL is not set.
const DefaultModel = "gpt-4o-mini"

// Config carries everything the agent needs to run. Credentials are checked
// once, at construction, not per question.
type Config struct {
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Model         string
	MaxSteps      int
}

// LoadConfig reads configuration from a .env file when present, falling back
// to the process environment.
func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	return &Config{
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		Model:         getEnv("STOCKPILOT_MODEL", DefaultModel),
		MaxSteps:      DefaultMaxSteps,
	}
}

// Validate reports whether the configuration is usable. A missing API key is
// a startup error, never a per-query one.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

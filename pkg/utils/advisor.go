package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// consultTimeout bounds one advisory call; a slow provider degrades the
// single category, never the whole planning run.
const consultTimeout = 30 * time.Second

// AdvisorClientInterface is the chat boundary to an LLM provider. Consult sends
// one role instruction plus one user message and returns the raw reply text.
type AdvisorClientInterface interface {
	Consult(ctx context.Context, systemPrompt string, userMessage string) (string, error)
}

// NewAdvisorClient Factory function to create either OpenAI or Gemini client based on config
func NewAdvisorClient(provider, apiKey, model string) (AdvisorClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIAdvisorClient(apiKey, model), nil
	case "gemini":
		return NewGeminiAdvisorClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

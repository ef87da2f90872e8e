package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAdvisorClient implements AdvisorClientInterface using Google's Gemini models
type GeminiAdvisorClient struct {
	client *genai.Client
	model  string
}

// NewGeminiAdvisorClient creates a new Gemini client
func NewGeminiAdvisorClient(apiKey, model string) (*GeminiAdvisorClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAdvisorClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiAdvisorClient) Consult(ctx context.Context, systemPrompt string, userMessage string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.3)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, consultTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(userMessage))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close closes the Gemini client
func (c *GeminiAdvisorClient) Close() error {
	return c.client.Close()
}

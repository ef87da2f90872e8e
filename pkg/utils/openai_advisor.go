package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIAdvisorClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIAdvisorClient(apiKey, model string) *OpenAIAdvisorClient {
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIAdvisorClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIAdvisorClient) Consult(ctx context.Context, systemPrompt string, userMessage string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, consultTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIInsightClient is the chat-completion alternative to Gemini. Same
// generation parameters where the API supports them (no top-k knob).
type OpenAIInsightClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIInsightClient(apiKey, model string) *OpenAIInsightClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIInsightClient{client: openai.NewClient(apiKey), model: model}
}

func (c *OpenAIInsightClient) GenerateInsights(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		TopP:        0.95,
		MaxTokens:   800,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIInsightClient) Close() error {
	return nil
}

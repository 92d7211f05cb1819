package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// InsightClientInterface is the remote half of insight generation. A nil
// client means no provider is configured and callers must go straight to the
// deterministic fallback.
type InsightClientInterface interface {
	// GenerateInsights returns the first candidate's text. An empty string
	// with a nil error means the provider responded without usable content;
	// callers substitute a placeholder.
	GenerateInsights(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GeminiInsightClient calls Gemini's generateContent endpoint.
type GeminiInsightClient struct {
	client *genai.Client
	model  string
}

func NewGeminiInsightClient(apiKey, model string) (InsightClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiInsightClient{client: client, model: model}, nil
}

func (c *GeminiInsightClient) GenerateInsights(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SetTopK(40)
	m.SetTopP(0.95)
	m.SetMaxOutputTokens(800)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiInsightClient) Close() error {
	return c.client.Close()
}

// NewInsightClient picks a provider the same way the rest of the config
// layer does. An empty API key is not an error: it returns a nil client and
// the generator degrades to the rule-based fallback.
func NewInsightClient(provider, apiKey, model string) (InsightClientInterface, error) {
	if apiKey == "" {
		return nil, nil
	}
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIInsightClient(apiKey, model), nil
	case "gemini":
		return NewGeminiInsightClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported insight provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider calls the Gemini API through the official GenAI SDK.
type GeminiProvider struct {
	APIKey string
	Model  string
}

var _ Provider = (*GeminiProvider)(nil)

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.APIKey == "" {
		return "", fmt.Errorf("gemini api key not configured")
	}
	model := p.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("genai client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.2)),
	}
	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation: %w", err)
	}
	return result.Text(), nil
}

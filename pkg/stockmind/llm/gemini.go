package llm

import (
	"context"

	"google.golang.org/genai"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiProvider implements Provider using Google's Gemini API.
type GeminiProvider struct {
	APIKey string
	Model  string // defaults to gemini-1.5-flash
}

var _ Provider = (*GeminiProvider)(nil)

// Generate sends a generateContent request to the Gemini API.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.APIKey == "" {
		return "", &types.TransientError{Op: "gemini: API key is missing"}
	}
	model := p.Model
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &types.TransientError{Op: "create genai client", Err: err}
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}
	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", &types.TransientError{Op: "gemini generation", Err: err}
	}
	return result.Text(), nil
}

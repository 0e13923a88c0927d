package docimport

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/HunterBartelt/TinyTracker/internal/common"
)

// GeminiModel implements Model against the Gemini API.
type GeminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel builds a Gemini-backed model. Without an API key the
// document channel is unavailable; manual sync still works.
func NewGeminiModel(ctx context.Context, apiKey, model string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key (manual sync is still available)", common.ErrDocServiceUnavailable)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDocServiceUnavailable, err)
	}

	return &GeminiModel{client: client, model: model}, nil
}

func (g *GeminiModel) GenerateJSON(ctx context.Context, prompt string, pdf []byte) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(pdf, "application/pdf"),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDocServiceUnavailable, err)
	}

	return resp.Text(), nil
}

package wisp

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// GeminiGenerator backs the engine with the Gemini API. A fresh model handle
// is configured per call so chat and thought generation can use different
// caps and temperatures over one shared client.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(client *genai.Client, model string) *GeminiGenerator {
	return &GeminiGenerator{client: client, model: model}
}

func (g *GeminiGenerator) Generate(ctx context.Context, system, user string, maxTokens int32, temperature float32) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetMaxOutputTokens(maxTokens)
	m.SetTemperature(temperature)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		// Empty payload, not a transport failure; the engine substitutes
		// its placeholder.
		return "", nil
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}

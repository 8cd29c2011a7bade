// Package ai wraps the Gemini client used for writing suggestions.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-1.5-flash"

var ErrEmptyResponse = errors.New("gemini returned no text")

type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini connects with an API key. Close releases the client.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate returns the concatenated text parts of the first candidate.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(256)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	var out strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out.WriteString(string(text))
			}
		}
		if out.Len() > 0 {
			break
		}
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

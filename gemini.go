package gmnx

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// GeminiGenerator talks to the Gemini API through the official SDK.
type GeminiGenerator struct {
	client *genai.Client
}

// NewGeminiGenerator creates a Gemini client authorised with apiKey. An
// empty baseURL uses the SDK's default endpoint.
func NewGeminiGenerator(ctx context.Context, apiKey, baseURL string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("missing API key")
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions.BaseURL = baseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client}, nil
}

// Generate issues one GenerateContent call. The system instruction is sent
// in the request config rather than alongside the user's text.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	var config *genai.GenerateContentConfig
	if req.SystemInstruction != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		}
	}
	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Contents), config)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

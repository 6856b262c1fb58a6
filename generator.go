package gmnx

import (
	"context"
	"fmt"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Request is a single text generation: one piece of user content plus the
// behavioural instruction that goes with it.
type Request struct {
	Model             string
	SystemInstruction string
	Contents          string
}

// Generator sends a Request to a hosted model and returns the answer text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc lets an ordinary function act as a Generator.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// GeneratorFactory constructs a Generator from configuration. The credential
// is passed explicitly through cfg.APIKey.
type GeneratorFactory func(ctx context.Context, cfg Config) (Generator, error)

// NewGenerator picks a backend based on cfg.Provider.
func NewGenerator(ctx context.Context, cfg Config) (Generator, error) {
	switch cfg.Provider {
	case "", ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.APIKey, cfg.BaseURL)
	case ProviderOpenAI:
		return NewOpenAIGenerator(cfg.APIKey, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown provider %q (want %q or %q)", cfg.Provider, ProviderGemini, ProviderOpenAI)
	}
}

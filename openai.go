package gmnx

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// GeminiOpenAIBaseURL is Gemini's OpenAI-compatible endpoint.
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// OpenAIGenerator speaks the OpenAI chat completions protocol, by default
// against Gemini's compatibility endpoint.
type OpenAIGenerator struct {
	client *openai.Client
}

func NewOpenAIGenerator(token, baseURL string) (*OpenAIGenerator, error) {
	if token == "" {
		return nil, errors.New("missing API key")
	}
	conf := openai.DefaultConfig(token)
	conf.BaseURL = GeminiOpenAIBaseURL
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	return &OpenAIGenerator{client: openai.NewClientWithConfig(conf)}, nil
}

// Generate sends the instruction as a system message and the query as a
// single user message, then returns the first choice.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	var messages []openai.ChatCompletionMessage
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Contents,
	})
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("invalid response: %+v", resp)
	}
	return resp.Choices[0].Message.Content, nil
}

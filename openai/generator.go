// Package openai implements newsbrief.Generator for OpenAI and
// OpenAI-compatible chat completion APIs.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/newsbrief"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Client is the subset of *openai.Client used by Generator. Any
// OpenAI-compatible backend can be adapted to it.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient creates an OpenAI client. A non-empty baseURL points it at an
// OpenAI-compatible server such as a local model runner.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Ensure Generator implements newsbrief.Generator at compile time.
var _ newsbrief.Generator = (*Generator)(nil)

// Generator implements newsbrief.Generator using chat completions.
type Generator struct {
	client Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Model returns the model used for generation.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends prompt as a user message and returns one fragment per choice.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]string, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, newsbrief.Errorf(newsbrief.EINVALID, "prompt required")
	}

	resp, err := g.client.CreateChatCompletion(ctx, BuildRequest(g.model, prompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, newsbrief.Errorf(newsbrief.EINTERNAL, "openai returned no choices")
	}

	fragments := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		fragments = append(fragments, choice.Message.Content)
	}
	return fragments, nil
}

// BuildRequest returns the chat completion request for prompt.
func BuildRequest(model, prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a news editor writing short, factual summaries. Use only facts stated in the article.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.4,
	}
}

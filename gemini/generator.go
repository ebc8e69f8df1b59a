package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/newsbrief"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements newsbrief.Generator at compile time.
var _ newsbrief.Generator = (*Generator)(nil)

// Generator implements newsbrief.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Model returns the Gemini model used for generation.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends prompt to Gemini and returns the response text as a single fragment.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]string, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, newsbrief.Errorf(newsbrief.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, newsbrief.Errorf(newsbrief.EINTERNAL, "gemini returned nil result")
	}

	return []string{result.Text()}, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a news editor writing short, factual summaries. Use only facts stated in the article.",
			}},
		},
		Temperature: &temp,
	}
}

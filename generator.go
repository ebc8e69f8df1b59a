package newsbrief

import "context"

// Generator is a hosted language model that completes prompts.
type Generator interface {
	// Generate runs prompt through the model and returns the output.
	// Models that stream return one fragment per chunk; others return a
	// single fragment.
	Generate(ctx context.Context, prompt string) ([]string, error)
}

// Summarizer produces short summaries of articles.
type Summarizer interface {
	// Summarize returns a summary of the article. It never fails: when a
	// model is unavailable it degrades to extractive summarization.
	Summarize(ctx context.Context, title, content string) string
}

package mock

import (
	"context"

	"github.com/fwojciec/newsbrief"
)

var _ newsbrief.Generator = (*Generator)(nil)

// Generator is a mock implementation of newsbrief.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) ([]string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) ([]string, error) {
	return g.GenerateFn(ctx, prompt)
}

var _ newsbrief.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of newsbrief.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, title, content string) string
}

func (s *Summarizer) Summarize(ctx context.Context, title, content string) string {
	return s.SummarizeFn(ctx, title, content)
}

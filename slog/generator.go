package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsbrief"
)

// Ensure LoggingGenerator implements newsbrief.Generator.
var _ newsbrief.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next   newsbrief.Generator
	logger *slog.Logger
	model  string
}

// NewLoggingGenerator creates a new LoggingGenerator. The model name is only
// used in log output.
func NewLoggingGenerator(next newsbrief.Generator, model string, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger, model: model}
}

// Generate delegates to the wrapped generator and logs the call.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (fragments []string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"model", g.model,
			"prompt_chars", newsbrief.RuneLen(prompt),
			"fragments", len(fragments),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt)
}

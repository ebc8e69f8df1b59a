package news

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/newsbrief"
)

// Summarization limits, in characters and sentences.
const (
	// PromptContentLimit is how much article content is sent to the model.
	PromptContentLimit = 3000

	// FallbackSentences is how many leading sentences make an extractive summary.
	FallbackSentences = 3

	// FallbackMaxLength bounds extractive summaries of short articles.
	FallbackMaxLength = 500
)

// Ensure Summarizer implements newsbrief.Summarizer at compile time.
var _ newsbrief.Summarizer = (*Summarizer)(nil)

// Summarizer summarizes articles with a language model when one is
// configured, degrading to extractive summarization otherwise.
type Summarizer struct {
	generator newsbrief.Generator
	logger    *slog.Logger
}

// SummarizerOption configures a Summarizer.
type SummarizerOption func(*Summarizer)

// WithLogger sets the logger that records fallback decisions.
// Defaults to discarding log output.
func WithLogger(logger *slog.Logger) SummarizerOption {
	return func(s *Summarizer) {
		s.logger = logger
	}
}

// NewSummarizer creates a new Summarizer. A nil generator is a valid
// configuration: every summary is then extractive.
func NewSummarizer(generator newsbrief.Generator, opts ...SummarizerOption) *Summarizer {
	s := &Summarizer{
		generator: generator,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns a short summary of the article. The model is called at
// most once; any failure or empty output yields FallbackSummary(content).
func (s *Summarizer) Summarize(ctx context.Context, title, content string) string {
	if s.generator == nil {
		return FallbackSummary(content)
	}

	fragments, err := s.generate(ctx, BuildPrompt(title, content))
	if err != nil {
		s.logger.Warn("summarization fallback", "title", title, "err", err)
		return FallbackSummary(content)
	}

	summary := JoinFragments(fragments)
	if summary == "" {
		s.logger.Warn("summarization fallback", "title", title, "err", "empty model output")
		return FallbackSummary(content)
	}
	return summary
}

// generate calls the generator, converting a panic into an error.
func (s *Summarizer) generate(ctx context.Context, prompt string) (fragments []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			fragments, err = nil, fmt.Errorf("generator panic: %v", r)
		}
	}()
	return s.generator.Generate(ctx, prompt)
}

// BuildPrompt returns the instruction sent to the model. Only the first
// PromptContentLimit characters of content are included.
func BuildPrompt(title, content string) string {
	var sb strings.Builder
	sb.WriteString("Please provide a clear and concise summary of this news article. ")
	sb.WriteString("Focus on the key facts, main points, and important details.\n\n")
	fmt.Fprintf(&sb, "Title: %s\n\n", title)
	fmt.Fprintf(&sb, "Article Content: %s\n\n", newsbrief.TruncateRunes(content, PromptContentLimit))
	sb.WriteString("Summary:")
	return sb.String()
}

// JoinFragments trims each model output fragment, drops empty ones and joins
// the rest with single spaces.
func JoinFragments(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// FallbackSummary builds an extractive summary. Content is split on ". "
// after newlines become spaces; with at least FallbackSentences pieces the
// first ones are rejoined and terminated with a period. Otherwise content
// is returned as is, cut to FallbackMaxLength characters plus an ellipsis
// when longer.
func FallbackSummary(content string) string {
	sentences := strings.Split(strings.ReplaceAll(content, "\n", " "), ". ")
	if len(sentences) >= FallbackSentences {
		return strings.Join(sentences[:FallbackSentences], ". ") + "."
	}
	if newsbrief.RuneLen(content) > FallbackMaxLength {
		return newsbrief.TruncateRunes(content, FallbackMaxLength) + "..."
	}
	return content
}

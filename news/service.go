package news

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/newsbrief"
)

// Ensure Service implements newsbrief.SummaryService at compile time.
var _ newsbrief.SummaryService = (*Service)(nil)

// Service summarizes articles by URL.
type Service struct {
	articles   newsbrief.ArticleExtractor
	summarizer newsbrief.Summarizer
}

// NewService creates a new Service.
func NewService(articles newsbrief.ArticleExtractor, summarizer newsbrief.Summarizer) *Service {
	return &Service{articles: articles, summarizer: summarizer}
}

// SummarizeURL extracts the article at rawURL and summarizes it. Extraction
// failures are returned without calling the summarizer.
func (s *Service) SummarizeURL(ctx context.Context, rawURL string) (*newsbrief.Summary, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, newsbrief.Errorf(newsbrief.EINVALID, "URL is required")
	}
	if strings.HasPrefix(rawURL, newsbrief.DemoScheme) {
		return s.SummarizeDemo(ctx)
	}

	article, err := s.articles.ExtractArticle(ctx, rawURL)
	if err != nil {
		return nil, appError(err)
	}
	return s.summarize(ctx, article), nil
}

// SummarizeDemo summarizes the built-in demo article without fetching anything.
func (s *Service) SummarizeDemo(ctx context.Context) (*newsbrief.Summary, error) {
	return s.summarize(ctx, newsbrief.DemoArticle()), nil
}

func (s *Service) summarize(ctx context.Context, article *newsbrief.Article) *newsbrief.Summary {
	return &newsbrief.Summary{
		Title:     article.Title,
		Summary:   s.summarizer.Summarize(ctx, article.Title, article.Content),
		SourceURL: article.SourceURL,
	}
}

// appError ensures err carries an application error code so callers can
// always show a message.
func appError(err error) error {
	var e *newsbrief.Error
	if errors.As(err, &e) {
		return err
	}
	return newsbrief.Errorf(newsbrief.EINTERNAL, "an error occurred: %v", err)
}

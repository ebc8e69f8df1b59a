package mock

import (
	"context"

	"github.com/fwojciec/newsbrief"
)

var _ newsbrief.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of newsbrief.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(ctx context.Context, rawURL string) (*newsbrief.Article, error)
}

func (x *ArticleExtractor) ExtractArticle(ctx context.Context, rawURL string) (*newsbrief.Article, error) {
	return x.ExtractArticleFn(ctx, rawURL)
}

var _ newsbrief.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of newsbrief.SummaryService.
type SummaryService struct {
	SummarizeURLFn  func(ctx context.Context, rawURL string) (*newsbrief.Summary, error)
	SummarizeDemoFn func(ctx context.Context) (*newsbrief.Summary, error)
}

func (s *SummaryService) SummarizeURL(ctx context.Context, rawURL string) (*newsbrief.Summary, error) {
	return s.SummarizeURLFn(ctx, rawURL)
}

func (s *SummaryService) SummarizeDemo(ctx context.Context) (*newsbrief.Summary, error) {
	return s.SummarizeDemoFn(ctx)
}

// Package news provides the article pipeline: it validates article URLs,
// fetches and parses pages, and summarizes the extracted articles.
package news

import (
	"context"
	"strings"

	"github.com/fwojciec/newsbrief"
)

// Ensure ArticleExtractor implements newsbrief.ArticleExtractor at compile time.
var _ newsbrief.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor turns article URLs into articles by fetching the page and
// running it through an HTML extractor.
type ArticleExtractor struct {
	fetcher   newsbrief.Fetcher
	extractor newsbrief.Extractor
}

// NewArticleExtractor creates a new ArticleExtractor.
func NewArticleExtractor(fetcher newsbrief.Fetcher, extractor newsbrief.Extractor) *ArticleExtractor {
	return &ArticleExtractor{fetcher: fetcher, extractor: extractor}
}

// ExtractArticle validates rawURL, fetches the page once and extracts its
// article. Malformed URLs are rejected before any network access. A page
// without body text is an error even when it has a title.
func (x *ArticleExtractor) ExtractArticle(ctx context.Context, rawURL string) (*newsbrief.Article, error) {
	req := &newsbrief.ArticleRequest{URL: rawURL}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	sourceURL := strings.TrimSpace(rawURL)

	html, err := x.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, newsbrief.Errorf(newsbrief.EUNAVAILABLE, "error fetching URL: %v", err)
	}

	result, err := x.extractor.Extract(html)
	if err != nil {
		return nil, newsbrief.Errorf(newsbrief.EINTERNAL, "error processing content: %v", err)
	}

	content := newsbrief.NormalizeWhitespace(result.Content)
	if content == "" {
		return nil, newsbrief.Errorf(newsbrief.EUNPROCESSABLE, "could not extract article content")
	}

	title := strings.TrimSpace(result.Title)
	if title == "" {
		title = newsbrief.DefaultTitle
	}

	return &newsbrief.Article{
		Title:     title,
		Content:   content,
		SourceURL: sourceURL,
	}, nil
}

package newsbrief

import (
	"context"
	"net/url"
	"strings"
)

// DefaultTitle is used when no title candidate is found in a page.
const DefaultTitle = "Article Title"

// ArticleRequest asks for the article at URL to be summarized.
type ArticleRequest struct {
	URL string `json:"url"`
}

// Validate returns an error if the request URL is missing or is not an
// absolute URL with both a scheme and a host.
func (r *ArticleRequest) Validate() error {
	raw := strings.TrimSpace(r.URL)
	if raw == "" {
		return Errorf(EINVALID, "URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "invalid URL format")
	}
	return nil
}

// Article represents a news article extracted from a web page.
type Article struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	SourceURL string `json:"sourceUrl"`
}

// Summary represents a summarized article.
type Summary struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	SourceURL string `json:"sourceUrl"`
}

// ArticleExtractor retrieves a page and extracts the article it contains.
type ArticleExtractor interface {
	// ExtractArticle validates rawURL, fetches it and extracts the article.
	// Returns EINVALID for malformed URLs, EUNAVAILABLE when the page cannot
	// be fetched and EUNPROCESSABLE when no article body is found.
	ExtractArticle(ctx context.Context, rawURL string) (*Article, error)
}

// SummaryService turns article URLs into summaries.
type SummaryService interface {
	// SummarizeURL extracts and summarizes the article at rawURL.
	// URLs with the demo:// scheme summarize the demo article instead.
	SummarizeURL(ctx context.Context, rawURL string) (*Summary, error)

	// SummarizeDemo summarizes the built-in demo article.
	SummarizeDemo(ctx context.Context) (*Summary, error)
}

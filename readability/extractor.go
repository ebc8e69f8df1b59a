// Package readability adapts go-readability to newsbrief.Extractor.
package readability

import (
	"strings"

	"github.com/fwojciec/newsbrief"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements newsbrief.Extractor at compile time.
var _ newsbrief.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and plain text.
func (e *Extractor) Extract(rawHTML string) (*newsbrief.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsbrief.Errorf(newsbrief.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &newsbrief.ExtractResult{
		Title:   strings.TrimSpace(article.Title),
		Content: newsbrief.NormalizeWhitespace(article.TextContent),
	}, nil
}

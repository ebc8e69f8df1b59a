// Package trafilatura adapts go-trafilatura to newsbrief.Extractor.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/fwojciec/newsbrief"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements newsbrief.Extractor at compile time.
var _ newsbrief.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and plain text.
func (e *Extractor) Extract(rawHTML string) (*newsbrief.ExtractResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &newsbrief.ExtractResult{
		Title:   strings.TrimSpace(result.Metadata.Title),
		Content: newsbrief.NormalizeWhitespace(result.ContentText),
	}, nil
}

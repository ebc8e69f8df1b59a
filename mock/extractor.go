package mock

import "github.com/fwojciec/newsbrief"

var _ newsbrief.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsbrief.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*newsbrief.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*newsbrief.ExtractResult, error) {
	return e.ExtractFn(html)
}

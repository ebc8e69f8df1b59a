package newsbrief

import (
	"context"
	"fmt"
)

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request for url and returns the response body.
	// Transport failures, timeouts and non-2xx responses are errors.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// StatusError is returned by fetchers when a page responds with a non-2xx
// status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

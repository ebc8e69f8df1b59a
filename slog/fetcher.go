// Package slog provides logging decorators for newsbrief services.
package slog

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/newsbrief"
)

// Ensure LoggingFetcher implements newsbrief.Fetcher.
var _ newsbrief.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Successful fetches are logged
// at info level; failures at warn level with the response status when the
// page answered with one.
type LoggingFetcher struct {
	next   newsbrief.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next newsbrief.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string) (html string, err error) {
	begin := time.Now()
	html, err = f.next.Fetch(ctx, rawURL)

	attrs := []any{
		"host", host(rawURL),
		"url", rawURL,
		"duration", time.Since(begin),
	}
	if err != nil {
		var statusErr *newsbrief.StatusError
		if errors.As(err, &statusErr) {
			attrs = append(attrs, "status", statusErr.StatusCode)
		}
		f.logger.Warn("fetch failed", append(attrs, "err", err)...)
		return html, err
	}

	f.logger.Info("fetch", append(attrs, "bytes", len(html))...)
	return html, nil
}

// host returns the host part of rawURL, or "" when it does not parse.
func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

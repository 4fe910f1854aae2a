// Package fetch retrieves leaderboard page markup for the watcher.
//
// The parsing core treats page retrieval as an external collaborator behind
// the Source interface: one fresh copy of the markup per polling cycle.
// HTTPSource is the production implementation; FileSource serves dry runs
// and tests from a local file.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	UserAgent = "tour-leaderboard/1.0 (github.com/pfrederiksen/tour-leaderboard)"
	Timeout   = 30 * time.Second

	maxRetries = 3
)

// Source supplies one fresh copy of the leaderboard page markup per cycle.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// HTTPSource fetches page markup over HTTP, retrying transient failures
// with exponential backoff. Retry lives here at the collaborator boundary;
// the parsing core never retries anything.
type HTTPSource struct {
	client *http.Client
	url    string
}

// NewHTTPSource creates a Source for the given page URL.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: Timeout},
		url:    url,
	}
}

// Fetch retrieves the page and returns its markup as a single string.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	var body string

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading page body: %w", err)
		}
		body = string(data)
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return "", err
	}
	return body, nil
}

// FileSource reads page markup from a local file, for dry runs and replaying
// captured pages.
type FileSource struct {
	Path string
}

// Fetch reads the whole file.
func (s *FileSource) Fetch(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("reading markup file: %w", err)
	}
	return string(data), nil
}

// Package fetch implements the Fetcher interface.
// It loads documentation JSON from a local file, stdin ("-") or an
// http(s) URL.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gaurav-prasanna/docsummary/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "docsummary/1.0 (https://github.com/gaurav-prasanna/docsummary)"
)

// SourceFetcher loads documentation JSON from files, stdin or HTTP.
type SourceFetcher struct {
	client *http.Client
	stdin  io.Reader
}

// New creates a SourceFetcher with a sensible HTTP timeout.
func New() *SourceFetcher {
	return &SourceFetcher{
		client: &http.Client{Timeout: defaultTimeout},
		stdin:  os.Stdin,
	}
}

// Fetch reads the raw bytes behind source.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	switch {
	case source == "-":
		data, err := io.ReadAll(f.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return &core.FetchResult{Source: "stdin", Data: data}, nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return f.fetchURL(ctx, source)
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
		return &core.FetchResult{Source: source, Data: data}, nil
	}
}

// fetchURL retrieves the JSON body of the given URL.
func (f *SourceFetcher) fetchURL(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{Source: url, Data: body}, nil
}

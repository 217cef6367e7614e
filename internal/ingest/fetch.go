package ingest

import (
	"context"
	"io"
	"net/http"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Fetcher retrieves remote documents for URL imports. One GET per
// import, browser User-Agent, no retries, and no client timeout; a
// stalled host is bounded only by the caller's context.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{}, userAgent: defaultUserAgent}
}

// FetchAndParse downloads the document at rawURL and runs the HTML
// converter over it. Transport failures and non-2xx responses come back
// as *FetchError.
func (f *Fetcher) FetchAndParse(ctx context.Context, rawURL string) (*Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: rawURL, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}

	return ParseHTML(string(body), rawURL), nil
}

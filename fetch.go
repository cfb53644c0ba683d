package rirekisho

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fetcher retrieves a text resource by its absolute site path, e.g.
// "/data/intro.yml". Implementations must honor ctx cancellation.
type Fetcher interface {
	FetchText(ctx context.Context, path string) (string, error)
}

// FetchError reports a failed fetch. StatusCode is zero when the
// failure happened before any HTTP response arrived.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

const defaultFetchTimeout = 30 * time.Second

// HTTPFetcher fetches resources from a site origin over HTTP.
type HTTPFetcher struct {
	origin string
	client *http.Client
}

// NewHTTPFetcher creates a fetcher rooted at origin, e.g.
// "https://example.com". A nil client uses a default with a 30s timeout.
func NewHTTPFetcher(origin string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &HTTPFetcher{origin: strings.TrimRight(origin, "/"), client: client}
}

// Origin returns the configured site origin.
func (f *HTTPFetcher) Origin() string { return f.origin }

func (f *HTTPFetcher) FetchText(ctx context.Context, path string) (string, error) {
	url := f.origin + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	return string(body), nil
}

// DirFetcher serves resources from a local directory tree, mapping the
// site path "/data/intro.yml" to <root>/data/intro.yml. Useful for
// generating documents straight from a checkout.
type DirFetcher struct {
	root string
}

// NewDirFetcher creates a fetcher rooted at dir.
func NewDirFetcher(dir string) *DirFetcher {
	return &DirFetcher{root: dir}
}

func (f *DirFetcher) FetchText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &FetchError{URL: path, Err: err}
	}
	rel := strings.TrimPrefix(path, "/")
	full := filepath.Join(f.root, filepath.FromSlash(rel))
	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &FetchError{URL: path, StatusCode: http.StatusNotFound, Err: err}
		}
		return "", &FetchError{URL: path, Err: err}
	}
	return string(data), nil
}

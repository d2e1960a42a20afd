package spdx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// defaultBaseURL is the public SPDX registry.
const defaultBaseURL = "https://spdx.org"

// licenseListPath is the summary listing endpoint, relative to the base URL.
const licenseListPath = "/licenses/licenses.json"

// maxBodySize limits HTTP response body size (8 MB); the license list is
// around one megabyte and individual texts are far smaller.
const maxBodySize = 8 << 20

// defaultUserAgent is the User-Agent header value for registry requests.
const defaultUserAgent = "lictool/1.0"

// Client fetches license summaries and details from the registry.
// The summary list is fetched at most once per Client; concurrent callers
// share a single in-flight fetch. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu   sync.RWMutex
	list *LicenseList
	sf   singleflight.Group
}

// Option configures a Client (functional options pattern).
type Option func(*Client)

// WithBaseURL overrides the registry base URL (e.g. a mirror).
// Default is https://spdx.org.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client, replacing the default disk-caching
// client. If hc is nil, the default is left unchanged.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithCacheDir sets the on-disk HTTP cache location.
// Default is DefaultCacheDir. Ignored when WithHTTPClient is also given.
func WithCacheDir(dir string) Option {
	return func(c *Client) {
		if dir != "" {
			c.httpClient = newCachingClient(dir)
		}
	}
}

// WithLogger sets the logger. Default is slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client. Without options it talks to the public registry
// through a disk cache under the user cache directory; when that directory
// cannot be resolved the client degrades to plain uncached requests.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: defaultBaseURL,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimSuffix(c.baseURL, "/")
	if c.baseURL == "" {
		return nil, fmt.Errorf("spdx: base URL must not be empty")
	}
	parsed, err := url.Parse(c.baseURL)
	if err != nil || parsed.Scheme == "" {
		return nil, fmt.Errorf("spdx: invalid base URL %q", c.baseURL)
	}
	if c.httpClient == nil {
		dir, err := DefaultCacheDir()
		if err != nil {
			c.logger.Warn("spdx: disk cache disabled", "err", err)
			c.httpClient = &http.Client{Timeout: 30 * time.Second}
		} else {
			c.httpClient = newCachingClient(dir)
		}
	}
	return c, nil
}

// Licenses returns the registry's summary list. The first call fetches
// {base}/licenses/licenses.json; later calls return the memoized list.
func (c *Client) Licenses(ctx context.Context) (*LicenseList, error) {
	c.mu.RLock()
	list := c.list
	c.mu.RUnlock()
	if list != nil {
		return list, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	v, err, _ := c.sf.Do("licenses", func() (any, error) {
		data, err := c.get(ctx, c.baseURL+licenseListPath)
		if err != nil {
			return nil, err
		}
		var fetched LicenseList
		if err := json.Unmarshal(data, &fetched); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return &fetched, nil
	})
	if err != nil {
		return nil, err
	}
	list = v.(*LicenseList)

	c.mu.Lock()
	c.list = list
	c.mu.Unlock()
	return list, nil
}

// Details fetches the full record for one license via its summary-provided
// details URL.
func (c *Client) Details(ctx context.Context, lic *License) (*LicenseDetails, error) {
	if lic == nil || lic.DetailsURL == "" {
		return nil, fmt.Errorf("%w: missing details URL", ErrFetchFailed)
	}
	data, err := c.get(ctx, lic.DetailsURL)
	if err != nil {
		return nil, err
	}
	var details LicenseDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &details, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")
	c.logger.Debug("spdx: fetching", "url", u)
	resp, err := c.httpClient.Do(req) // #nosec G704 -- URL is the configured base or the registry-provided details URL
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %w: %s %s", ErrFetchFailed, ErrUnexpectedStatus, resp.Status, u)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	// Detect truncation: if more data is available, body exceeded maxBodySize.
	probe := make([]byte, 1)
	if n, _ := resp.Body.Read(probe); n > 0 {
		return nil, fmt.Errorf("%w: response body exceeds %d bytes", ErrFetchFailed, maxBodySize)
	}
	return data, nil
}

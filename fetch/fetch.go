// Package fetch retrieves remote dataset resources and caches them on disk.
//
// A resource URL maps deterministically to one file under the swissdata
// cache directory. A cached copy within its validity window is served
// without any network access; otherwise the resource is downloaded again
// and the cache file replaced atomically.
package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/alpstat/swissdata/config"
	"github.com/alpstat/swissdata/errors"
	"github.com/alpstat/swissdata/logger"
)

// appNamespace is the subdirectory of the platform cache dir owned by
// swissdata.
const appNamespace = "swissdata"

// DefaultValidity is how long a cached resource is served without
// re-downloading.
const DefaultValidity = 24 * time.Hour

// Downloader is the retrieval seam used by dataset packages. CacheGet
// returns a local path holding a valid copy of the resource; Get streams
// the resource directly, bypassing the cache.
type Downloader interface {
	Get(ctx context.Context, rawurl string) (io.ReadCloser, error)
	CacheGet(ctx context.Context, rawurl string) (string, error)
}

// Client is the default Downloader: an HTTP client with a whole-transfer
// timeout, a polite request rate limit, and an on-disk cache.
type Client struct {
	http     *http.Client
	cacheDir string
	validity time.Duration
	limiter  *rate.Limiter

	// now is swapped in tests to control freshness decisions
	now func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithCacheDir overrides the cache directory.
func WithCacheDir(dir string) Option {
	return func(c *Client) { c.cacheDir = dir }
}

// WithValidity overrides the cache validity window.
func WithValidity(d time.Duration) Option {
	return func(c *Client) { c.validity = d }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRateLimit caps outgoing requests per minute. Zero or negative
// disables the limit.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
		} else {
			c.limiter = nil
		}
	}
}

// NewClient creates a Client with the default cache location
// ({user cache dir}/swissdata) and validity window.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		http:     &http.Client{Timeout: 5 * time.Minute},
		validity: DefaultValidity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, errors.Wrap(err, "cannot determine cache directory")
		}
		c.cacheDir = filepath.Join(base, appNamespace)
	}
	return c, nil
}

// FromConfig creates a Client from the fetch section of the configuration.
func FromConfig(cfg config.FetchConfig) (*Client, error) {
	opts := []Option{
		WithValidity(time.Duration(cfg.CacheValidityHours) * time.Hour),
		WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}),
		WithRateLimit(cfg.MaxRequestsPerMinute),
	}
	if cfg.CacheDir != "" {
		opts = append(opts, WithCacheDir(cfg.CacheDir))
	}
	return NewClient(opts...)
}

// CachePath returns the cache file path for a resource URL. The URL is
// query-escaped so the full resource identity survives as a single path
// segment.
func (c *Client) CachePath(rawurl string) string {
	return filepath.Join(c.cacheDir, url.QueryEscape(rawurl))
}

// IsValid reports whether path exists, is a regular file, and was modified
// within the validity window.
func (c *Client) IsValid(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return c.now().Before(info.ModTime().Add(c.validity))
}

// Get performs a rate-limited GET and returns the response body. Any
// non-2xx status is an error naming the URL; the body is closed in that
// case.
func (c *Client) Get(ctx context.Context, rawurl string) (io.ReadCloser, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrapf(err, "rate limit wait for %s", rawurl)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", rawurl)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", rawurl)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, errors.Newf("GET %s: unexpected status %s", rawurl, resp.Status)
	}
	return resp.Body, nil
}

// CacheGet returns a local path holding a valid copy of the resource,
// downloading it first if the cached copy is absent or stale. The cache
// file is written to a temporary name and renamed into place, so a
// half-written download is never visible under the final path.
func (c *Client) CacheGet(ctx context.Context, rawurl string) (string, error) {
	path := c.CachePath(rawurl)
	if c.IsValid(path) {
		logger.Logger.Debugw("cache hit", "url", rawurl, "path", path)
		return path, nil
	}

	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating cache directory %s", c.cacheDir)
	}

	logger.Logger.Infow("downloading", "url", rawurl)
	body, err := c.Get(ctx, rawurl)
	if err != nil {
		return "", err
	}
	defer body.Close()

	tmp, err := os.CreateTemp(c.cacheDir, ".download-*")
	if err != nil {
		return "", errors.Wrapf(err, "creating temp file in %s", c.cacheDir)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		tmp.Close()
		if !success {
			os.Remove(tmpName) // best-effort cleanup of the partial file
		}
	}()

	if _, err := io.Copy(tmp, body); err != nil {
		return "", errors.Wrapf(err, "writing %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrapf(err, "closing %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", errors.Wrapf(err, "renaming %s to %s", tmpName, path)
	}
	success = true

	logger.Logger.Debugw("cached", "url", rawurl, "path", path)
	return path, nil
}

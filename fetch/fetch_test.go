package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpstat/swissdata/config"
)

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithCacheDir(t.TempDir())}, opts...)
	c, err := NewClient(opts...)
	require.NoError(t, err)
	return c
}

func TestCachePathScheme(t *testing.T) {
	c := newTestClient(t)

	rawurl := "https://dam-api.bfs.admin.ch/hub/api/dam/assets/23886071/master"
	path := c.CachePath(rawurl)

	assert.Equal(t, c.cacheDir, filepath.Dir(path))
	// The whole URL survives as a single query-escaped path segment.
	assert.Equal(t, url.QueryEscape(rawurl), filepath.Base(path))
	assert.NotContains(t, filepath.Base(path), "/")
}

func TestIsValid(t *testing.T) {
	c := newTestClient(t, WithValidity(time.Hour))

	path := filepath.Join(c.cacheDir, "cached")
	// A file is never valid before it exists.
	assert.False(t, c.IsValid(path))

	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	assert.True(t, c.IsValid(path))

	// Fresh iff now < mtime + validity.
	mtime := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	assert.False(t, c.IsValid(path))

	// Directories are never valid cache entries.
	assert.False(t, c.IsValid(c.cacheDir))
}

func TestGetErrorForStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Get(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), srv.URL)
	assert.Contains(t, err.Error(), "404")
}

func TestCacheGetDownloadsOnce(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		io.WriteString(w, "payload")
	}))
	defer srv.Close()

	c := newTestClient(t, WithValidity(time.Hour))

	path, err := c.CacheGet(context.Background(), srv.URL+"/asset")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, int32(1), requests.Load())

	// Second load within the validity window: zero additional requests.
	again, err := c.CacheGet(context.Background(), srv.URL+"/asset")
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, int32(1), requests.Load())
}

func TestCacheGetRefreshesStaleCopy(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		io.WriteString(w, "fresh")
	}))
	defer srv.Close()

	c := newTestClient(t, WithValidity(time.Hour))

	path, err := c.CacheGet(context.Background(), srv.URL+"/asset")
	require.NoError(t, err)
	require.Equal(t, int32(1), requests.Load())

	// Age the cached copy past the validity window.
	mtime := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	_, err = c.CacheGet(context.Background(), srv.URL+"/asset")
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())
}

func TestCacheGetFailureLeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t)

	rawurl := srv.URL + "/asset"
	_, err := c.CacheGet(context.Background(), rawurl)
	require.Error(t, err)

	// Neither the final path nor a stray temp file may remain.
	_, statErr := os.Stat(c.CachePath(rawurl))
	assert.True(t, os.IsNotExist(statErr))
	entries, err := os.ReadDir(c.cacheDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".download-"), "partial file left behind: %s", e.Name())
	}
}

func TestClientDefaults(t *testing.T) {
	c, err := NewClient(WithCacheDir(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, DefaultValidity, c.validity)
	assert.Nil(t, c.limiter)
}

func TestFromConfig(t *testing.T) {
	c, err := FromConfig(config.FetchConfig{
		CacheDir:             t.TempDir(),
		CacheValidityHours:   2,
		TimeoutSeconds:       10,
		MaxRequestsPerMinute: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, c.validity)
	assert.Equal(t, 10*time.Second, c.http.Timeout)
	assert.NotNil(t, c.limiter)
}

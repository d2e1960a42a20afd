package spdx

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

// DefaultCacheDir returns the on-disk HTTP cache location,
// {user cache dir}/lictool/http-cache.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("spdx: cache directory not found: %w", err)
	}
	return filepath.Join(base, "lictool", "http-cache"), nil
}

// newCachingClient builds an HTTP client whose transport stores responses
// in dir and revalidates them per RFC 7234. Cache key is the request URL;
// freshness follows the registry's response headers.
func newCachingClient(dir string) *http.Client {
	transport := httpcache.NewTransport(diskcache.New(dir))
	return &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}
}

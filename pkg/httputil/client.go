package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pictoplace/pictoplace/pkg/observability"
)

// Client fetches JSON documents with caching and retry.
// A nil cache disables caching; requests then always hit the network.
type Client struct {
	http  *http.Client
	cache *Cache
}

// NewClient creates a client with the given cache.
// If httpClient is nil, a client with a 30 second timeout is used.
func NewClient(httpClient *http.Client, cache *Cache) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{http: httpClient, cache: cache}
}

// GetJSON fetches url and unmarshals the response body into v.
//
// The response is cached under the URL when a cache is configured; a fresh
// cached entry short-circuits the network entirely. Transient failures
// (network errors, 5xx, 429) are retried with exponential backoff.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	if c.cache != nil {
		if ok, err := c.cache.Get(url, v); ok && err == nil {
			observability.Cache().OnCacheHit(ctx, "http")
			return nil
		}
		observability.Cache().OnCacheMiss(ctx, "http")
	}

	var body []byte
	err := RetryWithBackoff(ctx, func() error {
		data, err := c.fetch(ctx, url)
		if err != nil {
			return err
		}
		body = data
		return nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}

	if c.cache != nil {
		_ = c.cache.Set(url, v)
		observability.Cache().OnCacheSet(ctx, "http", len(body))
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	observability.HTTP().OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, &RetryableError{Err: err}
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusOK:
		return io.ReadAll(resp.Body)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &RetryableError{Err: fmt.Errorf("GET %s: status %d", url, resp.StatusCode)}
	default:
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
}

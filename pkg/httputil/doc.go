// Package httputil provides HTTP utilities for remote placement data.
//
// # Overview
//
// This package provides infrastructure used when adjustment tables or
// sequence manifests are fetched over HTTP:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//   - [Client]: A small JSON client combining both
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/pictoplace/)
// with configurable TTL. This speeds up repeated derivations and avoids
// refetching adjustment tables that rarely change.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, err := cache.Get("adjust:special", &table)
//	if !ok {
//	    table = fetchFromSource()
//	    cache.Set("adjust:special", table)
//	}
//
// Cache keys should be namespaced by source to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// It uses exponential backoff to avoid hammering a struggling source:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetch(url)
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/pictoplace/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `pictoplace cache clear` or by deleting
// the cache directory.
package httputil

package cache

import (
	"context"
	"time"
)

// NullCache discards everything. It stands in wherever caching is
// switched off: --no-cache runs, servers without a cache directory,
// and tests that need every pipeline stage to recompute.
type NullCache struct{}

// NewNullCache returns the no-op backend.
func NewNullCache() Cache {
	return NullCache{}
}

// Get always misses.
func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op.
func (NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (NullCache) Close() error {
	return nil
}

var _ Cache = NullCache{}

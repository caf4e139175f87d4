// Package cache provides pluggable caching for pipeline stages and HTTP
// responses.
//
// Three backends are available: FileCache for CLI usage, RedisCache for the
// API server, and NullCache for disabling caching entirely. Keys are
// generated through the Keyer interface so that the key schema stays in one
// place and can be namespaced per tenant with ScopedKeyer.
package cache

import (
	"context"
	"time"
)

// TTLs per key type. Sequence loads and placement derivations are pure
// functions of their inputs, so long TTLs are safe; HTTP responses follow
// the remote data's update cadence instead.
const (
	TTLHTTP      = 6 * time.Hour
	TTLSequence  = 24 * time.Hour
	TTLPlacement = 7 * 24 * time.Hour
	TTLArtifact  = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SequenceKeyOpts are the options that affect sequence loading.
type SequenceKeyOpts struct {
	GridMode string
}

// PlacementKeyOpts are the options that affect placement derivation.
type PlacementKeyOpts struct {
	GridMode     string
	AntiPattern  string
	DashOverride bool
	AdjustRef    string
}

// ArtifactKeyOpts are the options that affect artifact encoding.
type ArtifactKeyOpts struct {
	Format string
	Pretty bool
}

// Keyer generates cache keys for the different cached value types.
type Keyer interface {
	// HTTPKey generates a key for HTTP response caching.
	HTTPKey(namespace, key string) string

	// SequenceKey generates a key for loaded sequence caching.
	SequenceKey(source string, opts SequenceKeyOpts) string

	// PlacementKey generates a key for derived placement caching.
	PlacementKey(sequenceHash string, opts PlacementKeyOpts) string

	// ArtifactKey generates a key for encoded artifact caching.
	ArtifactKey(placementHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key schema.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
// HTTP keys stay human-readable so cache directories can be inspected.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// SequenceKey generates a key for loaded sequence caching.
func (k *DefaultKeyer) SequenceKey(source string, opts SequenceKeyOpts) string {
	return hashKey("sequence", source, opts)
}

// PlacementKey generates a key for derived placement caching.
func (k *DefaultKeyer) PlacementKey(sequenceHash string, opts PlacementKeyOpts) string {
	return hashKey("placement", sequenceHash, opts)
}

// ArtifactKey generates a key for encoded artifact caching.
func (k *DefaultKeyer) ArtifactKey(placementHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", placementHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
